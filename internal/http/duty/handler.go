package duty

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/khata/internal/document"
	"github.com/MrJamesThe3rd/khata/internal/duty"
	"github.com/MrJamesThe3rd/khata/internal/http/workspace"
)

type Handler struct {
	svc *duty.Service
}

func NewHandler(svc *duty.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/toggle", h.toggle)
}

type definitionResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Type        document.DutyType   `json:"type"`
	CalcMethod  document.CalcMethod `json:"calc_method"`
	Rate        decimal.Decimal     `json:"rate"`
	FixedAmount decimal.Decimal     `json:"fixed_amount"`
	ApplyOn     document.ApplyOn    `json:"apply_on"`
	IsDefault   bool                `json:"is_default"`
	Selected    bool                `json:"selected"`
	CreatedAt   time.Time           `json:"created_at"`
}

func toResponse(d *duty.Definition, selected bool) definitionResponse {
	return definitionResponse{
		ID:          d.ID,
		Name:        d.Name,
		Type:        d.Type,
		CalcMethod:  d.CalcMethod,
		Rate:        d.Rate,
		FixedAmount: d.FixedAmount,
		ApplyOn:     d.ApplyOn,
		IsDefault:   d.IsDefault,
		Selected:    selected,
		CreatedAt:   d.CreatedAt,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ws := workspace.ID(r.Context())

	defs, err := h.svc.List(r.Context(), ws)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	selected, err := h.svc.SelectedLedgerIDs(r.Context(), ws)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]definitionResponse, len(defs))
	for i, d := range defs {
		resp[i] = toResponse(d, slices.Contains(selected, d.ID.String()))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createRequest struct {
	Name        string              `json:"name"`
	Type        document.DutyType   `json:"type"`
	CalcMethod  document.CalcMethod `json:"calc_method"`
	Rate        decimal.Decimal     `json:"rate"`
	FixedAmount decimal.Decimal     `json:"fixed_amount"`
	ApplyOn     document.ApplyOn    `json:"apply_on"`
	IsDefault   bool                `json:"is_default"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	def, err := h.svc.Create(r.Context(), workspace.ID(r.Context()), duty.CreateParams(req))
	if err != nil {
		if errors.Is(err, duty.ErrInvalidDefinition) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(def, false)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), workspace.ID(r.Context()), id); err != nil {
		if errors.Is(err, duty.ErrNotFound) {
			http.Error(w, "duty not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type toggleResponse struct {
	ID       uuid.UUID `json:"id"`
	Selected bool      `json:"selected"`
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	selected, err := h.svc.Toggle(r.Context(), workspace.ID(r.Context()), id)
	if err != nil {
		if errors.Is(err, duty.ErrNotFound) {
			http.Error(w, "duty not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toggleResponse{ID: id, Selected: selected}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
