package document

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/khata/internal/document"
	"github.com/MrJamesThe3rd/khata/internal/http/workspace"
)

type Handler struct {
	svc *document.Service
}

func NewHandler(svc *document.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/new", h.start)
	r.Post("/recompute", h.recompute)
	r.Post("/lines/add", h.addLine)
	r.Post("/lines/remove", h.removeLine)
	r.Post("/lines/update", h.updateLine)

	r.Post("/", h.submit)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
}

func writeDocument(w http.ResponseWriter, status int, doc *document.Document) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(toPayload(doc)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type startRequest struct {
	Direction document.Direction `json:"direction"`
}

func (h *Handler) start(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	if req.Direction != "" && req.Direction != document.DirectionPurchase && req.Direction != document.DirectionSale {
		http.Error(w, "direction must be purchase or sale", http.StatusBadRequest)
		return
	}

	doc, err := h.svc.New(r.Context(), workspace.ID(r.Context()), req.Direction)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeDocument(w, http.StatusOK, &doc)
}

type triggerPayload struct {
	Kind   string `json:"kind"`
	DutyID string `json:"duty_id"`
	Value  string `json:"value"`
}

func (p triggerPayload) toTrigger() (document.Trigger, bool) {
	switch p.Kind {
	case "", "none":
		return document.None, true
	case "subtotal":
		return document.SubtotalOverride(p.Value), true
	case "tax":
		return document.TaxOverride(p.Value), true
	case "duty":
		return document.DutyOverride(p.DutyID, p.Value), true
	}

	return document.Trigger{}, false
}

type recomputeRequest struct {
	Document documentPayload `json:"document"`
	Trigger  triggerPayload  `json:"trigger"`
}

func (h *Handler) recompute(w http.ResponseWriter, r *http.Request) {
	var req recomputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	trigger, ok := req.Trigger.toTrigger()
	if !ok {
		http.Error(w, "unknown trigger", http.StatusBadRequest)
		return
	}

	doc := document.Recompute(req.Document.toDocument(), trigger)
	writeDocument(w, http.StatusOK, &doc)
}

type lineRequest struct {
	Document documentPayload `json:"document"`
	LineID   string          `json:"line_id"`
	Field    string          `json:"field"`
	Value    string          `json:"value"`
}

func (h *Handler) addLine(w http.ResponseWriter, r *http.Request) {
	var req lineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc := document.AddLineItem(req.Document.toDocument())
	writeDocument(w, http.StatusOK, &doc)
}

func (h *Handler) removeLine(w http.ResponseWriter, r *http.Request) {
	var req lineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc := document.RemoveLineItem(req.Document.toDocument(), req.LineID)
	writeDocument(w, http.StatusOK, &doc)
}

func (h *Handler) updateLine(w http.ResponseWriter, r *http.Request) {
	var req lineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	field, ok := document.ParseField(req.Field)
	if !ok {
		http.Error(w, "unknown field", http.StatusBadRequest)
		return
	}

	doc, err := h.svc.UpdateLine(r.Context(), workspace.ID(r.Context()), req.Document.toDocument(), req.LineID, field, req.Value)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeDocument(w, http.StatusOK, &doc)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var req documentPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc, err := h.svc.Submit(r.Context(), workspace.ID(r.Context()), req.toDocument())
	if err != nil {
		switch {
		case errors.Is(err, document.ErrInvalidDocument), errors.Is(err, document.ErrNegativeTotal):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, document.ErrNotFound):
			http.Error(w, "document not found", http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	writeDocument(w, http.StatusCreated, doc)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := document.ListFilter{WorkspaceID: workspace.ID(r.Context())}

	if s := r.URL.Query().Get("direction"); s != "" {
		filter.Direction = new(document.Direction(s))
	}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(document.Status(s))
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = new(t)
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = new(t)
		}
	}

	docs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toPayloadList(docs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	doc, err := h.svc.Get(r.Context(), workspace.ID(r.Context()), id)
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			http.Error(w, "document not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeDocument(w, http.StatusOK, doc)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), workspace.ID(r.Context()), id); err != nil {
		if errors.Is(err, document.ErrNotFound) {
			http.Error(w, "document not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
