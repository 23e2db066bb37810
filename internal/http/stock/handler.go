package stock

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/khata/internal/http/workspace"
	"github.com/MrJamesThe3rd/khata/internal/stock"
)

type Handler struct {
	svc *stock.Service
}

func NewHandler(svc *stock.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/suggest", h.suggest)
}

type itemResponse struct {
	ID      uuid.UUID       `json:"id"`
	Name    string          `json:"name"`
	HSN     string          `json:"hsn"`
	Unit    string          `json:"unit"`
	Rate    decimal.Decimal `json:"rate"`
	TaxRate decimal.Decimal `json:"tax_rate"`
	InStock decimal.Decimal `json:"in_stock"`
}

func toResponseList(items []*stock.Item) []itemResponse {
	resp := make([]itemResponse, len(items))
	for i, it := range items {
		resp[i] = itemResponse{
			ID:      it.ID,
			Name:    it.Name,
			HSN:     it.HSN,
			Unit:    it.Unit,
			Rate:    it.Rate,
			TaxRate: it.TaxRate,
			InStock: it.InStock,
		}
	}

	return resp
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context(), workspace.ID(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(items)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		http.Error(w, "q query parameter is required", http.StatusBadRequest)
		return
	}

	items, err := h.svc.Suggest(r.Context(), workspace.ID(r.Context()), q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(items)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
