package cashbook

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/khata/internal/cashbook"
	"github.com/MrJamesThe3rd/khata/internal/http/workspace"
)

type Handler struct {
	svc *cashbook.Service
}

func NewHandler(svc *cashbook.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{date}", h.get)
}

type entryResponse struct {
	Date         string          `json:"date"`
	IncomeRows   []cashbook.Row  `json:"income_rows"`
	ExpenseRows  []cashbook.Row  `json:"expense_rows"`
	IncomeTotal  decimal.Decimal `json:"income_total"`
	ExpenseTotal decimal.Decimal `json:"expense_total"`
	Balance      decimal.Decimal `json:"balance"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(time.DateOnly, chi.URLParam(r, "date"))
	if err != nil {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	entry, err := h.svc.Get(r.Context(), workspace.ID(r.Context()), date)
	if err != nil {
		if errors.Is(err, cashbook.ErrNotFound) {
			http.Error(w, "no cashbook for that day", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(entryResponse{
		Date:         entry.Date.Format(time.DateOnly),
		IncomeRows:   entry.IncomeRows,
		ExpenseRows:  entry.ExpenseRows,
		IncomeTotal:  entry.IncomeTotal,
		ExpenseTotal: entry.ExpenseTotal,
		Balance:      entry.Balance,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
