package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/khata/internal/cashbook"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// rows is the shape of the raw_data column.
type rows struct {
	IncomeRows  []cashbook.Row `json:"incomeRows"`
	ExpenseRows []cashbook.Row `json:"expenseRows"`
}

func (s *Store) GetEntry(ctx context.Context, workspaceID uuid.UUID, date time.Time) (*cashbook.Entry, error) {
	query := `
		SELECT id, workspace_id, date, income_total, expense_total, balance, raw_data, created_at, updated_at
		FROM cashbooks
		WHERE workspace_id = $1 AND date = $2 AND deleted_at IS NULL
	`

	var e cashbook.Entry

	var raw []byte

	err := s.db.QueryRowContext(ctx, query, workspaceID, date).Scan(
		&e.ID, &e.WorkspaceID, &e.Date, &e.IncomeTotal, &e.ExpenseTotal, &e.Balance,
		&raw, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cashbook.ErrNotFound
		}

		return nil, fmt.Errorf("getting cashbook: %w", err)
	}

	var r rows
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("decoding cashbook rows: %w", err)
		}
	}

	e.IncomeRows = r.IncomeRows
	e.ExpenseRows = r.ExpenseRows

	return &e, nil
}

// SaveEntry writes the entry for its workspace and day, replacing any
// existing one.
func (s *Store) SaveEntry(ctx context.Context, e *cashbook.Entry) error {
	raw, err := json.Marshal(rows{IncomeRows: e.IncomeRows, ExpenseRows: e.ExpenseRows})
	if err != nil {
		return fmt.Errorf("encoding cashbook rows: %w", err)
	}

	query := `
		INSERT INTO cashbooks (workspace_id, date, income_total, expense_total, balance, raw_data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (workspace_id, date) DO UPDATE SET
			income_total = EXCLUDED.income_total,
			expense_total = EXCLUDED.expense_total,
			balance = EXCLUDED.balance,
			raw_data = EXCLUDED.raw_data,
			updated_at = NOW(),
			deleted_at = NULL
		RETURNING id, created_at, updated_at
	`

	err = s.db.QueryRowContext(ctx, query,
		e.WorkspaceID,
		e.Date,
		e.IncomeTotal,
		e.ExpenseTotal,
		e.Balance,
		string(raw),
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving cashbook: %w", err)
	}

	return nil
}
