package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/khata/internal/document"
	"github.com/MrJamesThe3rd/khata/internal/duty"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, workspace_id, name, type, calc_method, rate, fixed_amount, apply_on, is_default, created_at, updated_at
func scanDefinition(s scanner) (*duty.Definition, error) {
	var d duty.Definition

	var typ, method, applyOn string

	if err := s.Scan(
		&d.ID, &d.WorkspaceID, &d.Name, &typ, &method,
		&d.Rate, &d.FixedAmount, &applyOn, &d.IsDefault, &d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		return nil, err
	}

	d.Type = document.DutyType(typ)
	d.CalcMethod = document.CalcMethod(method)
	d.ApplyOn = document.ApplyOn(applyOn)

	return &d, nil
}

const selectDefinitionColumns = `
	id, workspace_id, name, type, calc_method, rate, fixed_amount, apply_on, is_default, created_at, updated_at
`

func (s *Store) ListDefinitions(ctx context.Context, workspaceID uuid.UUID) ([]*duty.Definition, error) {
	query := `SELECT ` + selectDefinitionColumns + `
		FROM duty_definitions
		WHERE workspace_id = $1 AND deleted_at IS NULL
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing duty definitions: %w", err)
	}
	defer rows.Close()

	var defs []*duty.Definition

	for rows.Next() {
		d, err := scanDefinition(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning duty definition: %w", err)
		}

		defs = append(defs, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating duty definition rows: %w", err)
	}

	return defs, nil
}

func (s *Store) GetDefinition(ctx context.Context, workspaceID, id uuid.UUID) (*duty.Definition, error) {
	query := `SELECT ` + selectDefinitionColumns + `
		FROM duty_definitions
		WHERE workspace_id = $1 AND id = $2 AND deleted_at IS NULL`

	d, err := scanDefinition(s.db.QueryRowContext(ctx, query, workspaceID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, duty.ErrNotFound
		}

		return nil, fmt.Errorf("getting duty definition: %w", err)
	}

	return d, nil
}

func (s *Store) CreateDefinition(ctx context.Context, d *duty.Definition) error {
	query := `
		INSERT INTO duty_definitions (workspace_id, name, type, calc_method, rate, fixed_amount, apply_on, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		d.WorkspaceID,
		d.Name,
		d.Type,
		d.CalcMethod,
		d.Rate,
		d.FixedAmount,
		d.ApplyOn,
		d.IsDefault,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating duty definition: %w", err)
	}

	return nil
}

// DeleteDefinition soft-deletes the definition and drops it from the
// workspace's selection.
func (s *Store) DeleteDefinition(ctx context.Context, workspaceID, id uuid.UUID) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	res, err := dbTx.ExecContext(ctx, `
		UPDATE duty_definitions
		SET deleted_at = NOW()
		WHERE workspace_id = $1 AND id = $2 AND deleted_at IS NULL
	`, workspaceID, id)
	if err != nil {
		return fmt.Errorf("deleting duty definition: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting duty definition: %w", err)
	}

	if n == 0 {
		return duty.ErrNotFound
	}

	if _, err := dbTx.ExecContext(ctx, `
		DELETE FROM ledger_selections
		WHERE workspace_id = $1 AND definition_id = $2
	`, workspaceID, id); err != nil {
		return fmt.Errorf("clearing ledger selection: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) SelectedIDs(ctx context.Context, workspaceID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT definition_id
		FROM ledger_selections
		WHERE workspace_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing selected ledgers: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning selected ledger: %w", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating selected ledgers: %w", err)
	}

	return ids, nil
}

func (s *Store) SetSelected(ctx context.Context, workspaceID, id uuid.UUID, selected bool) error {
	query := `
		INSERT INTO ledger_selections (workspace_id, definition_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (workspace_id, definition_id) DO NOTHING
	`
	if !selected {
		query = `
			DELETE FROM ledger_selections
			WHERE workspace_id = $1 AND definition_id = $2
		`
	}

	if _, err := s.db.ExecContext(ctx, query, workspaceID, id); err != nil {
		return fmt.Errorf("saving ledger selection: %w", err)
	}

	return nil
}
