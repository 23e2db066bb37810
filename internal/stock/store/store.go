package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/khata/internal/stock"
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

// Expected column order: id, workspace_id, name, hsn, unit, rate, tax_rate, in_stock, created_at, updated_at
func scanItem(s scanner) (*stock.Item, error) {
	var it stock.Item

	if err := s.Scan(
		&it.ID, &it.WorkspaceID, &it.Name, &it.HSN, &it.Unit,
		&it.Rate, &it.TaxRate, &it.InStock, &it.CreatedAt, &it.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &it, nil
}

const selectItemColumns = `id, workspace_id, name, hsn, unit, rate, tax_rate, in_stock, created_at, updated_at`

func (s *Store) queryItems(ctx context.Context, query string, args ...any) ([]*stock.Item, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*stock.Item

	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning stock item: %w", err)
		}

		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stock rows: %w", err)
	}

	return items, nil
}

func (s *Store) ListItems(ctx context.Context, workspaceID uuid.UUID) ([]*stock.Item, error) {
	query := `SELECT ` + selectItemColumns + `
		FROM stock_items
		WHERE workspace_id = $1 AND deleted_at IS NULL
		ORDER BY name ASC`

	items, err := s.queryItems(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing stock items: %w", err)
	}

	return items, nil
}

// FindItem matches the trimmed name without regard to case.
func (s *Store) FindItem(ctx context.Context, workspaceID uuid.UUID, name string) (*stock.Item, error) {
	query := `SELECT ` + selectItemColumns + `
		FROM stock_items
		WHERE workspace_id = $1 AND LOWER(name) = LOWER($2) AND deleted_at IS NULL
		ORDER BY created_at ASC
		LIMIT 1`

	it, err := scanItem(s.db.QueryRowContext(ctx, query, workspaceID, strings.TrimSpace(name)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, stock.ErrNotFound
		}

		return nil, fmt.Errorf("finding stock item: %w", err)
	}

	return it, nil
}

func (s *Store) CreateItem(ctx context.Context, it *stock.Item) error {
	query := `
		INSERT INTO stock_items (workspace_id, name, hsn, unit, rate, tax_rate, in_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		it.WorkspaceID,
		it.Name,
		it.HSN,
		it.Unit,
		it.Rate,
		it.TaxRate,
		it.InStock,
	).Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating stock item: %w", err)
	}

	return nil
}

// UpdateItem rewrites the item's master data. The stock level is left alone.
func (s *Store) UpdateItem(ctx context.Context, it *stock.Item) error {
	query := `
		UPDATE stock_items
		SET hsn = $1, unit = $2, rate = $3, tax_rate = $4, updated_at = NOW()
		WHERE id = $5 AND workspace_id = $6 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		it.HSN,
		it.Unit,
		it.Rate,
		it.TaxRate,
		it.ID,
		it.WorkspaceID,
	)
	if err != nil {
		return fmt.Errorf("updating stock item: %w", err)
	}

	return nil
}

func (s *Store) SearchItems(ctx context.Context, workspaceID uuid.UUID, prefix string, limit int) ([]*stock.Item, error) {
	query := `SELECT ` + selectItemColumns + `
		FROM stock_items
		WHERE workspace_id = $1 AND name ILIKE $2 || '%' AND deleted_at IS NULL
		ORDER BY LENGTH(name) ASC, name ASC
		LIMIT $3`

	items, err := s.queryItems(ctx, query, workspaceID, escapeLike(prefix), limit)
	if err != nil {
		return nil, fmt.Errorf("searching stock items: %w", err)
	}

	return items, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
