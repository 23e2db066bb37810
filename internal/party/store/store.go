package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/khata/internal/party"
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

// Expected column order: id, workspace_id, name, kind, tax_id, created_at, updated_at
func scanParty(s scanner) (*party.Party, error) {
	var p party.Party

	var kind string

	var taxID sql.NullString

	if err := s.Scan(&p.ID, &p.WorkspaceID, &p.Name, &kind, &taxID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}

	p.Kind = party.Kind(kind)
	p.TaxID = taxID.String

	return &p, nil
}

const selectPartyColumns = `id, workspace_id, name, kind, tax_id, created_at, updated_at`

func (s *Store) FindParty(ctx context.Context, workspaceID uuid.UUID, name string) (*party.Party, error) {
	query := `SELECT ` + selectPartyColumns + `
		FROM parties
		WHERE workspace_id = $1 AND name = $2 AND deleted_at IS NULL
		ORDER BY created_at ASC
		LIMIT 1`

	p, err := scanParty(s.db.QueryRowContext(ctx, query, workspaceID, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, party.ErrNotFound
		}

		return nil, fmt.Errorf("finding party: %w", err)
	}

	return p, nil
}

func (s *Store) ListParties(ctx context.Context, workspaceID uuid.UUID, kind *party.Kind) ([]*party.Party, error) {
	query := `SELECT ` + selectPartyColumns + `
		FROM parties
		WHERE workspace_id = $1 AND deleted_at IS NULL`

	args := []any{workspaceID}

	if kind != nil {
		query += " AND kind = $2"

		args = append(args, *kind)
	}

	query += " ORDER BY name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing parties: %w", err)
	}
	defer rows.Close()

	var parties []*party.Party

	for rows.Next() {
		p, err := scanParty(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning party: %w", err)
		}

		parties = append(parties, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating party rows: %w", err)
	}

	return parties, nil
}

func (s *Store) CreateParty(ctx context.Context, p *party.Party) error {
	query := `
		INSERT INTO parties (workspace_id, name, kind, tax_id, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, p.WorkspaceID, p.Name, p.Kind, p.TaxID).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating party: %w", err)
	}

	return nil
}

func (s *Store) UpdateKind(ctx context.Context, workspaceID, id uuid.UUID, kind party.Kind) error {
	query := `
		UPDATE parties
		SET kind = $1, updated_at = NOW()
		WHERE workspace_id = $2 AND id = $3 AND deleted_at IS NULL
	`

	if _, err := s.db.ExecContext(ctx, query, kind, workspaceID, id); err != nil {
		return fmt.Errorf("updating party kind: %w", err)
	}

	return nil
}
