package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/khata/internal/document"
	"github.com/MrJamesThe3rd/khata/internal/document/record"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanDocument decodes a stored row. The header columns are authoritative for
// identity; everything else comes from the payload.
// Expected column order: id, workspace_id, schema_version, payload, created_at, updated_at
func scanDocument(s scanner) (*document.Document, error) {
	var (
		id, workspaceID uuid.UUID
		version         int
		payload         []byte
		createdAt       time.Time
		updatedAt       *time.Time
	)

	if err := s.Scan(&id, &workspaceID, &version, &payload, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	doc, err := record.Decode(version, payload)
	if err != nil {
		return nil, fmt.Errorf("decoding document %s: %w", id, err)
	}

	doc.ID = id
	doc.WorkspaceID = workspaceID
	doc.CreatedAt = createdAt
	doc.UpdatedAt = updatedAt

	return &doc, nil
}

const selectDocumentColumns = `id, workspace_id, schema_version, payload, created_at, updated_at`

// SaveDocument inserts doc or replaces the stored copy with the same id. A
// document cannot be moved between workspaces.
func (s *Store) SaveDocument(ctx context.Context, doc *document.Document) error {
	payload, err := record.Encode(*doc)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO documents (
			id, workspace_id, direction, counterparty_name, document_number, date, status,
			grand_total, schema_version, payload, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			direction = EXCLUDED.direction,
			counterparty_name = EXCLUDED.counterparty_name,
			document_number = EXCLUDED.document_number,
			date = EXCLUDED.date,
			status = EXCLUDED.status,
			grand_total = EXCLUDED.grand_total,
			schema_version = EXCLUDED.schema_version,
			payload = EXCLUDED.payload,
			updated_at = NOW(),
			deleted_at = NULL
		WHERE documents.workspace_id = EXCLUDED.workspace_id
		RETURNING created_at, updated_at
	`

	err = s.db.QueryRowContext(ctx, query,
		doc.ID,
		doc.WorkspaceID,
		doc.Direction,
		doc.CounterpartyName,
		doc.DocumentNumber,
		doc.Date,
		doc.Status,
		doc.GrandTotal,
		record.VersionCurrent,
		string(payload),
	).Scan(&doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return document.ErrNotFound
		}

		return fmt.Errorf("saving document: %w", err)
	}

	return nil
}

func (s *Store) GetDocument(ctx context.Context, workspaceID, id uuid.UUID) (*document.Document, error) {
	query := `SELECT ` + selectDocumentColumns + `
		FROM documents
		WHERE workspace_id = $1 AND id = $2 AND deleted_at IS NULL`

	doc, err := scanDocument(s.db.QueryRowContext(ctx, query, workspaceID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, document.ErrNotFound
		}

		return nil, fmt.Errorf("getting document: %w", err)
	}

	return doc, nil
}

func (s *Store) ListDocuments(ctx context.Context, filter document.ListFilter) ([]*document.Document, error) {
	query := `SELECT ` + selectDocumentColumns + `
		FROM documents
		WHERE workspace_id = $1 AND deleted_at IS NULL`

	args := []any{filter.WorkspaceID}
	argIdx := 2

	if filter.Direction != nil {
		query += fmt.Sprintf(" AND direction = $%d", argIdx)

		args = append(args, *filter.Direction)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
	}

	query += " ORDER BY date DESC, created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []*document.Document

	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}

		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating document rows: %w", err)
	}

	return docs, nil
}

func (s *Store) DeleteDocument(ctx context.Context, workspaceID, id uuid.UUID) error {
	query := `
		UPDATE documents
		SET deleted_at = NOW()
		WHERE workspace_id = $1 AND id = $2 AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query, workspaceID, id)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}

	if n == 0 {
		return document.ErrNotFound
	}

	return nil
}
