package database

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS documents (
		id UUID PRIMARY KEY,
		workspace_id UUID NOT NULL,
		direction TEXT NOT NULL,
		counterparty_name TEXT NOT NULL,
		document_number TEXT NOT NULL,
		date DATE NOT NULL,
		status TEXT NOT NULL,
		grand_total NUMERIC(14, 2) NOT NULL,
		schema_version INT NOT NULL,
		payload JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ,
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS documents_workspace_date_idx ON documents (workspace_id, date DESC)`,
	`CREATE TABLE IF NOT EXISTS stock_items (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		workspace_id UUID NOT NULL,
		name TEXT NOT NULL,
		hsn TEXT NOT NULL DEFAULT '',
		unit TEXT NOT NULL DEFAULT 'PCS',
		rate NUMERIC(14, 4) NOT NULL DEFAULT 0,
		tax_rate NUMERIC(6, 3) NOT NULL DEFAULT 0,
		in_stock NUMERIC(14, 3) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ,
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS stock_items_workspace_name_idx ON stock_items (workspace_id, LOWER(name))`,
	`CREATE TABLE IF NOT EXISTS duty_definitions (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		workspace_id UUID NOT NULL,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		calc_method TEXT NOT NULL,
		rate NUMERIC(8, 4) NOT NULL DEFAULT 0,
		fixed_amount NUMERIC(14, 2) NOT NULL DEFAULT 0,
		apply_on TEXT NOT NULL,
		is_default BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ,
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS ledger_selections (
		workspace_id UUID NOT NULL,
		definition_id UUID NOT NULL REFERENCES duty_definitions (id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (workspace_id, definition_id)
	)`,
	`CREATE TABLE IF NOT EXISTS parties (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		workspace_id UUID NOT NULL,
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		tax_id TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ,
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS cashbooks (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		workspace_id UUID NOT NULL,
		date DATE NOT NULL,
		income_total NUMERIC(14, 2) NOT NULL DEFAULT 0,
		expense_total NUMERIC(14, 2) NOT NULL DEFAULT 0,
		balance NUMERIC(14, 2) NOT NULL DEFAULT 0,
		raw_data JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ,
		deleted_at TIMESTAMPTZ,
		UNIQUE (workspace_id, date)
	)`,
}

// Migrate creates any missing tables. It is safe to run on every start.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	return nil
}
