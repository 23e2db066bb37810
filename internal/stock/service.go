package stock

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/khata/internal/document"
	"github.com/MrJamesThe3rd/khata/internal/money"
)

const suggestLimit = 10

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=stock
type Repository interface {
	ListItems(ctx context.Context, workspaceID uuid.UUID) ([]*Item, error)
	FindItem(ctx context.Context, workspaceID uuid.UUID, name string) (*Item, error)
	CreateItem(ctx context.Context, item *Item) error
	UpdateItem(ctx context.Context, item *Item) error
	SearchItems(ctx context.Context, workspaceID uuid.UUID, prefix string, limit int) ([]*Item, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Lookup loads the workspace's stock master for name matching.
func (s *Service) Lookup(ctx context.Context, workspaceID uuid.UUID) (document.StockLookup, error) {
	items, err := s.repo.ListItems(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing stock items: %w", err)
	}

	return NewCatalog(items), nil
}

// Register records every named line of a saved document in the stock master.
// Known items take the line's HSN code, rate, tax rate and unit but keep their
// stock level; unknown items are created with nothing in stock.
func (s *Service) Register(ctx context.Context, workspaceID uuid.UUID, lines []document.LineItem) error {
	seen := make(map[string]int, len(lines))
	latest := make([]document.LineItem, 0, len(lines))

	for _, l := range lines {
		k := Key(l.ItemName)
		if k == "" {
			continue
		}

		if i, ok := seen[k]; ok {
			latest[i] = l
			continue
		}

		seen[k] = len(latest)
		latest = append(latest, l)
	}

	for _, l := range latest {
		if err := s.register(ctx, workspaceID, l); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) register(ctx context.Context, workspaceID uuid.UUID, l document.LineItem) error {
	name := strings.TrimSpace(l.ItemName)

	existing, err := s.repo.FindItem(ctx, workspaceID, name)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("finding stock item %q: %w", name, err)
	}

	if existing != nil {
		existing.HSN = l.HSNCode
		existing.Rate = money.Parse(l.Rate)
		existing.TaxRate = l.TaxRatePercent
		existing.Unit = cmp.Or(strings.TrimSpace(l.Unit), DefaultUnit)

		if err := s.repo.UpdateItem(ctx, existing); err != nil {
			return fmt.Errorf("updating stock item %q: %w", name, err)
		}

		return nil
	}

	item := &Item{
		WorkspaceID: workspaceID,
		Name:        name,
		HSN:         l.HSNCode,
		Unit:        cmp.Or(strings.TrimSpace(l.Unit), DefaultUnit),
		Rate:        money.Parse(l.Rate),
		TaxRate:     l.TaxRatePercent,
		InStock:     decimal.Zero,
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return fmt.Errorf("creating stock item %q: %w", name, err)
	}

	return nil
}

func (s *Service) List(ctx context.Context, workspaceID uuid.UUID) ([]*Item, error) {
	return s.repo.ListItems(ctx, workspaceID)
}

// Suggest returns items whose name starts with prefix, for editors that
// complete item names as they are typed.
func (s *Service) Suggest(ctx context.Context, workspaceID uuid.UUID, prefix string) ([]*Item, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, nil
	}

	return s.repo.SearchItems(ctx, workspaceID, prefix, suggestLimit)
}
