package cashbook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/khata/internal/document"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=cashbook
type Repository interface {
	GetEntry(ctx context.Context, workspaceID uuid.UUID, date time.Time) (*Entry, error)
	SaveEntry(ctx context.Context, entry *Entry) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, workspaceID uuid.UUID, date time.Time) (*Entry, error) {
	return s.repo.GetEntry(ctx, workspaceID, date)
}

// Sync records a paid document in the cashbook of its date: sales as income,
// purchases as expense. A document already mentioned on that day is not
// recorded twice, and unpaid documents are ignored.
func (s *Service) Sync(ctx context.Context, doc document.Document) error {
	if doc.Status != document.StatusPaid {
		return nil
	}

	entry, err := s.repo.GetEntry(ctx, doc.WorkspaceID, doc.Date)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("loading cashbook: %w", err)
		}

		entry = &Entry{WorkspaceID: doc.WorkspaceID, Date: doc.Date}
	}

	ref := fmt.Sprintf("Bill %s -", doc.DocumentNumber)
	if entry.mentions(ref) {
		return nil
	}

	row := Row{
		ID:          uuid.NewString(),
		Particulars: fmt.Sprintf("%s - %s %s", label(doc.Direction), ref, doc.CounterpartyName),
		Amount:      doc.GrandTotal.String(),
	}

	if doc.Direction == document.DirectionSale {
		entry.IncomeRows = append(entry.IncomeRows, row)
	} else {
		entry.ExpenseRows = append(entry.ExpenseRows, row)
	}

	entry.settle()

	if err := s.repo.SaveEntry(ctx, entry); err != nil {
		return fmt.Errorf("saving cashbook: %w", err)
	}

	return nil
}

func label(d document.Direction) string {
	if d == document.DirectionSale {
		return "Sales"
	}

	return "Purchase"
}
