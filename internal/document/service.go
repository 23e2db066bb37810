package document

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=document
type Repository interface {
	SaveDocument(ctx context.Context, doc *Document) error
	GetDocument(ctx context.Context, workspaceID, id uuid.UUID) (*Document, error)
	ListDocuments(ctx context.Context, filter ListFilter) ([]*Document, error)
	DeleteDocument(ctx context.Context, workspaceID, id uuid.UUID) error
}

// StockCatalog is the stock master as seen by documents.
type StockCatalog interface {
	Lookup(ctx context.Context, workspaceID uuid.UUID) (StockLookup, error)
	Register(ctx context.Context, workspaceID uuid.UUID, lines []LineItem) error
}

// DutyRoster supplies the duty definitions a new document is seeded from.
type DutyRoster interface {
	Definitions(ctx context.Context, workspaceID uuid.UUID) ([]DutyDefinition, error)
	SelectedLedgerIDs(ctx context.Context, workspaceID uuid.UUID) ([]string, error)
}

type PartyRegistry interface {
	Ensure(ctx context.Context, workspaceID uuid.UUID, name string, direction Direction) error
}

type CashbookSync interface {
	Sync(ctx context.Context, doc Document) error
}

type Service struct {
	repo     Repository
	stock    StockCatalog
	duties   DutyRoster
	parties  PartyRegistry
	cashbook CashbookSync
	validate *validator.Validate
	now      func() time.Time
}

func NewService(
	repo Repository,
	stock StockCatalog,
	duties DutyRoster,
	parties PartyRegistry,
	cashbook CashbookSync,
) *Service {
	return &Service{
		repo:     repo,
		stock:    stock,
		duties:   duties,
		parties:  parties,
		cashbook: cashbook,
		validate: validator.New(),
		now:      time.Now,
	}
}

type ListFilter struct {
	WorkspaceID uuid.UUID
	Direction   *Direction
	Status      *Status
	StartDate   *time.Time
	EndDate     *time.Time
}

// New starts a blank document for the workspace.
func (s *Service) New(ctx context.Context, workspaceID uuid.UUID, direction Direction) (Document, error) {
	defs, err := s.duties.Definitions(ctx, workspaceID)
	if err != nil {
		return Document{}, fmt.Errorf("loading duty definitions: %w", err)
	}

	selected, err := s.duties.SelectedLedgerIDs(ctx, workspaceID)
	if err != nil {
		return Document{}, fmt.Errorf("loading selected ledgers: %w", err)
	}

	return Initialize(InitParams{
		Direction:         direction,
		WorkspaceID:       workspaceID,
		Definitions:       defs,
		SelectedLedgerIDs: selected,
		Today:             s.now(),
	}), nil
}

// UpdateLine edits one line of doc, consulting the stock master only when the
// item name changes.
func (s *Service) UpdateLine(
	ctx context.Context,
	workspaceID uuid.UUID,
	doc Document,
	lineID string,
	field Field,
	raw string,
) (Document, error) {
	var lookup StockLookup

	if field == FieldItemName {
		var err error

		lookup, err = s.stock.Lookup(ctx, workspaceID)
		if err != nil {
			return Document{}, fmt.Errorf("loading stock items: %w", err)
		}
	}

	return UpdateLineItem(doc, lineID, field, raw, lookup), nil
}

type submission struct {
	CounterpartyName string    `validate:"required"`
	DocumentNumber   string    `validate:"required"`
	Direction        Direction `validate:"oneof=purchase sale"`
	Status           Status    `validate:"oneof=Pending Paid"`
	GSTType          GSTType   `validate:"oneof=Intra-State Inter-State"`
	Lines            int       `validate:"min=1"`
}

func (s *Service) check(doc Document) error {
	err := s.validate.Struct(submission{
		CounterpartyName: doc.CounterpartyName,
		DocumentNumber:   doc.DocumentNumber,
		Direction:        doc.Direction,
		Status:           doc.Status,
		GSTType:          doc.GSTType,
		Lines:            len(doc.Lines),
	})
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}

			return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(fields, ", "))
		}

		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	if doc.GrandTotal.IsNegative() {
		return ErrNegativeTotal
	}

	return nil
}

// Submit validates and stores doc, then brings the stock master, the party
// roster and, for paid documents, the cashbook in line with it. A cashbook
// failure is logged and does not fail the submission.
func (s *Service) Submit(ctx context.Context, workspaceID uuid.UUID, doc Document) (*Document, error) {
	saved := doc.clone()
	saved.WorkspaceID = workspaceID
	saved.CounterpartyName = strings.TrimSpace(saved.CounterpartyName)
	saved.DocumentNumber = strings.TrimSpace(saved.DocumentNumber)

	if err := s.check(saved); err != nil {
		return nil, err
	}

	if saved.ID == uuid.Nil {
		saved.ID = uuid.New()
	}

	if err := s.repo.SaveDocument(ctx, &saved); err != nil {
		return nil, fmt.Errorf("saving document: %w", err)
	}

	if err := s.stock.Register(ctx, workspaceID, saved.Lines); err != nil {
		return nil, fmt.Errorf("registering stock items: %w", err)
	}

	if err := s.parties.Ensure(ctx, workspaceID, saved.CounterpartyName, saved.Direction); err != nil {
		return nil, fmt.Errorf("ensuring party: %w", err)
	}

	if saved.Status == StatusPaid {
		if err := s.cashbook.Sync(ctx, saved); err != nil {
			slog.Warn("cashbook sync failed", "document_id", saved.ID, "error", err)
		}
	}

	return &saved, nil
}

func (s *Service) Get(ctx context.Context, workspaceID, id uuid.UUID) (*Document, error) {
	return s.repo.GetDocument(ctx, workspaceID, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Document, error) {
	return s.repo.ListDocuments(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, workspaceID, id uuid.UUID) error {
	return s.repo.DeleteDocument(ctx, workspaceID, id)
}
