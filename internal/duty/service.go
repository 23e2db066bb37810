package duty

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/khata/internal/document"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=duty
type Repository interface {
	ListDefinitions(ctx context.Context, workspaceID uuid.UUID) ([]*Definition, error)
	GetDefinition(ctx context.Context, workspaceID, id uuid.UUID) (*Definition, error)
	CreateDefinition(ctx context.Context, def *Definition) error
	DeleteDefinition(ctx context.Context, workspaceID, id uuid.UUID) error

	SelectedIDs(ctx context.Context, workspaceID uuid.UUID) ([]uuid.UUID, error)
	SetSelected(ctx context.Context, workspaceID, id uuid.UUID, selected bool) error
}

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

type CreateParams struct {
	Name        string              `validate:"required"`
	Type        document.DutyType   `validate:"oneof=Charge Deduction"`
	CalcMethod  document.CalcMethod `validate:"oneof=Percentage Fixed"`
	Rate        decimal.Decimal     `validate:"-"`
	FixedAmount decimal.Decimal     `validate:"-"`
	ApplyOn     document.ApplyOn    `validate:"oneof=Subtotal 'Net Total'"`
	IsDefault   bool
}

func (s *Service) List(ctx context.Context, workspaceID uuid.UUID) ([]*Definition, error) {
	return s.repo.ListDefinitions(ctx, workspaceID)
}

// Create adds a definition. Type, calculation method and base default to
// Charge, Percentage and Subtotal.
func (s *Service) Create(ctx context.Context, workspaceID uuid.UUID, params CreateParams) (*Definition, error) {
	params.Name = strings.TrimSpace(params.Name)
	params.Type = cmp.Or(params.Type, document.DutyTypeCharge)
	params.CalcMethod = cmp.Or(params.CalcMethod, document.CalcPercentage)
	params.ApplyOn = cmp.Or(params.ApplyOn, document.ApplyOnSubtotal)

	if err := s.validate.Struct(params); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}

			return nil, fmt.Errorf("%w: %s", ErrInvalidDefinition, strings.Join(fields, ", "))
		}

		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}

	def := &Definition{
		WorkspaceID: workspaceID,
		Name:        params.Name,
		Type:        params.Type,
		CalcMethod:  params.CalcMethod,
		Rate:        params.Rate,
		FixedAmount: params.FixedAmount,
		ApplyOn:     params.ApplyOn,
		IsDefault:   params.IsDefault,
	}
	if err := s.repo.CreateDefinition(ctx, def); err != nil {
		return nil, err
	}

	return def, nil
}

func (s *Service) Delete(ctx context.Context, workspaceID, id uuid.UUID) error {
	return s.repo.DeleteDefinition(ctx, workspaceID, id)
}

// Toggle flips whether new documents in the workspace start with the given
// duty and reports the new state.
func (s *Service) Toggle(ctx context.Context, workspaceID, id uuid.UUID) (bool, error) {
	if _, err := s.repo.GetDefinition(ctx, workspaceID, id); err != nil {
		return false, err
	}

	selected, err := s.repo.SelectedIDs(ctx, workspaceID)
	if err != nil {
		return false, fmt.Errorf("loading selected ledgers: %w", err)
	}

	on := !slices.Contains(selected, id)
	if err := s.repo.SetSelected(ctx, workspaceID, id, on); err != nil {
		return false, fmt.Errorf("saving ledger selection: %w", err)
	}

	return on, nil
}

// Definitions lists the workspace's definitions in the form documents are
// seeded from.
func (s *Service) Definitions(ctx context.Context, workspaceID uuid.UUID) ([]document.DutyDefinition, error) {
	defs, err := s.repo.ListDefinitions(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing duty definitions: %w", err)
	}

	out := make([]document.DutyDefinition, 0, len(defs))
	for _, d := range defs {
		out = append(out, d.toDocument())
	}

	return out, nil
}

func (s *Service) SelectedLedgerIDs(ctx context.Context, workspaceID uuid.UUID) ([]string, error) {
	ids, err := s.repo.SelectedIDs(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("loading selected ledgers: %w", err)
	}

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out, nil
}
