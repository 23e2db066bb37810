package party

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/khata/internal/document"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=party
type Repository interface {
	FindParty(ctx context.Context, workspaceID uuid.UUID, name string) (*Party, error)
	ListParties(ctx context.Context, workspaceID uuid.UUID, kind *Kind) ([]*Party, error)
	CreateParty(ctx context.Context, p *Party) error
	UpdateKind(ctx context.Context, workspaceID, id uuid.UUID, kind Kind) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Ensure makes sure the named counterparty of a document is on the roster as
// the right kind of party. Blank names are ignored.
func (s *Service) Ensure(ctx context.Context, workspaceID uuid.UUID, name string, direction document.Direction) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	kind := KindFor(direction)

	existing, err := s.repo.FindParty(ctx, workspaceID, name)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("finding party: %w", err)
	}

	if existing == nil {
		p := &Party{WorkspaceID: workspaceID, Name: name, Kind: kind}
		if err := s.repo.CreateParty(ctx, p); err != nil {
			return fmt.Errorf("creating party: %w", err)
		}

		return nil
	}

	if existing.Kind == kind {
		return nil
	}

	if err := s.repo.UpdateKind(ctx, workspaceID, existing.ID, kind); err != nil {
		return fmt.Errorf("updating party kind: %w", err)
	}

	return nil
}

// Find looks a party up by exact trimmed name, for filling in its tax id.
func (s *Service) Find(ctx context.Context, workspaceID uuid.UUID, name string) (*Party, error) {
	return s.repo.FindParty(ctx, workspaceID, strings.TrimSpace(name))
}

func (s *Service) List(ctx context.Context, workspaceID uuid.UUID, kind *Kind) ([]*Party, error) {
	return s.repo.ListParties(ctx, workspaceID, kind)
}
