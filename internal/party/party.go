package party

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/khata/internal/document"
)

var ErrNotFound = errors.New("party not found")

// Kind tells whether a party is someone the business buys from or sells to.
type Kind string

const (
	KindVendor   Kind = "vendor"
	KindCustomer Kind = "customer"
)

// KindFor is the party kind a document's counterparty is recorded as.
func KindFor(direction document.Direction) Kind {
	if direction == document.DirectionSale {
		return KindCustomer
	}

	return KindVendor
}

// Party is a vendor or customer of a workspace.
type Party struct {
	ID          uuid.UUID
	WorkspaceID uuid.UUID
	Name        string
	Kind        Kind
	TaxID       string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
