package document

import (
	"cmp"
	"time"

	"github.com/google/uuid"
)

type InitParams struct {
	Direction         Direction
	WorkspaceID       uuid.UUID
	Definitions       []DutyDefinition
	SelectedLedgerIDs []string
	Today             time.Time
}

// Initialize creates a pending document dated today with one blank line and
// the workspace's default and selected duties, already settled.
func Initialize(p InitParams) Document {
	doc := Document{
		ID:          uuid.New(),
		WorkspaceID: p.WorkspaceID,
		Direction:   cmp.Or(p.Direction, DirectionPurchase),
		Date:        dateOnly(p.Today),
		GSTType:     GSTIntraState,
		Status:      StatusPending,
		Lines:       []LineItem{newLineItem()},
		Duties:      SeedDuties(p.Definitions, p.SelectedLedgerIDs),
	}

	return Recompute(doc, None)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
