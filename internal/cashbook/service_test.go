package cashbook_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/khata/internal/cashbook"
	"github.com/MrJamesThe3rd/khata/internal/document"
)

func TestService_Sync(t *testing.T) {
	ws := uuid.New()
	day := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	paid := func(direction document.Direction, number string, total int64) document.Document {
		return document.Document{
			WorkspaceID:      ws,
			Direction:        direction,
			CounterpartyName: "Sharma Traders",
			DocumentNumber:   number,
			Date:             day,
			Status:           document.StatusPaid,
			GrandTotal:       decimal.NewFromInt(total),
		}
	}

	type testCase struct {
		name      string
		doc       document.Document
		setupMock func(m *cashbook.MockRepository)
		check     func(t *testing.T, e *cashbook.Entry)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "PurchaseOnNewDay",
			doc:  paid(document.DirectionPurchase, "7", 1200),
			setupMock: func(m *cashbook.MockRepository) {
				m.EXPECT().GetEntry(gomock.Any(), ws, day).Return(nil, cashbook.ErrNotFound)
			},
			check: func(t *testing.T, e *cashbook.Entry) {
				require.Len(t, e.ExpenseRows, 1)
				assert.Empty(t, e.IncomeRows)
				assert.Equal(t, "Purchase - Bill 7 - Sharma Traders", e.ExpenseRows[0].Particulars)
				assert.Equal(t, "1200", e.ExpenseRows[0].Amount)
				assert.True(t, decimal.NewFromInt(-1200).Equal(e.Balance))
			},
		},
		{
			name: "SaleAppendsAndDropsBlankRows",
			doc:  paid(document.DirectionSale, "S-3", 500),
			setupMock: func(m *cashbook.MockRepository) {
				m.EXPECT().GetEntry(gomock.Any(), ws, day).Return(&cashbook.Entry{
					WorkspaceID: ws,
					Date:        day,
					IncomeRows: []cashbook.Row{
						{ID: "a", Particulars: "Opening cash", Amount: "1,000"},
						{ID: "b", Particulars: "  ", Amount: "999"},
					},
					ExpenseRows: []cashbook.Row{{ID: "c", Particulars: "Tea", Amount: "40.50"}},
				}, nil)
			},
			check: func(t *testing.T, e *cashbook.Entry) {
				require.Len(t, e.IncomeRows, 2)
				assert.Equal(t, "Sales - Bill S-3 - Sharma Traders", e.IncomeRows[1].Particulars)
				assert.True(t, decimal.NewFromInt(1500).Equal(e.IncomeTotal))
				assert.True(t, decimal.RequireFromString("40.5").Equal(e.ExpenseTotal))
				assert.True(t, decimal.RequireFromString("1459.5").Equal(e.Balance))
			},
		},
		{
			name: "AlreadyRecorded",
			doc:  paid(document.DirectionPurchase, "7", 1200),
			setupMock: func(m *cashbook.MockRepository) {
				m.EXPECT().GetEntry(gomock.Any(), ws, day).Return(&cashbook.Entry{
					ExpenseRows: []cashbook.Row{{Particulars: "Purchase - Bill 7 - Sharma Traders", Amount: "1200"}},
				}, nil)
			},
		},
		{
			name: "SimilarNumberIsNotADuplicate",
			doc:  paid(document.DirectionPurchase, "7", 300),
			setupMock: func(m *cashbook.MockRepository) {
				m.EXPECT().GetEntry(gomock.Any(), ws, day).Return(&cashbook.Entry{
					ExpenseRows: []cashbook.Row{{Particulars: "Purchase - Bill 71 - Gupta", Amount: "100"}},
				}, nil)
			},
			check: func(t *testing.T, e *cashbook.Entry) {
				assert.Len(t, e.ExpenseRows, 2)
				assert.True(t, decimal.NewFromInt(400).Equal(e.ExpenseTotal))
			},
		},
		{
			name: "PendingIgnored",
			doc: func() document.Document {
				doc := paid(document.DirectionSale, "9", 10)
				doc.Status = document.StatusPending
				return doc
			}(),
		},
		{
			name: "LoadError",
			doc:  paid(document.DirectionSale, "9", 10),
			setupMock: func(m *cashbook.MockRepository) {
				m.EXPECT().GetEntry(gomock.Any(), ws, day).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := cashbook.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			if tt.check != nil {
				repo.EXPECT().SaveEntry(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *cashbook.Entry) error {
						tt.check(t, e)
						return nil
					})
			}

			err := cashbook.NewService(repo).Sync(context.Background(), tt.doc)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}
