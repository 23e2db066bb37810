package document_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/khata/internal/document"
)

type mocks struct {
	repo     *document.MockRepository
	stock    *document.MockStockCatalog
	duties   *document.MockDutyRoster
	parties  *document.MockPartyRegistry
	cashbook *document.MockCashbookSync
}

func newService(t *testing.T) (*document.Service, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := mocks{
		repo:     document.NewMockRepository(ctrl),
		stock:    document.NewMockStockCatalog(ctrl),
		duties:   document.NewMockDutyRoster(ctrl),
		parties:  document.NewMockPartyRegistry(ctrl),
		cashbook: document.NewMockCashbookSync(ctrl),
	}

	return document.NewService(m.repo, m.stock, m.duties, m.parties, m.cashbook), m
}

func TestService_New(t *testing.T) {
	ws := uuid.New()

	type testCase struct {
		name      string
		setupMock func(m mocks)
		wantDuty  []string
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m mocks) {
				m.duties.EXPECT().Definitions(gomock.Any(), ws).Return([]document.DutyDefinition{
					{ID: "a", CalcMethod: document.CalcFixed, FixedAmount: dec("10")},
					{ID: "b", CalcMethod: document.CalcFixed, FixedAmount: dec("5"), IsDefault: true},
				}, nil)
				m.duties.EXPECT().SelectedLedgerIDs(gomock.Any(), ws).Return([]string{"a"}, nil)
			},
			wantDuty: []string{"a", "b"},
		},
		{
			name: "DefinitionsError",
			setupMock: func(m mocks) {
				m.duties.EXPECT().Definitions(gomock.Any(), ws).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name: "SelectionError",
			setupMock: func(m mocks) {
				m.duties.EXPECT().Definitions(gomock.Any(), ws).Return(nil, nil)
				m.duties.EXPECT().SelectedLedgerIDs(gomock.Any(), ws).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			doc, err := svc.New(context.Background(), ws, document.DirectionPurchase)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, ws, doc.WorkspaceID)
			assert.False(t, doc.Date.IsZero())

			var ids []string
			for _, d := range doc.Duties {
				ids = append(ids, d.ID)
			}

			assert.Equal(t, tt.wantDuty, ids)
			assertAmount(t, "15", doc.GrandTotal)
		})
	}
}

func TestService_UpdateLine(t *testing.T) {
	ws := uuid.New()
	doc := document.Recompute(document.Document{Lines: []document.LineItem{line("a", "2", "", "0")}}, document.None)

	t.Run("ItemNameConsultsStock", func(t *testing.T) {
		svc, m := newService(t)
		m.stock.EXPECT().Lookup(gomock.Any(), ws).Return(stockMap{
			"ghee": {HSNCode: "0405", Rate: dec("610"), TaxRatePercent: dec("12"), Unit: "KG"},
		}, nil)

		got, err := svc.UpdateLine(context.Background(), ws, doc, "a", document.FieldItemName, "Ghee")

		require.NoError(t, err)
		assert.Equal(t, "0405", got.Lines[0].HSNCode)
		assertAmount(t, "1220", got.TaxableSubtotal)
	})

	t.Run("OtherFieldsSkipStock", func(t *testing.T) {
		svc, _ := newService(t)

		got, err := svc.UpdateLine(context.Background(), ws, doc, "a", document.FieldRate, "7.5")

		require.NoError(t, err)
		assertAmount(t, "15", got.TaxableSubtotal)
	})

	t.Run("LookupError", func(t *testing.T) {
		svc, m := newService(t)
		m.stock.EXPECT().Lookup(gomock.Any(), ws).Return(nil, errors.New("db error"))

		_, err := svc.UpdateLine(context.Background(), ws, doc, "a", document.FieldItemName, "Ghee")

		assert.Error(t, err)
	})
}

func TestService_Submit(t *testing.T) {
	ws := uuid.New()

	valid := func(status document.Status) document.Document {
		doc := document.Recompute(document.Document{
			ID:               uuid.New(),
			Direction:        document.DirectionSale,
			CounterpartyName: "  Sharma Traders ",
			DocumentNumber:   " INV-7 ",
			GSTType:          document.GSTIntraState,
			Status:           status,
			Lines:            []document.LineItem{line("a", "2", "100", "5")},
		}, document.None)

		return doc
	}

	type testCase struct {
		name      string
		doc       document.Document
		setupMock func(m mocks)
		wantErr   error
		anyErr    bool
	}

	tests := []testCase{
		{
			name: "Pending",
			doc:  valid(document.StatusPending),
			setupMock: func(m mocks) {
				gomock.InOrder(
					m.repo.EXPECT().SaveDocument(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, doc *document.Document) error {
							assert.Equal(t, "Sharma Traders", doc.CounterpartyName)
							assert.Equal(t, "INV-7", doc.DocumentNumber)
							assert.Equal(t, ws, doc.WorkspaceID)
							return nil
						}),
					m.stock.EXPECT().Register(gomock.Any(), ws, gomock.Len(1)).Return(nil),
					m.parties.EXPECT().Ensure(gomock.Any(), ws, "Sharma Traders", document.DirectionSale).Return(nil),
				)
			},
		},
		{
			name: "PaidSyncsCashbook",
			doc:  valid(document.StatusPaid),
			setupMock: func(m mocks) {
				m.repo.EXPECT().SaveDocument(gomock.Any(), gomock.Any()).Return(nil)
				m.stock.EXPECT().Register(gomock.Any(), ws, gomock.Any()).Return(nil)
				m.parties.EXPECT().Ensure(gomock.Any(), ws, gomock.Any(), gomock.Any()).Return(nil)
				m.cashbook.EXPECT().Sync(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, doc document.Document) error {
						assertAmount(t, "210", doc.GrandTotal)
						return nil
					})
			},
		},
		{
			name: "CashbookFailureIsNotFatal",
			doc:  valid(document.StatusPaid),
			setupMock: func(m mocks) {
				m.repo.EXPECT().SaveDocument(gomock.Any(), gomock.Any()).Return(nil)
				m.stock.EXPECT().Register(gomock.Any(), ws, gomock.Any()).Return(nil)
				m.parties.EXPECT().Ensure(gomock.Any(), ws, gomock.Any(), gomock.Any()).Return(nil)
				m.cashbook.EXPECT().Sync(gomock.Any(), gomock.Any()).Return(errors.New("cashbook down"))
			},
		},
		{
			name: "MissingCounterparty",
			doc: func() document.Document {
				doc := valid(document.StatusPending)
				doc.CounterpartyName = "   "
				return doc
			}(),
			wantErr: document.ErrInvalidDocument,
		},
		{
			name: "MissingNumber",
			doc: func() document.Document {
				doc := valid(document.StatusPending)
				doc.DocumentNumber = ""
				return doc
			}(),
			wantErr: document.ErrInvalidDocument,
		},
		{
			name: "NegativeTotal",
			doc: func() document.Document {
				doc := valid(document.StatusPending)
				return document.Recompute(doc, document.SubtotalOverride("-500"))
			}(),
			wantErr: document.ErrNegativeTotal,
		},
		{
			name: "RepoError",
			doc:  valid(document.StatusPending),
			setupMock: func(m mocks) {
				m.repo.EXPECT().SaveDocument(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			anyErr: true,
		},
		{
			name: "StockError",
			doc:  valid(document.StatusPending),
			setupMock: func(m mocks) {
				m.repo.EXPECT().SaveDocument(gomock.Any(), gomock.Any()).Return(nil)
				m.stock.EXPECT().Register(gomock.Any(), ws, gomock.Any()).Return(errors.New("db error"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			got, err := svc.Submit(context.Background(), ws, tt.doc)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case tt.anyErr:
				assert.Error(t, err)
				assert.Nil(t, got)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.doc.ID, got.ID)
				assert.Equal(t, "Sharma Traders", got.CounterpartyName)
			}
		})
	}
}

func TestService_Passthrough(t *testing.T) {
	ws, id := uuid.New(), uuid.New()

	t.Run("Get", func(t *testing.T) {
		svc, m := newService(t)
		m.repo.EXPECT().GetDocument(gomock.Any(), ws, id).Return(nil, document.ErrNotFound)

		_, err := svc.Get(context.Background(), ws, id)

		assert.ErrorIs(t, err, document.ErrNotFound)
	})

	t.Run("List", func(t *testing.T) {
		svc, m := newService(t)
		filter := document.ListFilter{WorkspaceID: ws, Status: new(document.StatusPaid)}
		m.repo.EXPECT().ListDocuments(gomock.Any(), filter).Return([]*document.Document{{ID: id}}, nil)

		got, err := svc.List(context.Background(), filter)

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("Delete", func(t *testing.T) {
		svc, m := newService(t)
		m.repo.EXPECT().DeleteDocument(gomock.Any(), ws, id).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), ws, id))
	})
}
