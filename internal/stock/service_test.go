package stock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/khata/internal/document"
	"github.com/MrJamesThe3rd/khata/internal/stock"
)

func TestService_Register(t *testing.T) {
	ws := uuid.New()

	type testCase struct {
		name      string
		lines     []document.LineItem
		setupMock func(m *stock.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "CreatesUnknownItem",
			lines: []document.LineItem{
				{ItemName: " Jaggery ", HSNCode: "1701", Rate: "₹55.50", TaxRatePercent: decimal.NewFromInt(5)},
			},
			setupMock: func(m *stock.MockRepository) {
				m.EXPECT().FindItem(gomock.Any(), ws, "Jaggery").Return(nil, stock.ErrNotFound)
				m.EXPECT().CreateItem(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, it *stock.Item) error {
						assert.Equal(t, ws, it.WorkspaceID)
						assert.Equal(t, "Jaggery", it.Name)
						assert.Equal(t, "1701", it.HSN)
						assert.Equal(t, stock.DefaultUnit, it.Unit)
						assert.True(t, decimal.RequireFromString("55.5").Equal(it.Rate))
						assert.True(t, it.InStock.IsZero())
						return nil
					})
			},
		},
		{
			name: "UpdatesKnownItemKeepingStock",
			lines: []document.LineItem{
				{ItemName: "rice", HSNCode: "1006", Rate: "90", Unit: "KG", TaxRatePercent: decimal.NewFromInt(5)},
			},
			setupMock: func(m *stock.MockRepository) {
				existing := &stock.Item{ID: uuid.New(), WorkspaceID: ws, Name: "Rice", InStock: decimal.NewFromInt(40)}
				m.EXPECT().FindItem(gomock.Any(), ws, "rice").Return(existing, nil)
				m.EXPECT().UpdateItem(gomock.Any(), existing).
					DoAndReturn(func(_ context.Context, it *stock.Item) error {
						assert.Equal(t, "Rice", it.Name)
						assert.Equal(t, "KG", it.Unit)
						assert.True(t, decimal.NewFromInt(40).Equal(it.InStock))
						assert.True(t, decimal.NewFromInt(90).Equal(it.Rate))
						return nil
					})
			},
		},
		{
			name: "SkipsBlankAndCollapsesDuplicates",
			lines: []document.LineItem{
				{ItemName: "   "},
				{ItemName: "Dal", Rate: "100"},
				{ItemName: "DAL ", Rate: "120"},
			},
			setupMock: func(m *stock.MockRepository) {
				m.EXPECT().FindItem(gomock.Any(), ws, "DAL").Return(nil, stock.ErrNotFound)
				m.EXPECT().CreateItem(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, it *stock.Item) error {
						assert.True(t, decimal.NewFromInt(120).Equal(it.Rate))
						return nil
					})
			},
		},
		{
			name:  "FindError",
			lines: []document.LineItem{{ItemName: "Dal"}},
			setupMock: func(m *stock.MockRepository) {
				m.EXPECT().FindItem(gomock.Any(), ws, "Dal").Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := stock.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			err := stock.NewService(repo).Register(context.Background(), ws, tt.lines)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_Lookup(t *testing.T) {
	ws := uuid.New()
	ctrl := gomock.NewController(t)

	repo := stock.NewMockRepository(ctrl)
	repo.EXPECT().ListItems(gomock.Any(), ws).Return([]*stock.Item{
		{Name: "Ghee", HSN: "0405", Unit: "KG", Rate: decimal.NewFromInt(610)},
	}, nil)

	lookup, err := stock.NewService(repo).Lookup(context.Background(), ws)
	require.NoError(t, err)

	match, ok := lookup.Find("ghee")
	require.True(t, ok)
	assert.Equal(t, "0405", match.HSNCode)
}

func TestService_Suggest(t *testing.T) {
	ws := uuid.New()

	t.Run("BlankPrefix", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		got, err := stock.NewService(stock.NewMockRepository(ctrl)).Suggest(context.Background(), ws, "  ")

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Searches", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		repo := stock.NewMockRepository(ctrl)
		repo.EXPECT().SearchItems(gomock.Any(), ws, "ba", 10).Return([]*stock.Item{{Name: "Basmati"}}, nil)

		got, err := stock.NewService(repo).Suggest(context.Background(), ws, " ba")

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}
