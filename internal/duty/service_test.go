package duty_test

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
	"github.com/MrJamesThe3rd/khata/internal/duty"
)

func TestService_Create(t *testing.T) {
	ws := uuid.New()

	type testCase struct {
		name      string
		params    duty.CreateParams
		setupMock func(m *duty.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "DefaultsApplied",
			params: duty.CreateParams{Name: "  TCS ", Rate: decimal.RequireFromString("0.1")},
			setupMock: func(m *duty.MockRepository) {
				m.EXPECT().CreateDefinition(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, d *duty.Definition) error {
						assert.Equal(t, "TCS", d.Name)
						assert.Equal(t, ws, d.WorkspaceID)
						assert.Equal(t, document.DutyTypeCharge, d.Type)
						assert.Equal(t, document.CalcPercentage, d.CalcMethod)
						assert.Equal(t, document.ApplyOnSubtotal, d.ApplyOn)
						d.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "NetTotalDeduction",
			params: duty.CreateParams{
				Name:        "Discount",
				Type:        document.DutyTypeDeduction,
				CalcMethod:  document.CalcFixed,
				FixedAmount: decimal.NewFromInt(-50),
				ApplyOn:     document.ApplyOnNetTotal,
			},
			setupMock: func(m *duty.MockRepository) {
				m.EXPECT().CreateDefinition(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "MissingName",
			params:  duty.CreateParams{Name: "  "},
			wantErr: duty.ErrInvalidDefinition,
		},
		{
			name:    "UnknownMethod",
			params:  duty.CreateParams{Name: "Cess", CalcMethod: "Compound"},
			wantErr: duty.ErrInvalidDefinition,
		},
		{
			name:    "UnknownBase",
			params:  duty.CreateParams{Name: "Cess", ApplyOn: "Gross"},
			wantErr: duty.ErrInvalidDefinition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := duty.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := duty.NewService(repo).Create(context.Background(), ws, tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

func TestService_Toggle(t *testing.T) {
	ws, id := uuid.New(), uuid.New()

	type testCase struct {
		name      string
		setupMock func(m *duty.MockRepository)
		want      bool
		wantErr   error
	}

	tests := []testCase{
		{
			name: "SelectsUnselected",
			setupMock: func(m *duty.MockRepository) {
				m.EXPECT().GetDefinition(gomock.Any(), ws, id).Return(&duty.Definition{ID: id}, nil)
				m.EXPECT().SelectedIDs(gomock.Any(), ws).Return(nil, nil)
				m.EXPECT().SetSelected(gomock.Any(), ws, id, true).Return(nil)
			},
			want: true,
		},
		{
			name: "UnselectsSelected",
			setupMock: func(m *duty.MockRepository) {
				m.EXPECT().GetDefinition(gomock.Any(), ws, id).Return(&duty.Definition{ID: id}, nil)
				m.EXPECT().SelectedIDs(gomock.Any(), ws).Return([]uuid.UUID{uuid.New(), id}, nil)
				m.EXPECT().SetSelected(gomock.Any(), ws, id, false).Return(nil)
			},
			want: false,
		},
		{
			name: "UnknownDefinition",
			setupMock: func(m *duty.MockRepository) {
				m.EXPECT().GetDefinition(gomock.Any(), ws, id).Return(nil, duty.ErrNotFound)
			},
			wantErr: duty.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := duty.NewMockRepository(ctrl)
			tt.setupMock(repo)

			got, err := duty.NewService(repo).Toggle(context.Background(), ws, id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Roster(t *testing.T) {
	ws := uuid.New()
	a, b := uuid.New(), uuid.New()

	ctrl := gomock.NewController(t)

	repo := duty.NewMockRepository(ctrl)
	repo.EXPECT().ListDefinitions(gomock.Any(), ws).Return([]*duty.Definition{
		{ID: a, Name: "Freight", CalcMethod: document.CalcFixed, FixedAmount: decimal.NewFromInt(40), IsDefault: true},
		{ID: b, Name: "TDS", CalcMethod: document.CalcPercentage, Rate: decimal.NewFromInt(1)},
	}, nil)
	repo.EXPECT().SelectedIDs(gomock.Any(), ws).Return([]uuid.UUID{b}, nil)

	svc := duty.NewService(repo)

	defs, err := svc.Definitions(context.Background(), ws)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, a.String(), defs[0].ID)
	assert.True(t, defs[0].IsDefault)

	selected, err := svc.SelectedLedgerIDs(context.Background(), ws)
	require.NoError(t, err)
	assert.Equal(t, []string{b.String()}, selected)

	seeded := document.SeedDuties(defs, selected)
	assert.Len(t, seeded, 2)

	t.Run("ListError", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		repo := duty.NewMockRepository(ctrl)
		repo.EXPECT().ListDefinitions(gomock.Any(), ws).Return(nil, errors.New("db error"))

		_, err := duty.NewService(repo).Definitions(context.Background(), ws)
		assert.Error(t, err)
	})
}
