package party_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/khata/internal/document"
	"github.com/MrJamesThe3rd/khata/internal/party"
)

func TestService_Ensure(t *testing.T) {
	ws := uuid.New()
	id := uuid.New()

	type args struct {
		name      string
		direction document.Direction
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *party.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "CreatesVendor",
			args: args{name: " Sharma Traders ", direction: document.DirectionPurchase},
			setupMock: func(m *party.MockRepository) {
				m.EXPECT().FindParty(gomock.Any(), ws, "Sharma Traders").Return(nil, party.ErrNotFound)
				m.EXPECT().CreateParty(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *party.Party) error {
						assert.Equal(t, "Sharma Traders", p.Name)
						assert.Equal(t, party.KindVendor, p.Kind)
						return nil
					})
			},
		},
		{
			name: "FlipsVendorToCustomer",
			args: args{name: "Mehta Stores", direction: document.DirectionSale},
			setupMock: func(m *party.MockRepository) {
				m.EXPECT().FindParty(gomock.Any(), ws, "Mehta Stores").
					Return(&party.Party{ID: id, Kind: party.KindVendor}, nil)
				m.EXPECT().UpdateKind(gomock.Any(), ws, id, party.KindCustomer).Return(nil)
			},
		},
		{
			name: "AlreadyRightKind",
			args: args{name: "Mehta Stores", direction: document.DirectionSale},
			setupMock: func(m *party.MockRepository) {
				m.EXPECT().FindParty(gomock.Any(), ws, "Mehta Stores").
					Return(&party.Party{ID: id, Kind: party.KindCustomer}, nil)
			},
		},
		{
			name: "BlankName",
			args: args{name: "   ", direction: document.DirectionSale},
		},
		{
			name: "LookupError",
			args: args{name: "X", direction: document.DirectionSale},
			setupMock: func(m *party.MockRepository) {
				m.EXPECT().FindParty(gomock.Any(), ws, "X").Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := party.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			err := party.NewService(repo).Ensure(context.Background(), ws, tt.args.name, tt.args.direction)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}
