package handler

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/mocks"
)

func playerRouter(svc *mocks.MockPlayerService) http.Handler {
	h := NewPlayerHandler(svc)
	r := chi.NewRouter()
	r.Post("/players", h.HandleRegister)
	r.Get("/players/{playerID}", h.HandleGet)
	r.Post("/players/{playerID}/grant", h.HandleGrant)
	return r
}

func TestPlayerHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		setup      func(*mocks.MockPlayerService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "Success",
			body: RegisterPlayerRequest{Username: "alice", InitialBalance: 5000},
			setup: func(m *mocks.MockPlayerService) {
				m.On("Register", mock.Anything, "alice", int64(5000)).
					Return(&domain.Player{ID: uuid.New(), Username: "alice", Balance: 5000}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"username":"alice"`,
		},
		{
			name:       "Missing username",
			body:       RegisterPlayerRequest{InitialBalance: 10},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"username":"This field is required"`,
		},
		{
			name:       "Negative balance",
			body:       RegisterPlayerRequest{Username: "bob", InitialBalance: -1},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Must be at least 0",
		},
		{
			name:       "Unknown field",
			body:       `{"username":"bob","admin":true}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   ErrMsgInvalidRequest,
		},
		{
			name: "Duplicate username",
			body: RegisterPlayerRequest{Username: "alice"},
			setup: func(m *mocks.MockPlayerService) {
				m.On("Register", mock.Anything, "alice", int64(0)).Return(nil, domain.ErrInvalidInput)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   ErrMsgInvalidInputError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockPlayerService(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			w := do(t, playerRouter(svc), http.MethodPost, "/players", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestPlayerHandler_Get(t *testing.T) {
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewMockPlayerService(t)
		svc.On("Get", mock.Anything, id).Return(&domain.PlayerSummary{
			Player:            domain.Player{ID: id, Balance: 700},
			Mileage:           12,
			ClaimedMilestones: []int64{10},
		}, nil)

		w := do(t, playerRouter(svc), http.MethodGet, "/players/"+id.String(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		got := decode[domain.PlayerSummary](t, w)
		assert.Equal(t, int64(700), got.Balance)
		assert.Equal(t, int64(12), got.Mileage)
	})

	t.Run("Bad id", func(t *testing.T) {
		svc := mocks.NewMockPlayerService(t)
		w := do(t, playerRouter(svc), http.MethodGet, "/players/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidPlayerID)
	})

	t.Run("Not found", func(t *testing.T) {
		svc := mocks.NewMockPlayerService(t)
		svc.On("Get", mock.Anything, id).Return(nil, domain.ErrPlayerNotFound)

		w := do(t, playerRouter(svc), http.MethodGet, "/players/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPlayerHandler_Grant(t *testing.T) {
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewMockPlayerService(t)
		svc.On("Grant", mock.Anything, id, int64(-400)).Return(int64(1200), nil)

		w := do(t, playerRouter(svc), http.MethodPost, "/players/"+id.String()+"/grant", GrantRequest{Amount: -400})

		assert.Equal(t, http.StatusOK, w.Code)
		got := decode[BalanceResponse](t, w)
		assert.Equal(t, int64(1200), got.Balance)
		assert.Equal(t, "Balance is now 1,200", got.Message)
	})

	t.Run("Zero amount rejected", func(t *testing.T) {
		svc := mocks.NewMockPlayerService(t)
		w := do(t, playerRouter(svc), http.MethodPost, "/players/"+id.String()+"/grant", GrantRequest{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Overdraw", func(t *testing.T) {
		svc := mocks.NewMockPlayerService(t)
		svc.On("Grant", mock.Anything, id, int64(-9999)).Return(int64(0), domain.ErrInsufficientFunds)

		w := do(t, playerRouter(svc), http.MethodPost, "/players/"+id.String()+"/grant", GrantRequest{Amount: -9999})

		assert.Equal(t, http.StatusPaymentRequired, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNotEnoughPointsError)
	})
}
