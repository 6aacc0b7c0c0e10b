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

func lotteryRouter(svc *mocks.MockLotteryService) http.Handler {
	h := NewLotteryHandler(svc)
	r := chi.NewRouter()
	r.Get("/lottery/board", h.HandleGetBoard)
	r.Post("/lottery/pick", h.HandlePick)
	return r
}

func TestLotteryHandler_GetBoard(t *testing.T) {
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewMockLotteryService(t)
		svc.On("GetBoard", mock.Anything, id).Return(&domain.LotteryBoardView{
			ID:          domain.LotteryGlobalBoard,
			TicketPrice: 100,
			Cells:       []domain.LotteryCell{{Number: 1}, {Number: 2, Revealed: true, Grade: "B"}},
		}, nil)

		w := do(t, lotteryRouter(svc), http.MethodGet, "/lottery/board?player_id="+id.String(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		got := decode[domain.LotteryBoardView](t, w)
		assert.Len(t, got.Cells, 2)
		assert.NotContains(t, w.Body.String(), "top")
	})

	t.Run("Missing player", func(t *testing.T) {
		svc := mocks.NewMockLotteryService(t)
		w := do(t, lotteryRouter(svc), http.MethodGet, "/lottery/board", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Missing player_id query parameter")
	})

	t.Run("Lottery disabled", func(t *testing.T) {
		svc := mocks.NewMockLotteryService(t)
		svc.On("GetBoard", mock.Anything, id).Return(nil, domain.ErrInvalidConfiguration)

		w := do(t, lotteryRouter(svc), http.MethodGet, "/lottery/board?player_id="+id.String(), nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestLotteryHandler_Pick(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		body       interface{}
		setup      func(*mocks.MockLotteryService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "Top grade resets board",
			body: PickRequest{PlayerID: id, Cell: 25},
			setup: func(m *mocks.MockLotteryService) {
				m.On("Pick", mock.Anything, id, 25).Return(&domain.PickResult{
					Cell: 25, Grade: "SSR", BoardWasReset: true, Reward: domain.PointsReward(10),
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "Cell 25 revealed grade SSR, the board has been reset",
		},
		{
			name: "Already revealed",
			body: PickRequest{PlayerID: id, Cell: 3},
			setup: func(m *mocks.MockLotteryService) {
				m.On("Pick", mock.Anything, id, 3).Return(nil, domain.ErrAlreadyRevealed)
			},
			wantStatus: http.StatusConflict,
			wantBody:   ErrMsgAlreadyRevealedError,
		},
		{
			name: "Out of range",
			body: PickRequest{PlayerID: id, Cell: 50},
			setup: func(m *mocks.MockLotteryService) {
				m.On("Pick", mock.Anything, id, 50).Return(nil, domain.ErrInvalidCell)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   ErrMsgInvalidCellError,
		},
		{
			name:       "Missing cell",
			body:       PickRequest{PlayerID: id},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"cell":"This field is required"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockLotteryService(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			w := do(t, lotteryRouter(svc), http.MethodPost, "/lottery/pick", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
