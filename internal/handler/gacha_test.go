package handler

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/mocks"
)

func gachaRouter(svc *mocks.MockGachaService) http.Handler {
	h := NewGachaHandler(svc)
	r := chi.NewRouter()
	r.Get("/gacha/packs", h.HandleListPacks)
	r.Post("/gacha/draw", h.HandleDraw)
	r.Post("/gacha/draw-ten", h.HandleDrawTen)
	r.Post("/gacha/mileage/claim", h.HandleClaimMileage)
	r.Get("/gacha/collection/{playerID}", h.HandleGetCollection)
	return r
}

func TestGachaHandler_ListPacks(t *testing.T) {
	t.Run("Without player", func(t *testing.T) {
		svc := mocks.NewMockGachaService(t)
		svc.On("ListPacks", mock.Anything, uuid.Nil).Return([]domain.PackInfo{{Type: "standard", Cost: 1000}}, nil)

		w := do(t, gachaRouter(svc), http.MethodGet, "/gacha/packs", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		got := decode[PacksResponse](t, w)
		require.Len(t, got.Packs, 1)
		assert.Equal(t, "standard", got.Packs[0].Type)
	})

	t.Run("With player", func(t *testing.T) {
		id := uuid.New()
		svc := mocks.NewMockGachaService(t)
		svc.On("ListPacks", mock.Anything, id).Return(nil, nil)

		w := do(t, gachaRouter(svc), http.MethodGet, "/gacha/packs?player_id="+id.String(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"packs":[]}`, w.Body.String())
	})

	t.Run("Bad player id", func(t *testing.T) {
		svc := mocks.NewMockGachaService(t)
		w := do(t, gachaRouter(svc), http.MethodGet, "/gacha/packs?player_id=42", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGachaHandler_Draw(t *testing.T) {
	id := uuid.New()
	resp := &domain.DrawResponse{
		PackType: "standard",
		Cost:     10000,
		Results: []domain.DrawResult{
			{Tier: domain.TierCommon, IsDuplicate: true, Refund: 500},
			{Tier: domain.TierRare},
		},
		TotalRefund: 500,
		Balance:     1500,
		Mileage:     10,
	}

	tests := []struct {
		name       string
		path       string
		body       interface{}
		setup      func(*mocks.MockGachaService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "Draw ten",
			path: "/gacha/draw-ten",
			body: DrawRequest{PlayerID: id, PackType: "standard"},
			setup: func(m *mocks.MockGachaService) {
				m.On("DrawTen", mock.Anything, id, "standard").Return(resp, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "Drew 2 card(s) for 10,000 points, 1 duplicate(s) refunded 500 points",
		},
		{
			name: "Single draw",
			path: "/gacha/draw",
			body: DrawRequest{PlayerID: id, PackType: "free"},
			setup: func(m *mocks.MockGachaService) {
				m.On("Draw", mock.Anything, id, "free").Return(&domain.DrawResponse{PackType: "free"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"pack_type":"free"`,
		},
		{
			name: "Insufficient funds",
			path: "/gacha/draw",
			body: DrawRequest{PlayerID: id, PackType: "standard"},
			setup: func(m *mocks.MockGachaService) {
				m.On("Draw", mock.Anything, id, "standard").Return(nil, domain.ErrInsufficientFunds)
			},
			wantStatus: http.StatusPaymentRequired,
			wantBody:   ErrMsgNotEnoughPointsError,
		},
		{
			name: "Free draw used",
			path: "/gacha/draw",
			body: DrawRequest{PlayerID: id, PackType: "free"},
			setup: func(m *mocks.MockGachaService) {
				m.On("Draw", mock.Anything, id, "free").Return(nil, domain.ErrAlreadyClaimedToday)
			},
			wantStatus: http.StatusConflict,
			wantBody:   ErrMsgAlreadyClaimedTodayError,
		},
		{
			name: "Free pack batch",
			path: "/gacha/draw-ten",
			body: DrawRequest{PlayerID: id, PackType: "free"},
			setup: func(m *mocks.MockGachaService) {
				m.On("DrawTen", mock.Anything, id, "free").Return(nil, domain.ErrFreePackNotBatchable)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   ErrMsgFreePackBatchError,
		},
		{
			name: "Disabled pack",
			path: "/gacha/draw",
			body: DrawRequest{PlayerID: id, PackType: "broken"},
			setup: func(m *mocks.MockGachaService) {
				m.On("Draw", mock.Anything, id, "broken").Return(nil, domain.ErrInvalidConfiguration)
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   ErrMsgFeatureUnavailableError,
		},
		{
			name:       "Missing pack type",
			path:       "/gacha/draw",
			body:       DrawRequest{PlayerID: id},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"pack_type":"This field is required"`,
		},
		{
			name:       "Malformed player id",
			path:       "/gacha/draw",
			body:       `{"player_id":"nope","pack_type":"standard"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   ErrMsgInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockGachaService(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			w := do(t, gachaRouter(svc), http.MethodPost, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestGachaHandler_ClaimMileage(t *testing.T) {
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewMockGachaService(t)
		svc.On("ClaimMileage", mock.Anything, id, int64(10)).Return(&domain.MileageClaimResponse{
			Milestone: 10,
			Reward:    domain.PointsReward(1000),
			Balance:   1000,
			Mileage:   10,
		}, nil)

		w := do(t, gachaRouter(svc), http.MethodPost, "/gacha/mileage/claim", ClaimMileageRequest{PlayerID: id, Milestone: 10})

		assert.Equal(t, http.StatusOK, w.Code)
		got := decode[domain.MileageClaimResponse](t, w)
		assert.Equal(t, int64(1000), got.Reward.Points)
	})

	t.Run("Not eligible", func(t *testing.T) {
		svc := mocks.NewMockGachaService(t)
		svc.On("ClaimMileage", mock.Anything, id, int64(50)).Return(nil, domain.ErrNotEligible)

		w := do(t, gachaRouter(svc), http.MethodPost, "/gacha/mileage/claim", ClaimMileageRequest{PlayerID: id, Milestone: 50})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Non-positive milestone", func(t *testing.T) {
		svc := mocks.NewMockGachaService(t)
		w := do(t, gachaRouter(svc), http.MethodPost, "/gacha/mileage/claim", ClaimMileageRequest{PlayerID: id})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Must be greater than 0")
	})
}

func TestGachaHandler_GetCollection(t *testing.T) {
	id := uuid.New()
	svc := mocks.NewMockGachaService(t)
	svc.On("GetCollection", mock.Anything, id).Return([]domain.CollectionEntry{
		{Item: domain.Item{InternalName: "icon_founder"}, Count: 2},
	}, nil)

	w := do(t, gachaRouter(svc), http.MethodGet, "/gacha/collection/"+id.String(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	got := decode[CollectionResponse](t, w)
	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(2), got.Items[0].Count)
	assert.Equal(t, id.String(), got.PlayerID)
}
