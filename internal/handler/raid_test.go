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
	"github.com/osse101/RewardEngine_Go/internal/raid"
	"github.com/osse101/RewardEngine_Go/mocks"
)

func raidRouter(svc *mocks.MockRaidService) http.Handler {
	h := NewRaidHandler(svc)
	r := chi.NewRouter()
	r.Get("/raid", h.HandleGetRaid)
	r.Post("/raid/attack", h.HandleAttack)
	r.Get("/raid/leaderboard", h.HandleLeaderboard)
	r.Post("/admin/raid/start", h.HandleStartRaid)
	r.Post("/admin/raid/end", h.HandleEndRaid)
	return r
}

func TestRaidHandler_GetRaid(t *testing.T) {
	t.Run("Active", func(t *testing.T) {
		svc := mocks.NewMockRaidService(t)
		svc.On("GetRaid", mock.Anything).Return(&domain.RaidStatus{
			Raid:        domain.RaidBoss{ID: 3, Name: "Behemoth", MaxHP: 1000, CurrentHP: 400, Active: true},
			TotalDamage: 600,
		}, nil)

		w := do(t, raidRouter(svc), http.MethodGet, "/raid", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		got := decode[domain.RaidStatus](t, w)
		assert.Equal(t, int64(400), got.Raid.CurrentHP)
	})

	t.Run("None active", func(t *testing.T) {
		svc := mocks.NewMockRaidService(t)
		svc.On("GetRaid", mock.Anything).Return(nil, domain.ErrNoActiveRaid)

		w := do(t, raidRouter(svc), http.MethodGet, "/raid", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNoActiveRaidError)
	})
}

func TestRaidHandler_Attack(t *testing.T) {
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewMockRaidService(t)
		svc.On("Attack", mock.Anything, id).Return(&domain.AttackResult{
			Won: true, Damage: 1500, AppliedDamage: 1500, RemainingHP: 98500, AttemptsLeft: 9,
		}, nil)

		w := do(t, raidRouter(svc), http.MethodPost, "/raid/attack", AttackRequest{PlayerID: id})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Dealt 1,500 damage, 98,500 HP remaining")
		got := decode[domain.AttackResult](t, w)
		assert.Equal(t, 9, got.AttemptsLeft)
	})

	t.Run("Attempts exhausted", func(t *testing.T) {
		svc := mocks.NewMockRaidService(t)
		svc.On("Attack", mock.Anything, id).Return(nil, domain.ErrAttemptsExhausted)

		w := do(t, raidRouter(svc), http.MethodPost, "/raid/attack", AttackRequest{PlayerID: id})

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})

	t.Run("Missing player", func(t *testing.T) {
		svc := mocks.NewMockRaidService(t)
		w := do(t, raidRouter(svc), http.MethodPost, "/raid/attack", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRaidHandler_Leaderboard(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantStatus int
	}{
		{"Default limit", "", 0, http.StatusOK},
		{"Explicit limit", "?limit=5", 5, http.StatusOK},
		{"Zero limit", "?limit=0", -1, http.StatusBadRequest},
		{"Garbage limit", "?limit=ten", -1, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockRaidService(t)
			if tt.wantLimit >= 0 {
				svc.On("Leaderboard", mock.Anything, tt.wantLimit).Return([]domain.LeaderboardEntry{
					{Rank: 1, PlayerID: uuid.New(), Damage: 700},
				}, nil)
			}

			w := do(t, raidRouter(svc), http.MethodGet, "/raid/leaderboard"+tt.query, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				got := decode[LeaderboardResponse](t, w)
				require.Len(t, got.Entries, 1)
				assert.Equal(t, int64(700), got.Entries[0].Damage)
			}
		})
	}
}

func TestRaidHandler_StartRaid(t *testing.T) {
	t.Run("Default pool", func(t *testing.T) {
		svc := mocks.NewMockRaidService(t)
		svc.On("StartRaid", mock.Anything, mock.MatchedBy(func(req raid.StartRequest) bool {
			return req.Name == "Behemoth" && req.MaxHP == 100000 && req.Multiplier == 1.5 && req.RewardPool == nil
		})).Return(&domain.RaidBoss{ID: 1, Name: "Behemoth", MaxHP: 100000, CurrentHP: 100000, Active: true}, nil)

		w := do(t, raidRouter(svc), http.MethodPost, "/admin/raid/start",
			`{"name":"Behemoth","max_hp":100000,"multiplier":1.5}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Explicit pool", func(t *testing.T) {
		svc := mocks.NewMockRaidService(t)
		svc.On("StartRaid", mock.Anything, mock.MatchedBy(func(req raid.StartRequest) bool {
			return req.RewardPool != nil && *req.RewardPool == 0
		})).Return(&domain.RaidBoss{ID: 2}, nil)

		w := do(t, raidRouter(svc), http.MethodPost, "/admin/raid/start",
			`{"name":"Wisp","max_hp":10,"multiplier":1,"reward_pool":0}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Already active", func(t *testing.T) {
		svc := mocks.NewMockRaidService(t)
		svc.On("StartRaid", mock.Anything, mock.Anything).Return(nil, domain.ErrRaidAlreadyActive)

		w := do(t, raidRouter(svc), http.MethodPost, "/admin/raid/start",
			`{"name":"Behemoth","max_hp":100,"multiplier":1}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Invalid body", func(t *testing.T) {
		svc := mocks.NewMockRaidService(t)
		w := do(t, raidRouter(svc), http.MethodPost, "/admin/raid/start",
			`{"name":"Behemoth","max_hp":0,"multiplier":-1,"reward_pool":-5}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		fields := decode[ValidationErrorResponse](t, w).Fields
		assert.Contains(t, fields, "maxhp")
		assert.Contains(t, fields, "multiplier")
		assert.Contains(t, fields, "rewardpool")
	})
}

func TestRaidHandler_EndRaid(t *testing.T) {
	svc := mocks.NewMockRaidService(t)
	svc.On("EndRaid", mock.Anything).Return(&domain.RaidEndResult{
		Raid:        domain.RaidBoss{ID: 1},
		TotalDamage: 1000,
		Budget:      1000000,
		Distributed: 1000000,
		Rewards:     []domain.RaidReward{{Amount: 300000}, {Amount: 700000}},
	}, nil)

	w := do(t, raidRouter(svc), http.MethodPost, "/admin/raid/end", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Distributed 1,000,000 points to 2 contributor(s)")
}
