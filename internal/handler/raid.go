package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/internal/raid"
)

// AttackRequest spends one raid attempt.
type AttackRequest struct {
	PlayerID uuid.UUID `json:"player_id" validate:"required"`
}

// StartRaidRequest opens a raid (admin only).
type StartRaidRequest struct {
	Name       string  `json:"name" validate:"required,max=100"`
	MaxHP      int64   `json:"max_hp" validate:"gt=0"`
	Multiplier float64 `json:"multiplier" validate:"gt=0"`
	RewardPool *int64  `json:"reward_pool,omitempty" validate:"omitempty,min=0"`
}

// AttackHTTPResponse is an attack outcome with a readable summary.
type AttackHTTPResponse struct {
	*domain.AttackResult
	Message string `json:"message"`
}

// RaidEndHTTPResponse is a raid settlement with a readable summary.
type RaidEndHTTPResponse struct {
	*domain.RaidEndResult
	Message string `json:"message"`
}

// LeaderboardResponse is the live damage ranking.
type LeaderboardResponse struct {
	Entries []domain.LeaderboardEntry `json:"entries"`
}

// RaidHandler serves the raid boss.
type RaidHandler struct {
	service raid.Service
}

// NewRaidHandler creates a RaidHandler.
func NewRaidHandler(service raid.Service) *RaidHandler {
	return &RaidHandler{service: service}
}

// HandleGetRaid returns the active raid
// @Summary Get active raid
// @Tags raid
// @Produce json
// @Success 200 {object} domain.RaidStatus
// @Failure 404 {object} ErrorResponse
// @Router /raid [get]
// @Security ApiKeyAuth
func (h *RaidHandler) HandleGetRaid(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.GetRaid(r.Context())
	if err != nil {
		respondServiceError(w, r, "Get raid", err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}

// HandleAttack attacks the active raid boss
// @Summary Attack raid boss
// @Tags raid
// @Accept json
// @Produce json
// @Param request body AttackRequest true "Attack"
// @Success 200 {object} AttackHTTPResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /raid/attack [post]
// @Security ApiKeyAuth
func (h *RaidHandler) HandleAttack(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Raid attack", http.StatusOK,
		func(ctx context.Context, req AttackRequest) (AttackHTTPResponse, error) {
			res, err := h.service.Attack(ctx, req.PlayerID)
			if err != nil {
				return AttackHTTPResponse{}, err
			}
			return AttackHTTPResponse{
				AttackResult: res,
				Message:      fmt.Sprintf(MsgAttackSummary, formatPoints(res.AppliedDamage), formatPoints(res.RemainingHP)),
			}, nil
		})
}

// HandleLeaderboard returns the damage ranking
// @Summary Raid leaderboard
// @Tags raid
// @Produce json
// @Param limit query int false "Entries to return (max 100)"
// @Success 200 {object} LeaderboardResponse
// @Failure 404 {object} ErrorResponse
// @Router /raid/leaderboard [get]
// @Security ApiKeyAuth
func (h *RaidHandler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit, ok := limitFromQuery(w, r)
	if !ok {
		return
	}

	entries, err := h.service.Leaderboard(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, "Raid leaderboard", err)
		return
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	respondJSON(w, http.StatusOK, LeaderboardResponse{Entries: entries})
}

// HandleStartRaid opens a raid (admin only)
// @Summary Start raid
// @Tags admin
// @Accept json
// @Produce json
// @Param request body StartRaidRequest true "Raid"
// @Success 201 {object} domain.RaidBoss
// @Failure 409 {object} ErrorResponse
// @Router /admin/raid/start [post]
// @Security AdminKeyAuth
func (h *RaidHandler) HandleStartRaid(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Start raid", http.StatusCreated,
		func(ctx context.Context, req StartRaidRequest) (*domain.RaidBoss, error) {
			return h.service.StartRaid(ctx, raid.StartRequest{
				Name:       req.Name,
				MaxHP:      req.MaxHP,
				Multiplier: req.Multiplier,
				RewardPool: req.RewardPool,
			})
		})
}

// HandleEndRaid settles the active raid (admin only)
// @Summary End raid
// @Tags admin
// @Produce json
// @Success 200 {object} RaidEndHTTPResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/raid/end [post]
// @Security AdminKeyAuth
func (h *RaidHandler) HandleEndRaid(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.EndRaid(r.Context())
	if err != nil {
		respondServiceError(w, r, "End raid", err)
		return
	}
	respondJSON(w, http.StatusOK, RaidEndHTTPResponse{
		RaidEndResult: res,
		Message:       fmt.Sprintf(MsgRaidEndSummary, formatPoints(res.Distributed), len(res.Rewards)),
	})
}
