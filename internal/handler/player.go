package handler

import (
	"context"
	"net/http"

	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/internal/logger"
	"github.com/osse101/RewardEngine_Go/internal/player"
)

// RegisterPlayerRequest creates a player wallet.
type RegisterPlayerRequest struct {
	Username       string `json:"username" validate:"required,max=64"`
	InitialBalance int64  `json:"initial_balance" validate:"min=0"`
}

// GrantRequest adjusts a balance; negative amounts debit.
type GrantRequest struct {
	Amount int64 `json:"amount" validate:"ne=0"`
}

// BalanceResponse reports a wallet balance after a change.
type BalanceResponse struct {
	PlayerID string `json:"player_id"`
	Balance  int64  `json:"balance"`
	Message  string `json:"message"`
}

// PlayerHandler serves player wallets.
type PlayerHandler struct {
	service player.Service
}

// NewPlayerHandler creates a PlayerHandler.
func NewPlayerHandler(service player.Service) *PlayerHandler {
	return &PlayerHandler{service: service}
}

// HandleRegister registers a player (admin only)
// @Summary Register player
// @Tags players
// @Accept json
// @Produce json
// @Param request body RegisterPlayerRequest true "Player"
// @Success 201 {object} domain.Player
// @Failure 400 {object} ErrorResponse
// @Router /players [post]
// @Security AdminKeyAuth
func (h *PlayerHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Register player", http.StatusCreated,
		func(ctx context.Context, req RegisterPlayerRequest) (*domain.Player, error) {
			return h.service.Register(ctx, req.Username, req.InitialBalance)
		})
}

// HandleGet returns balance and mileage
// @Summary Get player
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} domain.PlayerSummary
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID} [get]
// @Security ApiKeyAuth
func (h *PlayerHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	playerID, ok := playerIDFromURL(w, r)
	if !ok {
		return
	}

	summary, err := h.service.Get(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "Get player", err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// HandleGrant credits or debits a balance (admin only)
// @Summary Grant currency
// @Tags players
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body GrantRequest true "Amount"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse
// @Router /players/{playerID}/grant [post]
// @Security AdminKeyAuth
func (h *PlayerHandler) HandleGrant(w http.ResponseWriter, r *http.Request) {
	playerID, ok := playerIDFromURL(w, r)
	if !ok {
		return
	}

	var req GrantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Grant"); err != nil {
		return
	}

	balance, err := h.service.Grant(r.Context(), playerID, req.Amount)
	if err != nil {
		respondServiceError(w, r, "Grant", err)
		return
	}

	logger.FromContext(r.Context()).Info("Balance granted", "player_id", playerID, "amount", req.Amount)
	respondJSON(w, http.StatusOK, BalanceResponse{
		PlayerID: playerID.String(),
		Balance:  balance,
		Message:  "Balance is now " + formatPoints(balance),
	})
}
