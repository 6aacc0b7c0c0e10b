package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/internal/lottery"
)

// PickRequest buys a ticket and reveals a cell.
type PickRequest struct {
	PlayerID uuid.UUID `json:"player_id" validate:"required"`
	Cell     int       `json:"cell" validate:"required"`
}

// PickHTTPResponse is a pick outcome with a readable summary.
type PickHTTPResponse struct {
	*domain.PickResult
	Message string `json:"message"`
}

// LotteryHandler serves the 7x7 board.
type LotteryHandler struct {
	service lottery.Service
}

// NewLotteryHandler creates a LotteryHandler.
func NewLotteryHandler(service lottery.Service) *LotteryHandler {
	return &LotteryHandler{service: service}
}

// HandleGetBoard returns the board without the top cell position
// @Summary Get lottery board
// @Tags lottery
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} domain.LotteryBoardView
// @Failure 503 {object} ErrorResponse
// @Router /lottery/board [get]
// @Security ApiKeyAuth
func (h *LotteryHandler) HandleGetBoard(w http.ResponseWriter, r *http.Request) {
	raw, ok := GetQueryParam(r, w, "player_id")
	if !ok {
		return
	}
	playerID, ok := parsePlayerID(w, r, raw)
	if !ok {
		return
	}

	view, err := h.service.GetBoard(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "Get lottery board", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandlePick reveals a cell
// @Summary Pick a cell
// @Tags lottery
// @Accept json
// @Produce json
// @Param request body PickRequest true "Pick"
// @Success 200 {object} PickHTTPResponse
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /lottery/pick [post]
// @Security ApiKeyAuth
func (h *LotteryHandler) HandlePick(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Pick cell", http.StatusOK,
		func(ctx context.Context, req PickRequest) (PickHTTPResponse, error) {
			res, err := h.service.Pick(ctx, req.PlayerID, req.Cell)
			if err != nil {
				return PickHTTPResponse{}, err
			}
			msg := fmt.Sprintf(MsgPickSummary, res.Cell, displayGrade(res.Grade))
			if res.BoardWasReset {
				msg += MsgPickResetNote
			}
			return PickHTTPResponse{PickResult: res, Message: msg}, nil
		})
}
