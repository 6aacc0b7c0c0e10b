package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/internal/gacha"
)

// DrawRequest draws from a pack.
type DrawRequest struct {
	PlayerID uuid.UUID `json:"player_id" validate:"required"`
	PackType string    `json:"pack_type" validate:"required,max=64"`
}

// ClaimMileageRequest claims a mileage milestone.
type ClaimMileageRequest struct {
	PlayerID  uuid.UUID `json:"player_id" validate:"required"`
	Milestone int64     `json:"milestone" validate:"gt=0"`
}

// DrawHTTPResponse is a draw outcome with a readable summary.
type DrawHTTPResponse struct {
	*domain.DrawResponse
	Message string `json:"message"`
}

// PacksResponse lists the offered packs.
type PacksResponse struct {
	Packs []domain.PackInfo `json:"packs"`
}

// CollectionResponse lists a player's cards.
type CollectionResponse struct {
	PlayerID string                   `json:"player_id"`
	Items    []domain.CollectionEntry `json:"items"`
}

// GachaHandler serves pack draws, mileage and collections.
type GachaHandler struct {
	service gacha.Service
}

// NewGachaHandler creates a GachaHandler.
func NewGachaHandler(service gacha.Service) *GachaHandler {
	return &GachaHandler{service: service}
}

// HandleListPacks lists enabled packs
// @Summary List packs
// @Tags gacha
// @Produce json
// @Param player_id query string false "Report today's free draw for this player"
// @Success 200 {object} PacksResponse
// @Router /gacha/packs [get]
// @Security ApiKeyAuth
func (h *GachaHandler) HandleListPacks(w http.ResponseWriter, r *http.Request) {
	playerID, ok := playerIDFromQuery(w, r)
	if !ok {
		return
	}

	packs, err := h.service.ListPacks(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "List packs", err)
		return
	}
	if packs == nil {
		packs = []domain.PackInfo{}
	}
	respondJSON(w, http.StatusOK, PacksResponse{Packs: packs})
}

// HandleDraw draws one card
// @Summary Draw
// @Tags gacha
// @Accept json
// @Produce json
// @Param request body DrawRequest true "Draw"
// @Success 200 {object} DrawHTTPResponse
// @Failure 402 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /gacha/draw [post]
// @Security ApiKeyAuth
func (h *GachaHandler) HandleDraw(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Draw", http.StatusOK,
		func(ctx context.Context, req DrawRequest) (DrawHTTPResponse, error) {
			return wrapDraw(h.service.Draw(ctx, req.PlayerID, req.PackType))
		})
}

// HandleDrawTen draws ten cards for ten times the pack cost
// @Summary Draw ten
// @Tags gacha
// @Accept json
// @Produce json
// @Param request body DrawRequest true "Draw"
// @Success 200 {object} DrawHTTPResponse
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse
// @Router /gacha/draw-ten [post]
// @Security ApiKeyAuth
func (h *GachaHandler) HandleDrawTen(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Draw ten", http.StatusOK,
		func(ctx context.Context, req DrawRequest) (DrawHTTPResponse, error) {
			return wrapDraw(h.service.DrawTen(ctx, req.PlayerID, req.PackType))
		})
}

// HandleClaimMileage claims a milestone reward
// @Summary Claim mileage
// @Tags gacha
// @Accept json
// @Produce json
// @Param request body ClaimMileageRequest true "Claim"
// @Success 200 {object} domain.MileageClaimResponse
// @Failure 403 {object} ErrorResponse
// @Router /gacha/mileage/claim [post]
// @Security ApiKeyAuth
func (h *GachaHandler) HandleClaimMileage(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, "Claim mileage", http.StatusOK,
		func(ctx context.Context, req ClaimMileageRequest) (*domain.MileageClaimResponse, error) {
			return h.service.ClaimMileage(ctx, req.PlayerID, req.Milestone)
		})
}

// HandleGetCollection lists owned cards
// @Summary Get collection
// @Tags gacha
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} CollectionResponse
// @Failure 404 {object} ErrorResponse
// @Router /gacha/collection/{playerID} [get]
// @Security ApiKeyAuth
func (h *GachaHandler) HandleGetCollection(w http.ResponseWriter, r *http.Request) {
	playerID, ok := playerIDFromURL(w, r)
	if !ok {
		return
	}

	items, err := h.service.GetCollection(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "Get collection", err)
		return
	}
	if items == nil {
		items = []domain.CollectionEntry{}
	}
	respondJSON(w, http.StatusOK, CollectionResponse{PlayerID: playerID.String(), Items: items})
}

func wrapDraw(resp *domain.DrawResponse, err error) (DrawHTTPResponse, error) {
	if err != nil {
		return DrawHTTPResponse{}, err
	}
	dupes := 0
	for _, res := range resp.Results {
		if res.IsDuplicate {
			dupes++
		}
	}
	return DrawHTTPResponse{
		DrawResponse: resp,
		Message: fmt.Sprintf(MsgDrawSummary, len(resp.Results), formatPoints(resp.Cost),
			dupes, formatPoints(resp.TotalRefund)),
	}, nil
}
