package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/RewardEngine_Go/internal/logger"
	"github.com/osse101/RewardEngine_Go/internal/rewardconfig"
)

// ConfigReloader re-reads the reward configuration.
type ConfigReloader interface {
	Reload(ctx context.Context) (*rewardconfig.Catalog, error)
}

// ReloadConfigResponse reports the catalog now in effect.
type ReloadConfigResponse struct {
	Message  string    `json:"message"`
	LoadedAt time.Time `json:"loaded_at"`
	Packs    int       `json:"packs"`
	Items    int       `json:"items"`
	Issues   []string  `json:"issues"`
}

// HandleReloadConfig reloads the reward configuration (admin only)
// @Summary Reload reward configuration
// @Description Re-reads the reward file. On failure the previous configuration stays active.
// @Tags admin
// @Produce json
// @Success 200 {object} ReloadConfigResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/config/reload [post]
// @Security AdminKeyAuth
func HandleReloadConfig(reloader ConfigReloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		log.Info("Reloading reward configuration")

		cat, err := reloader.Reload(ctx)
		if err != nil {
			log.Error("Failed to reload reward configuration", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgReloadConfigFailed)
			return
		}

		issues := make([]string, 0, len(cat.Issues()))
		for _, issue := range cat.Issues() {
			issues = append(issues, issue.Error())
		}

		log.Info("Reward configuration reloaded", "issues", len(issues))
		respondJSON(w, http.StatusOK, ReloadConfigResponse{
			Message:  MsgConfigReloaded,
			LoadedAt: cat.LoadedAt(),
			Packs:    len(cat.Packs()),
			Items:    len(cat.Items()),
			Issues:   issues,
		})
	}
}
