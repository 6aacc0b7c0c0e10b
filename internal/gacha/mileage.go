package gacha

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/internal/event"
	"github.com/osse101/RewardEngine_Go/internal/logger"
	"github.com/osse101/RewardEngine_Go/internal/repository"
	"github.com/osse101/RewardEngine_Go/internal/rewardconfig"
)

type claimOutcome struct {
	response *domain.MileageClaimResponse
	draws    []event.DrawPayloadV1
}

// ClaimMileage credits the reward of a reached milestone once.
// Unknown, unreached and already claimed milestones are domain.ErrNotEligible.
func (s *service) ClaimMileage(ctx context.Context, playerID uuid.UUID, milestone int64) (*domain.MileageClaimResponse, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgMileageClaimCalled, "player_id", playerID, "milestone", milestone)

	if err := validatePlayer(playerID); err != nil {
		return nil, err
	}
	if milestone <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMilestoneMustBePositive)
	}

	cat := s.configs.Current()
	spec, ok, err := cat.Milestone(milestone)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: "+ErrMsgUnknownMilestone, domain.ErrNotEligible, milestone)
	}

	outcome, err := repository.WithRetry(ctx, s.retry, OpClaimMileage, func(ctx context.Context) (*claimOutcome, error) {
		return s.executeClaimTx(ctx, cat, playerID, milestone, spec)
	})
	if err != nil {
		return nil, err
	}

	event.Publish(ctx, s.eventBus, event.NewMileageClaimedEvent(playerID, milestone, string(spec.Type)))
	if len(outcome.draws) > 0 {
		event.Publish(ctx, s.eventBus, event.NewDrawCompletedEvent(outcome.draws))
	}
	log.Info(LogMsgMileageClaimed, "player_id", playerID, "milestone", milestone, "reward_type", spec.Type)
	return outcome.response, nil
}

func (s *service) executeClaimTx(ctx context.Context, cat *rewardconfig.Catalog, playerID uuid.UUID, milestone int64, spec rewardconfig.RewardSpec) (*claimOutcome, error) {
	tx, err := s.repo.BeginGachaTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLockPlayer, err)
	}

	counter, err := tx.GetMileageForUpdate(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdateMileage, err)
	}
	if counter.Count < milestone {
		return nil, fmt.Errorf("%w: "+ErrMsgMileageTooLow, domain.ErrNotEligible, counter.Count, milestone)
	}
	if counter.HasClaimed(milestone) {
		return nil, fmt.Errorf("%w: "+ErrMsgMilestoneClaimed, domain.ErrNotEligible, milestone)
	}

	granted, err := s.granter.Grant(ctx, tx, cat, playerID, spec, domain.DrawSourceGacha)
	if err != nil {
		return nil, err
	}

	if err := tx.MarkMilestoneClaimed(ctx, playerID, milestone); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToMarkMilestone, err)
	}

	balance := player.Balance
	if granted.Credit > 0 {
		if balance, err = tx.AdjustBalance(ctx, playerID, granted.Credit); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToCredit, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	out := &claimOutcome{
		response: &domain.MileageClaimResponse{
			Milestone: milestone,
			Reward:    granted.Reward,
			Balance:   balance,
			Mileage:   counter.Count,
		},
	}
	if granted.Opening != nil {
		out.draws = granted.Opening.Draws
	}
	return out, nil
}
