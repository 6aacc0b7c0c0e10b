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

// drawOutcome carries what a committed draw transaction produced.
type drawOutcome struct {
	response *domain.DrawResponse
	draws    []event.DrawPayloadV1
}

// Draw opens one pack. Free packs skip the balance check but are limited to one
// per player per UTC day.
func (s *service) Draw(ctx context.Context, playerID uuid.UUID, packType string) (*domain.DrawResponse, error) {
	return s.draw(ctx, OpDraw, playerID, packType, 1)
}

// DrawTen opens a paid pack ten times against a single debit of ten times its cost.
func (s *service) DrawTen(ctx context.Context, playerID uuid.UUID, packType string) (*domain.DrawResponse, error) {
	return s.draw(ctx, OpDrawTen, playerID, packType, domain.DrawTenCount)
}

func (s *service) draw(ctx context.Context, op string, playerID uuid.UUID, packType string, count int) (*domain.DrawResponse, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDrawCalled, "player_id", playerID, "pack", packType, "count", count)

	if err := validatePlayer(playerID); err != nil {
		return nil, err
	}
	if packType == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPackTypeRequired)
	}

	// One snapshot for the whole operation, including retries.
	cat := s.configs.Current()
	pack, err := cat.Pack(packType)
	if err != nil {
		return nil, err
	}
	if pack.Free && count > 1 {
		return nil, domain.ErrFreePackNotBatchable
	}

	outcome, err := repository.WithRetry(ctx, s.retry, op, func(ctx context.Context) (*drawOutcome, error) {
		return s.executeDrawTx(ctx, cat, playerID, pack, count)
	})
	if err != nil {
		return nil, err
	}

	event.Publish(ctx, s.eventBus, event.NewDrawCompletedEvent(outcome.draws))
	log.Info(LogMsgDrawCompleted,
		"player_id", playerID,
		"pack", packType,
		"count", count,
		"refund", outcome.response.TotalRefund,
		"balance", outcome.response.Balance)
	return outcome.response, nil
}

// executeDrawTx runs one attempt: lock wallet, pay (or claim the free draw),
// open, credit refunds, bump mileage and write the audit rows.
func (s *service) executeDrawTx(ctx context.Context, cat *rewardconfig.Catalog, playerID uuid.UUID, pack *rewardconfig.Pack, count int) (*drawOutcome, error) {
	tx, err := s.repo.BeginGachaTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLockPlayer, err)
	}
	balance := player.Balance

	cost := pack.Cost * int64(count)
	if pack.Free {
		claimed, err := tx.ClaimFreeDraw(ctx, playerID, pack.Type, s.now())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToClaimFreeDraw, err)
		}
		if !claimed {
			return nil, domain.ErrAlreadyClaimedToday
		}
		cost = 0
	} else if cost > 0 {
		if balance, err = tx.AdjustBalance(ctx, playerID, -cost); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToDebit, err)
		}
	}

	opening, err := s.granter.OpenPack(ctx, tx, cat, playerID, pack, count, domain.DrawSourceGacha, !pack.Free)
	if err != nil {
		return nil, err
	}

	if opening.TotalRefund > 0 {
		if balance, err = tx.AdjustBalance(ctx, playerID, opening.TotalRefund); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToCredit, err)
		}
	}

	counter, err := tx.GetMileageForUpdate(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdateMileage, err)
	}
	mileage := counter.Count
	if !pack.Free {
		if mileage, err = tx.IncrementMileage(ctx, playerID, int64(count)); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdateMileage, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	return &drawOutcome{
		response: &domain.DrawResponse{
			PackType:    pack.Type,
			Results:     opening.Results,
			Cost:        cost,
			TotalRefund: opening.TotalRefund,
			Balance:     balance,
			Mileage:     mileage,
		},
		draws: opening.Draws,
	}, nil
}
