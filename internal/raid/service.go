package raid

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/internal/event"
	"github.com/osse101/RewardEngine_Go/internal/logger"
	"github.com/osse101/RewardEngine_Go/internal/repository"
	"github.com/osse101/RewardEngine_Go/internal/rewardconfig"
	"github.com/osse101/RewardEngine_Go/internal/weight"
)

// StartRequest describes a new raid. A nil RewardPool uses the configured default.
type StartRequest struct {
	Name       string
	MaxHP      int64
	Multiplier float64
	RewardPool *int64
}

// Ranking serves the live damage leaderboard for a raid.
type Ranking interface {
	Top(ctx context.Context, raidID int64, limit int) ([]domain.LeaderboardEntry, error)
}

// Service defines the interface for the raid pool
type Service interface {
	StartRaid(ctx context.Context, req StartRequest) (*domain.RaidBoss, error)
	Attack(ctx context.Context, playerID uuid.UUID) (*domain.AttackResult, error)
	// EndRaid distributes the reward pool and deactivates the raid.
	EndRaid(ctx context.Context) (*domain.RaidEndResult, error)
	GetRaid(ctx context.Context) (*domain.RaidStatus, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

type service struct {
	repo     repository.Raid
	configs  *rewardconfig.Store
	random   weight.RandomSource
	ranking  Ranking
	eventBus event.Bus
	retry    repository.RetryPolicy
	now      func() time.Time
}

// NewService creates a new raid service. ranking may be nil, in which case the
// leaderboard is read from the database.
func NewService(repo repository.Raid, configs *rewardconfig.Store, random weight.RandomSource, ranking Ranking,
	eventBus event.Bus, retry repository.RetryPolicy,
) Service {
	if random == nil {
		random = weight.DefaultSource()
	}
	return &service{
		repo:     repo,
		configs:  configs,
		random:   random,
		ranking:  ranking,
		eventBus: eventBus,
		retry:    retry,
		now:      time.Now,
	}
}

func (s *service) StartRaid(ctx context.Context, req StartRequest) (*domain.RaidBoss, error) {
	cfg, err := s.configs.Current().Raid()
	if err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNameRequired)
	}
	if req.MaxHP <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMaxHPMustBePositive)
	}
	multiplierBP := int64(math.Round(req.Multiplier * domain.MultiplierBasisPoints))
	if multiplierBP <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMultiplierMustBePositive)
	}
	pool := cfg.DefaultRewardPool
	if req.RewardPool != nil {
		pool = *req.RewardPool
	}
	if pool < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgRewardPoolNegative)
	}
	if !(domain.RaidBoss{RewardPool: pool, MultiplierBP: multiplierBP}).BudgetFits() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgRewardBudgetTooLarge)
	}

	raid, err := repository.WithRetry(ctx, s.retry, OpStartRaid, func(ctx context.Context) (*domain.RaidBoss, error) {
		tx, err := s.repo.BeginRaidTx(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
		}
		defer repository.SafeRollback(ctx, tx)

		active, err := tx.GetActiveRaidForUpdate(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadRaid, err)
		}
		if active != nil {
			return nil, domain.ErrRaidAlreadyActive
		}

		raid := &domain.RaidBoss{
			Name:         req.Name,
			MaxHP:        req.MaxHP,
			CurrentHP:    req.MaxHP,
			RewardPool:   pool,
			MultiplierBP: multiplierBP,
			Active:       true,
			StartedAt:    s.now().UTC(),
		}
		if err := tx.CreateRaid(ctx, raid); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateRaid, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
		}
		return raid, nil
	})
	if err != nil {
		return nil, err
	}

	event.Publish(ctx, s.eventBus, event.NewRaidStartedEvent(raid.ID, raid.Name))
	logger.FromContext(ctx).Info(LogMsgRaidStarted, "raid_id", raid.ID, "name", raid.Name,
		"max_hp", raid.MaxHP, "reward_pool", raid.RewardPool, "multiplier_bp", raid.MultiplierBP)
	return raid, nil
}

func (s *service) Attack(ctx context.Context, playerID uuid.UUID) (*domain.AttackResult, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgAttackCalled, "player_id", playerID)

	if playerID == uuid.Nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPlayerIDRequired)
	}
	cfg, err := s.configs.Current().Raid()
	if err != nil {
		return nil, err
	}

	res, err := repository.WithRetry(ctx, s.retry, OpAttack, func(ctx context.Context) (*domain.AttackResult, error) {
		return s.executeAttackTx(ctx, cfg, playerID)
	})
	if err != nil {
		return nil, err
	}

	event.Publish(ctx, s.eventBus, event.NewRaidAttackedEvent(res.RaidID, playerID, res.Won, res.AppliedDamage, res.TotalDamage))
	log.Info(LogMsgAttackResolved, "raid_id", res.RaidID, "player_id", playerID, "won", res.Won,
		"damage", res.Damage, "applied", res.AppliedDamage, "remaining_hp", res.RemainingHP)
	return res, nil
}

func (s *service) executeAttackTx(ctx context.Context, cfg *rewardconfig.Raid, playerID uuid.UUID) (*domain.AttackResult, error) {
	tx, err := s.repo.BeginRaidTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	raid, err := tx.GetActiveRaidForUpdate(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadRaid, err)
	}
	if raid == nil {
		return nil, domain.ErrNoActiveRaid
	}
	if _, err := tx.GetPlayerForUpdate(ctx, playerID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLockPlayer, err)
	}

	now := s.now().UTC()
	contrib, err := tx.GetContributionForUpdate(ctx, raid.ID, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadContribution, err)
	}
	if contrib == nil {
		contrib = &domain.RaidContribution{RaidID: raid.ID, PlayerID: playerID}
	}
	used := contrib.AttemptsOn(now)
	if used >= cfg.AttemptsPerDay {
		return nil, fmt.Errorf("%w: "+ErrMsgDailyCapReached, domain.ErrAttemptsExhausted, used, cfg.AttemptsPerDay)
	}

	tiers, err := tx.ListOwnedTiers(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadRoster, err)
	}
	power := rosterPower(tiers, cfg.TierPower, cfg.RosterSize)
	won := power >= cfg.AIPower

	dealt := float64(power) * weight.UniformFloat(s.random, cfg.WinMultiplierMin, cfg.WinMultiplierMax)
	if !won {
		dealt *= cfg.LossFraction
	}
	damage := int64(math.Round(dealt))
	applied := min(damage, raid.CurrentHP)

	if applied > 0 {
		raid.CurrentHP -= applied
		if err := tx.UpdateRaidHP(ctx, raid.ID, raid.CurrentHP); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdateHP, err)
		}
	}

	contrib.Damage += applied
	contrib.Attempts++
	contrib.DailyAttempts = used + 1
	contrib.AttemptDay = now
	if err := tx.SaveContribution(ctx, contrib); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSaveContribution, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	return &domain.AttackResult{
		RaidID:        raid.ID,
		Won:           won,
		PlayerPower:   power,
		AIPower:       cfg.AIPower,
		Damage:        damage,
		AppliedDamage: applied,
		RemainingHP:   raid.CurrentHP,
		TotalDamage:   contrib.Damage,
		AttemptsToday: contrib.DailyAttempts,
		AttemptsLeft:  cfg.AttemptsPerDay - contrib.DailyAttempts,
	}, nil
}

func (s *service) EndRaid(ctx context.Context) (*domain.RaidEndResult, error) {
	cfg, err := s.configs.Current().Raid()
	if err != nil {
		return nil, err
	}

	res, err := repository.WithRetry(ctx, s.retry, OpEndRaid, func(ctx context.Context) (*domain.RaidEndResult, error) {
		return s.executeEndTx(ctx, cfg.FloorReward)
	})
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	if len(res.Rewards) == 0 {
		log.Info(LogMsgNothingToDistribute, "raid_id", res.Raid.ID)
	}
	event.Publish(ctx, s.eventBus, event.NewRaidEndedEvent(res.Raid.ID, res.Raid.Name, res.Distributed, len(res.Rewards)))
	log.Info(LogMsgRaidEnded, "raid_id", res.Raid.ID, "total_damage", res.TotalDamage,
		"budget", res.Budget, "distributed", res.Distributed, "contributors", len(res.Rewards))
	return res, nil
}

func (s *service) executeEndTx(ctx context.Context, floorReward int64) (*domain.RaidEndResult, error) {
	tx, err := s.repo.BeginRaidTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	raid, err := tx.GetActiveRaidForUpdate(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadRaid, err)
	}
	if raid == nil {
		return nil, domain.ErrNoActiveRaid
	}

	contributions, err := tx.ListContributions(ctx, raid.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListContributors, err)
	}
	rewards, totalDamage := Distribute(*raid, contributions, floorReward)

	var distributed int64
	for _, r := range rewards {
		if _, err := tx.GetPlayerForUpdate(ctx, r.PlayerID); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToLockPlayer, err)
		}
		if _, err := tx.AdjustBalance(ctx, r.PlayerID, r.Amount); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreditReward, err)
		}
		distributed += r.Amount
	}
	if len(rewards) > 0 {
		if err := tx.RecordRaidRewards(ctx, rewards); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToRecordRewards, err)
		}
	}

	endedAt := s.now().UTC()
	if err := tx.EndRaid(ctx, raid.ID, endedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToEndRaid, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	raid.Active = false
	raid.EndedAt = &endedAt
	return &domain.RaidEndResult{
		Raid:        *raid,
		TotalDamage: totalDamage,
		Budget:      raid.Budget(),
		Distributed: distributed,
		Rewards:     rewards,
	}, nil
}

func (s *service) GetRaid(ctx context.Context) (*domain.RaidStatus, error) {
	raid, err := s.activeRaid(ctx)
	if err != nil {
		return nil, err
	}
	total, contributors, err := s.repo.GetRaidTotals(ctx, raid.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadTotals, err)
	}
	return &domain.RaidStatus{Raid: *raid, TotalDamage: total, Contributors: contributors}, nil
}

func (s *service) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	limit = min(limit, MaxLeaderboardLimit)

	raid, err := s.activeRaid(ctx)
	if err != nil {
		return nil, err
	}

	if s.ranking != nil {
		entries, err := s.ranking.Top(ctx, raid.ID, limit)
		if err == nil {
			return entries, nil
		}
		logger.FromContext(ctx).Warn(LogMsgRankingUnavailable, "raid_id", raid.ID, "error", err)
	}

	entries, err := s.repo.TopContributors(ctx, raid.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadLeaderboard, err)
	}
	return entries, nil
}

func (s *service) activeRaid(ctx context.Context) (*domain.RaidBoss, error) {
	raid, err := s.repo.GetActiveRaid(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadRaid, err)
	}
	if raid == nil {
		return nil, domain.ErrNoActiveRaid
	}
	return raid, nil
}
