package player

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/internal/logger"
	"github.com/osse101/RewardEngine_Go/internal/repository"
)

// Service defines the interface for player wallets
type Service interface {
	Register(ctx context.Context, username string, initialBalance int64) (*domain.Player, error)
	Get(ctx context.Context, playerID uuid.UUID) (*domain.PlayerSummary, error)
	// Grant adds amount (or removes it when negative) and returns the new balance.
	Grant(ctx context.Context, playerID uuid.UUID, amount int64) (int64, error)
}

type service struct {
	repo  repository.Player
	retry repository.RetryPolicy
}

// NewService creates a new player service
func NewService(repo repository.Player, retry repository.RetryPolicy) Service {
	return &service{repo: repo, retry: retry}
}

func (s *service) Register(ctx context.Context, username string, initialBalance int64) (*domain.Player, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUsernameRequired)
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return nil, fmt.Errorf("%w: "+ErrMsgUsernameTooLong, domain.ErrInvalidInput, MaxUsernameLength)
	}
	if initialBalance < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNegativeBalance)
	}

	p := &domain.Player{ID: uuid.New(), Username: username, Balance: initialBalance}
	if err := s.repo.CreatePlayer(ctx, p); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreatePlayer, err)
	}
	logger.FromContext(ctx).Info(LogMsgPlayerRegistered, "player_id", p.ID, "username", p.Username)
	return p, nil
}

func (s *service) Get(ctx context.Context, playerID uuid.UUID) (*domain.PlayerSummary, error) {
	if playerID == uuid.Nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPlayerIDRequired)
	}
	p, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetPlayer, err)
	}
	m, err := s.repo.GetMileage(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetMileage, err)
	}

	claimed := m.ClaimedMilestones
	if claimed == nil {
		claimed = []int64{}
	}
	return &domain.PlayerSummary{Player: *p, Mileage: m.Count, ClaimedMilestones: claimed}, nil
}

func (s *service) Grant(ctx context.Context, playerID uuid.UUID, amount int64) (int64, error) {
	if playerID == uuid.Nil {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPlayerIDRequired)
	}
	if amount == 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgZeroGrant)
	}

	balance, err := repository.WithRetry(ctx, s.retry, OpGrant, func(ctx context.Context) (int64, error) {
		tx, err := s.repo.BeginWalletTx(ctx)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
		}
		defer repository.SafeRollback(ctx, tx)

		if _, err := tx.GetPlayerForUpdate(ctx, playerID); err != nil {
			return 0, fmt.Errorf("%s: %w", ErrContextFailedToLockPlayer, err)
		}
		balance, err := tx.AdjustBalance(ctx, playerID, amount)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", ErrContextFailedToAdjust, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return 0, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
		}
		return balance, nil
	})
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info(LogMsgBalanceGranted, "player_id", playerID, "amount", amount, "balance", balance)
	return balance, nil
}
