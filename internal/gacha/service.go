package gacha

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/internal/event"
	"github.com/osse101/RewardEngine_Go/internal/repository"
	"github.com/osse101/RewardEngine_Go/internal/rewardconfig"
)

// Service defines the interface for gacha operations
type Service interface {
	// ListPacks returns enabled packs. When playerID is set, free packs report
	// whether today's free draw was used.
	ListPacks(ctx context.Context, playerID uuid.UUID) ([]domain.PackInfo, error)
	Draw(ctx context.Context, playerID uuid.UUID, packType string) (*domain.DrawResponse, error)
	DrawTen(ctx context.Context, playerID uuid.UUID, packType string) (*domain.DrawResponse, error)
	ClaimMileage(ctx context.Context, playerID uuid.UUID, milestone int64) (*domain.MileageClaimResponse, error)
	GetCollection(ctx context.Context, playerID uuid.UUID) ([]domain.CollectionEntry, error)
}

type service struct {
	repo     repository.Gacha
	configs  *rewardconfig.Store
	granter  *Granter
	eventBus event.Bus
	retry    repository.RetryPolicy
	now      func() time.Time
}

// NewService creates a new gacha service
func NewService(repo repository.Gacha, configs *rewardconfig.Store, granter *Granter, eventBus event.Bus, retry repository.RetryPolicy) Service {
	return &service{
		repo:     repo,
		configs:  configs,
		granter:  granter,
		eventBus: eventBus,
		retry:    retry,
		now:      time.Now,
	}
}

func (s *service) ListPacks(ctx context.Context, playerID uuid.UUID) ([]domain.PackInfo, error) {
	cat := s.configs.Current()
	packs := cat.Packs()
	out := make([]domain.PackInfo, 0, len(packs))
	for _, p := range packs {
		info := p.Info()
		if p.Free && playerID != uuid.Nil {
			used, err := s.repo.HasClaimedFreeDraw(ctx, playerID, p.Type, s.now())
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ErrContextFailedToCheckFreeDraw, err)
			}
			info.FreeDrawUsedToday = used
		}
		out = append(out, info)
	}
	return out, nil
}

func (s *service) GetCollection(ctx context.Context, playerID uuid.UUID) ([]domain.CollectionEntry, error) {
	entries, err := s.repo.GetCollection(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetCollection, err)
	}
	return entries, nil
}

func validatePlayer(playerID uuid.UUID) error {
	if playerID == uuid.Nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPlayerIDRequired)
	}
	return nil
}
