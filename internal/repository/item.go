package repository

import (
	"context"

	"github.com/osse101/RewardEngine_Go/internal/domain"
)

// Item defines the interface for catalog persistence
type Item interface {
	GetAllItems(ctx context.Context) ([]domain.Item, error)
	GetItemByName(ctx context.Context, internalName string) (*domain.Item, error)
	// ListItems returns active items in the filter's pool ordered by id.
	ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error)

	InsertItem(ctx context.Context, item *domain.Item) (int64, error)
	UpdateItem(ctx context.Context, itemID int64, item *domain.Item) error
	// DeactivateMissing retires items whose internal name is not in keep.
	DeactivateMissing(ctx context.Context, keep []string) (int64, error)
}
