package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RewardEngine_Go/internal/database/generated"
	"github.com/osse101/RewardEngine_Go/internal/domain"
)

// ItemRepository implements repository.Item for PostgreSQL using sqlc
type ItemRepository struct {
	q *generated.Queries
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{q: generated.New(db)}
}

// GetAllItems returns every active item
func (r *ItemRepository) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.q.ListActiveItems(ctx)
	if err != nil {
		return nil, wrap(ErrMsgFailedToGetAllItems, err)
	}
	return toItems(rows), nil
}

// GetItemByName returns an item, active or not, by internal name
func (r *ItemRepository) GetItemByName(ctx context.Context, internalName string) (*domain.Item, error) {
	row, err := r.q.GetItemByName(ctx, internalName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap(ErrMsgFailedToGetItemByName, err)
	}
	item := toItem(row)
	return &item, nil
}

// ListItems returns the active candidate pool for filter
func (r *ItemRepository) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	rows, err := r.q.ListItemPool(ctx, generated.ListItemPoolParams{
		Tier:   string(filter.Tier),
		Season: filter.Season,
		Region: filter.Region,
	})
	if err != nil {
		return nil, wrap(ErrMsgFailedToListItems, err)
	}
	return toItems(rows), nil
}

// InsertItem adds a catalog item and returns its id
func (r *ItemRepository) InsertItem(ctx context.Context, item *domain.Item) (int64, error) {
	id, err := r.q.InsertItem(ctx, generated.InsertItemParams{
		InternalName: item.InternalName,
		DisplayName:  item.DisplayName,
		Tier:         string(item.Tier),
		Season:       item.Season,
		Region:       item.Region,
	})
	if err != nil {
		return 0, wrap(ErrMsgFailedToInsertItem, err)
	}
	return id, nil
}

// UpdateItem rewrites an item's attributes and reactivates it
func (r *ItemRepository) UpdateItem(ctx context.Context, itemID int64, item *domain.Item) error {
	n, err := r.q.UpdateItem(ctx, generated.UpdateItemParams{
		ItemID:      itemID,
		DisplayName: item.DisplayName,
		Tier:        string(item.Tier),
		Season:      item.Season,
		Region:      item.Region,
	})
	if err != nil {
		return wrap(ErrMsgFailedToUpdateItem, err)
	}
	if n == 0 {
		return fmt.Errorf(ErrMsgItemNotFound, item.InternalName)
	}
	return nil
}

// DeactivateMissing retires active items whose internal name is not in keep
func (r *ItemRepository) DeactivateMissing(ctx context.Context, keep []string) (int64, error) {
	if keep == nil {
		keep = []string{}
	}
	n, err := r.q.DeactivateMissingItems(ctx, keep)
	if err != nil {
		return 0, wrap(ErrMsgFailedToDeactivateItems, err)
	}
	return n, nil
}
