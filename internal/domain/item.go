package domain

// Tier is a rarity bucket for catalog items.
type Tier string

// Item is a collectible card from the reward catalog.
// Season and Region are empty when the card is not restricted.
type Item struct {
	ID           int64  `json:"item_id" db:"item_id"`
	InternalName string `json:"internal_name" db:"internal_name"`
	DisplayName  string `json:"display_name" db:"display_name"`
	Tier         Tier   `json:"tier" db:"tier"`
	Season       string `json:"season,omitempty" db:"season"`
	Region       string `json:"region,omitempty" db:"region"`
}

// ItemFilter selects the candidate pool for a drawn tier.
type ItemFilter struct {
	Tier   Tier
	Season string
	Region string
}

// Matches reports whether item belongs to the filter's pool.
// An empty Season or Region places no constraint.
func (f ItemFilter) Matches(item Item) bool {
	if item.Tier != f.Tier {
		return false
	}
	if f.Season != "" && item.Season != f.Season {
		return false
	}
	if f.Region != "" && item.Region != f.Region {
		return false
	}
	return true
}

// Key returns a stable cache key for the filter.
func (f ItemFilter) Key() string {
	return string(f.Tier) + "|" + f.Season + "|" + f.Region
}
