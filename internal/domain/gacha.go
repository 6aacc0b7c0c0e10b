package domain

import (
	"time"

	"github.com/google/uuid"
)

// PackInfo describes a pack offered to players
type PackInfo struct {
	Type              string `json:"type"`
	DisplayName       string `json:"display_name"`
	Cost              int64  `json:"cost"`
	Free              bool   `json:"free"`
	Season            string `json:"season,omitempty"`
	Region            string `json:"region,omitempty"`
	FreeDrawUsedToday bool   `json:"free_draw_used_today,omitempty"`
}

// DrawResult is one resolved pull from a pack.
// Lo and Hi are the half-open cumulative interval the roll landed in.
type DrawResult struct {
	Item        Item  `json:"item"`
	Tier        Tier  `json:"tier"`
	IsDuplicate bool  `json:"is_duplicate"`
	Refund      int64 `json:"refund"`
	Roll        int64 `json:"roll"`
	Lo          int64 `json:"lo"`
	Hi          int64 `json:"hi"`
}

// DrawResponse is the outcome of Draw or DrawTen
type DrawResponse struct {
	PackType    string       `json:"pack_type"`
	Results     []DrawResult `json:"results"`
	Cost        int64        `json:"cost"`
	TotalRefund int64        `json:"total_refund"`
	Balance     int64        `json:"balance"`
	Mileage     int64        `json:"mileage"`
}

// OwnershipRecord tracks a player's copies of an item
type OwnershipRecord struct {
	PlayerID        uuid.UUID `json:"player_id"`
	ItemID          int64     `json:"item_id"`
	Count           int64     `json:"count"`
	FirstAcquiredAt time.Time `json:"first_acquired_at"`
}

// CollectionEntry is an owned item with its acquisition count
type CollectionEntry struct {
	Item            Item      `json:"item"`
	Count           int64     `json:"count"`
	FirstAcquiredAt time.Time `json:"first_acquired_at"`
}

// MileageCounter counts paid draws and the milestones already claimed
type MileageCounter struct {
	PlayerID          uuid.UUID `json:"player_id"`
	Count             int64     `json:"count"`
	ClaimedMilestones []int64   `json:"claimed_milestones"`
}

// HasClaimed reports whether milestone was already claimed.
func (m MileageCounter) HasClaimed(milestone int64) bool {
	for _, c := range m.ClaimedMilestones {
		if c == milestone {
			return true
		}
	}
	return false
}

// MileageClaimResponse is the outcome of a milestone claim
type MileageClaimResponse struct {
	Milestone int64  `json:"milestone"`
	Reward    Reward `json:"reward"`
	Balance   int64  `json:"balance"`
	Mileage   int64  `json:"mileage"`
}

// DrawRecord is the audit row written for every gacha pull
type DrawRecord struct {
	ID          int64     `json:"id"`
	PlayerID    uuid.UUID `json:"player_id"`
	PackType    string    `json:"pack_type"`
	Source      string    `json:"source"`
	ItemID      int64     `json:"item_id"`
	Tier        Tier      `json:"tier"`
	Roll        int64     `json:"roll"`
	Lo          int64     `json:"lo"`
	Hi          int64     `json:"hi"`
	IsDuplicate bool      `json:"is_duplicate"`
	Refund      int64     `json:"refund"`
	CreatedAt   time.Time `json:"created_at"`
}
