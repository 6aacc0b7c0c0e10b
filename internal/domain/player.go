package domain

import (
	"time"

	"github.com/google/uuid"
)

// Player holds the wallet of a registered player
type Player struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlayerSummary is the player view returned by the API.
type PlayerSummary struct {
	Player
	Mileage           int64   `json:"mileage"`
	ClaimedMilestones []int64 `json:"claimed_milestones"`
}
