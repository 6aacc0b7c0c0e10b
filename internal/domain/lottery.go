package domain

import (
	"time"

	"github.com/google/uuid"
)

// LotteryCell is one of the 49 board positions.
type LotteryCell struct {
	Number     int        `json:"number"`
	Revealed   bool       `json:"revealed"`
	Grade      string     `json:"grade,omitempty"`
	Reward     *Reward    `json:"reward,omitempty"`
	RevealedBy *uuid.UUID `json:"revealed_by,omitempty"`
	RevealedAt *time.Time `json:"revealed_at,omitempty"`
}

// LotteryBoard is the persisted board aggregate.
// TopCell is never exposed through the API.
type LotteryBoard struct {
	ID         string        `json:"id"`
	TopCell    int           `json:"-"`
	ResetCount int64         `json:"reset_count"`
	Version    int64         `json:"version"`
	Cells      []LotteryCell `json:"cells"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// Cell returns the cell with the given 1-based number, or nil.
func (b *LotteryBoard) Cell(number int) *LotteryCell {
	for i := range b.Cells {
		if b.Cells[i].Number == number {
			return &b.Cells[i]
		}
	}
	return nil
}

// RevealedCount returns the number of revealed cells.
func (b *LotteryBoard) RevealedCount() int {
	n := 0
	for _, c := range b.Cells {
		if c.Revealed {
			n++
		}
	}
	return n
}

// LotteryBoardView is the player-facing board
type LotteryBoardView struct {
	ID            string        `json:"id"`
	TicketPrice   int64         `json:"ticket_price"`
	ResetCount    int64         `json:"reset_count"`
	RevealedCount int           `json:"revealed_count"`
	Cells         []LotteryCell `json:"cells"`
}

// PickResult is the outcome of a lottery pick
type PickResult struct {
	BoardID       string `json:"board_id"`
	Cell          int    `json:"cell"`
	Grade         string `json:"grade"`
	Reward        Reward `json:"reward"`
	BoardWasReset bool   `json:"board_was_reset"`
	Balance       int64  `json:"balance"`
}

// LotteryPick is the audit row written for every pick
type LotteryPick struct {
	ID             int64     `json:"id"`
	BoardID        string    `json:"board_id"`
	PlayerID       uuid.UUID `json:"player_id"`
	Cell           int       `json:"cell"`
	Grade          string    `json:"grade"`
	RewardType     string    `json:"reward_type"`
	Points         int64     `json:"points"`
	ItemID         *int64    `json:"item_id,omitempty"`
	PackType       string    `json:"pack_type,omitempty"`
	TriggeredReset bool      `json:"triggered_reset"`
	CreatedAt      time.Time `json:"created_at"`
}
