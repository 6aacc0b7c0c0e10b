package domain

import (
	"math"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// RaidBoss is a cooperative raid target.
// Multiplier is stored in basis points (10000 = 1.0).
type RaidBoss struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	MaxHP        int64      `json:"max_hp"`
	CurrentHP    int64      `json:"current_hp"`
	RewardPool   int64      `json:"reward_pool"`
	MultiplierBP int64      `json:"multiplier_bp"`
	Active       bool       `json:"active"`
	StartedAt    time.Time  `json:"started_at"`
	EndedAt      *time.Time `json:"ended_at,omitempty"`
}

// Budget returns floor(rewardPool * multiplier), saturating at MaxInt64.
func (r RaidBoss) Budget() int64 {
	b := r.budget()
	if !b.IsInt64() {
		return math.MaxInt64
	}
	return b.Int64()
}

// BudgetFits reports whether the budget is representable as int64.
func (r RaidBoss) BudgetFits() bool {
	return r.budget().IsInt64()
}

func (r RaidBoss) budget() *big.Int {
	b := new(big.Int).Mul(big.NewInt(r.RewardPool), big.NewInt(r.MultiplierBP))
	return b.Quo(b, big.NewInt(MultiplierBasisPoints))
}

// RaidContribution is a player's cumulative damage against one raid.
// DailyAttempts is only meaningful for AttemptDay (UTC).
type RaidContribution struct {
	RaidID        int64     `json:"raid_id"`
	PlayerID      uuid.UUID `json:"player_id"`
	Damage        int64     `json:"damage"`
	Attempts      int       `json:"attempts"`
	DailyAttempts int       `json:"daily_attempts"`
	AttemptDay    time.Time `json:"attempt_day"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AttemptsOn returns the attempts used on the UTC day containing t.
func (c RaidContribution) AttemptsOn(t time.Time) int {
	if SameUTCDay(c.AttemptDay, t) {
		return c.DailyAttempts
	}
	return 0
}

// AttackResult is the outcome of one raid attack
type AttackResult struct {
	RaidID        int64 `json:"raid_id"`
	Won           bool  `json:"won"`
	PlayerPower   int64 `json:"player_power"`
	AIPower       int64 `json:"ai_power"`
	Damage        int64 `json:"damage"`
	AppliedDamage int64 `json:"applied_damage"`
	RemainingHP   int64 `json:"remaining_hp"`
	TotalDamage   int64 `json:"total_damage"`
	AttemptsToday int   `json:"attempts_today"`
	AttemptsLeft  int   `json:"attempts_left"`
}

// RaidReward is one contributor's share of an ended raid
type RaidReward struct {
	RaidID   int64     `json:"raid_id"`
	PlayerID uuid.UUID `json:"player_id"`
	Damage   int64     `json:"damage"`
	Amount   int64     `json:"amount"`
	Floored  bool      `json:"floored"`
}

// RaidEndResult summarises the distribution at raid end
type RaidEndResult struct {
	Raid        RaidBoss     `json:"raid"`
	TotalDamage int64        `json:"total_damage"`
	Budget      int64        `json:"budget"`
	Distributed int64        `json:"distributed"`
	Rewards     []RaidReward `json:"rewards"`
}

// RaidStatus is the public view of the active raid
type RaidStatus struct {
	Raid         RaidBoss `json:"raid"`
	TotalDamage  int64    `json:"total_damage"`
	Contributors int      `json:"contributors"`
}

// LeaderboardEntry is one row of the raid damage ranking
type LeaderboardEntry struct {
	Rank     int       `json:"rank"`
	PlayerID uuid.UUID `json:"player_id"`
	Damage   int64     `json:"damage"`
}
