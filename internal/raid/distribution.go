package raid

import (
	"math/big"
	"sort"

	"github.com/osse101/RewardEngine_Go/internal/domain"
)

// Distribute splits budget across contributors in proportion to damage.
// Every contributor with damage > 0 receives at least floorReward, so the
// total may exceed budget by at most k*floorReward where k is the number of
// floored contributors. Zero total damage yields no rewards.
func Distribute(raid domain.RaidBoss, contributions []domain.RaidContribution, floorReward int64) (rewards []domain.RaidReward, totalDamage int64) {
	for _, c := range contributions {
		if c.Damage > 0 {
			totalDamage += c.Damage
		}
	}
	if totalDamage == 0 {
		return nil, 0
	}

	// floor(damage * pool * multiplier / (total * scale)) in exact integer arithmetic.
	numerator := new(big.Int).Mul(big.NewInt(raid.RewardPool), big.NewInt(raid.MultiplierBP))
	denominator := new(big.Int).Mul(big.NewInt(totalDamage), big.NewInt(domain.MultiplierBasisPoints))

	share := new(big.Int)
	for _, c := range contributions {
		if c.Damage <= 0 {
			continue
		}
		share.Mul(numerator, big.NewInt(c.Damage))
		share.Quo(share, denominator)

		r := domain.RaidReward{
			RaidID:   raid.ID,
			PlayerID: c.PlayerID,
			Damage:   c.Damage,
			Amount:   share.Int64(),
		}
		if r.Amount < floorReward {
			r.Amount = floorReward
			r.Floored = true
		}
		rewards = append(rewards, r)
	}

	// Wallets are locked in player id order.
	sort.Slice(rewards, func(i, j int) bool {
		return rewards[i].PlayerID.String() < rewards[j].PlayerID.String()
	})
	return rewards, totalDamage
}

// rosterPower sums the power of the strongest size owned cards.
func rosterPower(tiers []domain.Tier, tierPower map[domain.Tier]int64, size int) int64 {
	powers := make([]int64, 0, len(tiers))
	for _, t := range tiers {
		powers = append(powers, tierPower[t])
	}
	sort.Slice(powers, func(i, j int) bool { return powers[i] > powers[j] })
	if len(powers) > size {
		powers = powers[:size]
	}

	var total int64
	for _, p := range powers {
		total += p
	}
	return total
}
