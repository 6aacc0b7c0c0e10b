package raid

import (
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RewardEngine_Go/internal/domain"
)

func contributions(raidID int64, damages ...int64) []domain.RaidContribution {
	out := make([]domain.RaidContribution, 0, len(damages))
	for _, d := range damages {
		out = append(out, domain.RaidContribution{RaidID: raidID, PlayerID: uuid.New(), Damage: d})
	}
	return out
}

func TestDistribute_Scenario(t *testing.T) {
	raid := domain.RaidBoss{ID: 1, RewardPool: 1000000, MultiplierBP: domain.MultiplierBasisPoints}
	in := contributions(1, 300, 700)

	rewards, total := Distribute(raid, in, 0)
	require.Len(t, rewards, 2)
	assert.Equal(t, int64(1000), total)

	byPlayer := map[uuid.UUID]int64{}
	for _, r := range rewards {
		byPlayer[r.PlayerID] = r.Amount
	}
	assert.Equal(t, int64(300000), byPlayer[in[0].PlayerID])
	assert.Equal(t, int64(700000), byPlayer[in[1].PlayerID])
}

func TestDistribute_EdgeCases(t *testing.T) {
	raid := domain.RaidBoss{ID: 1, RewardPool: 1000, MultiplierBP: 5000}

	tests := []struct {
		name        string
		damages     []int64
		floor       int64
		wantRewards int
		wantSum     int64
	}{
		{"no contributors", nil, 100, 0, 0},
		{"zero damage only", []int64{0, 0}, 100, 0, 0},
		{"zero damage contributors skipped", []int64{0, 10}, 0, 1, 500},
		{"thirds round down", []int64{1, 1, 1}, 0, 3, 498},
		{"floor lifts every share", []int64{1, 1, 1}, 200, 3, 600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rewards, _ := Distribute(raid, contributions(1, tt.damages...), tt.floor)
			assert.Len(t, rewards, tt.wantRewards)
			var sum int64
			for _, r := range rewards {
				sum += r.Amount
			}
			assert.Equal(t, tt.wantSum, sum)
		})
	}
}

func TestDistribute_LargeValuesDoNotOverflow(t *testing.T) {
	raid := domain.RaidBoss{ID: 1, RewardPool: 1 << 50, MultiplierBP: 3 * domain.MultiplierBasisPoints}
	rewards, _ := Distribute(raid, contributions(1, 1<<40, 1<<40), 0)
	require.Len(t, rewards, 2)
	assert.Equal(t, int64(3)<<49, rewards[0].Amount)
}

func TestDistribute_ConservationProperty(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 29))

	for iter := 0; iter < 500; iter++ {
		raid := domain.RaidBoss{
			ID:           int64(iter),
			RewardPool:   rng.Int64N(10_000_000),
			MultiplierBP: 1 + rng.Int64N(3*domain.MultiplierBasisPoints),
		}
		floor := rng.Int64N(500)
		damages := make([]int64, 1+rng.IntN(30))
		for i := range damages {
			damages[i] = rng.Int64N(100000)
		}

		rewards, _ := Distribute(raid, contributions(raid.ID, damages...), floor)

		var sum, floored int64
		for _, r := range rewards {
			require.Positive(t, r.Damage)
			require.GreaterOrEqual(t, r.Amount, floor)
			sum += r.Amount
			if r.Floored {
				floored++
			}
		}
		require.LessOrEqual(t, sum, raid.Budget()+floored*floor, "iteration %d", iter)
		if floored == 0 {
			require.LessOrEqual(t, sum, raid.Budget(), "iteration %d", iter)
		}
	}
}

func TestRosterPower(t *testing.T) {
	power := map[domain.Tier]int64{domain.TierCommon: 10, domain.TierRare: 50, domain.TierIcon: 500}

	tests := []struct {
		name  string
		tiers []domain.Tier
		size  int
		want  int64
	}{
		{"empty roster", nil, 3, 0},
		{"fewer cards than slots", []domain.Tier{domain.TierCommon}, 3, 10},
		{"strongest cards win", []domain.Tier{domain.TierCommon, domain.TierIcon, domain.TierCommon, domain.TierRare}, 2, 550},
		{"unknown tier has no power", []domain.Tier{"MYSTERY"}, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rosterPower(tt.tiers, power, tt.size))
		})
	}
}
