package rewardconfig

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/internal/weight"
)

const baseYAML = `
gacha:
  packs:
    - type: standard
      cost: 1000
      weights:
        - { tier: COMMON, weight: 94.88 }
        - { tier: RARE, weight: 5 }
        - { tier: EPIC, weight: 0.1 }
        - { tier: LEGENDARY, weight: 0.01995 }
        - { tier: ICON, weight: 0.00005 }
  mileage:
    - milestone: 10
      reward: { type: points, min: 1000 }
catalog:
  - { internal_name: c1, tier: COMMON }
  - { internal_name: r1, tier: RARE }
  - { internal_name: e1, tier: EPIC }
  - { internal_name: l1, tier: LEGENDARY }
  - { internal_name: i1, tier: ICON }
`

func TestLoad_ShippedConfig(t *testing.T) {
	cat, err := Load("../../configs/rewards.yaml")
	require.NoError(t, err)
	assert.Empty(t, cat.Issues(), "shipped config must load cleanly")

	packs := cat.Packs()
	require.Len(t, packs, 4)
	assert.Equal(t, "standard", packs[0].Type)

	std, err := cat.Pack("standard")
	require.NoError(t, err)
	assert.Equal(t, int64(100)*weight.Scale, std.Table.Total())
	assert.Equal(t, "ICON", std.Table.DrawValue(99.999999).Tier)
	assert.Equal(t, "COMMON", std.Table.DrawValue(0).Tier)

	lottery, err := cat.Lottery()
	require.NoError(t, err)
	assert.Equal(t, "SSR", lottery.TopGrade)
	assert.Equal(t, []string{"B", "A", "S", "SS"}, lottery.Table.Tiers())
	assert.Equal(t, domain.LotteryGlobalBoard, lottery.BoardID(uuid.New()))

	raid, err := cat.Raid()
	require.NoError(t, err)
	assert.Equal(t, 10, raid.AttemptsPerDay)
	assert.Equal(t, 0.1, raid.LossFraction)
	assert.Equal(t, int64(500), raid.TierPower[domain.TierIcon])

	assert.Equal(t, []int64{10, 50, 100}, cat.Milestones())
}

func TestParse_Defaults(t *testing.T) {
	cat, err := Parse([]byte(baseYAML))
	require.NoError(t, err)
	require.Empty(t, cat.Issues())

	assert.Equal(t, int64(500), cat.Refund(1000), "default refund rate is 0.5")
	assert.Equal(t, int64(0), cat.Refund(0))
	assert.Equal(t, int64(0), cat.Refund(1))

	p, err := cat.Pack("standard")
	require.NoError(t, err)
	assert.Equal(t, "standard", p.DisplayName)

	spec, ok, err := cat.Milestone(10)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.RewardTypePoints, spec.Type)
	assert.Equal(t, int64(1000), spec.Max, "max defaults to min")

	_, err = cat.Lottery()
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
	_, err = cat.Raid()
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}

func TestParse_RefundRateIsExact(t *testing.T) {
	cat, err := Parse([]byte("gacha:\n  refund_rate: 0.33333\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(333), cat.Refund(1000))
	assert.Equal(t, int64(33_333), cat.Refund(100_000))
}

func TestParse_InvalidPackDisablesOnlyThatPack(t *testing.T) {
	yml := baseYAML + `
lottery:
  ticket_price: 100
  top_grade: SSR
  grades:
    - { grade: B, weight: 100 }
  rewards:
    B: { type: points, min: 1, max: 5 }
    SSR: { type: item, item: i1 }
`
	yml = replaceOnce(yml, "    - type: standard\n", `    - type: broken
      cost: 10
      weights:
        - { tier: COMMON, weight: 50 }
        - { tier: RARE, weight: 49.9 }
    - type: standard
`)

	cat, err := Parse([]byte(yml))
	require.NoError(t, err)

	_, err = cat.Pack("broken")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "weights sum to 99.9")

	_, err = cat.Pack("standard")
	assert.NoError(t, err)
	_, err = cat.Lottery()
	assert.NoError(t, err)

	assert.Len(t, cat.Packs(), 1)
	require.Len(t, cat.Issues(), 1)
	assert.Equal(t, FeatureGacha, cat.Issues()[0].Feature)
}

func TestParse_UnknownPack(t *testing.T) {
	cat, err := Parse([]byte(baseYAML))
	require.NoError(t, err)
	_, err = cat.Pack("nope")
	assert.ErrorIs(t, err, domain.ErrPackNotFound)
}

func TestParse_PackValidation(t *testing.T) {
	tests := []struct {
		name string
		pack string
		msg  string
	}{
		{
			name: "tier without items",
			pack: `    - type: bad
      cost: 10
      weights:
        - { tier: COMMON, weight: 50 }
        - { tier: MYTHIC, weight: 50 }
`,
			msg: `tier "MYTHIC" has weight but no catalog items`,
		},
		{
			name: "season without items",
			pack: `    - type: bad
      cost: 10
      season: s9
      weights:
        - { tier: COMMON, weight: 100 }
`,
			msg: `season "s9"`,
		},
		{
			name: "free pack with cost",
			pack: `    - type: bad
      free: true
      cost: 10
      weights:
        - { tier: COMMON, weight: 100 }
`,
			msg: "must have cost 0",
		},
		{
			name: "too many decimals",
			pack: `    - type: bad
      cost: 10
      weights:
        - { tier: COMMON, weight: 99.999999 }
        - { tier: RARE, weight: 0.000001 }
`,
			msg: "more than 5 decimal places",
		},
		{
			name: "zero-weight tier without items is allowed",
			pack: `    - type: bad
      cost: 10
      weights:
        - { tier: COMMON, weight: 100 }
        - { tier: MYTHIC, weight: 0 }
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yml := replaceOnce(baseYAML, "  mileage:\n", tt.pack+"  mileage:\n")
			cat, err := Parse([]byte(yml))
			require.NoError(t, err)

			_, err = cat.Pack("bad")
			if tt.msg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestParse_LotteryValidation(t *testing.T) {
	tests := []struct {
		name    string
		lottery string
		msg     string
	}{
		{
			name: "top grade in secondary table",
			lottery: `lottery:
  top_grade: SSR
  grades:
    - { grade: B, weight: 90 }
    - { grade: SSR, weight: 10 }
  rewards:
    B: { type: points, min: 1 }
    SSR: { type: points, min: 1 }
`,
			msg: "must not appear in the secondary grade table",
		},
		{
			name: "missing reward",
			lottery: `lottery:
  top_grade: SSR
  grades:
    - { grade: B, weight: 100 }
  rewards:
    SSR: { type: points, min: 1 }
`,
			msg: `grade "B" has no reward`,
		},
		{
			name: "unknown reward item",
			lottery: `lottery:
  top_grade: SSR
  grades:
    - { grade: B, weight: 100 }
  rewards:
    B: { type: points, min: 1 }
    SSR: { type: item, item: ghost }
`,
			msg: `unknown item "ghost"`,
		},
		{
			name: "bad scope",
			lottery: `lottery:
  scope: guild
  top_grade: SSR
  grades:
    - { grade: B, weight: 100 }
  rewards:
    B: { type: points, min: 1 }
    SSR: { type: points, min: 1 }
`,
			msg: "Scope",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, err := Parse([]byte(baseYAML + tt.lottery))
			require.NoError(t, err)

			_, err = cat.Lottery()
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
			assert.Contains(t, err.Error(), tt.msg)

			_, err = cat.Pack("standard")
			assert.NoError(t, err, "gacha unaffected by lottery config")
		})
	}
}

func TestParse_PlayerScopedLottery(t *testing.T) {
	cat, err := Parse([]byte(baseYAML + `lottery:
  scope: player
  top_grade: SSR
  grades:
    - { grade: B, weight: 100 }
  rewards:
    B: { type: points, min: 1 }
    SSR: { type: pack, pack: standard }
`))
	require.NoError(t, err)
	l, err := cat.Lottery()
	require.NoError(t, err)

	id := uuid.New()
	assert.Equal(t, id.String(), l.BoardID(id))
}

func TestParse_RaidValidation(t *testing.T) {
	cat, err := Parse([]byte(baseYAML + `raid:
  win_multiplier_min: 1.5
  win_multiplier_max: 1.2
  tier_power: { COMMON: 10 }
`))
	require.NoError(t, err)
	_, err = cat.Raid()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)

	cat, err = Parse([]byte(baseYAML + `raid:
  loss_fraction: 0
  tier_power: { COMMON: 10 }
`))
	require.NoError(t, err)
	r, err := cat.Raid()
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.LossFraction, "explicit zero is kept")
	assert.Equal(t, DefaultAttemptsPerDay, r.AttemptsPerDay)
	assert.Equal(t, DefaultWinMultiplierMin, r.WinMultiplierMin)
}

func TestParse_MalformedFileIsFatal(t *testing.T) {
	_, err := Parse([]byte("gacha: [unterminated"))
	assert.Error(t, err)

	_, err = Parse([]byte("gacha:\n  unknown_field: 1\n"))
	assert.Error(t, err, "unknown fields are rejected")

	_, err = Load("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestParse_DuplicateCatalogItem(t *testing.T) {
	cat, err := Parse([]byte(baseYAML + "  - { internal_name: c1, tier: RARE }\n"))
	require.NoError(t, err)

	it, ok := cat.Item("c1")
	require.True(t, ok)
	assert.Equal(t, domain.TierCommon, it.Tier, "first definition wins")
	assert.Len(t, cat.Items(), 5)
	require.Len(t, cat.Issues(), 1)
	assert.Equal(t, FeatureCatalog, cat.Issues()[0].Feature)
}

func replaceOnce(s, old, new string) string {
	for i := 0; i+len(old) <= len(s); i++ {
		if s[i:i+len(old)] == old {
			return s[:i] + new + s[i+len(old):]
		}
	}
	return s
}
