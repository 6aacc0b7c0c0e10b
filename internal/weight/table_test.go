package weight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RewardEngine_Go/internal/domain"
)

func mustUnits(t testing.TB, s string) int64 {
	t.Helper()
	u, err := ParseUnits(s)
	require.NoError(t, err)
	return u
}

func standardPackTable(t testing.TB) *Table {
	t.Helper()
	tbl, err := NewTable([]Entry{
		{Tier: "common", Units: mustUnits(t, "94.88")},
		{Tier: "rare", Units: mustUnits(t, "5")},
		{Tier: "epic", Units: mustUnits(t, "0.1")},
		{Tier: "legendary", Units: mustUnits(t, "0.01995")},
		{Tier: "icon", Units: mustUnits(t, "0.00005")},
	}, mustUnits(t, "100"))
	require.NoError(t, err)
	return tbl
}

func TestParseUnits(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
		wantErr  bool
	}{
		{"100", 10_000_000, false},
		{"94.88", 9_488_000, false},
		{"0.00005", 5, false},
		{"0.01995", 1_995, false},
		{"1.0", 100_000, false},
		{".5", 50_000, false},
		{"5.000000", 500_000, false},
		{" 7 ", 700_000, false},
		{"-1", -100_000, false},
		{"0.000001", 0, true},
		{"abc", 0, true},
		{"1e3", 0, true},
		{"", 0, true},
		{".", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseUnits(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatUnits(t *testing.T) {
	assert.Equal(t, "100", FormatUnits(10_000_000))
	assert.Equal(t, "94.88", FormatUnits(9_488_000))
	assert.Equal(t, "0.00005", FormatUnits(5))
	assert.Equal(t, "-2.5", FormatUnits(-250_000))
}

func TestNewTable_SumIsExact(t *testing.T) {
	tbl := standardPackTable(t)
	assert.Equal(t, int64(100)*Scale, tbl.Total())

	var sum int64
	for _, e := range tbl.Entries() {
		sum += e.Units
	}
	assert.Equal(t, tbl.Total(), sum)
}

func TestNewTable_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		total   int64
		msg     string
	}{
		{
			name:    "sum below total",
			entries: []Entry{{Tier: "a", Units: 40 * Scale}, {Tier: "b", Units: 59 * Scale}},
			total:   100 * Scale,
			msg:     "weights sum to 99, declared total is 100",
		},
		{
			name:    "duplicate tier",
			entries: []Entry{{Tier: "a", Units: 50 * Scale}, {Tier: "a", Units: 50 * Scale}},
			total:   100 * Scale,
			msg:     `duplicate tier "a"`,
		},
		{
			name:    "negative weight",
			entries: []Entry{{Tier: "a", Units: 101 * Scale}, {Tier: "b", Units: -1 * Scale}},
			total:   100 * Scale,
			msg:     `tier "b" has negative weight`,
		},
		{
			name:  "empty",
			total: 100 * Scale,
			msg:   ErrMsgEmptyTable,
		},
		{
			name:    "non-positive total",
			entries: []Entry{{Tier: "a", Units: 0}},
			total:   0,
			msg:     ErrMsgNonPositiveTotal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := NewTable(tt.entries, tt.total)
			require.Error(t, err)
			assert.Nil(t, tbl)
			assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestNewTable_CopiesInput(t *testing.T) {
	entries := []Entry{{Tier: "a", Units: 60 * Scale}, {Tier: "b", Units: 40 * Scale}}
	tbl, err := NewTable(entries, 100*Scale)
	require.NoError(t, err)

	entries[0].Tier = "mutated"
	assert.Equal(t, []string{"a", "b"}, tbl.Tiers())
}

func TestDrawValue_Scenario(t *testing.T) {
	tbl := standardPackTable(t)

	assert.Equal(t, "icon", tbl.DrawValue(99.999999).Tier)
	assert.Equal(t, "common", tbl.DrawValue(0).Tier)

	out := tbl.DrawValue(99.999999)
	assert.Equal(t, int64(9_999_995), out.Lo)
	assert.Equal(t, int64(10_000_000), out.Hi)
	assert.Equal(t, int64(9_999_999), out.Roll)
}

func TestDrawValue_DecimalBoundaries(t *testing.T) {
	tbl, err := NewTable([]Entry{
		{Tier: "low", Units: mustUnits(t, "0.29")},
		{Tier: "mid", Units: mustUnits(t, "0.28")},
		{Tier: "high", Units: mustUnits(t, "99.43")},
	}, mustUnits(t, "100"))
	require.NoError(t, err)

	tests := []struct {
		value float64
		tier  string
		roll  int64
	}{
		{0.29, "mid", 29_000},
		{0.28999, "low", 28_999},
		{0.57, "high", 57_000},
		{0.569999, "mid", 56_999},
		{1.1, "high", 110_000},
		{-1, "low", 0},
		{100, "high", 9_999_999},
	}
	for _, tt := range tests {
		out := tbl.DrawValue(tt.value)
		assert.Equal(t, tt.tier, out.Tier, "value %v", tt.value)
		assert.Equal(t, tt.roll, out.Roll, "value %v", tt.value)
	}
}

func TestDrawUnits_Boundaries(t *testing.T) {
	tbl := standardPackTable(t)

	tests := []struct {
		roll int64
		tier string
	}{
		{0, "common"},
		{9_487_999, "common"},
		{9_488_000, "rare"},
		{9_987_999, "rare"},
		{9_988_000, "epic"},
		{9_998_000, "legendary"},
		{9_999_994, "legendary"},
		{9_999_995, "icon"},
		{9_999_999, "icon"},
		{-5, "common"},
		{50_000_000, "icon"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.tier, tbl.DrawUnits(tt.roll).Tier, "roll %d", tt.roll)
	}
}

func TestDrawUnits_ZeroWeightNeverSelected(t *testing.T) {
	tbl, err := NewTable([]Entry{
		{Tier: "none_first", Units: 0},
		{Tier: "a", Units: 3},
		{Tier: "none_mid", Units: 0},
		{Tier: "b", Units: 2},
		{Tier: "none_last", Units: 0},
	}, 5)
	require.NoError(t, err)

	for roll := int64(-1); roll <= 6; roll++ {
		tier := tbl.DrawUnits(roll).Tier
		assert.NotContains(t, []string{"none_first", "none_mid", "none_last"}, tier, "roll %d", roll)
	}

	lo, hi, ok := tbl.Interval("none_mid")
	require.True(t, ok)
	assert.Equal(t, lo, hi)
	assert.Zero(t, tbl.Probability("none_mid"))
}

func TestDrawUnits_Deterministic(t *testing.T) {
	tbl := standardPackTable(t)
	for _, roll := range []int64{0, 123_456, 9_500_000, 9_999_997} {
		assert.Equal(t, tbl.DrawUnits(roll), tbl.DrawUnits(roll))
	}
}
