package weight

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/osse101/RewardEngine_Go/internal/domain"
)

// Entry is one (tier, weight) pair in fixed-point units.
type Entry struct {
	Tier  string
	Units int64
}

// Table is an immutable weight table.
// cumul[i] is the exclusive upper bound of entry i, so entry i owns [cumul[i-1], cumul[i]).
type Table struct {
	entries []Entry
	cumul   []int64
	total   int64
}

// NewTable validates entries against the declared total and builds the cumulative index.
// Every violation is reported, joined under domain.ErrInvalidConfiguration.
func NewTable(entries []Entry, declaredTotal int64) (*Table, error) {
	var errs []error
	if len(entries) == 0 {
		errs = append(errs, errors.New(ErrMsgEmptyTable))
	}
	if declaredTotal <= 0 {
		errs = append(errs, errors.New(ErrMsgNonPositiveTotal))
	}

	seen := make(map[string]struct{}, len(entries))
	var sum int64
	for _, e := range entries {
		if e.Tier == "" {
			errs = append(errs, errors.New(ErrMsgEmptyTier))
		}
		if _, dup := seen[e.Tier]; dup {
			errs = append(errs, fmt.Errorf(ErrMsgDuplicateTier, e.Tier))
		}
		seen[e.Tier] = struct{}{}
		if e.Units < 0 {
			errs = append(errs, fmt.Errorf(ErrMsgNegativeWeight, e.Tier))
			continue
		}
		sum += e.Units
	}
	if len(errs) == 0 && sum != declaredTotal {
		errs = append(errs, fmt.Errorf(ErrMsgTotalMismatch, FormatUnits(sum), FormatUnits(declaredTotal)))
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfiguration, errors.Join(errs...))
	}

	t := &Table{
		entries: make([]Entry, len(entries)),
		cumul:   make([]int64, len(entries)),
		total:   sum,
	}
	copy(t.entries, entries)
	var running int64
	for i, e := range t.entries {
		running += e.Units
		t.cumul[i] = running
	}
	return t, nil
}

// Total returns the sum of weights in fixed-point units.
func (t *Table) Total() int64 { return t.total }

// Len returns the number of tiers.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns a copy of the table entries in declaration order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Tiers returns tier names in declaration order.
func (t *Table) Tiers() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Tier
	}
	return out
}

// Interval returns the half-open interval owned by tier. Zero-weight tiers have lo == hi.
func (t *Table) Interval(tier string) (lo, hi int64, ok bool) {
	for i, e := range t.entries {
		if e.Tier == tier {
			if i > 0 {
				lo = t.cumul[i-1]
			}
			return lo, t.cumul[i], true
		}
	}
	return 0, 0, false
}

// Probability returns weight/total for tier, 0 if unknown.
func (t *Table) Probability(tier string) float64 {
	lo, hi, ok := t.Interval(tier)
	if !ok {
		return 0
	}
	return float64(hi-lo) / float64(t.total)
}

// Outcome is a selected tier and the interval it was selected from.
type Outcome struct {
	Tier string
	Lo   int64
	Hi   int64
	Roll int64
}

// DrawUnits selects the tier owning roll. Rolls outside [0, total) are clamped.
// The first entry with cumul > roll wins, so a zero-width interval can never contain a roll.
func (t *Table) DrawUnits(roll int64) Outcome {
	if roll < 0 {
		roll = 0
	}
	if roll >= t.total {
		roll = t.total - 1
	}

	idx := sort.Search(len(t.cumul), func(i int) bool {
		return t.cumul[i] > roll
	})

	var lo int64
	if idx > 0 {
		lo = t.cumul[idx-1]
	}
	return Outcome{
		Tier: t.entries[idx].Tier,
		Lo:   lo,
		Hi:   t.cumul[idx],
		Roll: roll,
	}
}

// DrawValue selects the tier for a roll expressed in configured units, e.g. 99.999999 on a
// table whose weights sum to 100. The value is floored onto the unit grid through its
// shortest decimal form, so 0.29 lands on 29000 units and not 28999.
func (t *Table) DrawValue(v float64) Outcome {
	if math.IsNaN(v) || v <= 0 {
		return t.DrawUnits(0)
	}
	if v*float64(Scale) >= float64(t.total) {
		return t.DrawUnits(t.total - 1)
	}
	units, err := floorUnits(v)
	if err != nil {
		return t.DrawUnits(t.total - 1)
	}
	return t.DrawUnits(units)
}
