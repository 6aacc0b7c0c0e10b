package rewardconfig

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/internal/weight"
)

// Pack is a validated pack with its weight table.
type Pack struct {
	Type        string
	DisplayName string
	Cost        int64
	Free        bool
	Season      string
	Region      string
	Table       *weight.Table
}

// Filter returns the item pool constraint for a drawn tier.
func (p *Pack) Filter(tier string) domain.ItemFilter {
	return domain.ItemFilter{Tier: domain.Tier(tier), Season: p.Season, Region: p.Region}
}

// Info returns the listing view of the pack.
func (p *Pack) Info() domain.PackInfo {
	return domain.PackInfo{
		Type:        p.Type,
		DisplayName: p.DisplayName,
		Cost:        p.Cost,
		Free:        p.Free,
		Season:      p.Season,
		Region:      p.Region,
	}
}

// RewardSpec is a validated reward definition.
type RewardSpec struct {
	Type domain.RewardType
	Min  int64
	Max  int64
	Item string
	Pack string
}

// Lottery is the validated lottery configuration.
// Table covers the non-top grades only; the top grade lives in the pre-assigned cell.
type Lottery struct {
	Scope       string
	TicketPrice int64
	TopGrade    string
	Table       *weight.Table
	Rewards     map[string]RewardSpec
}

// BoardID resolves which board a player picks on.
func (l *Lottery) BoardID(playerID uuid.UUID) string {
	if l.Scope == domain.LotteryScopePlayer {
		return playerID.String()
	}
	return domain.LotteryGlobalBoard
}

// Raid is the validated raid configuration.
type Raid struct {
	AttemptsPerDay    int
	RosterSize        int
	AIPower           int64
	WinMultiplierMin  float64
	WinMultiplierMax  float64
	LossFraction      float64
	FloorReward       int64
	DefaultRewardPool int64
	TierPower         map[domain.Tier]int64
}

// Issue records a configuration problem that disabled part of a feature.
type Issue struct {
	Feature string
	Subject string
	Err     error
}

func (i Issue) Error() string {
	if i.Subject == "" {
		return fmt.Sprintf("%s: %v", i.Feature, i.Err)
	}
	return fmt.Sprintf("%s %q: %v", i.Feature, i.Subject, i.Err)
}

// Catalog is an immutable, validated snapshot of the reward configuration.
// Invalid packs, the mileage ladder, the lottery and the raid are disabled
// individually; lookups for a disabled feature return domain.ErrInvalidConfiguration.
type Catalog struct {
	loadedAt        time.Time
	refundRateUnits int64

	packs     map[string]*Pack
	packOrder []string
	packErrs  map[string]error

	milestones []int64
	mileage    map[int64]RewardSpec
	mileageErr error

	items       []domain.Item
	itemsByName map[string]domain.Item

	lottery    *Lottery
	lotteryErr error

	raid    *Raid
	raidErr error

	issues []Issue
}

// LoadedAt returns when the snapshot was built.
func (c *Catalog) LoadedAt() time.Time { return c.loadedAt }

// Issues returns every problem found while loading.
func (c *Catalog) Issues() []Issue {
	out := make([]Issue, len(c.issues))
	copy(out, c.issues)
	return out
}

// Refund returns floor(cost * refundRate).
func (c *Catalog) Refund(cost int64) int64 {
	if cost <= 0 {
		return 0
	}
	return cost * c.refundRateUnits / weight.Scale
}

// Pack returns an enabled pack by type.
func (c *Catalog) Pack(packType string) (*Pack, error) {
	if p, ok := c.packs[packType]; ok {
		return p, nil
	}
	if err, ok := c.packErrs[packType]; ok {
		return nil, fmt.Errorf(ErrMsgFeatureDisabled, domain.ErrInvalidConfiguration, "pack "+packType, err)
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrPackNotFound, packType)
}

// Packs returns enabled packs in file order.
func (c *Catalog) Packs() []*Pack {
	out := make([]*Pack, 0, len(c.packOrder))
	for _, t := range c.packOrder {
		out = append(out, c.packs[t])
	}
	return out
}

// Milestone returns the reward for a configured milestone.
func (c *Catalog) Milestone(milestone int64) (RewardSpec, bool, error) {
	if c.mileageErr != nil {
		return RewardSpec{}, false, fmt.Errorf(ErrMsgFeatureDisabled, domain.ErrInvalidConfiguration, FeatureMileage, c.mileageErr)
	}
	spec, ok := c.mileage[milestone]
	return spec, ok, nil
}

// Milestones returns configured milestones in ascending order.
func (c *Catalog) Milestones() []int64 {
	out := make([]int64, len(c.milestones))
	copy(out, c.milestones)
	return out
}

// Items returns the catalog cards (without database ids).
func (c *Catalog) Items() []domain.Item {
	out := make([]domain.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Item returns a catalog card by internal name.
func (c *Catalog) Item(name string) (domain.Item, bool) {
	it, ok := c.itemsByName[name]
	return it, ok
}

// Lottery returns the lottery configuration.
func (c *Catalog) Lottery() (*Lottery, error) {
	if c.lotteryErr != nil {
		return nil, fmt.Errorf(ErrMsgFeatureDisabled, domain.ErrInvalidConfiguration, FeatureLottery, c.lotteryErr)
	}
	if c.lottery == nil {
		return nil, fmt.Errorf(ErrMsgNotConfigured, domain.ErrInvalidConfiguration, FeatureLottery)
	}
	return c.lottery, nil
}

// Raid returns the raid configuration.
func (c *Catalog) Raid() (*Raid, error) {
	if c.raidErr != nil {
		return nil, fmt.Errorf(ErrMsgFeatureDisabled, domain.ErrInvalidConfiguration, FeatureRaid, c.raidErr)
	}
	if c.raid == nil {
		return nil, fmt.Errorf(ErrMsgNotConfigured, domain.ErrInvalidConfiguration, FeatureRaid)
	}
	return c.raid, nil
}

func sortedKeys(m map[int64]RewardSpec) []int64 {
	out := make([]int64, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
