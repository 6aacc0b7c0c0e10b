package rewardconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/internal/weight"
)

var validate = validator.New()

// Load reads and compiles the reward configuration at path.
// Only an unreadable or unparsable file is an error; invalid sections are
// disabled and reported through Catalog.Issues.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFailed, path, err)
	}
	return Parse(data)
}

// Parse compiles reward configuration from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFailed, err)
	}
	f.applyDefaults()
	return compile(&f), nil
}

func compile(f *File) *Catalog {
	c := &Catalog{
		loadedAt:    time.Now().UTC(),
		packs:       make(map[string]*Pack),
		packErrs:    make(map[string]error),
		mileage:     make(map[int64]RewardSpec),
		itemsByName: make(map[string]domain.Item),
	}

	c.compileItems(f.Catalog)
	c.compilePacks(f.Gacha)
	c.compileMileage(f.Gacha.Mileage)
	if f.Lottery != nil {
		c.lottery, c.lotteryErr = c.compileLottery(f.Lottery)
		if c.lotteryErr != nil {
			c.issues = append(c.issues, Issue{Feature: FeatureLottery, Err: c.lotteryErr})
		}
	}
	if f.Raid != nil {
		c.raid, c.raidErr = compileRaid(f.Raid)
		if c.raidErr != nil {
			c.issues = append(c.issues, Issue{Feature: FeatureRaid, Err: c.raidErr})
		}
	}
	return c
}

func (c *Catalog) compileItems(defs []ItemDef) {
	for _, d := range defs {
		if err := validate.Struct(d); err != nil {
			c.issues = append(c.issues, Issue{Feature: FeatureCatalog, Subject: d.InternalName, Err: err})
			continue
		}
		if _, dup := c.itemsByName[d.InternalName]; dup {
			c.issues = append(c.issues, Issue{
				Feature: FeatureCatalog,
				Subject: d.InternalName,
				Err:     fmt.Errorf(ErrMsgDuplicateItem, d.InternalName),
			})
			continue
		}
		it := domain.Item{
			InternalName: d.InternalName,
			DisplayName:  d.DisplayName,
			Tier:         domain.Tier(d.Tier),
			Season:       d.Season,
			Region:       d.Region,
		}
		c.items = append(c.items, it)
		c.itemsByName[it.InternalName] = it
	}
}

func (c *Catalog) compilePacks(g GachaSection) {
	refund, err := g.RefundRate.Units()
	if err == nil && (refund < 0 || refund > weight.Scale) {
		err = errors.New(ErrMsgRefundRateRange)
	}
	c.refundRateUnits = refund

	for _, d := range g.Packs {
		if _, dup := c.packs[d.Type]; dup {
			c.issues = append(c.issues, Issue{Feature: FeatureGacha, Subject: d.Type, Err: fmt.Errorf(ErrMsgDuplicatePack, d.Type)})
			continue
		}
		var p *Pack
		packErr := err
		if packErr == nil {
			p, packErr = c.compilePack(d)
		}
		if packErr != nil {
			c.packErrs[d.Type] = packErr
			c.issues = append(c.issues, Issue{Feature: FeatureGacha, Subject: d.Type, Err: packErr})
			continue
		}
		c.packs[p.Type] = p
		c.packOrder = append(c.packOrder, p.Type)
	}
}

func (c *Catalog) compilePack(d PackDef) (*Pack, error) {
	if err := validate.Struct(d); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfiguration, err)
	}
	if d.Free && d.Cost != 0 {
		return nil, fmt.Errorf("%w: "+ErrMsgFreePackCost, domain.ErrInvalidConfiguration, d.Type)
	}

	entries := make([]weight.Entry, 0, len(d.Weights))
	for _, w := range d.Weights {
		units, err := w.Weight.Units()
		if err != nil {
			return nil, err
		}
		entries = append(entries, weight.Entry{Tier: w.Tier, Units: units})
	}
	table, err := buildTable(entries, d.Total)
	if err != nil {
		return nil, err
	}

	p := &Pack{
		Type:        d.Type,
		DisplayName: d.DisplayName,
		Cost:        d.Cost,
		Free:        d.Free,
		Season:      d.Season,
		Region:      d.Region,
		Table:       table,
	}

	var errs []error
	for _, e := range table.Entries() {
		if e.Units == 0 {
			continue
		}
		if !c.hasItems(p.Filter(e.Tier)) {
			errs = append(errs, fmt.Errorf(ErrMsgNoItemsForTier, e.Tier, p.Season, p.Region))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfiguration, errors.Join(errs...))
	}
	return p, nil
}

func (c *Catalog) hasItems(f domain.ItemFilter) bool {
	for _, it := range c.items {
		if f.Matches(it) {
			return true
		}
	}
	return false
}

func (c *Catalog) compileMileage(defs []MilestoneDef) {
	var errs []error
	specs := make(map[int64]RewardSpec, len(defs))
	for _, d := range defs {
		if err := validate.Struct(d); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := specs[d.Milestone]; dup {
			errs = append(errs, fmt.Errorf(ErrMsgDuplicateMilestone, d.Milestone))
			continue
		}
		spec, err := c.compileReward(d.Reward)
		if err != nil {
			errs = append(errs, fmt.Errorf("milestone %d: %w", d.Milestone, err))
			continue
		}
		specs[d.Milestone] = spec
	}
	if len(errs) > 0 {
		c.mileageErr = errors.Join(errs...)
		c.issues = append(c.issues, Issue{Feature: FeatureMileage, Err: c.mileageErr})
		return
	}
	c.mileage = specs
	c.milestones = sortedKeys(specs)
}

func (c *Catalog) compileReward(d RewardDef) (RewardSpec, error) {
	if err := validate.Struct(d); err != nil {
		return RewardSpec{}, err
	}
	spec := RewardSpec{Type: domain.RewardType(d.Type), Min: d.Min, Max: d.Max, Item: d.Item, Pack: d.Pack}
	switch spec.Type {
	case domain.RewardTypePoints:
		if spec.Max == 0 {
			spec.Max = spec.Min
		}
		if spec.Min > spec.Max {
			return RewardSpec{}, fmt.Errorf(ErrMsgPointsRange, spec.Min, spec.Max)
		}
	case domain.RewardTypeItem:
		if _, ok := c.itemsByName[spec.Item]; !ok {
			return RewardSpec{}, fmt.Errorf(ErrMsgUnknownRewardItem, spec.Item)
		}
	case domain.RewardTypePack:
		if _, ok := c.packs[spec.Pack]; !ok {
			return RewardSpec{}, fmt.Errorf(ErrMsgUnknownRewardPack, spec.Pack)
		}
	}
	return spec, nil
}

func (c *Catalog) compileLottery(d *LotterySection) (*Lottery, error) {
	if err := validate.Struct(d); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfiguration, err)
	}

	var errs []error
	entries := make([]weight.Entry, 0, len(d.Grades))
	for _, g := range d.Grades {
		if g.Grade == d.TopGrade {
			errs = append(errs, fmt.Errorf(ErrMsgTopGradeInTable, g.Grade))
			continue
		}
		units, err := g.Weight.Units()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		entries = append(entries, weight.Entry{Tier: g.Grade, Units: units})
	}

	rewards := make(map[string]RewardSpec, len(entries)+1)
	for _, grade := range append([]string{d.TopGrade}, gradeNames(d.Grades)...) {
		def, ok := d.Rewards[grade]
		if !ok {
			errs = append(errs, fmt.Errorf(ErrMsgMissingGradeReward, grade))
			continue
		}
		spec, err := c.compileReward(def)
		if err != nil {
			errs = append(errs, fmt.Errorf("grade %s: %w", grade, err))
			continue
		}
		rewards[grade] = spec
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfiguration, errors.Join(errs...))
	}

	table, err := buildTable(entries, d.Total)
	if err != nil {
		return nil, err
	}
	return &Lottery{
		Scope:       d.Scope,
		TicketPrice: d.TicketPrice,
		TopGrade:    d.TopGrade,
		Table:       table,
		Rewards:     rewards,
	}, nil
}

func compileRaid(d *RaidSection) (*Raid, error) {
	if err := validate.Struct(d); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfiguration, err)
	}
	if d.WinMultiplierMin > d.WinMultiplierMax {
		return nil, fmt.Errorf("%w: "+ErrMsgMultiplierRange, domain.ErrInvalidConfiguration, d.WinMultiplierMin, d.WinMultiplierMax)
	}
	power := make(map[domain.Tier]int64, len(d.TierPower))
	for tier, p := range d.TierPower {
		if p < 0 {
			return nil, fmt.Errorf("%w: tier %q has negative power", domain.ErrInvalidConfiguration, tier)
		}
		power[domain.Tier(tier)] = p
	}
	return &Raid{
		AttemptsPerDay:    d.AttemptsPerDay,
		RosterSize:        d.RosterSize,
		AIPower:           d.AIPower,
		WinMultiplierMin:  d.WinMultiplierMin,
		WinMultiplierMax:  d.WinMultiplierMax,
		LossFraction:      *d.LossFraction,
		FloorReward:       d.FloorReward,
		DefaultRewardPool: d.DefaultRewardPool,
		TierPower:         power,
	}, nil
}

func buildTable(entries []weight.Entry, total Decimal) (*weight.Table, error) {
	totalUnits, err := total.Units()
	if err != nil {
		return nil, err
	}
	return weight.NewTable(entries, totalUnits)
}

func gradeNames(defs []GradeDef) []string {
	out := make([]string, 0, len(defs))
	for _, d := range defs {
		out = append(out, d.Grade)
	}
	return out
}
