package rewardconfig

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/osse101/RewardEngine_Go/internal/weight"
)

// Decimal keeps a numeric YAML scalar as its source text so weights are parsed
// exactly into fixed-point units instead of through float64.
type Decimal string

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Decimal) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf(ErrMsgExpectedScalar, node.Line)
	}
	*d = Decimal(node.Value)
	return nil
}

// Units converts the decimal into weight.Scale fixed-point units.
func (d Decimal) Units() (int64, error) {
	return weight.ParseUnits(string(d))
}

// File is the on-disk layout of the reward configuration.
type File struct {
	Gacha   GachaSection    `yaml:"gacha"`
	Catalog []ItemDef       `yaml:"catalog"`
	Lottery *LotterySection `yaml:"lottery"`
	Raid    *RaidSection    `yaml:"raid"`
}

// GachaSection holds pack definitions and the mileage ladder.
type GachaSection struct {
	RefundRate Decimal        `yaml:"refund_rate"`
	Packs      []PackDef      `yaml:"packs"`
	Mileage    []MilestoneDef `yaml:"mileage"`
}

// PackDef is one purchasable (or daily free) pack.
type PackDef struct {
	Type        string      `yaml:"type" validate:"required"`
	DisplayName string      `yaml:"display_name"`
	Cost        int64       `yaml:"cost" validate:"min=0"`
	Free        bool        `yaml:"free"`
	Season      string      `yaml:"season"`
	Region      string      `yaml:"region"`
	Total       Decimal     `yaml:"total"`
	Weights     []WeightDef `yaml:"weights" validate:"required,min=1,dive"`
}

// WeightDef is a (tier, weight) row.
type WeightDef struct {
	Tier   string  `yaml:"tier" validate:"required"`
	Weight Decimal `yaml:"weight" validate:"required"`
}

// RewardDef describes a table-driven reward.
// points: uniform in [min, max]; item: one copy of a catalog item; pack: a free opening of a pack.
type RewardDef struct {
	Type string `yaml:"type" validate:"required,oneof=points item pack"`
	Min  int64  `yaml:"min" validate:"min=0"`
	Max  int64  `yaml:"max" validate:"min=0"`
	Item string `yaml:"item" validate:"required_if=Type item"`
	Pack string `yaml:"pack" validate:"required_if=Type pack"`
}

// MilestoneDef is a mileage milestone and its reward.
type MilestoneDef struct {
	Milestone int64     `yaml:"milestone" validate:"min=1"`
	Reward    RewardDef `yaml:"reward"`
}

// ItemDef is a catalog card.
type ItemDef struct {
	InternalName string `yaml:"internal_name" validate:"required"`
	DisplayName  string `yaml:"display_name"`
	Tier         string `yaml:"tier" validate:"required"`
	Season       string `yaml:"season"`
	Region       string `yaml:"region"`
}

// LotterySection configures the 49-cell board.
type LotterySection struct {
	Scope       string               `yaml:"scope" validate:"oneof=server player"`
	TicketPrice int64                `yaml:"ticket_price" validate:"min=0"`
	TopGrade    string               `yaml:"top_grade" validate:"required"`
	Total       Decimal              `yaml:"total"`
	Grades      []GradeDef           `yaml:"grades" validate:"required,min=1,dive"`
	Rewards     map[string]RewardDef `yaml:"rewards" validate:"required"`
}

// GradeDef is one row of the secondary grade table.
type GradeDef struct {
	Grade  string  `yaml:"grade" validate:"required"`
	Weight Decimal `yaml:"weight" validate:"required"`
}

// RaidSection configures raid combat and reward distribution.
type RaidSection struct {
	AttemptsPerDay    int              `yaml:"attempts_per_day" validate:"min=1"`
	RosterSize        int              `yaml:"roster_size" validate:"min=1"`
	AIPower           int64            `yaml:"ai_power" validate:"min=0"`
	WinMultiplierMin  float64          `yaml:"win_multiplier_min" validate:"gt=0"`
	WinMultiplierMax  float64          `yaml:"win_multiplier_max" validate:"gt=0"`
	LossFraction      *float64         `yaml:"loss_fraction" validate:"omitempty,gte=0,lte=1"`
	FloorReward       int64            `yaml:"floor_reward" validate:"min=0"`
	DefaultRewardPool int64            `yaml:"default_reward_pool" validate:"min=0"`
	TierPower         map[string]int64 `yaml:"tier_power" validate:"required,min=1"`
}

func (f *File) applyDefaults() {
	if f.Gacha.RefundRate == "" {
		f.Gacha.RefundRate = DefaultRefundRate
	}
	for i := range f.Gacha.Packs {
		if f.Gacha.Packs[i].Total == "" {
			f.Gacha.Packs[i].Total = DefaultTableTotal
		}
		if f.Gacha.Packs[i].DisplayName == "" {
			f.Gacha.Packs[i].DisplayName = f.Gacha.Packs[i].Type
		}
	}
	for i := range f.Catalog {
		if f.Catalog[i].DisplayName == "" {
			f.Catalog[i].DisplayName = f.Catalog[i].InternalName
		}
	}
	if l := f.Lottery; l != nil {
		if l.Scope == "" {
			l.Scope = DefaultLotteryScope
		}
		if l.Total == "" {
			l.Total = DefaultTableTotal
		}
	}
	if r := f.Raid; r != nil {
		if r.AttemptsPerDay == 0 {
			r.AttemptsPerDay = DefaultAttemptsPerDay
		}
		if r.RosterSize == 0 {
			r.RosterSize = DefaultRosterSize
		}
		if r.WinMultiplierMin == 0 {
			r.WinMultiplierMin = DefaultWinMultiplierMin
		}
		if r.WinMultiplierMax == 0 {
			r.WinMultiplierMax = DefaultWinMultiplierMax
		}
		if r.LossFraction == nil {
			lf := DefaultLossFraction
			r.LossFraction = &lf
		}
	}
}
