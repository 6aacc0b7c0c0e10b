package domain

// Rarity tiers used by the card catalog and pack weight tables
const (
	TierCommon    Tier = "COMMON"
	TierRare      Tier = "RARE"
	TierEpic      Tier = "EPIC"
	TierLegendary Tier = "LEGENDARY"
	TierIcon      Tier = "ICON"
)

// Reward types
const (
	RewardTypeItem   RewardType = "item"
	RewardTypePoints RewardType = "points"
	RewardTypePack   RewardType = "pack"
)

// Draw sources recorded in draw history
const (
	DrawSourceGacha   = "gacha"
	DrawSourceLottery = "lottery"
)

// Lottery board constants
const (
	LotteryCellCount   = 49
	LotteryScopeServer = "server"
	LotteryScopePlayer = "player"
	LotteryGlobalBoard = "global"
)

// DrawTenCount is the number of pulls in a ten-draw batch.
const DrawTenCount = 10

// MultiplierBasisPoints is the fixed-point scale for raid reward multipliers (1.0 = 10000).
const MultiplierBasisPoints = 10000
