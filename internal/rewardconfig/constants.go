package rewardconfig

// Defaults applied when a field is omitted from the file
const (
	DefaultRefundRate       = "0.5"
	DefaultTableTotal       = "100"
	DefaultLotteryScope     = "server"
	DefaultAttemptsPerDay   = 10
	DefaultRosterSize       = 5
	DefaultWinMultiplierMin = 0.8
	DefaultWinMultiplierMax = 1.2
	DefaultLossFraction     = 0.1
)

// Feature names used in issue reports and metrics
const (
	FeatureGacha   = "gacha"
	FeatureMileage = "mileage"
	FeatureLottery = "lottery"
	FeatureRaid    = "raid"
	FeatureCatalog = "catalog"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgReadFailed         = "failed to read reward config %s: %w"
	ErrMsgParseFailed        = "failed to parse reward config: %w"
	ErrMsgFeatureDisabled    = "%w: %s is disabled: %v"
	ErrMsgNotConfigured      = "%w: %s is not configured"
	ErrMsgExpectedScalar     = "line %d: expected a decimal number"
	ErrMsgRefundRateRange    = "refund_rate must be between 0 and 1"
	ErrMsgDuplicatePack      = "duplicate pack type %q"
	ErrMsgFreePackCost       = "free pack %q must have cost 0"
	ErrMsgNoItemsForTier     = "tier %q has weight but no catalog items match season %q region %q"
	ErrMsgDuplicateItem      = "duplicate catalog item %q"
	ErrMsgDuplicateMilestone = "duplicate milestone %d"
	ErrMsgUnknownRewardItem  = "reward references unknown item %q"
	ErrMsgUnknownRewardPack  = "reward references unavailable pack %q"
	ErrMsgPointsRange        = "points reward min %d exceeds max %d"
	ErrMsgTopGradeInTable    = "top grade %q must not appear in the secondary grade table"
	ErrMsgMissingGradeReward = "grade %q has no reward"
	ErrMsgMultiplierRange    = "win multiplier range [%v, %v] is invalid"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgLoaded          = "Reward config loaded"
	LogMsgFeatureDisabled = "Reward config feature disabled"
	LogMsgReloaded        = "Reward config reloaded"
	LogMsgReloadFailed    = "Reward config reload failed, keeping previous catalog"
	LogMsgWatchStarted    = "Watching reward config for changes"
	LogMsgWatchError      = "Reward config watcher error"
)
