package raid

// ============================================================================
// Retry Operation Names
// ============================================================================

const (
	OpStartRaid = "raid.start"
	OpAttack    = "raid.attack"
	OpEndRaid   = "raid.end"
)

// ============================================================================
// Leaderboard
// ============================================================================

const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// ============================================================================
// Error Context Messages
// ============================================================================

const (
	ErrContextFailedToBeginTx          = "failed to begin transaction"
	ErrContextFailedToCommitTx         = "failed to commit transaction"
	ErrContextFailedToLoadRaid         = "failed to load active raid"
	ErrContextFailedToCreateRaid       = "failed to create raid"
	ErrContextFailedToUpdateHP         = "failed to update raid hp"
	ErrContextFailedToEndRaid          = "failed to end raid"
	ErrContextFailedToLockPlayer       = "failed to lock player"
	ErrContextFailedToLoadContribution = "failed to load contribution"
	ErrContextFailedToSaveContribution = "failed to save contribution"
	ErrContextFailedToLoadRoster       = "failed to load roster"
	ErrContextFailedToListContributors = "failed to list contributions"
	ErrContextFailedToCreditReward     = "failed to credit raid reward"
	ErrContextFailedToRecordRewards    = "failed to record raid rewards"
	ErrContextFailedToLoadTotals       = "failed to load raid totals"
	ErrContextFailedToLoadLeaderboard  = "failed to load leaderboard"
	ErrMsgPlayerIDRequired             = "player id is required"
	ErrMsgNameRequired                 = "raid name is required"
	ErrMsgMaxHPMustBePositive          = "max hp must be positive"
	ErrMsgMultiplierMustBePositive     = "reward multiplier must be positive"
	ErrMsgRewardPoolNegative           = "reward pool must not be negative"
	ErrMsgRewardBudgetTooLarge         = "reward pool times multiplier exceeds the ledger range"
	ErrMsgDailyCapReached              = "%d of %d attempts used today"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgRaidStarted         = "Raid started"
	LogMsgAttackCalled        = "Raid attack called"
	LogMsgAttackResolved      = "Raid attack resolved"
	LogMsgRaidEnded           = "Raid ended"
	LogMsgRankingUnavailable  = "Leaderboard ranking unavailable, falling back to database"
	LogMsgNothingToDistribute = "Raid ended without damage, nothing distributed"
)
