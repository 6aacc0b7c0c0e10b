package gacha

import "time"

// ============================================================================
// Candidate Cache
// ============================================================================

const (
	// DefaultCandidateCacheSize bounds the number of (tier, season, region) pools kept.
	DefaultCandidateCacheSize = 256
	// DefaultCandidateCacheTTL bounds staleness after an out-of-band catalog edit.
	DefaultCandidateCacheTTL  = 10 * time.Minute
)

// ============================================================================
// Retry Operation Names
// ============================================================================

const (
	OpDraw         = "gacha.draw"
	OpDrawTen      = "gacha.draw_ten"
	OpClaimMileage = "gacha.claim_mileage"
)

// ============================================================================
// Error Context Messages
// ============================================================================

const (
	ErrContextFailedToBeginTx          = "failed to begin transaction"
	ErrContextFailedToCommitTx         = "failed to commit transaction"
	ErrContextFailedToLockPlayer       = "failed to lock player"
	ErrContextFailedToDebit            = "failed to debit pack cost"
	ErrContextFailedToCredit           = "failed to credit reward"
	ErrContextFailedToClaimFreeDraw    = "failed to claim free draw"
	ErrContextFailedToLoadCandidates   = "failed to load candidate items"
	ErrContextFailedToCheckOwnership   = "failed to check ownership"
	ErrContextFailedToAddOwnership     = "failed to add ownership"
	ErrContextFailedToUpdateMileage    = "failed to update mileage"
	ErrContextFailedToRecordDraws      = "failed to record draws"
	ErrContextFailedToResolveItem      = "failed to resolve reward item"
	ErrContextFailedToGetCollection    = "failed to get collection"
	ErrContextFailedToCheckFreeDraw    = "failed to check free draw"
	ErrContextFailedToMarkMilestone    = "failed to mark milestone claimed"
	ErrMsgUnknownMilestone             = "milestone %d is not configured"
	ErrMsgRewardItemMissing            = "reward item %q is not in the catalog"
	ErrMsgUnknownRewardType            = "unknown reward type %q"
	ErrMsgMileageTooLow                = "mileage %d is below milestone %d"
	ErrMsgMilestoneClaimed             = "milestone %d already claimed"
	ErrMsgPlayerIDRequired             = "player id is required"
	ErrMsgPackTypeRequired             = "pack type is required"
	ErrMsgMilestoneMustBePositive      = "milestone must be positive"
	ErrMsgPackOpenedWithNonPositiveRun = "pack must be opened at least once"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgDrawCalled          = "Draw called"
	LogMsgDrawCompleted       = "Draw completed"
	LogMsgMileageClaimCalled  = "Mileage claim called"
	LogMsgMileageClaimed      = "Mileage milestone claimed"
	LogMsgCandidateCacheMiss  = "Candidate pool cache miss"
	LogMsgCandidateCacheClear = "Candidate pool cache cleared"
)
