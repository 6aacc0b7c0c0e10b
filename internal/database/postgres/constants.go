package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation   = "23505"
	// PgErrorCodeLockNotAvailable is raised when lock_timeout expires
	PgErrorCodeLockNotAvailable  = "55P03"
	PgErrorCodeSerialization     = "40001"
	PgErrorCodeDeadlockDetected  = "40P01"
	PgErrorCodeCheckViolation    = "23514"
	PgErrorCodeForeignKeyMissing = "23503"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToSetLockTimeout    = "failed to set lock timeout"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Player Operations
const (
	ErrMsgFailedToInsertPlayer   = "failed to insert player"
	ErrMsgFailedToGetPlayer      = "failed to get player"
	ErrMsgFailedToLockPlayer     = "failed to lock player"
	ErrMsgFailedToAdjustBalance  = "failed to adjust balance"
	ErrMsgUsernameTaken          = "username %q already exists"
	ErrMsgFailedToGetMileage     = "failed to get mileage"
	ErrMsgFailedToLockMileage    = "failed to lock mileage"
	ErrMsgFailedToUpdateMileage  = "failed to update mileage"
	ErrMsgFailedToClaimMilestone = "failed to claim milestone"
)

// Error Messages - Item Operations
const (
	ErrMsgFailedToGetAllItems     = "failed to get all items"
	ErrMsgFailedToGetItemByName   = "failed to get item by name"
	ErrMsgFailedToListItems       = "failed to list items"
	ErrMsgFailedToInsertItem      = "failed to insert item"
	ErrMsgFailedToUpdateItem      = "failed to update item"
	ErrMsgFailedToDeactivateItems = "failed to deactivate items"
	ErrMsgItemNotFound            = "item %q not found"
)

// Error Messages - Gacha Operations
const (
	ErrMsgFailedToClaimFreeDraw  = "failed to claim free draw"
	ErrMsgFailedToCheckFreeDraw  = "failed to check free draw"
	ErrMsgFailedToGetOwnership   = "failed to get ownership"
	ErrMsgFailedToAddOwnership   = "failed to add ownership"
	ErrMsgFailedToGetCollection  = "failed to get collection"
	ErrMsgFailedToRecordDraws    = "failed to record draws"
	ErrMsgFailedToMarshalReward  = "failed to marshal reward"
	ErrMsgFailedToParseReward    = "failed to parse reward"
)

// Error Messages - Lottery Operations
const (
	ErrMsgFailedToGetBoard    = "failed to get board"
	ErrMsgFailedToCreateBoard = "failed to create board"
	ErrMsgFailedToGetCells    = "failed to get board cells"
	ErrMsgFailedToRevealCell  = "failed to reveal cell"
	ErrMsgFailedToResetBoard  = "failed to reset board"
	ErrMsgFailedToRecordPick  = "failed to record pick"
)

// Error Messages - Raid Operations
const (
	ErrMsgFailedToGetRaid             = "failed to get active raid"
	ErrMsgFailedToCreateRaid          = "failed to create raid"
	ErrMsgFailedToUpdateRaid          = "failed to update raid"
	ErrMsgFailedToEndRaid             = "failed to end raid"
	ErrMsgFailedToGetContribution     = "failed to get contribution"
	ErrMsgFailedToSaveContribution    = "failed to save contribution"
	ErrMsgFailedToListContributions   = "failed to list contributions"
	ErrMsgFailedToListOwnedTiers      = "failed to list owned tiers"
	ErrMsgFailedToRecordRaidRewards   = "failed to record raid rewards"
	ErrMsgFailedToGetRaidTotals       = "failed to get raid totals"
	ErrMsgFailedToGetTopContributors  = "failed to get top contributors"
	ErrMsgFailedToGetRaidRewards      = "failed to get raid rewards"
	ErrMsgFailedToResetDailyAttempts  = "failed to reset daily attempts"
	ErrMsgFailedToPruneFreeDrawClaims = "failed to prune free draw claims"
)
