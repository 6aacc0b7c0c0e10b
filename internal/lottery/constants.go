package lottery

// OpPick names the pick transaction for retry logging and metrics.
const OpPick = "lottery.pick"

// ============================================================================
// Error Context Messages
// ============================================================================

const (
	ErrContextFailedToBeginTx     = "failed to begin transaction"
	ErrContextFailedToCommitTx    = "failed to commit transaction"
	ErrContextFailedToLoadBoard   = "failed to load board"
	ErrContextFailedToCreateBoard = "failed to create board"
	ErrContextFailedToLockPlayer  = "failed to lock player"
	ErrContextFailedToDebit       = "failed to debit ticket"
	ErrContextFailedToCredit      = "failed to credit reward"
	ErrContextFailedToReveal      = "failed to reveal cell"
	ErrContextFailedToReset       = "failed to reset board"
	ErrContextFailedToRecordPick  = "failed to record pick"
	ErrMsgCellOutOfRange          = "cell %d is outside 1..%d"
	ErrMsgNoRewardForGrade        = "no reward configured for grade %q"
	ErrMsgPlayerIDRequired        = "player id is required"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgPickCalled    = "Lottery pick called"
	LogMsgPickCompleted = "Lottery pick completed"
	LogMsgBoardCreated  = "Lottery board created"
	LogMsgBoardReset    = "Lottery board reset after top grade"
)
