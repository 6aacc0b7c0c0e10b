package player

const (
	OpGrant = "player.grant"

	// MaxUsernameLength matches the players.username column.
	MaxUsernameLength = 64
)

const (
	ErrContextFailedToCreatePlayer = "failed to create player"
	ErrContextFailedToGetPlayer    = "failed to get player"
	ErrContextFailedToGetMileage   = "failed to get mileage"
	ErrContextFailedToBeginTx      = "failed to begin transaction"
	ErrContextFailedToCommitTx     = "failed to commit transaction"
	ErrContextFailedToLockPlayer   = "failed to lock player"
	ErrContextFailedToAdjust       = "failed to adjust balance"
	ErrMsgUsernameRequired         = "username is required"
	ErrMsgUsernameTooLong          = "username exceeds %d characters"
	ErrMsgNegativeBalance          = "initial balance must not be negative"
	ErrMsgZeroGrant                = "grant amount must not be zero"
	ErrMsgPlayerIDRequired         = "player id is required"
)

const (
	LogMsgPlayerRegistered = "Player registered"
	LogMsgBalanceGranted   = "Balance granted"
)
