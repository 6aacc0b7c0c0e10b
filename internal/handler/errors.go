package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPlayerID       = "Invalid player id"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgReloadConfigFailed    = "Failed to reload reward configuration"
)

// User-facing messages derived from domain errors
const (
	ErrMsgGenericServerError       = "Something went wrong"
	ErrMsgPlayerNotFoundError      = "Player not found"
	ErrMsgPackNotFoundError        = "Pack not found"
	ErrMsgNotEnoughPointsError     = "Not enough points"
	ErrMsgAlreadyClaimedTodayError = "Today's free draw was already used"
	ErrMsgFreePackBatchError       = "Free packs cannot be drawn ten at a time"
	ErrMsgNotEligibleError         = "Milestone is not claimable"
	ErrMsgInvalidCellError         = "Cell must be between 1 and 49"
	ErrMsgAlreadyRevealedError     = "That cell was already revealed"
	ErrMsgNoActiveRaidError        = "No raid is active"
	ErrMsgRaidAlreadyActiveError   = "A raid is already active"
	ErrMsgAttemptsExhaustedError   = "No raid attempts left today"
	ErrMsgFeatureUnavailableError  = "This feature is currently unavailable"
	ErrMsgBusyError                = "Server is busy. Please try again."
	ErrMsgInvalidInputError        = "Invalid request. Please check your inputs."
)

// Success messages for API responses
const (
	MsgConfigReloaded = "Reward configuration reloaded"
	MsgDrawSummary    = "Drew %d card(s) for %s points, %d duplicate(s) refunded %s points"
	MsgPickSummary    = "Cell %d revealed grade %s"
	MsgPickResetNote  = ", the board has been reset"
	MsgAttackSummary  = "Dealt %s damage, %s HP remaining"
	MsgRaidEndSummary = "Distributed %s points to %d contributor(s)"
)
