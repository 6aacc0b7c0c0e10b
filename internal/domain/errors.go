package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Wallet errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Gacha errors
	ErrMsgPackNotFound         = "pack not found"
	ErrMsgAlreadyClaimedToday  = "already claimed today"
	ErrMsgFreePackNotBatchable = "free packs cannot be drawn in batches"
	ErrMsgNotEligible          = "not eligible"
	ErrMsgNoEligibleItems      = "no eligible items for tier"

	// Lottery errors
	ErrMsgInvalidCell     = "invalid cell"
	ErrMsgAlreadyRevealed = "cell already revealed"

	// Raid errors
	ErrMsgNoActiveRaid      = "no active raid"
	ErrMsgRaidAlreadyActive = "a raid is already active"
	ErrMsgAttemptsExhausted = "attempts exhausted"

	// Configuration errors
	ErrMsgInvalidConfiguration = "invalid configuration"

	// Database/System errors
	ErrMsgContention    = "resource contention"
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	ErrPackNotFound         = errors.New(ErrMsgPackNotFound)
	ErrAlreadyClaimedToday  = errors.New(ErrMsgAlreadyClaimedToday)
	ErrFreePackNotBatchable = errors.New(ErrMsgFreePackNotBatchable)
	ErrNotEligible          = errors.New(ErrMsgNotEligible)
	ErrNoEligibleItems      = errors.New(ErrMsgNoEligibleItems)

	ErrInvalidCell     = errors.New(ErrMsgInvalidCell)
	ErrAlreadyRevealed = errors.New(ErrMsgAlreadyRevealed)

	ErrNoActiveRaid      = errors.New(ErrMsgNoActiveRaid)
	ErrRaidAlreadyActive = errors.New(ErrMsgRaidAlreadyActive)
	ErrAttemptsExhausted = errors.New(ErrMsgAttemptsExhausted)

	// ErrInvalidConfiguration is raised while loading reward configuration.
	// It disables the affected pack, lottery or raid; it is never returned from a draw
	// against a table that loaded successfully.
	ErrInvalidConfiguration = errors.New(ErrMsgInvalidConfiguration)

	// ErrContention covers lock timeouts, serialization failures and deadlocks.
	// Services retry it a bounded number of times before surfacing it.
	ErrContention    = errors.New(ErrMsgContention)
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
