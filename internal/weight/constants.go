package weight

// Scale is the fixed-point factor applied to configured weights.
// Five decimal places are represented exactly.
const Scale int64 = 100000

// MaxFractionDigits is the number of decimal places Scale can hold.
const MaxFractionDigits = 5

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgEmptyTable       = "weight table has no entries"
	ErrMsgDuplicateTier    = "duplicate tier %q"
	ErrMsgNegativeWeight   = "tier %q has negative weight"
	ErrMsgEmptyTier        = "tier name is empty"
	ErrMsgTotalMismatch    = "weights sum to %s, declared total is %s"
	ErrMsgNonPositiveTotal = "declared total must be positive"
	ErrMsgMalformedWeight  = "malformed weight %q"
	ErrMsgTooPrecise       = "weight %q has more than %d decimal places"
	ErrMsgWeightOverflow   = "weight %q is out of range"
)
