package weight

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/osse101/RewardEngine_Go/internal/domain"
)

// ParseUnits converts a decimal weight such as "94.88" or "0.00005" into fixed-point
// units without going through float64. Negative values parse so that validation can
// report them against the tier they belong to.
func ParseUnits(s string) (int64, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, fmt.Errorf("%w: "+ErrMsgMalformedWeight, domain.ErrInvalidConfiguration, s)
	}

	neg := false
	switch raw[0] {
	case '-':
		neg = true
		raw = raw[1:]
	case '+':
		raw = raw[1:]
	}

	intPart, fracPart, _ := strings.Cut(raw, ".")
	if intPart == "" && fracPart == "" {
		return 0, fmt.Errorf("%w: "+ErrMsgMalformedWeight, domain.ErrInvalidConfiguration, s)
	}
	if intPart == "" {
		intPart = "0"
	}
	fracPart = strings.TrimRight(fracPart, "0")
	if len(fracPart) > MaxFractionDigits {
		return 0, fmt.Errorf("%w: "+ErrMsgTooPrecise, domain.ErrInvalidConfiguration, s, MaxFractionDigits)
	}
	if !allDigits(intPart) || !allDigits(fracPart) {
		return 0, fmt.Errorf("%w: "+ErrMsgMalformedWeight, domain.ErrInvalidConfiguration, s)
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil || whole > math.MaxInt64/Scale {
		return 0, fmt.Errorf("%w: "+ErrMsgWeightOverflow, domain.ErrInvalidConfiguration, s)
	}

	var frac int64
	if fracPart != "" {
		padded := fracPart + strings.Repeat("0", MaxFractionDigits-len(fracPart))
		frac, err = strconv.ParseInt(padded, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: "+ErrMsgMalformedWeight, domain.ErrInvalidConfiguration, s)
		}
	}

	units := whole*Scale + frac
	if neg {
		units = -units
	}
	return units, nil
}

// floorUnits truncates a non-negative float to MaxFractionDigits decimals of its
// shortest decimal representation and returns the result in units.
func floorUnits(v float64) (int64, error) {
	whole, frac, _ := strings.Cut(strconv.FormatFloat(v, 'f', -1, 64), ".")
	if len(frac) > MaxFractionDigits {
		frac = frac[:MaxFractionDigits]
	}
	return ParseUnits(whole + "." + frac)
}

// FormatUnits renders fixed-point units as a decimal string, trimming trailing zeros.
func FormatUnits(units int64) string {
	sign := ""
	if units < 0 {
		sign = "-"
		units = -units
	}
	whole := units / Scale
	frac := units % Scale
	if frac == 0 {
		return fmt.Sprintf("%s%d", sign, whole)
	}
	fs := strings.TrimRight(fmt.Sprintf("%0*d", MaxFractionDigits, frac), "0")
	return fmt.Sprintf("%s%d.%s", sign, whole, fs)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
