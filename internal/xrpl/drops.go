package xrpl

import (
	"fmt"
	"strconv"
	"strings"
)

// dropsPerXRP is the number of drops in one XRP.
const dropsPerXRP = 1_000_000

// XRPToDrops converts a decimal XRP amount string (up to six fractional
// digits) to drops.
func XRPToDrops(xrp string) (uint64, error) {
	s := strings.TrimSpace(xrp)
	if s == "" {
		return 0, fmt.Errorf("empty XRP amount")
	}

	whole, fraction := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, fraction = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(fraction) > 6 {
		return 0, fmt.Errorf("XRP amount %q exceeds drop precision", xrp)
	}

	wholeValue, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid XRP amount %q: %w", xrp, err)
	}

	var fractionValue uint64
	if fraction != "" {
		fractionValue, err = strconv.ParseUint(fraction, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid XRP amount %q: %w", xrp, err)
		}
		for i := len(fraction); i < 6; i++ {
			fractionValue *= 10
		}
	}

	return wholeValue*dropsPerXRP + fractionValue, nil
}

// DropsToXRP formats a drop amount as a decimal XRP string with trailing
// zeros trimmed.
func DropsToXRP(drops uint64) string {
	whole := drops / dropsPerXRP
	fraction := drops % dropsPerXRP
	if fraction == 0 {
		return strconv.FormatUint(whole, 10)
	}
	s := fmt.Sprintf("%d.%06d", whole, fraction)
	return strings.TrimRight(s, "0")
}
