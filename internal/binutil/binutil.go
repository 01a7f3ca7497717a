// Package binutil provides fixed-width hexadecimal formatting for ZCL codes.
//
// ZCL identifiers have fixed bit widths: cluster and attribute codes are
// 16-bit, command codes are 8-bit. Display strings are zero-padded uppercase
// hex without a prefix; callers prepend "0x" where required.
package binutil

import (
	"fmt"
	"strconv"
	"strings"
)

// HexUint16 formats a 16-bit value as four uppercase hex digits.
//
// Example: 6 -> "0006", 0xFC01 -> "FC01"
func HexUint16(v uint16) string {
	return fmt.Sprintf("%04X", v)
}

// HexUint8 formats an 8-bit value as two uppercase hex digits.
//
// Example: 10 -> "0A"
func HexUint8(v uint8) string {
	return fmt.Sprintf("%02X", v)
}

// ParseHex parses a hex string back into an unsigned integer.
// An optional "0x" or "0X" prefix is accepted.
func ParseHex(s string) (uint64, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(trimmed, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing hex %q: %w", s, err)
	}
	return v, nil
}
