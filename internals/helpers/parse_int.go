package helper

import (
	"strconv"
	"strings"
)

// ParseIntLoose reads a leading base-10 integer: leading whitespace and one
// sign are allowed, parsing stops at the first non-digit, and " 12abc" is 12.
// There is no radix detection, so "0x10" is 0. ok is false when no digit is
// found or the value does not fit in an int.
func ParseIntLoose(s string) (n int, ok bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsFrom := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsFrom {
		return 0, false
	}

	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}
