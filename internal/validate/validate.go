package validate

import (
	"strconv"
	"strings"
)

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 255 {
		return "", false
	}
	return s, true
}

// Password enforces the minimum-length policy for new registrations.
func Password(s string) bool {
	return len(s) >= 6
}

// ProductID parses a route id. Anything that is not a positive integer
// behaves like an absent product.
func ProductID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
