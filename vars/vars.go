package vars

import (
	"fmt"
	"strings"
)

// FirstNonZero picks the first configured value, falling back through
// command line, config files and defaults in argument order.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}

func DerefOrZero[T any](ptr *T) (ret T) {
	if ptr != nil {
		ret = *ptr
	}
	return
}

// ParseBool accepts the spellings people type on a command line.
func ParseBool(str string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "t", "yes", "y", "on", "1":
		return true, nil
	case "false", "f", "no", "n", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", str)
}
