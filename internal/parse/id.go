package parse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var digitsRe = regexp.MustCompile(`^[0-9]+$`)

// ErrInvalidID is returned for identifiers that are not positive decimal integers.
var ErrInvalidID = errors.New("invalid id")

// ID parses a path identifier. Only plain decimal digits are accepted, so signs,
// whitespace, fractions and hex all fail, as do zero and values beyond int64.
func ID(raw string) (int64, error) {
	if !digitsRe.MatchString(raw) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidID, raw)
	}
	if id == 0 {
		return 0, fmt.Errorf("%w: %q is not positive", ErrInvalidID, raw)
	}
	return id, nil
}
