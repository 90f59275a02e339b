package label

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidPageSize marks a page-size specification that is neither a
// known preset nor a WIDTHxHEIGHT pair.
var ErrInvalidPageSize = errors.New("invalid page size")

// presets is read-only after init. Values are points.
var presets = map[string]PageSize{
	"a4":     {W: 595.276, H: 841.89},
	"letter": {W: 612.0, H: 792.0},
}

var pageSizePattern = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)x(\d+(?:\.\d+)?)\s*$`)

// ParsePageSize resolves a named preset ("a4", "letter", case-insensitive)
// or an explicit "WIDTHxHEIGHT" pair in points into a PageSize. The result
// is returned exactly as specified; callers wanting portrait orientation
// apply Portrait themselves.
func ParsePageSize(value string) (PageSize, error) {
	parsed := strings.ToLower(strings.TrimSpace(value))
	if size, ok := presets[parsed]; ok {
		return size, nil
	}

	m := pageSizePattern.FindStringSubmatch(parsed)
	if m == nil {
		return PageSize{}, fmt.Errorf("%w: %q, use 'a4', 'letter', or 'WIDTHxHEIGHT' in points (e.g. 595x842)", ErrInvalidPageSize, value)
	}

	w, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return PageSize{}, fmt.Errorf("%w: %q", ErrInvalidPageSize, value)
	}
	h, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return PageSize{}, fmt.Errorf("%w: %q", ErrInvalidPageSize, value)
	}
	return PageSize{W: w, H: h}, nil
}
