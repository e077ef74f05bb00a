package cashbook

import (
	"fmt"
	"regexp"
	"strings"
)

// ChitNumberPattern is the persisted chit number format: up to three
// uppercase letters, digits, and an optional "/n" suffix for split chits.
const ChitNumberPattern = `^[A-Z]{0,3}[0-9]+(/[0-9]+)?$`

const maxChitNumberBaseLength = 5

var chitNumberRegexp = regexp.MustCompile(ChitNumberPattern)

type ChitNumber struct {
	value string
}

func NewChitNumber(s string) (ChitNumber, error) {
	if !chitNumberRegexp.MatchString(s) {
		return ChitNumber{}, fmt.Errorf("%w: %q", ErrInvalidChitNumber, s)
	}

	base, _, _ := strings.Cut(s, "/")
	if len(base) > maxChitNumberBaseLength {
		return ChitNumber{}, fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidChitNumber, s, maxChitNumberBaseLength)
	}

	return ChitNumber{value: s}, nil
}

func (n ChitNumber) String() string {
	return n.value
}
