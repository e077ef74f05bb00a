package cashbook

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const maxRecipientLength = 64

// Recipient is the free-text name of whoever received or paid the money.
type Recipient struct {
	name string
}

func NewRecipient(name string) (Recipient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Recipient{}, fmt.Errorf("%w: recipient is empty", ErrInvalidArgument)
	}

	if utf8.RuneCountInString(name) > maxRecipientLength {
		return Recipient{}, fmt.Errorf("%w: recipient is longer than %d characters", ErrInvalidArgument, maxRecipientLength)
	}

	return Recipient{name: name}, nil
}

func (r Recipient) String() string {
	return r.name
}
