package domain

import (
	"fmt"
	"strings"
	"time"
)

// BirthdayLayout is the accepted textual birthday format (DD.MM.YYYY).
const BirthdayLayout = "02.01.2006"

// Name is a validated contact identifier. It doubles as the address book key.
type Name struct {
	value string
}

// NewName validates and wraps a contact name. Leading and trailing whitespace
// is trimmed; an empty result is rejected.
func NewName(text string) (Name, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Name{}, fmt.Errorf("%w: contact name must not be empty", ErrInvalidFormat)
	}
	return Name{value: trimmed}, nil
}

func (n Name) String() string {
	return n.value
}

// Phone is an immutable, validated phone number. Changing a number replaces
// the value, never mutates it.
type Phone struct {
	value string
}

// NewPhone validates and wraps a phone number. The value must be exactly 10
// ASCII decimal digits.
func NewPhone(text string) (Phone, error) {
	if len(text) != 10 {
		return Phone{}, fmt.Errorf("%w: phone number must be 10 digits", ErrInvalidFormat)
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return Phone{}, fmt.Errorf("%w: phone number must be 10 digits", ErrInvalidFormat)
		}
	}
	return Phone{value: text}, nil
}

func (p Phone) String() string {
	return p.value
}

// Birthday is a validated calendar date. It is stored as a date value so
// window arithmetic is exact.
type Birthday struct {
	date time.Time
}

// NewBirthday parses a birthday in DD.MM.YYYY form. Invalid calendar dates
// (29.02 outside leap years, day out of range) are rejected.
func NewBirthday(text string) (Birthday, error) {
	date, err := time.Parse(BirthdayLayout, text)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: birthday must use DD.MM.YYYY", ErrInvalidFormat)
	}
	return Birthday{date: date}, nil
}

// Date returns the underlying date value (midnight UTC).
func (b Birthday) Date() time.Time {
	return b.date
}

func (b Birthday) String() string {
	return b.date.Format(BirthdayLayout)
}
