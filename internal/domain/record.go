package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Record aggregates one contact: an immutable name, an ordered sequence of
// phone numbers and at most one birthday. Duplicate phone numbers are
// permitted; ChangePhone replaces the first match only.
type Record struct {
	id       string
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates an empty record for the given name with a fresh ID.
func NewRecord(name Name) *Record {
	return &Record{
		id:   uuid.NewString(),
		name: name,
	}
}

// RestoreRecord rebuilds a record with a previously persisted ID. An empty id
// is replaced with a fresh one so pre-ID snapshots stay loadable.
func RestoreRecord(id string, name Name) *Record {
	if id == "" {
		id = uuid.NewString()
	}
	return &Record{
		id:   id,
		name: name,
	}
}

// ID returns the stable record identifier, preserved across persistence.
func (r *Record) ID() string {
	return r.id
}

// Name returns the contact name.
func (r *Record) Name() Name {
	return r.name
}

// AddPhone validates and appends a phone number to the record.
func (r *Record) AddPhone(text string) error {
	phone, err := NewPhone(text)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// ChangePhone replaces the first phone matching oldText with a newly
// validated value. A miss on oldText fails with ErrNotFound; an invalid
// newText fails with ErrInvalidFormat and leaves the record untouched.
func (r *Record) ChangePhone(oldText, newText string) error {
	for i, phone := range r.phones {
		if phone.String() == oldText {
			replacement, err := NewPhone(newText)
			if err != nil {
				return err
			}
			r.phones[i] = replacement
			return nil
		}
	}
	return fmt.Errorf("%w: old phone number %s", ErrNotFound, oldText)
}

// AddBirthday sets the birthday if none is set yet. A second call fails with
// ErrBirthdayAlreadySet and retains the original value.
func (r *Record) AddBirthday(text string) error {
	if r.birthday != nil {
		return fmt.Errorf("%w: birthday is already set to %s", ErrBirthdayAlreadySet, r.birthday)
	}
	birthday, err := NewBirthday(text)
	if err != nil {
		return err
	}
	r.birthday = &birthday
	return nil
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// Phones returns a copy of the phone sequence in insertion order.
func (r *Record) Phones() []Phone {
	return append([]Phone(nil), r.phones...)
}

// FormatPhones renders the phone sequence as a comma-joined list, preserving
// order. A record without phones yields an empty string.
func (r *Record) FormatPhones() string {
	if len(r.phones) == 0 {
		return ""
	}
	parts := make([]string, len(r.phones))
	for i, phone := range r.phones {
		parts[i] = phone.String()
	}
	return strings.Join(parts, ", ")
}
