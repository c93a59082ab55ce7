// Package book implements the address book store: an insertion-ordered
// mapping from contact name to record, plus the upcoming-birthday query.
package book

import (
	"fmt"
	"sort"
	"time"

	"github.com/vanshika/addressbook/internal/domain"
)

// Book owns all records, keyed by the contact name's text. Callers mutate it
// only through the exported operations; the underlying map is never exposed.
type Book struct {
	records map[string]*domain.Record
	order   []string
}

// New returns an empty address book.
func New() *Book {
	return &Book{
		records: make(map[string]*domain.Record),
	}
}

// Len reports the number of stored records.
func (b *Book) Len() int {
	return len(b.records)
}

// Get returns the record stored under nameText, or ErrNotFound.
func (b *Book) Get(nameText string) (*domain.Record, error) {
	record, ok := b.records[nameText]
	if !ok {
		return nil, fmt.Errorf("%w: contact %s", domain.ErrNotFound, nameText)
	}
	return record, nil
}

// Upsert returns the existing record for nameText, or constructs one via the
// factory, inserts it and returns it. Re-adding an existing name therefore
// never clobbers its record.
func (b *Book) Upsert(nameText string, factory func(domain.Name) *domain.Record) (*domain.Record, error) {
	if record, ok := b.records[nameText]; ok {
		return record, nil
	}
	name, err := domain.NewName(nameText)
	if err != nil {
		return nil, err
	}
	if factory == nil {
		factory = domain.NewRecord
	}
	record := factory(name)
	b.put(record)
	return record, nil
}

// Put inserts or replaces a record under its own name, preserving insertion
// order for new names. Used by the persistence layer when restoring snapshots.
func (b *Book) Put(record *domain.Record) {
	b.put(record)
}

func (b *Book) put(record *domain.Record) {
	key := record.Name().String()
	if _, ok := b.records[key]; !ok {
		b.order = append(b.order, key)
	}
	b.records[key] = record
}

// Records returns all records in insertion order.
func (b *Book) Records() []*domain.Record {
	out := make([]*domain.Record, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, b.records[key])
	}
	return out
}

// Listing pairs a contact name with its formatted phone list.
type Listing struct {
	Name   string
	Phones string
}

// ListAll returns one listing per record, in insertion order.
func (b *Book) ListAll() []Listing {
	out := make([]Listing, 0, len(b.order))
	for _, record := range b.Records() {
		out = append(out, Listing{
			Name:   record.Name().String(),
			Phones: record.FormatPhones(),
		})
	}
	return out
}

// Occurrence is a birthday projected into the reference year.
type Occurrence struct {
	Name string
	Date time.Time
}

// UpcomingBirthdays returns contacts whose birthday occurs within
// [ref, ref+windowDays], inclusive on both ends. The occurrence is the
// birthday's month and day placed into ref's year; time of day is ignored.
//
// Policy notes:
//   - 29 Feb rolls forward to 1 Mar in non-leap reference years.
//   - Occurrences are computed only in ref's year: a late-December birthday
//     does not match an early-January window of the following year.
//
// Results are sorted by occurrence date, then by name.
func (b *Book) UpcomingBirthdays(ref time.Time, windowDays int) []Occurrence {
	refDate := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	windowEnd := refDate.AddDate(0, 0, windowDays)

	var out []Occurrence
	for _, record := range b.Records() {
		birthday, ok := record.Birthday()
		if !ok {
			continue
		}
		bd := birthday.Date()
		// time.Date normalizes 29 Feb to 1 Mar in non-leap years.
		occurrence := time.Date(refDate.Year(), bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
		if occurrence.Before(refDate) || occurrence.After(windowEnd) {
			continue
		}
		out = append(out, Occurrence{
			Name: record.Name().String(),
			Date: occurrence,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Name < out[j].Name
	})
	return out
}
