// Package storage defines the persistence port for the address book and its
// file, sqlite and in-memory implementations.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vanshika/addressbook/internal/book"
	"github.com/vanshika/addressbook/internal/domain"
)

// Store is the minimal contract the application needs to persist the address
// book between sessions. Load is called once at startup, Save once at exit.
type Store interface {
	Load(ctx context.Context) (*book.Book, error)
	Save(ctx context.Context, b *book.Book) error
	Close(ctx context.Context) error
}

// Options configures a store implementation.
type Options struct {
	Path string
}

// ErrMissingPath indicates the storage path is not provided.
var ErrMissingPath = errors.New("storage path is required")

// SnapshotVersion is the current wire-format version.
const SnapshotVersion = 1

// Snapshot is the serialized form of the whole address book.
type Snapshot struct {
	Version    int               `json:"version"`
	SnapshotID string            `json:"snapshotId"`
	SavedAt    time.Time         `json:"savedAt"`
	Contacts   []ContactSnapshot `json:"contacts"`
}

// ContactSnapshot is the serialized form of one record.
type ContactSnapshot struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

// Encode captures the book as a snapshot, preserving record order.
func Encode(b *book.Book) Snapshot {
	snap := Snapshot{
		Version:    SnapshotVersion,
		SnapshotID: uuid.NewString(),
		SavedAt:    time.Now().UTC(),
	}
	for _, record := range b.Records() {
		contact := ContactSnapshot{
			ID:   record.ID(),
			Name: record.Name().String(),
		}
		for _, phone := range record.Phones() {
			contact.Phones = append(contact.Phones, phone.String())
		}
		if birthday, ok := record.Birthday(); ok {
			contact.Birthday = birthday.String()
		}
		snap.Contacts = append(snap.Contacts, contact)
	}
	return snap
}

// Decode rebuilds a book from a snapshot, re-validating every field through
// the domain constructors so corrupt payloads are rejected rather than
// admitted as malformed records.
func Decode(snap Snapshot) (*book.Book, error) {
	b := book.New()
	for _, contact := range snap.Contacts {
		name, err := domain.NewName(contact.Name)
		if err != nil {
			return nil, fmt.Errorf("decode contact %q: %w", contact.Name, err)
		}
		record := domain.RestoreRecord(contact.ID, name)
		for _, phone := range contact.Phones {
			if err := record.AddPhone(phone); err != nil {
				return nil, fmt.Errorf("decode contact %q: %w", contact.Name, err)
			}
		}
		if contact.Birthday != "" {
			if err := record.AddBirthday(contact.Birthday); err != nil {
				return nil, fmt.Errorf("decode contact %q: %w", contact.Name, err)
			}
		}
		b.Put(record)
	}
	return b, nil
}
