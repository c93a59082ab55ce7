package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vanshika/addressbook/internal/book"
)

// FileStore persists the address book as a pretty-printed JSON snapshot.
type FileStore struct {
	path string
}

// NewFileStore validates the options and returns a file-backed store.
func NewFileStore(opts Options) (*FileStore, error) {
	if opts.Path == "" {
		return nil, ErrMissingPath
	}
	return &FileStore{path: opts.Path}, nil
}

// Load reads the snapshot file. A missing file degrades to an empty book;
// unreadable or corrupt content surfaces an error so the caller can decide
// whether to start empty.
func (s *FileStore) Load(_ context.Context) (*book.Book, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return book.New(), nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}

	loaded, err := Decode(snap)
	if err != nil {
		return nil, fmt.Errorf("restore %s: %w", s.path, err)
	}
	return loaded, nil
}

// Save writes the full book as one snapshot, creating parent directories as
// needed.
func (s *FileStore) Save(_ context.Context, b *book.Book) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(Encode(b)); err != nil {
		return fmt.Errorf("encode json for %s: %w", s.path, err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (s *FileStore) Close(context.Context) error {
	return nil
}
