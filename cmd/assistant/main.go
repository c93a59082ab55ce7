package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/vanshika/addressbook/internal/book"
	"github.com/vanshika/addressbook/internal/command"
	"github.com/vanshika/addressbook/internal/config"
	"github.com/vanshika/addressbook/internal/logging"
	"github.com/vanshika/addressbook/internal/storage"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)

	store, err := buildStore(ctx, cfg.Storage)
	if err != nil {
		logger.Error("failed to create storage backend", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logger.Warn("closing storage failed", "error", err)
		}
	}()

	b := loadBook(ctx, logger, store, cfg.Storage)
	dispatcher := command.NewDispatcher(logger, b, store)

	fmt.Println("Welcome to the assistant bot! Type 'help' to see all commands.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Enter a command: ")
		if !scanner.Scan() {
			// EOF on stdin is treated like an explicit exit: save, then stop.
			fmt.Println()
			result := dispatcher.Execute(ctx, "exit")
			fmt.Println(result.Message)
			break
		}

		result := dispatcher.Execute(ctx, scanner.Text())
		if result.Message != "" {
			fmt.Println(result.Message)
		}
		if result.Quit {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		logger.Error("reading input failed", "error", err)
		os.Exit(1)
	}
}

// loadBook restores the persisted address book. Any load failure downgrades
// to an empty book with a warning so the session can still start.
func loadBook(ctx context.Context, logger *slog.Logger, store storage.Store, cfg config.StorageConfig) *book.Book {
	b, err := store.Load(ctx)
	if err != nil {
		logger.Warn("loading address book failed, starting empty",
			"error", err, "backend", cfg.Backend, "path", cfg.Path)
		return book.New()
	}
	if b.Len() > 0 {
		logger.Info("address book loaded", "contacts", b.Len(), "backend", cfg.Backend, "path", cfg.Path)
	}
	return b
}

func buildStore(ctx context.Context, cfg config.StorageConfig) (storage.Store, error) {
	opts := storage.Options{Path: cfg.Path}
	switch cfg.Backend {
	case config.BackendSQLite:
		return storage.NewSQLiteStore(ctx, opts)
	default:
		return storage.NewFileStore(opts)
	}
}
