package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/vanshika/addressbook/internal/config"
	"github.com/vanshika/addressbook/internal/generator"
	"github.com/vanshika/addressbook/internal/storage"
)

func main() {
	cfg := generator.DefaultConfig()
	var (
		contacts       = flag.Int("contacts", cfg.NumContacts, "number of contacts to generate")
		maxPhones      = flag.Int("max-phones", cfg.MaxPhones, "maximum phone numbers per contact")
		birthdayChance = flag.Float64("birthday-chance", cfg.BirthdayChance, "probability a contact has a birthday")
		seed           = flag.Int64("seed", cfg.Seed, "random seed for deterministic generation")
		backend        = flag.String("backend", config.BackendFile, "storage backend to write to (file|sqlite)")
		output         = flag.String("output", "addressbook.json", "path of the snapshot to write")
		writeStdout    = flag.Bool("stdout", false, "write the snapshot to stdout instead of storage")
	)
	flag.Parse()

	genCfg := generator.Config{
		NumContacts:    *contacts,
		MaxPhones:      *maxPhones,
		BirthdayChance: clampProbability(*birthdayChance),
		Seed:           *seed,
	}

	gen := generator.New(genCfg)
	b, err := gen.Generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	if *writeStdout {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(storage.Encode(b)); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write snapshot to stdout: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx := context.Background()
	store, err := buildStore(ctx, *backend, *output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create storage backend: %v\n", err)
		os.Exit(1)
	}
	defer store.Close(context.Background())

	if err := store.Save(ctx, b); err != nil {
		fmt.Fprintf(os.Stderr, "failed to save snapshot: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "Generated %d contacts into %s (%s backend)\n", b.Len(), *output, *backend)
}

func buildStore(ctx context.Context, backend, path string) (storage.Store, error) {
	opts := storage.Options{Path: path}
	switch backend {
	case config.BackendSQLite:
		return storage.NewSQLiteStore(ctx, opts)
	case config.BackendFile:
		return storage.NewFileStore(opts)
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}

func clampProbability(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
