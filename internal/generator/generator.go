// Package generator produces synthetic address book data used to seed demo
// and test environments.
package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vanshika/addressbook/internal/book"
	"github.com/vanshika/addressbook/internal/domain"
)

// Generator produces synthetic contacts aligned with the address book schema.
type Generator struct {
	cfg  Config
	rand *rand.Rand
}

var (
	firstNames = []string{
		"Olena", "Andrii", "Kateryna", "Dmytro", "Iryna", "Taras", "Sofia",
		"Maksym", "Natalia", "Oleh", "Yulia", "Bohdan", "Anna", "Petro",
	}
	lastNames = []string{
		"Shevchenko", "Kovalenko", "Bondarenko", "Tkachenko", "Melnyk",
		"Kravchenko", "Oliynyk", "Shevchuk", "Polishchuk", "Lysenko",
	}
)

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	if cfg.NumContacts <= 0 {
		cfg.NumContacts = DefaultConfig().NumContacts
	}
	if cfg.MaxPhones <= 0 {
		cfg.MaxPhones = DefaultConfig().MaxPhones
	}
	if cfg.BirthdayChance <= 0 {
		cfg.BirthdayChance = DefaultConfig().BirthdayChance
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:  cfg,
		rand: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Generate synthesises an address book with random contacts. Names are
// suffixed with an index so every record gets a unique key.
func (g *Generator) Generate() (*book.Book, error) {
	b := book.New()
	for i := 0; i < g.cfg.NumContacts; i++ {
		nameText := fmt.Sprintf("%s-%s-%03d",
			firstNames[g.rand.Intn(len(firstNames))],
			lastNames[g.rand.Intn(len(lastNames))],
			i+1)

		record, err := b.Upsert(nameText, nil)
		if err != nil {
			return nil, fmt.Errorf("generate contact %s: %w", nameText, err)
		}

		phones := 1 + g.rand.Intn(g.cfg.MaxPhones)
		for p := 0; p < phones; p++ {
			if err := record.AddPhone(g.randomPhone()); err != nil {
				return nil, fmt.Errorf("generate phone for %s: %w", nameText, err)
			}
		}

		if g.rand.Float64() < g.cfg.BirthdayChance {
			if err := record.AddBirthday(g.randomBirthday()); err != nil {
				return nil, fmt.Errorf("generate birthday for %s: %w", nameText, err)
			}
		}
	}
	return b, nil
}

func (g *Generator) randomPhone() string {
	digits := make([]byte, 10)
	for i := range digits {
		digits[i] = byte('0' + g.rand.Intn(10))
	}
	return string(digits)
}

func (g *Generator) randomBirthday() string {
	// Day capped at 28 so every generated date is valid in every month.
	date := time.Date(1950+g.rand.Intn(60), time.Month(1+g.rand.Intn(12)), 1+g.rand.Intn(28),
		0, 0, 0, 0, time.UTC)
	return date.Format(domain.BirthdayLayout)
}
