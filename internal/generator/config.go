package generator

// Config drives the synthetic contact generator.
type Config struct {
	NumContacts    int
	MaxPhones      int
	BirthdayChance float64
	Seed           int64
}

// DefaultConfig returns baseline settings producing a small demo book.
func DefaultConfig() Config {
	return Config{
		NumContacts:    25,
		MaxPhones:      3,
		BirthdayChance: 0.6,
		Seed:           42,
	}
}
