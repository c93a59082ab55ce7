package generator

import "testing"

func TestGenerator_Deterministic(t *testing.T) {
	cfg := Config{NumContacts: 10, MaxPhones: 2, BirthdayChance: 0.5, Seed: 7}

	first, err := New(cfg).Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := New(cfg).Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if first.Len() != cfg.NumContacts || second.Len() != cfg.NumContacts {
		t.Fatalf("expected %d contacts, got %d and %d", cfg.NumContacts, first.Len(), second.Len())
	}

	firstRecords, secondRecords := first.Records(), second.Records()
	for i := range firstRecords {
		if firstRecords[i].Name().String() != secondRecords[i].Name().String() {
			t.Errorf("record %d: names differ between runs", i)
		}
		if firstRecords[i].FormatPhones() != secondRecords[i].FormatPhones() {
			t.Errorf("record %d: phones differ between runs", i)
		}
	}
}

func TestGenerator_ContactsHavePhones(t *testing.T) {
	b, err := New(Config{NumContacts: 5, MaxPhones: 3, BirthdayChance: 1, Seed: 1}).Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, record := range b.Records() {
		if len(record.Phones()) == 0 {
			t.Errorf("contact %s has no phones", record.Name())
		}
		if _, ok := record.Birthday(); !ok {
			t.Errorf("contact %s missing birthday despite chance 1", record.Name())
		}
	}
}
