package domain

import (
	"errors"
	"testing"
)

func mustName(t *testing.T, text string) Name {
	t.Helper()
	name, err := NewName(text)
	if err != nil {
		t.Fatalf("NewName(%q): %v", text, err)
	}
	return name
}

func TestRecord_AddPhone(t *testing.T) {
	record := NewRecord(mustName(t, "Alice"))

	if err := record.AddPhone("1234567890"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := record.AddPhone("123"); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}

	// Duplicates are permitted.
	if err := record.AddPhone("1234567890"); err != nil {
		t.Fatalf("expected duplicate phone to be accepted, got %v", err)
	}
	if got := len(record.Phones()); got != 2 {
		t.Fatalf("expected 2 phones, got %d", got)
	}
}

func TestRecord_ChangePhone(t *testing.T) {
	record := NewRecord(mustName(t, "Alice"))
	if err := record.AddPhone("1111111111"); err != nil {
		t.Fatalf("seed phone: %v", err)
	}

	if err := record.ChangePhone("1111111111", "2222222222"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	phones := record.Phones()
	if len(phones) != 1 || phones[0].String() != "2222222222" {
		t.Fatalf("expected in-place replacement, got %v", phones)
	}

	if err := record.ChangePhone("9999999999", "3333333333"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown old phone, got %v", err)
	}
	if err := record.ChangePhone("2222222222", "bad"); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat for bad new phone, got %v", err)
	}
	if got := record.Phones()[0].String(); got != "2222222222" {
		t.Fatalf("expected record untouched after failed change, got %s", got)
	}
}

func TestRecord_ChangePhone_FirstMatchOnly(t *testing.T) {
	record := NewRecord(mustName(t, "Bob"))
	for _, phone := range []string{"5555555555", "5555555555"} {
		if err := record.AddPhone(phone); err != nil {
			t.Fatalf("seed phone: %v", err)
		}
	}

	if err := record.ChangePhone("5555555555", "6666666666"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	phones := record.Phones()
	if phones[0].String() != "6666666666" || phones[1].String() != "5555555555" {
		t.Fatalf("expected only first duplicate replaced, got %v", phones)
	}
}

func TestRecord_AddBirthday(t *testing.T) {
	record := NewRecord(mustName(t, "Alice"))

	if _, ok := record.Birthday(); ok {
		t.Fatal("expected no birthday on a fresh record")
	}
	if err := record.AddBirthday("15.06.1990"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	err := record.AddBirthday("16.06.1990")
	if !errors.Is(err, ErrBirthdayAlreadySet) {
		t.Fatalf("expected ErrBirthdayAlreadySet, got %v", err)
	}

	birthday, ok := record.Birthday()
	if !ok || birthday.String() != "15.06.1990" {
		t.Fatalf("expected first birthday retained, got %v (set=%v)", birthday, ok)
	}
}

func TestRecord_FormatPhones(t *testing.T) {
	record := NewRecord(mustName(t, "Alice"))
	if got := record.FormatPhones(); got != "" {
		t.Fatalf("expected empty string for no phones, got %q", got)
	}

	for _, phone := range []string{"1234567890", "0987654321"} {
		if err := record.AddPhone(phone); err != nil {
			t.Fatalf("seed phone: %v", err)
		}
	}
	if got := record.FormatPhones(); got != "1234567890, 0987654321" {
		t.Fatalf("unexpected listing %q", got)
	}
}

func TestRestoreRecord(t *testing.T) {
	restored := RestoreRecord("rec-123", mustName(t, "Alice"))
	if restored.ID() != "rec-123" {
		t.Fatalf("expected restored ID rec-123, got %s", restored.ID())
	}

	fresh := RestoreRecord("", mustName(t, "Bob"))
	if fresh.ID() == "" {
		t.Fatal("expected generated ID for empty restore id")
	}
}
