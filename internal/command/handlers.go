package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/vanshika/addressbook/internal/domain"
)

const upcomingWindowDays = 7

const helpText = `Available commands:
    hello - Greet the user.
    add [name] [phone...] - Add a new contact or update existing (multiple phones can be added).
    change [name] [old phone] [new phone] - Change the phone number of an existing contact.
    phone [name] - Show the phone number(s) of a contact.
    all - Show all saved contacts.
    add-birthday [name] [birthday] - Add a birthday for a contact (DD.MM.YYYY).
    show-birthday [name] - Show the birthday of a contact.
    birthdays - List upcoming birthdays within the next week.
    help - Show available commands.
    close, exit - Save and exit the program.`

func (d *Dispatcher) hello(_ context.Context, args []string) (string, error) {
	if len(args) != 0 {
		return "", fmt.Errorf("%w: hello takes no arguments", ErrArity)
	}
	return "How can I help you?", nil
}

// addContact creates or updates the named record. All phone numbers are
// validated before the book is touched, so a bad phone never leaves behind a
// half-built contact.
func (d *Dispatcher) addContact(_ context.Context, args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("%w: enter a name and at least one phone number", ErrArity)
	}
	name, phones := args[0], args[1:]

	for _, phone := range phones {
		if _, err := domain.NewPhone(phone); err != nil {
			return "", err
		}
	}

	record, err := d.book.Upsert(name, nil)
	if err != nil {
		return "", err
	}
	for _, phone := range phones {
		if err := record.AddPhone(phone); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("Contact %s added/updated with phone(s): %s.", name, strings.Join(phones, "; ")), nil
}

func (d *Dispatcher) changeContact(_ context.Context, args []string) (string, error) {
	if len(args) != 3 {
		return "", fmt.Errorf("%w: enter a name, old phone number, and new phone number", ErrArity)
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	record, err := d.book.Get(name)
	if err != nil {
		return "", err
	}
	if err := record.ChangePhone(oldPhone, newPhone); err != nil {
		return "", err
	}

	return fmt.Sprintf("Contact %s's phone number changed from %s to %s.", name, oldPhone, newPhone), nil
}

func (d *Dispatcher) showPhone(_ context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: enter a name", ErrArity)
	}
	record, err := d.book.Get(args[0])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %s", record.Name(), record.FormatPhones()), nil
}

func (d *Dispatcher) showAll(_ context.Context, args []string) (string, error) {
	if len(args) != 0 {
		return "", fmt.Errorf("%w: all takes no arguments", ErrArity)
	}
	listings := d.book.ListAll()
	if len(listings) == 0 {
		return "No contacts found.", nil
	}
	lines := make([]string, len(listings))
	for i, listing := range listings {
		lines[i] = fmt.Sprintf("%s: %s", listing.Name, listing.Phones)
	}
	return strings.Join(lines, "\n"), nil
}

func (d *Dispatcher) addBirthday(_ context.Context, args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("%w: enter a name and birthday in DD.MM.YYYY format", ErrArity)
	}
	name, birthday := args[0], args[1]

	record, err := d.book.Get(name)
	if err != nil {
		return "", err
	}
	if err := record.AddBirthday(birthday); err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday for %s added.", name), nil
}

func (d *Dispatcher) showBirthday(_ context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: enter a name", ErrArity)
	}
	name := args[0]

	record, err := d.book.Get(name)
	if err != nil {
		return "", fmt.Errorf("%w: birthday for %s", domain.ErrNotFound, name)
	}
	birthday, ok := record.Birthday()
	if !ok {
		return "", fmt.Errorf("%w: birthday for %s", domain.ErrNotFound, name)
	}
	return fmt.Sprintf("%s's birthday is on %s", name, birthday), nil
}

func (d *Dispatcher) birthdays(_ context.Context, args []string) (string, error) {
	if len(args) != 0 {
		return "", fmt.Errorf("%w: birthdays takes no arguments", ErrArity)
	}
	upcoming := d.book.UpcomingBirthdays(d.nowFn(), upcomingWindowDays)
	if len(upcoming) == 0 {
		return "No upcoming birthdays next week.", nil
	}
	lines := make([]string, 0, len(upcoming)+1)
	lines = append(lines, "Upcoming birthdays:")
	for _, occurrence := range upcoming {
		lines = append(lines, fmt.Sprintf("%s on %s", occurrence.Name, occurrence.Date.Format(domain.BirthdayLayout)))
	}
	return strings.Join(lines, "\n"), nil
}

func (d *Dispatcher) help(_ context.Context, args []string) (string, error) {
	if len(args) != 0 {
		return "", fmt.Errorf("%w: help takes no arguments", ErrArity)
	}
	return helpText, nil
}
