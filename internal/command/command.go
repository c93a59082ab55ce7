// Package command implements the dispatch and validation layer: it parses
// raw input lines, routes them to per-verb handlers and converts every
// failure into a one-line message so the surrounding loop never aborts on
// bad user input.
package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vanshika/addressbook/internal/book"
	"github.com/vanshika/addressbook/internal/domain"
	"github.com/vanshika/addressbook/internal/storage"
)

// ErrArity indicates a command invoked with the wrong number of arguments.
var ErrArity = errors.New("wrong arguments")

// Handler executes one verb against the address book and returns the message
// to display. Validation failures are returned as errors and rendered by the
// dispatcher's single adapter.
type Handler func(ctx context.Context, args []string) (string, error)

// Result is the outcome of dispatching one input line.
type Result struct {
	Message string
	Quit    bool
}

// Dispatcher routes parsed commands to handlers. It holds no session state
// beyond the book and the persistence store.
type Dispatcher struct {
	logger   *slog.Logger
	book     *book.Book
	store    storage.Store
	handlers map[string]Handler
	nowFn    func() time.Time
}

// NewDispatcher wires the handler table for the supported verbs.
func NewDispatcher(logger *slog.Logger, b *book.Book, store storage.Store) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		book:   b,
		store:  store,
		nowFn:  time.Now,
	}
	d.handlers = map[string]Handler{
		"hello":         d.hello,
		"add":           d.addContact,
		"change":        d.changeContact,
		"phone":         d.showPhone,
		"all":           d.showAll,
		"add-birthday":  d.addBirthday,
		"show-birthday": d.showBirthday,
		"birthdays":     d.birthdays,
		"help":          d.help,
	}
	return d
}

// WithClock overrides the time provider (used primarily in tests).
func (d *Dispatcher) WithClock(nowFn func() time.Time) {
	if nowFn != nil {
		d.nowFn = nowFn
	}
}

// Execute parses and runs one input line. Blank lines are ignored, unknown
// verbs produce an invalid-command message and close/exit saves the book
// before signalling termination. All handler errors are rendered to text
// here, at the single adapter boundary.
func (d *Dispatcher) Execute(ctx context.Context, line string) Result {
	verb, args := Parse(line)
	if verb == "" {
		return Result{}
	}

	if verb == "close" || verb == "exit" {
		if len(args) != 0 {
			return Result{Message: fmt.Sprintf("%v: %s takes no arguments", ErrArity, verb)}
		}
		return d.quit(ctx)
	}

	handler, ok := d.handlers[verb]
	if !ok {
		return Result{Message: "Invalid command. Please try again."}
	}

	message, err := handler(ctx, args)
	if err != nil {
		return Result{Message: d.renderError(verb, err)}
	}
	return Result{Message: message}
}

// renderError converts a handler failure into the user-visible message.
// Expected kinds carry their own display text; anything else is logged and
// replaced with a generic line so internals never leak to the prompt.
func (d *Dispatcher) renderError(verb string, err error) string {
	switch {
	case errors.Is(err, ErrArity),
		errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrBirthdayAlreadySet):
		return err.Error()
	default:
		d.logger.Error("command failed", "verb", verb, "error", err)
		return "Command failed. Please try again."
	}
}

// quit saves the book through the persistence port and terminates the
// session. A failed save is reported but still terminates; the snapshot on
// disk keeps its previous state.
func (d *Dispatcher) quit(ctx context.Context) Result {
	if err := d.store.Save(ctx, d.book); err != nil {
		d.logger.Error("saving address book failed", "error", err)
		return Result{
			Message: fmt.Sprintf("Failed to save the address book: %v", err),
			Quit:    true,
		}
	}
	return Result{Message: "Good bye!", Quit: true}
}
