// Package coordinator sequences validated contact mutations into store
// calls, user-facing notifications and cache refreshes. Validation failures
// never reach the store; store failures surface as a generic failure
// notification and are not retried.
package coordinator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	ds "github.com/shivangdevina/TRIA-Contact-hub/datastores"
	"github.com/shivangdevina/TRIA-Contact-hub/validate"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notification struct {
	Level   Level
	Message string
}

// Notifier receives operation outcomes meant for the user. A store call
// always fires its completion, even if the request that issued it is long
// gone, so implementations must tolerate stale contexts.
type Notifier interface {
	Notify(context.Context, Notification)
}

// SlogNotifier delivers notifications to a logger.
type SlogNotifier struct {
	Logger *slog.Logger
}

func (n SlogNotifier) Notify(ctx context.Context, note Notification) {
	level := slog.LevelInfo
	if note.Level == LevelError {
		level = slog.LevelWarn
	}
	n.Logger.LogAttrs(ctx, level, note.Message, slog.String("outcome", string(note.Level)))
}

// ValidationError reports per-field problems with a submission. The
// offending mutation was never issued to the store.
type ValidationError struct {
	Result validate.Result
}

func (e *ValidationError) Error() string { return "invalid contact fields" }

// Coordinator bridges form submissions to a [ds.ContactsStore] and keeps a
// cached list snapshot that mutations invalidate. Concurrent submissions
// are neither deduplicated nor queued: two overlapping edits of the same
// record race and the later store resolution wins.
type Coordinator struct {
	store    ds.ContactsStore
	notifier Notifier

	mu     sync.Mutex
	cached []*ds.Contact // nil when invalidated
}

func New(store ds.ContactsStore, notifier Notifier) *Coordinator {
	return &Coordinator{store: store, notifier: notifier}
}

// Contacts returns the displayed collection. A blank query serves from the
// cache when a mutation has not invalidated it; a non-blank query is always
// a store-side search.
func (c *Coordinator) Contacts(ctx context.Context, query string) ([]*ds.Contact, error) {
	if query != "" {
		return c.store.Search(ctx, query)
	}

	c.mu.Lock()
	cached := c.cached
	c.mu.Unlock()
	if cached != nil {
		return cached, nil
	}

	contacts, err := c.store.List(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.cached = contacts
	c.mu.Unlock()
	return contacts, nil
}

// Get fetches a single record, bypassing the cache.
func (c *Coordinator) Get(ctx context.Context, id ds.ContactID) (*ds.Contact, error) {
	return c.store.Get(ctx, id)
}

func (c *Coordinator) invalidate() {
	c.mu.Lock()
	c.cached = nil
	c.mu.Unlock()
}

func (c *Coordinator) Create(ctx context.Context, f ds.ContactFields) (*ds.Contact, error) {
	if res := validate.Check(validate.Fields{Name: f.Name, Email: f.Email, Phone: f.Phone}); !res.Valid() {
		return nil, &ValidationError{Result: res}
	}

	contact, err := c.store.Create(ctx, f)
	if err != nil {
		c.notifier.Notify(ctx, Notification{LevelError, "could not create contact"})
		return nil, err
	}
	c.invalidate()
	c.notifier.Notify(ctx, Notification{LevelSuccess, fmt.Sprintf("created contact %s", contact.Name)})
	return contact, nil
}

func (c *Coordinator) Update(ctx context.Context, id ds.ContactID, f ds.ContactFields) (*ds.Contact, error) {
	if res := validate.Check(validate.Fields{Name: f.Name, Email: f.Email, Phone: f.Phone}); !res.Valid() {
		return nil, &ValidationError{Result: res}
	}

	contact, err := c.store.Update(ctx, id, f)
	if err != nil {
		c.notifier.Notify(ctx, Notification{LevelError, "could not update contact"})
		return nil, err
	}
	c.invalidate()
	c.notifier.Notify(ctx, Notification{LevelSuccess, fmt.Sprintf("updated contact %s", contact.Name)})
	return contact, nil
}

func (c *Coordinator) Delete(ctx context.Context, id ds.ContactID) error {
	// Capture the name before the delete resolves; the record is gone after.
	var name string
	if contact, err := c.store.Get(ctx, id); err == nil {
		name = contact.Name
	}

	if err := c.store.Delete(ctx, id); err != nil {
		c.notifier.Notify(ctx, Notification{LevelError, "could not delete contact"})
		return err
	}
	c.invalidate()
	msg := "deleted contact"
	if name != "" {
		msg = fmt.Sprintf("deleted contact %s", name)
	}
	c.notifier.Notify(ctx, Notification{LevelSuccess, msg})
	return nil
}
