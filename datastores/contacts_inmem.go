package datastores

import (
	"context"
	"slices"
	"sync"
	"time"
)

// ContactsInmem implements [ContactsStore] over an ordered in-memory
// collection. Each operation waits out a configurable latency before
// touching the collection, emulating a remote call: overlapping mutations
// resolve in the order their latencies elapse and the later resolution
// wins. Mutations are atomic with respect to the collection and reads
// return snapshot copies.
type ContactsInmem struct {
	latency time.Duration

	mu       sync.Mutex
	index    map[ContactID]int
	contacts []*Contact
}

var _ ContactsStore = (*ContactsInmem)(nil)

// NewContactsInmem seeds the collection synchronously, without latency.
func NewContactsInmem(latency time.Duration, seed ...ContactFields) *ContactsInmem {
	s := &ContactsInmem{latency: latency, index: make(map[ContactID]int, len(seed))}
	for _, f := range seed {
		s.append(f)
	}
	return s
}

// wait emulates the round trip. The caller must not hold the mutex: the
// collection is only touched once the wait elapses.
func (s *ContactsInmem) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *ContactsInmem) append(f ContactFields) *Contact {
	c := &Contact{Name: f.Name, Email: f.Email, Phone: f.Phone, Avatar: f.Avatar}
retry:
	c.ID = ContactID{*new(uuid32).initV4()}
	_, loaded := s.index[c.ID]
	if loaded {
		goto retry
	}
	s.index[c.ID] = len(s.contacts)
	s.contacts = append(s.contacts, c)
	return c
}

func (s *ContactsInmem) snapshot(query string) []*Contact {
	out := make([]*Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		if c.Matches(query) {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out
}

func (s *ContactsInmem) List(ctx context.Context) ([]*Contact, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(""), nil
}

func (s *ContactsInmem) Search(ctx context.Context, query string) ([]*Contact, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(query), nil
}

func (s *ContactsInmem) Get(ctx context.Context, id ContactID) (*Contact, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return nil, ErrObjectNotFound
	}
	clone := *s.contacts[i]
	return &clone, nil
}

func (s *ContactsInmem) Create(ctx context.Context, f ContactFields) (*Contact, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *s.append(f)
	return &clone, nil
}

// Update replaces the record's mutable fields in place, preserving its
// position in the collection.
func (s *ContactsInmem) Update(ctx context.Context, id ContactID, f ContactFields) (*Contact, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return nil, ErrObjectNotFound
	}
	c := s.contacts[i]
	c.Name, c.Email, c.Phone, c.Avatar = f.Name, f.Email, f.Phone, f.Avatar
	clone := *c
	return &clone, nil
}

// Delete is idempotent: removing an absent ID is a silent no-op.
func (s *ContactsInmem) Delete(ctx context.Context, id ContactID) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if ok {
		delete(s.index, id)
		s.contacts = slices.Delete(s.contacts, i, i+1)
		for j := i; j < len(s.contacts); j++ {
			s.index[s.contacts[j].ID] = j
		}
	}
	return nil
}
