package datastores

import (
	"context"
	"errors"
	"strings"
)

type (
	ContactID struct{ uuid32 }

	// Contact is a single address-book record. The ID is assigned once at
	// creation and never reassigned.
	Contact struct {
		ID ContactID

		Name   string
		Email  string // optional, empty means absent
		Phone  string // optional, empty means absent
		Avatar string // optional, opaque URL or data reference
	}
)

// ContactFields holds the mutable fields of a [Contact].
type ContactFields struct {
	Name   string
	Email  string
	Phone  string
	Avatar string
}

// ContactsStore is the seam between the in-memory implementation and a
// future network client. Implementations must keep the same failure
// conditions: Get and Update return [ErrObjectNotFound] for unknown IDs,
// Delete of an unknown ID is a silent no-op.
type ContactsStore interface {
	List(context.Context) ([]*Contact, error)
	Search(ctx context.Context, query string) ([]*Contact, error)
	Get(context.Context, ContactID) (*Contact, error)
	Create(context.Context, ContactFields) (*Contact, error)
	Update(context.Context, ContactID, ContactFields) (*Contact, error)
	Delete(context.Context, ContactID) error
}

var ErrObjectNotFound = errors.New("store: object not found")

// Matches reports whether the contact matches the query: case-insensitive
// substring on name and email, raw substring on phone. A blank query
// matches everything.
func (c *Contact) Matches(query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	lower := strings.ToLower(query)
	return strings.Contains(strings.ToLower(c.Name), lower) ||
		strings.Contains(strings.ToLower(c.Email), lower) ||
		strings.Contains(c.Phone, query)
}
