// Package projection derives the displayed contact sequence from a store
// snapshot, a search query and a sort key. It never mutates the input and
// the same inputs always yield the same order.
package projection

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	ds "github.com/shivangdevina/TRIA-Contact-hub/datastores"
)

type SortKey string

const (
	NameAsc   SortKey = "name-asc"
	NameDesc  SortKey = "name-desc"
	EmailAsc  SortKey = "email-asc"
	EmailDesc SortKey = "email-desc"
	// Recent is reverse collection order, last created first. It depends
	// solely on insertion order: updating a record keeps its position, only
	// creates and deletes move records.
	Recent SortKey = "recent"
)

// Project filters contacts by query (same match rule as the store's search)
// and orders the result by key. Name sorts are locale-aware; absent emails
// sort as the empty string, i.e. first ascending. An unknown key leaves the
// filtered sequence in collection order.
func Project(contacts []*ds.Contact, query string, key SortKey) []*ds.Contact {
	out := make([]*ds.Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.Matches(query) {
			out = append(out, c)
		}
	}

	switch key {
	case NameAsc, NameDesc:
		col := collate.New(language.English, collate.IgnoreCase)
		slices.SortStableFunc(out, func(a, b *ds.Contact) int {
			n := col.CompareString(a.Name, b.Name)
			if key == NameDesc {
				n = -n
			}
			return n
		})
	case EmailAsc, EmailDesc:
		slices.SortStableFunc(out, func(a, b *ds.Contact) int {
			n := strings.Compare(a.Email, b.Email)
			if key == EmailDesc {
				n = -n
			}
			return n
		})
	case Recent:
		slices.Reverse(out)
	}
	return out
}
