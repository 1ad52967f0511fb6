// Package export serializes the loaded contact collection for download. The
// export is taken from in-memory data, no store call is involved.
package export

import (
	"encoding/json"
	"time"

	ds "github.com/shivangdevina/TRIA-Contact-hub/datastores"
)

type record struct {
	ID     ds.ContactID `json:"id"`
	Name   string       `json:"name"`
	Email  string       `json:"email,omitempty"`
	Phone  string       `json:"phone,omitempty"`
	Avatar string       `json:"avatar,omitempty"`
}

// Filename returns the download name for an export taken at t.
func Filename(t time.Time) string {
	return "contacts-" + t.Format(time.DateOnly) + ".json"
}

// Marshal renders the collection as an indented JSON array of records.
func Marshal(contacts []*ds.Contact) ([]byte, error) {
	records := make([]record, 0, len(contacts))
	for _, c := range contacts {
		records = append(records, record{
			ID:     c.ID,
			Name:   c.Name,
			Email:  c.Email,
			Phone:  c.Phone,
			Avatar: c.Avatar,
		})
	}
	return json.MarshalIndent(records, "", "  ")
}
