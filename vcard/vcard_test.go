package vcard

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ds "github.com/shivangdevina/TRIA-Contact-hub/datastores"
)

func TestEncode(t *testing.T) {
	got := Encode(&ds.Contact{
		Name:  "Sarah Johnson",
		Email: "sarah.johnson@gmail.com",
		Phone: "+1 (555) 123-4567",
	})

	want := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:Sarah Johnson",
		"N:Sarah Johnson;;;;",
		"EMAIL;TYPE=INTERNET:sarah.johnson@gmail.com",
		"TEL;TYPE=CELL:+1 (555) 123-4567",
		"END:VCARD",
		"",
	}, "\r\n")
	assert.Equal(t, want, got)
}

func TestEncodeOmitsAbsentFields(t *testing.T) {
	got := Encode(&ds.Contact{Name: "Emily Rodriguez"})
	assert.NotContains(t, got, "EMAIL")
	assert.NotContains(t, got, "TEL")
}

func TestEncodeEscapesReservedCharacters(t *testing.T) {
	got := Encode(&ds.Contact{Name: "Johnson; Sarah, Jr."})
	assert.Contains(t, got, `FN:Johnson\; Sarah\, Jr.`)
}

func TestQRProducesPNG(t *testing.T) {
	png, err := QR(&ds.Contact{Name: "Sarah Johnson", Phone: "+1 (555) 123-4567"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")))
}
