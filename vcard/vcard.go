// Package vcard renders per-contact share artifacts: a vCard 3.0 text
// payload and a QR code image of it for transfer to another device.
package vcard

import (
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	ds "github.com/shivangdevina/TRIA-Contact-hub/datastores"
)

// escaper quotes the characters RFC 2426 reserves in property values.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
	"\r", `\n`,
)

// Encode renders the contact as a vCard 3.0 payload. Absent email and phone
// are omitted rather than emitted empty.
func Encode(c *ds.Contact) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCARD\r\n")
	b.WriteString("VERSION:3.0\r\n")
	b.WriteString("FN:" + escaper.Replace(c.Name) + "\r\n")
	b.WriteString("N:" + escaper.Replace(c.Name) + ";;;;\r\n")
	if c.Email != "" {
		b.WriteString("EMAIL;TYPE=INTERNET:" + escaper.Replace(c.Email) + "\r\n")
	}
	if c.Phone != "" {
		b.WriteString("TEL;TYPE=CELL:" + escaper.Replace(c.Phone) + "\r\n")
	}
	b.WriteString("END:VCARD\r\n")
	return b.String()
}

const qrSize = 256

// QR renders the contact's vCard payload as a PNG QR code.
func QR(c *ds.Contact) ([]byte, error) {
	return qrcode.Encode(Encode(c), qrcode.Medium, qrSize)
}
