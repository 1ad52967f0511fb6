package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckName(t *testing.T) {
	for _, tt := range []struct {
		name string
		in   string
		code Code
	}{
		{"ok", "Sarah Johnson", ""},
		{"ok at limit", strings.Repeat("a", 100), ""},
		{"blank", "", CodeRequired},
		{"whitespace only", "   \t", CodeRequired},
		{"over limit", strings.Repeat("a", 101), CodeTooLong},
		{"over limit multibyte", strings.Repeat("é", 101), CodeTooLong},
	} {
		t.Run(tt.name, func(t *testing.T) {
			res := Check(Fields{Name: tt.in})
			if tt.code == "" {
				assert.True(t, res.Valid())
				return
			}
			require.Contains(t, res.Errors, FieldName)
			assert.Equal(t, tt.code, res.Errors[FieldName].Code)
		})
	}
}

func TestCheckEmail(t *testing.T) {
	for _, tt := range []struct {
		name string
		in   string
		code Code
	}{
		{"absent passes", "", ""},
		{"blank passes", "   ", ""},
		{"plain address", "sarah.johnson@gmail.com", ""},
		{"subdomain", "sarah@mail.example.org", ""},
		{"no at sign", "sarahgmail.com", CodeInvalidFormat},
		{"two at signs", "sarah@john@gmail.com", CodeInvalidFormat},
		{"short local part", "a@gmail.com", CodeInvalidFormat},
		{"no tld", "sarah@gmail", CodeInvalidFormat},
		{"empty label", "sarah@gmail..com", CodeInvalidFormat},
		{"single char tld", "sarah@gmail.c", CodeInvalidFormat},
		{"single char sld", "sarah@g.com", CodeInvalidFormat},
		{"typo table", "sarah@gamil.com", CodeTypo},
		{"typo table uppercase", "sarah@GAMIL.COM", CodeTypo},
		{"short label table", "sarah@gm.com", CodeTypo},
		{"short label other tld passes", "sarah@gm.org", ""},
		{"unrecognized typo passes", "sarah@gmaail.com", ""},
	} {
		t.Run(tt.name, func(t *testing.T) {
			res := Check(Fields{Name: "Sarah Johnson", Email: tt.in})
			if tt.code == "" {
				assert.True(t, res.Valid())
				return
			}
			require.Contains(t, res.Errors, FieldEmail)
			assert.Equal(t, tt.code, res.Errors[FieldEmail].Code)
		})
	}
}

func TestCheckEmailTypoProposesCorrection(t *testing.T) {
	res := Check(Fields{Name: "Sarah Johnson", Email: "user@gamil.com"})
	require.Contains(t, res.Errors, FieldEmail)
	assert.Equal(t, CodeTypo, res.Errors[FieldEmail].Code)
	assert.Equal(t, "did you mean user@gmail.com?", res.Errors[FieldEmail].Message)
}

func TestCheckEmailShortLabelProposesNothing(t *testing.T) {
	res := Check(Fields{Name: "Sarah Johnson", Email: "user@gm.com"})
	require.Contains(t, res.Errors, FieldEmail)
	assert.Equal(t, CodeTypo, res.Errors[FieldEmail].Code)
	assert.NotContains(t, res.Errors[FieldEmail].Message, "did you mean")
}

func TestCheckPhone(t *testing.T) {
	for _, tt := range []struct {
		name string
		in   string
		code Code
	}{
		{"absent passes", "", ""},
		{"blank passes", "  ", ""},
		{"digits only", "5551234567", ""},
		{"formatted", "+1 (555) 123-4567", ""},
		{"letters", "555-CALL-NOW", CodeInvalidFormat},
		{"dot separator", "555.123.4567", CodeInvalidFormat},
		{"too few digits", "555-1234", CodeTooShort},
		{"nine digits formatted", "(555) 123-456", CodeTooShort},
	} {
		t.Run(tt.name, func(t *testing.T) {
			res := Check(Fields{Name: "Sarah Johnson", Phone: tt.in})
			if tt.code == "" {
				assert.True(t, res.Valid())
				return
			}
			require.Contains(t, res.Errors, FieldPhone)
			assert.Equal(t, tt.code, res.Errors[FieldPhone].Code)
		})
	}
}

func TestCheckFieldsIndependent(t *testing.T) {
	res := Check(Fields{Name: "", Email: "a@g", Phone: "abc"})
	assert.False(t, res.Valid())
	assert.Len(t, res.Errors, 3)
}
