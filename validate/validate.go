// Package validate implements the contact form rules: required name with a
// length cap, optional email with a heuristic domain-typo catcher, and
// optional phone with a restricted character set and minimum digit count.
//
// Field problems are returned as structured per-field state, never as error
// values; submission is gated on [Result.Valid].
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type Field string

const (
	FieldName  Field = "name"
	FieldEmail Field = "email"
	FieldPhone Field = "phone"
)

type Code string

const (
	CodeRequired      Code = "required"
	CodeTooLong       Code = "too_long"
	CodeInvalidFormat Code = "invalid_format"
	CodeTooShort      Code = "too_short"
	CodeTypo          Code = "typo"
)

type FieldError struct {
	Code    Code
	Message string
}

// Fields is a form submission. Empty email and phone mean absent and pass.
type Fields struct {
	Name  string
	Email string
	Phone string
}

// Result maps failing fields to their first error. Fields absent from
// Errors passed all rules.
type Result struct {
	Errors map[Field]FieldError
}

func (r Result) Valid() bool { return len(r.Errors) == 0 }

// Check runs every field rule independently; there are no cross-field
// rules, so a failing field never masks another.
func Check(f Fields) Result {
	errs := make(map[Field]FieldError)
	if e, ok := checkName(f.Name); !ok {
		errs[FieldName] = e
	}
	if e, ok := checkEmail(f.Email); !ok {
		errs[FieldEmail] = e
	}
	if e, ok := checkPhone(f.Phone); !ok {
		errs[FieldPhone] = e
	}
	if len(errs) == 0 {
		return Result{}
	}
	return Result{Errors: errs}
}

const nameMaxLen = 100

func checkName(name string) (FieldError, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return FieldError{CodeRequired, "name is required"}, false
	}
	if utf8.RuneCountInString(name) > nameMaxLen {
		return FieldError{CodeTooLong, fmt.Sprintf("name must be %d characters or fewer", nameMaxLen)}, false
	}
	return FieldError{}, true
}

// domainTypos maps common domain misspellings to their canonical form. A
// match fails validation and proposes the corrected address.
var domainTypos = map[string]string{
	"gamil.com":   "gmail.com",
	"gmial.com":   "gmail.com",
	"gmali.com":   "gmail.com",
	"gnail.com":   "gmail.com",
	"gmai.com":    "gmail.com",
	"gmail.co":    "gmail.com",
	"yaho.com":    "yahoo.com",
	"yahooo.com":  "yahoo.com",
	"yahoo.co":    "yahoo.com",
	"hotmal.com":  "hotmail.com",
	"hotmial.com": "hotmail.com",
	"hotmil.com":  "hotmail.com",
	"outlok.com":  "outlook.com",
	"outloo.com":  "outlook.com",
	"iclod.com":   "icloud.com",
	"icloud.co":   "icloud.com",
}

// shortLabels maps abbreviated second-level labels under .com to the
// provider they almost certainly meant. A match fails validation but, unlike
// domainTypos, proposes nothing: the abbreviation is too ambiguous to
// rewrite the address for the user.
var shortLabels = map[string]string{
	"gm":  "gmail",
	"gma": "gmail",
	"ho":  "hotmail",
	"hot": "hotmail",
	"ya":  "yahoo",
	"yah": "yahoo",
	"ou":  "outlook",
	"out": "outlook",
}

// checkEmail accepts local@domain.tld with a local part of at least two
// characters and a second-level domain label of at least two characters
// (rejects g.com), then runs the typo tables. It is a heuristic, not an
// email-grammar validator: unusual but valid domains may be rejected and
// unrecognized typos pass.
func checkEmail(email string) (FieldError, bool) {
	email = strings.TrimSpace(email)
	if email == "" {
		return FieldError{}, true
	}

	invalid := FieldError{CodeInvalidFormat, "enter a valid email address"}

	local, domain, found := strings.Cut(email, "@")
	local = strings.TrimSpace(local)
	if !found || utf8.RuneCountInString(local) < 2 || strings.Contains(domain, "@") {
		return invalid, false
	}

	domain = strings.ToLower(domain)
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return invalid, false
	}
	for _, label := range labels {
		if label == "" {
			return invalid, false
		}
	}
	tld := labels[len(labels)-1]
	sld := labels[len(labels)-2]
	if utf8.RuneCountInString(tld) < 2 || utf8.RuneCountInString(sld) < 2 {
		return invalid, false
	}

	if canonical, ok := domainTypos[domain]; ok {
		return FieldError{CodeTypo, fmt.Sprintf("did you mean %s@%s?", local, canonical)}, false
	}
	if _, ok := shortLabels[sld]; ok && tld == "com" {
		return FieldError{CodeTypo, "enter a valid email address"}, false
	}

	return FieldError{}, true
}

const phoneMinDigits = 10

// checkPhone allows digits, spaces and the punctuation set + - ( ), and
// requires at least ten digits once everything else is stripped.
func checkPhone(phone string) (FieldError, bool) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return FieldError{}, true
	}
	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '+' || r == '-' || r == '(' || r == ')':
		default:
			return FieldError{CodeInvalidFormat, "phone may only contain digits, spaces and + - ( )"}, false
		}
	}
	if digits < phoneMinDigits {
		return FieldError{CodeTooShort, fmt.Sprintf("phone must contain at least %d digits", phoneMinDigits)}, false
	}
	return FieldError{}, true
}
