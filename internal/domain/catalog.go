package domain

import (
	"strings"
	"unicode"
)

// Resource is a curated wellness or support link.
type Resource struct {
	ID              string
	Title           string
	Description     string
	DescriptionHTML string
	Link            string
	Source          string
}

// EmergencyContact is a crisis line shown to every user.
type EmergencyContact struct {
	Name        string
	Number      string
	Description string
}

// TelURI returns a dialable tel: URI with all whitespace removed from Number.
func (c EmergencyContact) TelURI() string {
	return "tel:" + strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, c.Number)
}
