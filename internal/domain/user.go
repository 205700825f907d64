package domain

import "strings"

// Author is the read-only projection of a user returned in article
// listings and the authors directory.
type Author struct {
	UserID     int
	FirstName  string
	LastName   string
	MiddleName string
	BirthDate  string
	GenderID   int
	Email      string
	Login      string
	CreatedAt  string
}

// FullName returns "First Last" with surrounding whitespace trimmed.
func (a Author) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// User is the authenticated self-profile. It is a superset of Author that
// additionally carries the profile photo.
type User struct {
	UserID     int
	FirstName  string
	LastName   string
	MiddleName string
	BirthDate  string
	GenderID   int
	Email      string
	Login      string
	Photo      string // base64 payload, empty when absent
	CreatedAt  string
}

// FullName returns "First Last" with surrounding whitespace trimmed.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
