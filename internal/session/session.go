// Package session owns the client's belief about who is signed in and
// decides which screens are reachable.
package session

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mmynk/scribe/internal/identity"
)

// Session is the signed-in user as the rest of the client sees it.
type Session struct {
	UserID        string
	Email         string
	EmailVerified bool
	DisplayName   string
}

// FromUser builds a Session from an identity notification.
func FromUser(u *identity.User) Session {
	return Session{
		UserID:        u.ID,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		DisplayName:   u.DisplayName,
	}
}

// Name is the greeting name: the first word of the display name, else the
// local part of the email, capitalized.
func (s Session) Name() string {
	if fields := strings.Fields(s.DisplayName); len(fields) > 0 {
		return capitalize(fields[0])
	}
	local, _, _ := strings.Cut(s.Email, "@")
	return capitalize(local)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Context gives read-only access to the authenticated session.
type Context interface {
	// Current returns the session when the user is signed in with a
	// verified email.
	Current() (Session, bool)
}
