package flow

import (
	"context"

	"github.com/dmitrijs2005/tutorbook/internal/catalog"
	"github.com/dmitrijs2005/tutorbook/internal/users"
)

// Input supplies the user's answers, one line per prompt. Implementations
// return io.EOF once no more input will arrive.
type Input interface {
	ReadLine(prompt string) (string, error)
	// ReadSecret is ReadLine for values that should not be echoed.
	ReadSecret(prompt string) (string, error)
}

// CredentialStore registers and authenticates users.
type CredentialStore interface {
	Exists(email string) bool
	Register(ctx context.Context, email, password string) (*users.User, error)
	Authenticate(ctx context.Context, email, password string) (*users.User, error)
}

// Catalog lists the bookable sessions.
type Catalog interface {
	Areas() []string
	SessionsInArea(area string) []catalog.Session
}

// ReservationLog persists confirmed bookings.
type ReservationLog interface {
	Record(ctx context.Context, email string, session catalog.Session) error
}
