package reservations

import (
	"strings"

	"github.com/dmitrijs2005/tutorbook/internal/catalog"
)

const fieldSeparator = " | "

// Reservation links a user to a booked tutoring session.
type Reservation struct {
	UserEmail string
	Session   catalog.Session
}

// Line renders the record as stored:
//
//	email | area | instructor | date | start - end
//
// Fields are written verbatim; a '|' inside a field is not escaped.
func (r Reservation) Line() string {
	return strings.Join([]string{
		r.UserEmail,
		r.Session.Area,
		r.Session.Instructor,
		r.Session.Date,
		r.Session.TimeRange(),
	}, fieldSeparator)
}
