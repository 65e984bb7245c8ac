// Package reservations persists confirmed bookings. The log is write-only:
// records are appended and never read back by the application.
package reservations

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tutorbook/internal/catalog"
	"github.com/dmitrijs2005/tutorbook/internal/common"
	"github.com/dmitrijs2005/tutorbook/internal/filex"
	"github.com/dmitrijs2005/tutorbook/internal/logging"
)

// FileLog appends one line per reservation to a text file.
type FileLog struct {
	path   string
	logger logging.Logger
}

func NewFileLog(path string, logger logging.Logger) *FileLog {
	return &FileLog{path: path, logger: logger}
}

// Record appends the reservation of session by email. A failed write is
// logged and returned wrapped in common.ErrPersistence.
func (l *FileLog) Record(ctx context.Context, email string, session catalog.Session) error {
	r := Reservation{UserEmail: email, Session: session}
	log := logging.FromContext(ctx, l.logger)

	if err := filex.AppendLine(l.path, r.Line()); err != nil {
		log.Error(ctx, "reservation not saved", "email", email, "area", session.Area, "error", err)
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}

	log.Info(ctx, "reservation saved", "email", email, "area", session.Area, "date", session.Date)
	return nil
}
