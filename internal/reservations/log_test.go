package reservations

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tutorbook/internal/catalog"
	"github.com/dmitrijs2005/tutorbook/internal/common"
	"github.com/dmitrijs2005/tutorbook/internal/logging"
)

func TestReservation_Line(t *testing.T) {
	r := Reservation{UserEmail: "a@b.co", Session: catalog.Seed()[0]}
	assert.Equal(t, "a@b.co | Redes de computo  | Prof. Beatriz Alfaro | 2025-05-20 | 10:00AM - 2:00PM", r.Line())
}

func TestReservation_LineDoesNotEscapeSeparator(t *testing.T) {
	r := Reservation{UserEmail: "a@b.co", Session: catalog.Session{
		Area: "A|B", Instructor: "I", Date: "D", StartTime: "S", EndTime: "E",
	}}
	assert.Equal(t, "a@b.co | A|B | I | D | S - E", r.Line())
}

func TestFileLog_RecordAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reservas.txt")
	l := NewFileLog(path, logging.Nop())
	ctx := context.Background()
	seed := catalog.Seed()

	require.NoError(t, l.Record(ctx, "a@b.co", seed[0]))
	require.NoError(t, l.Record(ctx, "c@d.co", seed[3]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"a@b.co | Redes de computo  | Prof. Beatriz Alfaro | 2025-05-20 | 10:00AM - 2:00PM\n"+
			"c@d.co | Algebra líneal | Prof. Amaury  | 2025-06-24 | 9:00AM - 10:00AM\n",
		string(data))
}

func TestFileLog_RecordFailure(t *testing.T) {
	// the target path is a directory, so opening it for append fails
	l := NewFileLog(t.TempDir(), logging.Nop())

	err := l.Record(context.Background(), "a@b.co", catalog.Seed()[0])
	require.ErrorIs(t, err, common.ErrPersistence)
}
