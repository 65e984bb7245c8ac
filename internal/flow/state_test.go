package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tutorbook/internal/common"
)

func TestState_String(t *testing.T) {
	assert.Equal(t, "main-menu", MainMenu.String())
	assert.Equal(t, "session-browser", SessionBrowser.String())
	assert.Equal(t, "terminated", Terminated.String())
	assert.Equal(t, "unknown", State(42).String())
	assert.Equal(t, "unknown", State(-1).String())
}

func TestParseChoice(t *testing.T) {
	n, err := parseChoice(" 2 ", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = parseChoice("x", 3)
	require.ErrorIs(t, err, errNotNumber)
	require.ErrorIs(t, err, common.ErrInvalidMenuSelection)

	_, err = parseChoice("4", 3)
	require.ErrorIs(t, err, common.ErrInvalidMenuSelection)
	require.NotErrorIs(t, err, errNotNumber)

	_, err = parseChoice("0", 3)
	require.ErrorIs(t, err, common.ErrInvalidMenuSelection)
}

func TestIsYes(t *testing.T) {
	for _, a := range []string{"y", "Y", "yes", "YES", "s", "S", "si", "Sí", " y "} {
		assert.True(t, isYes(a), a)
	}
	for _, a := range []string{"", "n", "no", "maybe", "1"} {
		assert.False(t, isYes(a), a)
	}
}
