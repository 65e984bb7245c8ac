package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	s := Seed()
	require.Len(t, s, 4)
	assert.Equal(t, "Redes de computo ", s[0].Area)
	assert.Equal(t, "Prof. Beatriz Alfaro", s[0].Instructor)
	assert.Equal(t, "Prof. Cristian Cuadrado ", s[1].Instructor)
	assert.Equal(t, "Prof. Xibia Hurtado", s[2].Instructor)
	assert.Equal(t, "Prof. Amaury ", s[3].Instructor)
	assert.Equal(t, "10:00AM - 2:00PM", s[0].TimeRange())
}

func TestAreas_DistinctInCatalogOrder(t *testing.T) {
	c := New([]Session{
		{Area: "Math", Instructor: "A"},
		{Area: "Physics", Instructor: "B"},
		{Area: "MATH", Instructor: "C"},
		{Area: "Chemistry", Instructor: "D"},
		{Area: "Physics", Instructor: "E"},
	})

	assert.Equal(t, []string{"Math", "Physics", "Chemistry"}, c.Areas())
	assert.Equal(t, c.Areas(), c.Areas(), "order must be stable")
}

func TestAreas_Seed(t *testing.T) {
	c := New(Seed())
	assert.Equal(t, []string{
		"Redes de computo ",
		"Desarrollo de software ",
		"Fundamentos de sistemas de información",
		"Algebra líneal",
	}, c.Areas())
}

func TestAreas_ReturnsCopy(t *testing.T) {
	c := New(Seed())
	a := c.Areas()
	a[0] = "changed"
	assert.Equal(t, "Redes de computo ", c.Areas()[0])
}

func TestSessionsInArea(t *testing.T) {
	c := New(Seed())

	got := c.SessionsInArea("Algebra líneal")
	require.Len(t, got, 1)
	assert.Equal(t, Seed()[3], got[0])

	got = c.SessionsInArea("ALGEBRA LÍNEAL")
	require.Len(t, got, 1)
	assert.Equal(t, "Prof. Amaury ", got[0].Instructor)

	assert.Empty(t, c.SessionsInArea("nonexistent"))
	assert.NotNil(t, c.SessionsInArea("nonexistent"))
}

func TestSessionsInArea_KeepsOrderAcrossCase(t *testing.T) {
	c := New([]Session{
		{Area: "Math", Instructor: "A"},
		{Area: "Art", Instructor: "B"},
		{Area: "math", Instructor: "C"},
	})

	got := c.SessionsInArea("Math")
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Instructor)
	assert.Equal(t, "C", got[1].Instructor)
}

func TestNew_CopiesInput(t *testing.T) {
	in := Seed()
	c := New(in)
	in[0].Area = "mutated"

	assert.Len(t, c.SessionsInArea("Redes de computo "), 1)
	assert.Equal(t, 4, c.Len())
}
