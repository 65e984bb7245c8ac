// Package catalog holds the tutoring sessions offered during a run. The list
// is fixed at startup and read-only afterwards.
package catalog

import (
	"golang.org/x/text/cases"
)

// Seed returns the built-in sessions.
func Seed() []Session {
	return []Session{
		{Area: "Redes de computo ", Instructor: "Prof. Beatriz Alfaro", Date: "2025-05-20", StartTime: "10:00AM", EndTime: "2:00PM"},
		{Area: "Desarrollo de software ", Instructor: "Prof. Cristian Cuadrado ", Date: "2025-06-22", StartTime: "8:00AM", EndTime: "10:30AM"},
		{Area: "Fundamentos de sistemas de información", Instructor: "Prof. Xibia Hurtado", Date: "2025-06-23", StartTime: "12:00PM", EndTime: "1:00PM"},
		{Area: "Algebra líneal", Instructor: "Prof. Amaury ", Date: "2025-06-24", StartTime: "9:00AM", EndTime: "10:00AM"},
	}
}

// Catalog answers area and session queries over a fixed session list.
type Catalog struct {
	sessions []Session
	areas    []string
	fold     cases.Caser
}

// New builds a Catalog over a copy of sessions.
func New(sessions []Session) *Catalog {
	c := &Catalog{
		sessions: append([]Session(nil), sessions...),
		fold:     cases.Fold(),
	}

	seen := make(map[string]struct{}, len(sessions))
	for _, s := range c.sessions {
		k := c.fold.String(s.Area)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		c.areas = append(c.areas, s.Area)
	}

	return c
}

// Len returns the number of sessions.
func (c *Catalog) Len() int {
	return len(c.sessions)
}

// Areas returns the distinct areas in order of first appearance. Areas that
// differ only in case are listed once, with the first spelling seen.
func (c *Catalog) Areas() []string {
	return append([]string(nil), c.areas...)
}

// SessionsInArea returns the sessions whose area equals area ignoring case,
// in catalog order.
func (c *Catalog) SessionsInArea(area string) []Session {
	k := c.fold.String(area)

	out := make([]Session, 0)
	for _, s := range c.sessions {
		if c.fold.String(s.Area) == k {
			out = append(out, s)
		}
	}
	return out
}
