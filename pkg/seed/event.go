package seed

import (
	"slices"

	"pkg.jsn.cam/levelup/pkg/pools"
	"pkg.jsn.cam/levelup/pkg/prng"
)

// CalendarEvent generates an event on date. Only workout and study events
// carry XP (50-500); the rest have xpAmount 0 and a null xpCategory.
func (g *Generator) CalendarEvent(date string) CalendarEvent {
	r := g.rng
	title := prng.Pick(r, pools.EventTitles)
	category := prng.Pick(r, pools.EventCategories)
	ev := CalendarEvent{
		ID:       g.newID("evt"),
		Date:     date,
		Title:    title,
		Category: category,
	}
	if slices.Contains(pools.XPEventCategories, category) {
		c := category
		ev.XPCategory = &c
		ev.XPAmount = r.IntRange(50, 500)
	}
	return ev
}
