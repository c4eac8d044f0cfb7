package seed

import (
	"pkg.jsn.cam/levelup/pkg/pools"
	"pkg.jsn.cam/levelup/pkg/prng"
)

// Trip generates a 3-14 day trip starting 10-90 days after ReferenceDate,
// with 2-4 distinct destinations arriving inside the trip window.
func (g *Generator) Trip() Trip {
	r := g.rng
	name := prng.Pick(r, pools.TripNames)
	offset := r.IntRange(10, 90)
	duration := r.IntRange(3, 14)
	start := mustAddDays(ReferenceDate, offset)
	end := mustAddDays(start, duration)

	n := r.IntRange(2, 4)
	names := prng.PickN(r, pools.DestNames, n)
	dests := make([]Destination, 0, len(names))
	for _, d := range names {
		dests = append(dests, Destination{
			Name:        d,
			ArrivalDate: mustAddDays(start, r.IntRange(0, duration-1)),
			Notes:       "",
		})
	}

	return Trip{
		ID:           g.newID("trip"),
		Name:         name,
		Title:        name,
		StartDate:    start,
		EndDate:      end,
		Destinations: dests,
	}
}
