package seed

import (
	"pkg.jsn.cam/levelup/pkg/pools"
	"pkg.jsn.cam/levelup/pkg/prng"
)

// Workout generates one training day: 3-6 distinct body parts with 3-5 sets
// each. Non-cardio weights jitter around a base weight and snap to multiples
// of 5; cardio weight is always 0.
func (g *Generator) Workout(date string) Workout {
	r := g.rng
	n := r.IntRange(3, 6)
	parts := prng.PickN(r, pools.BodyParts, n)

	exercises := make([]Exercise, 0, len(parts))
	for _, part := range parts {
		names, ok := pools.ExercisesByPart[part]
		if !ok {
			names = pools.DefaultExercises
		}
		name := prng.Pick(r, names)
		numSets := r.IntRange(3, 5)
		wr, ok := pools.WeightRanges[part]
		if !ok {
			wr = pools.DefaultWeightRange
		}
		rr, ok := pools.RepRanges[part]
		if !ok {
			rr = pools.DefaultRepRange
		}
		base := r.IntRange(wr.Min, wr.Max)

		sets := make([]Set, 0, numSets)
		for i := 0; i < numSets; i++ {
			weight := 0
			if part != pools.CardioPart {
				weight = max(0, base+r.IntRange(-10, 10))
			}
			reps := r.IntRange(rr.Min, rr.Max)
			sets = append(sets, Set{
				Weight: roundHalfUp(float64(weight)/5) * 5,
				Reps:   reps,
				Done:   true,
			})
		}
		exercises = append(exercises, Exercise{Name: name, BodyPart: part, Sets: sets})
	}

	return Workout{Date: date, Exercises: exercises}
}

// Volume is the sum of weight*reps over sets where both are positive.
func (w Workout) Volume() int {
	total := 0
	for _, ex := range w.Exercises {
		for _, s := range ex.Sets {
			if s.Weight > 0 && s.Reps > 0 {
				total += s.Weight * s.Reps
			}
		}
	}
	return total
}
