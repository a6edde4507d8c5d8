package plan

import "fmt"

// workoutCatalog holds the canonical NHS Couch-to-5K interval structure,
// keyed by 1-based week then 1-based workout day within the week.
var workoutCatalog = map[int]map[int]string{
	1: {
		1: "Warm up: 5-min brisk walk. Run 60 sec, walk 90 sec (repeat 8 times). Cool down: 5-min walk.",
		2: "Warm up: 5-min brisk walk. Run 60 sec, walk 90 sec (repeat 8 times). Cool down: 5-min walk.",
		3: "Warm up: 5-min brisk walk. Run 60 sec, walk 90 sec (repeat 8 times). Cool down: 5-min walk.",
	},
	2: {
		1: "Warm up: 5-min brisk walk. Run 90 sec, walk 2 min (repeat 6 times). Cool down: 5-min walk.",
		2: "Warm up: 5-min brisk walk. Run 90 sec, walk 2 min (repeat 6 times). Cool down: 5-min walk.",
		3: "Warm up: 5-min brisk walk. Run 90 sec, walk 2 min (repeat 6 times). Cool down: 5-min walk.",
	},
	3: {
		1: "Warm up: 5-min brisk walk. Run 90 sec, walk 90 sec, run 3 min, walk 3 min (repeat 2 times). Cool down: 5-min walk.",
		2: "Warm up: 5-min brisk walk. Run 90 sec, walk 90 sec, run 3 min, walk 3 min (repeat 2 times). Cool down: 5-min walk.",
		3: "Warm up: 5-min brisk walk. Run 90 sec, walk 90 sec, run 3 min, walk 3 min (repeat 2 times). Cool down: 5-min walk.",
	},
	4: {
		1: "Warm up: 5-min brisk walk. Run 3 min, walk 90 sec, run 5 min, walk 2.5 min, run 3 min. Cool down: 5-min walk.",
		2: "Warm up: 5-min brisk walk. Run 3 min, walk 90 sec, run 5 min, walk 2.5 min, run 3 min. Cool down: 5-min walk.",
		3: "Warm up: 5-min brisk walk. Run 3 min, walk 90 sec, run 5 min, walk 2.5 min, run 3 min. Cool down: 5-min walk.",
	},
	5: {
		1: "Warm up: 5-min brisk walk. Run 5 min, walk 3 min, run 5 min, walk 3 min, run 5 min. Cool down: 5-min walk.",
		2: "Warm up: 5-min brisk walk. Run 8 min, walk 5 min, run 8 min. Cool down: 5-min walk.",
		3: "Warm up: 5-min brisk walk. Run 20 min (no walking breaks!). Cool down: 5-min walk.",
	},
	6: {
		1: "Warm up: 5-min brisk walk. Run 5 min, walk 3 min, run 8 min, walk 3 min, run 5 min. Cool down: 5-min walk.",
		2: "Warm up: 5-min brisk walk. Run 10 min, walk 3 min, run 10 min. Cool down: 5-min walk.",
		3: "Warm up: 5-min brisk walk. Run 25 min (no walking breaks!). Cool down: 5-min walk.",
	},
	7: {
		1: "Warm up: 5-min brisk walk. Run 25 min. Cool down: 5-min walk.",
		2: "Warm up: 5-min brisk walk. Run 25 min. Cool down: 5-min walk.",
		3: "Warm up: 5-min brisk walk. Run 25 min. Cool down: 5-min walk.",
	},
	8: {
		1: "Warm up: 5-min brisk walk. Run 28 min. Cool down: 5-min walk.",
		2: "Warm up: 5-min brisk walk. Run 28 min. Cool down: 5-min walk.",
		3: "Warm up: 5-min brisk walk. Run 28 min. Cool down: 5-min walk.",
	},
	9: {
		1: "Warm up: 5-min brisk walk. Run 30 min. Cool down: 5-min walk.",
		2: "Warm up: 5-min brisk walk. Run 30 min. Cool down: 5-min walk.",
		3: "Warm up: 5-min brisk walk. Run 30 min. Cool down: 5-min walk.",
	},
	10: {
		1: "Warm up: 5-min brisk walk. Run 30+ min or 5K distance. Cool down: 5-min walk.",
		2: "Warm up: 5-min brisk walk. Run 30+ min or 5K distance. Cool down: 5-min walk.",
		3: "Graduation Day! Warm up: 5-min brisk walk. Run 30+ min or 5K distance. Cool down: 5-min walk. Congratulations, you did it!",
	},
}

// WorkoutDetails returns the catalog instruction for the given 1-based week
// and workout day. Combinations outside the 10-week program fall back to a
// generic placeholder naming the week and day; a catalog miss is never an error.
func WorkoutDetails(week, day int) string {
	if w, ok := workoutCatalog[week]; ok {
		if text, ok := w[day]; ok {
			return text
		}
	}
	return fmt.Sprintf("Week %d, Day %d C25K session - continue your training!", week, day)
}

// CatalogWeeks reports how many weeks the built-in program covers.
func CatalogWeeks() int {
	return len(workoutCatalog)
}
