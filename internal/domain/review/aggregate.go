package review

import "math"

// Summary is the denormalized rating snapshot stored on a car wash.
type Summary struct {
	Average float64
	Count   int
}

// Aggregate computes the rating summary for a set of review scores. The
// average is rounded to one decimal, ties away from zero, so 4.25 reports as
// 4.3. No reviews yield a zero summary.
func Aggregate(scores []int) Summary {
	if len(scores) == 0 {
		return Summary{}
	}

	sum := 0
	for _, s := range scores {
		sum += s
	}
	avg := float64(sum) / float64(len(scores))
	return Summary{
		Average: math.Round(avg*10) / 10,
		Count:   len(scores),
	}
}

// Distribution counts reviews per star value, 1 through 5. Out-of-range
// scores are ignored.
func Distribution(scores []int) map[int]int {
	dist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, s := range scores {
		if s >= 1 && s <= 5 {
			dist[s]++
		}
	}
	return dist
}
