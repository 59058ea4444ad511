package layout

import "sort"

// InsertPosition picks where a newly added shelf or column should go:
// the midpoint of the widest gap between the existing positions,
// counting the gaps to the 0 and 1 boundaries. Ties keep the gap
// found first in scan order (boundary-to-first, interior gaps left to
// right, last-to-boundary). An empty list yields the center.
//
// The result is advisory only; it may coincide with an existing
// position and that is acceptable.
func InsertPosition(positions []float64) float64 {
	if len(positions) == 0 {
		return 0.5
	}

	sorted := make([]float64, len(positions))
	copy(sorted, positions)
	sort.Float64s(sorted)

	bestStart := 0.0
	bestSize := sorted[0]
	for i := 0; i < len(sorted)-1; i++ {
		if gap := sorted[i+1] - sorted[i]; gap > bestSize {
			bestSize = gap
			bestStart = sorted[i]
		}
	}
	if gap := 1 - sorted[len(sorted)-1]; gap > bestSize {
		bestSize = gap
		bestStart = sorted[len(sorted)-1]
	}

	return bestStart + bestSize/2
}
