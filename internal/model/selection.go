package model

import "slices"

// Tally counts votes per target
func Tally(votes []Vote) map[PlayerID]int {
	counts := make(map[PlayerID]int, len(votes))
	for _, v := range votes {
		counts[v.Target]++
	}
	return counts
}

// Selection returns every target tied for the most votes, ordered by id.
// Ties are never broken: all leaders are returned.
func Selection(votes []Vote) []PlayerID {
	counts := Tally(votes)

	maxCount := 0
	for _, c := range counts {
		maxCount = max(maxCount, c)
	}

	selected := make([]PlayerID, 0, 1)
	for target, c := range counts {
		if c == maxCount {
			selected = append(selected, target)
		}
	}
	slices.SortFunc(selected, PlayerID.Compare)
	return selected
}
