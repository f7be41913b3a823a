// Package report turns workshop rows into categorical frequency tallies for
// dashboard charts. All functions are pure: they never touch the database and
// never mutate their input.
package report

import (
	"sort"

	"github.com/SeakMengs/WorkshopHub/internal/model"
)

// Tally counts occurrences of each key and returns two parallel slices
// (labels, counts) ordered by descending count. Ties keep first-seen order so
// repeated runs over the same input produce the same chart. Empty input
// yields two empty slices.
func Tally(keys []string) ([]string, []int) {
	labels := []string{}
	counts := []int{}
	if len(keys) == 0 {
		return labels, counts
	}

	countByKey := make(map[string]int, len(keys))
	for _, key := range keys {
		if _, seen := countByKey[key]; !seen {
			labels = append(labels, key)
		}
		countByKey[key]++
	}

	sort.SliceStable(labels, func(i, j int) bool {
		return countByKey[labels[i]] > countByKey[labels[j]]
	})

	counts = make([]int, len(labels))
	for i, label := range labels {
		counts[i] = countByKey[label]
	}

	return labels, counts
}

// TallyByCoordinatorState groups workshops by the coordinator profile's state
// code and maps each code to its display name. Workshops whose coordinator
// has no profile are skipped.
func TallyByCoordinatorState(workshops []model.Workshop) ([]string, []int) {
	keys := make([]string, 0, len(workshops))
	for _, w := range workshops {
		if w.Coordinator.Profile == nil {
			continue
		}
		keys = append(keys, w.Coordinator.Profile.StateName())
	}

	return Tally(keys)
}

// TallyByWorkshopType groups workshops by workshop type name.
func TallyByWorkshopType(workshops []model.Workshop) ([]string, []int) {
	keys := make([]string, 0, len(workshops))
	for _, w := range workshops {
		keys = append(keys, w.WorkshopType.Name)
	}

	return Tally(keys)
}
