// Package view derives the displayed task sequence and the dashboard
// aggregates from the raw collection. Everything here is a pure function
// of its inputs; the collection is small enough that each call is a full
// recompute.
package view

import (
	"math"
	"sort"
	"strings"

	"taskloom/internal/model"
)

// Stats holds the dashboard aggregates, computed over the unfiltered
// collection regardless of the active filter or search query.
type Stats struct {
	Total      int
	Active     int
	Completed  int
	Efficiency int // percentage of tasks completed, 0 when empty
}

// Summarize computes the aggregates for the full collection.
func Summarize(tasks []model.Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
	}
	s.Active = s.Total - s.Completed
	if s.Total > 0 {
		s.Efficiency = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}

// Project filters the collection by completion status and case-insensitive
// title substring, then sorts the result for display:
//
//  1. incomplete before completed,
//  2. earlier due instant first, undated tasks after all dated ones,
//  3. newest created first.
func Project(tasks []model.Task, filter model.Filter, query string) []model.Task {
	query = strings.ToLower(query)

	var out []model.Task
	for _, t := range tasks {
		if !filter.Matches(t.Completed) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(t.Title), query) {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return displayLess(out[i], out[j])
	})
	return out
}

func displayLess(a, b model.Task) bool {
	if a.Completed != b.Completed {
		return !a.Completed
	}

	aDue, aOK := a.DueInstant()
	bDue, bOK := b.DueInstant()
	switch {
	case aOK && bOK:
		if !aDue.Equal(bDue) {
			return aDue.Before(bDue)
		}
	case aOK != bOK:
		return aOK
	}

	return a.CreatedAt > b.CreatedAt
}
