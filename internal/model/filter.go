package model

// Filter restricts the displayed tasks by completion status.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists the filter values in cycle order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// Matches reports whether a task with the given completion state passes
// the filter. Unknown filter values behave like FilterAll.
func (f Filter) Matches(completed bool) bool {
	switch f {
	case FilterActive:
		return !completed
	case FilterCompleted:
		return completed
	default:
		return true
	}
}

// Next returns the filter that follows f in cycle order.
func (f Filter) Next() Filter {
	for i, v := range Filters {
		if v == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}
