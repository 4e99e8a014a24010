// Package shared holds value objects used by more than one bounded context.
package shared

import "fmt"

// Priority is the urgency scale shared by reports and equipment.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

var priorityWeights = map[Priority]int{
	PriorityLow:      1,
	PriorityMedium:   2,
	PriorityHigh:     3,
	PriorityCritical: 4,
}

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	_, ok := priorityWeights[p]
	return ok
}

// Weight orders priorities from low (1) to critical (4).
func (p Priority) Weight() int {
	return priorityWeights[p]
}

// ParsePriority accepts an empty string as medium.
func ParsePriority(s string) (Priority, error) {
	if s == "" {
		return PriorityMedium, nil
	}
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}

func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}
}
