package model

import "strings"

// Priority is one of P1 (most urgent) to P4.
type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
	PriorityP4 Priority = "P4"

	DefaultPriority = PriorityP3
)

// ParsePriority normalizes s ("p1", " P2 ") into a Priority.
func ParsePriority(s string) (Priority, bool) {
	p := Priority(strings.ToUpper(strings.TrimSpace(s)))
	return p, p.Valid()
}

// Valid reports whether p is one of the four known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityP1, PriorityP2, PriorityP3, PriorityP4:
		return true
	}
	return false
}

// Rank orders priorities for sorting: P1 is 1, P4 is 4, unknown sorts last.
func (p Priority) Rank() int {
	switch p {
	case PriorityP1:
		return 1
	case PriorityP2:
		return 2
	case PriorityP3:
		return 3
	case PriorityP4:
		return 4
	}
	return 5
}

// Label is the human-readable name shown next to the priority code.
func (p Priority) Label() string {
	switch p {
	case PriorityP1:
		return "Critical"
	case PriorityP2:
		return "High"
	case PriorityP3:
		return "Medium"
	case PriorityP4:
		return "Low"
	}
	return ""
}
