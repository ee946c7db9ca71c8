package models

import (
	"database/sql/driver"
	"fmt"
)

// Priority is the urgency of a task, stored as its integer ordinal.
type Priority int

const (
	PriorityNone Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

var priorityNames = [...]string{"NONE", "LOW", "MEDIUM", "HIGH"}

// ParsePriority converts an ordinal into a Priority, rejecting values outside the set.
func ParsePriority(ordinal int) (Priority, error) {
	if ordinal < int(PriorityNone) || ordinal > int(PriorityHigh) {
		return PriorityNone, fmt.Errorf("%w: got %d", ErrInvalidPriority, ordinal)
	}
	return Priority(ordinal), nil
}

// Valid reports whether p is one of the declared priorities.
func (p Priority) Valid() bool {
	return p >= PriorityNone && p <= PriorityHigh
}

func (p Priority) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Priority(%d)", int(p))
	}
	return priorityNames[p]
}

// Value implements driver.Valuer.
func (p Priority) Value() (driver.Value, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPriority, int(p))
	}
	return int64(p), nil
}

// Scan implements sql.Scanner. A NULL column decodes to PriorityNone.
func (p *Priority) Scan(src any) error {
	ordinal, err := scanOrdinal(src)
	if err != nil {
		return fmt.Errorf("scan priority: %w", err)
	}
	parsed, err := ParsePriority(ordinal)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
