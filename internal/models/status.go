package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"
)

// Status is the progress state of a task, stored as its integer ordinal.
type Status int

const (
	StatusTodo Status = iota
	StatusInProgress
	StatusDone
)

var statusNames = [...]string{"TODO", "IN_PROGRESS", "DONE"}

// ParseStatus converts an ordinal into a Status, rejecting values outside the set.
func ParseStatus(ordinal int) (Status, error) {
	if ordinal < int(StatusTodo) || ordinal > int(StatusDone) {
		return StatusTodo, fmt.Errorf("%w: got %d", ErrInvalidStatus, ordinal)
	}
	return Status(ordinal), nil
}

// Valid reports whether s is one of the declared statuses.
func (s Status) Valid() bool {
	return s >= StatusTodo && s <= StatusDone
}

func (s Status) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// Value implements driver.Valuer.
func (s Status) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStatus, int(s))
	}
	return int64(s), nil
}

// Scan implements sql.Scanner. A NULL column decodes to StatusTodo.
func (s *Status) Scan(src any) error {
	ordinal, err := scanOrdinal(src)
	if err != nil {
		return fmt.Errorf("scan status: %w", err)
	}
	parsed, err := ParseStatus(ordinal)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// scanOrdinal normalizes the driver representations of an INTEGER column.
// Some drivers hand back text for integer affinity columns, so strings are parsed too.
func scanOrdinal(src any) (int, error) {
	switch v := src.(type) {
	case nil:
		return 0, nil
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	case int:
		return v, nil
	case []byte:
		return strconv.Atoi(string(v))
	case string:
		return strconv.Atoi(v)
	default:
		return 0, fmt.Errorf("unsupported ordinal type %T", src)
	}
}
