package repository

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidListParams is returned when pagination or sorting arguments are malformed.
var ErrInvalidListParams = errors.New("invalid list parameters")

// ErrUnknownSortField is returned when the sortBy field is not a sortable column.
var ErrUnknownSortField = errors.New("unknown sort field")

// ListParams carries pagination and sorting arguments for list queries.
// SortBy has the shape "field,direction", e.g. "created_at,desc".
type ListParams struct {
	Page   int
	Size   int
	SortBy string
}

func (p ListParams) Validate() error {
	if p.Page < 0 || p.Size <= 0 || p.SortBy == "" {
		return ErrInvalidListParams
	}
	return nil
}

func (p ListParams) Offset() int {
	return p.Page * p.Size
}

// SortField returns the field part of SortBy.
func (p ListParams) SortField() string {
	field, _ := splitSort(p.SortBy)
	return field
}

// Ascending reports whether the direction part equals "asc" case-insensitively.
// Any other value sorts descending, matching the list contract.
func (p ListParams) Ascending() bool {
	_, dir := splitSort(p.SortBy)
	return strings.EqualFold(dir, "ASC")
}

func splitSort(sortBy string) (field, direction string) {
	parts := strings.SplitN(sortBy, ",", 2)
	field = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		direction = strings.TrimSpace(parts[1])
	}
	return field, direction
}

// orderClause builds a safe ORDER BY clause from the params. The sort field
// must be one of the allowed column names so user input never reaches SQL raw.
func orderClause(p ListParams, allowed ...string) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	field := p.SortField()
	if field == "" {
		return "", ErrInvalidListParams
	}
	ok := false
	for _, col := range allowed {
		if field == col {
			ok = true
			break
		}
	}
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownSortField, field)
	}
	dir := "DESC"
	if p.Ascending() {
		dir = "ASC"
	}
	return field + " " + dir, nil
}
