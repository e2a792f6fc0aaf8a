package services

import (
	"errors"
	"fmt"

	"newswire-backend/app/repository"

	"gorm.io/gorm"
)

// Sentinel error kinds; concrete messages wrap these so callers can match
// with errors.Is while still surfacing the templated message.
var (
	ErrNotFound           = errors.New("element not found")
	ErrNotUnique          = errors.New("not unique")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
)

func notFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func notUniquef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotUnique, fmt.Sprintf(format, args...))
}

func validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// translateListError maps malformed pagination/sorting arguments to a
// validation error callers can surface as a 400.
func translateListError(err error) error {
	if errors.Is(err, repository.ErrInvalidListParams) || errors.Is(err, repository.ErrUnknownSortField) {
		return validationf("value of the sortBy is wrong")
	}
	return err
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isDuplicatedKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
