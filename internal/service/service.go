package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperr "eduai/internal/errors"
)

// storeErr maps repository errors onto the service taxonomy.
func storeErr(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	return apperr.Backend(op, err)
}

// optional trims s and returns nil when nothing is left.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// requireText trims each value and fails when any is blank.
func requireText(msg string, values ...*string) error {
	for _, v := range values {
		*v = strings.TrimSpace(*v)
		if *v == "" {
			return apperr.Validation(msg)
		}
	}
	return nil
}
