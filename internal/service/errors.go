package service

import (
	"errors"
	"sort"
	"strings"

	"github.com/mini-blog-api/internal/validation"
)

// ErrNotFound is returned when the addressed article or comment does not exist
var ErrNotFound = errors.New("not found")

// ValidationError carries the field-error map of rejected input
type ValidationError struct {
	Fields validation.FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func invalid(fields validation.FieldErrors) error {
	return &ValidationError{Fields: fields}
}
