package domain

import (
	"errors"
	"strings"
)

var (
	ErrUnknownCategory = errors.New("unknown pricing category")
	ErrCategoryEmpty   = errors.New("no pricing data for category")
	ErrSizeNotFound    = errors.New("no pricing for size")
	ErrOrderNotFound   = errors.New("order not found")
)

// ValidationError carries every violation found in a submission so the
// caller gets the complete list in one pass.
type ValidationError struct {
	Violations []string
}

func (e ValidationError) Error() string {
	return "invalid submission: " + strings.Join(e.Violations, "; ")
}
