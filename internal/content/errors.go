package content

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("record not found")
)

// ValidationError reports required fields missing from a create payload.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}
