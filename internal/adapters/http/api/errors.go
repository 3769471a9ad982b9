package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	ErrQueryFailed = errors.New("query failed")
)

// Wrap prefixes err with the operation name.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// WrapKind attaches both a sentinel kind and the underlying cause.
func WrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}
