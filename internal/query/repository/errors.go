package repository

import (
	"errors"
	"fmt"
)

// NotFoundError indicates the referenced resource does not exist.
type NotFoundError struct {
	Kind      string // "pod" or "deployment"
	Name      string
	Namespace string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found in namespace %q", e.Kind, e.Name, e.Namespace)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
