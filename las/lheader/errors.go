package lheader

import (
	"fmt"

	"github.com/pkg/errors"
)

type (
	ErrDescriptorNotFound struct {
		Caller string
		Name   string
	}
)

func (r ErrDescriptorNotFound) Error() string {
	return fmt.Sprintf(`%s: descriptor "%s" not found`, r.Caller, r.Name)
}

// IsNotFound reports whether err, or any error it wraps, is an ErrDescriptorNotFound.
func IsNotFound(err error) bool {
	target := ErrDescriptorNotFound{}
	return errors.As(err, &target)
}
