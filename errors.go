package appliance

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrMissingConfig is returned (wrapped) when a required environment
	// variable is not set.
	ErrMissingConfig = errors.New("missing configuration")

	ErrInvalidInterpreter = errors.New("invalid interpreter version")
)

// MissingConfigError lists the required environment variables that were not
// present when the configuration was loaded.
type MissingConfigError struct {
	Keys []string
}

func (e *MissingConfigError) Error() string {
	return ErrMissingConfig.Error() + ": required environment variable(s) not set: " + strings.Join(e.Keys, ", ")
}

func (e *MissingConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}
