package importers

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateProvider is returned when a provider name is registered twice.
	ErrDuplicateProvider = errors.New("duplicate provider")
	// ErrMissingField marks post items without a title or a date.
	ErrMissingField = errors.New("missing required field")
)

// ConfigError reports a missing or malformed provider option, or a
// configuration the pipeline cannot work with.
type ConfigError struct {
	Option  string
	Message string
}

func newConfigError(option, format string, args ...any) *ConfigError {
	return &ConfigError{Option: option, Message: fmt.Sprintf(format, args...)}
}

func (e *ConfigError) Error() string {
	return e.Message
}

// RowError points at a rejected field of delimited-text input. Line and
// Column are 1-based; the header row counts as line 1.
type RowError struct {
	Line    int
	Column  int
	Message string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("Error at line %d, column %d: %s.", e.Line, e.Column, e.Message)
}

// FormatError is returned when a document is not in the format a provider expects.
type FormatError struct {
	Message string
	Err     error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

type ProviderNotFoundError struct {
	Name string
}

func (e *ProviderNotFoundError) Error() string {
	return fmt.Sprintf("Provider with name: \"%s\" not found.", e.Name)
}

// DuplicateProviderError matches ErrDuplicateProvider.
type DuplicateProviderError struct {
	Name string
}

func (e *DuplicateProviderError) Error() string {
	return fmt.Sprintf("A previous provider exists with the same name: \"%s\".", e.Name)
}

func (e *DuplicateProviderError) Is(target error) bool {
	return target == ErrDuplicateProvider
}

// MissingFieldError is reported for a post item lacking its title or date.
type MissingFieldError struct {
	Field     string
	Permalink string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s in post item: \"%s\" is required.", e.Field, e.Permalink)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
