package gen

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig marks invalid or inconsistent generator configuration.
	ErrConfig = errors.New("invalid generator configuration")
	// ErrIntegrity marks a post-generation referential integrity violation.
	ErrIntegrity = errors.New("referential integrity violation")
)

// ConfigError aborts a run before any rows are produced.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfig
}

func configErrf(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IntegrityError names the first dangling reference or duplicate key found
// during assembly, by table, row index and offending key.
type IntegrityError struct {
	Table string
	Row   int
	Key   string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("table %s row %d: unresolved or duplicate key %q", e.Table, e.Row, e.Key)
}

func (e *IntegrityError) Unwrap() error {
	return ErrIntegrity
}
