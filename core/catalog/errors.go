package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrCatalogIntegrity is matched by every *IntegrityError.
	ErrCatalogIntegrity = errors.New("catalog integrity failure")

	// ErrNotModified is returned by a Loader when the stored sources did not change
	// since the previous load.
	ErrNotModified = errors.New("catalog not modified")

	// ErrNoSnapshot is returned when no snapshot has been published yet.
	ErrNoSnapshot = errors.New("no catalog snapshot published")
)

// IntegrityError reports a required catalog section that is absent or malformed.
type IntegrityError struct {
	// Section is the top-level catalog section, e.g. "paint_kits".
	Section string
	// Key is the offending record key, empty when the whole section is at fault.
	Key string
	// Reason describes the failure.
	Reason string
}

func (e *IntegrityError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("catalog integrity: %s[%s]: %s", e.Section, e.Key, e.Reason)
	}
	return fmt.Sprintf("catalog integrity: %s: %s", e.Section, e.Reason)
}

func (e *IntegrityError) Unwrap() error {
	return ErrCatalogIntegrity
}
