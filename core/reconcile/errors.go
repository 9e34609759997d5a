package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a lookup that must succeed finds nothing.
	ErrNotFound = errors.New("not found")

	// ErrNegativeQuantity is returned for stock quantities below zero.
	ErrNegativeQuantity = errors.New("quantity must not be negative")
)

// AmbiguousError reports remote state this package refuses to guess about:
// several supplier parts for one SKU, several parts with the same exact name,
// several companies with the same name.
type AmbiguousError struct {
	// Kind is the record family, e.g. "supplier part".
	Kind string
	// Key is the value that matched more than once.
	Key string
	// Count is the number of matches.
	Count int
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous %s %q: %d matches", e.Kind, e.Key, e.Count)
}

// IsAmbiguous reports whether err wraps an *AmbiguousError.
func IsAmbiguous(err error) bool {
	var amb *AmbiguousError
	return errors.As(err, &amb)
}

// ConfigError reports a misconfiguration detected before any remote write,
// such as a category whose path no longer matches the expected one.
type ConfigError struct {
	Setting string
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Setting, e.Reason)
}

// MissingParameterError is returned by UpdateOnly when a part has no parameter
// for an attribute name.
type MissingParameterError struct {
	PartID int
	Name   string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("part %d has no parameter %q", e.PartID, e.Name)
}

// MissingTemplateError is returned by Upsert when the template registry has no
// template with the attribute name.
type MissingTemplateError struct {
	Name string
}

func (e *MissingTemplateError) Error() string {
	return fmt.Sprintf("parameter template %q does not exist", e.Name)
}
