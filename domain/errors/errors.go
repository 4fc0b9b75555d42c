// Package errors provides domain-specific error types for the SDK.
// All types here describe construction-time configuration mistakes: they are
// programmer errors, detected while a model is being built, and fatal — a
// model whose construction reported one of these never becomes usable.
package errors

import (
	stdErrors "errors"
	"fmt"
	"sort"
	"strings"
)

// ConfigurationError marks the construction-time error class. Every error
// type in this package implements it.
type ConfigurationError interface {
	error
	// Configuration is a marker; it carries no behavior.
	Configuration()
}

// IsConfiguration reports whether err (or any error it wraps) is a
// construction-time configuration error.
func IsConfiguration(err error) bool {
	var ce ConfigurationError
	return stdErrors.As(err, &ce)
}

// InvalidArgumentError reports a missing or malformed argument at
// registration or declaration time (empty property name, nil validator,
// malformed declaration tag).
type InvalidArgumentError struct {
	Argument string
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Argument, e.Reason)
}

// Configuration implements ConfigurationError.
func (e *InvalidArgumentError) Configuration() {}

// UndeclaredPropertyError reports a Register call for a property that has no
// declaration in the owning type's declaration table.
type UndeclaredPropertyError struct {
	Property string
}

func (e *UndeclaredPropertyError) Error() string {
	return fmt.Sprintf("property %q has no declaration", e.Property)
}

// Configuration implements ConfigurationError.
func (e *UndeclaredPropertyError) Configuration() {}

// DuplicateDeclarationError reports two declarations for the same property
// name in one declaration table.
type DuplicateDeclarationError struct {
	Property string
}

func (e *DuplicateDeclarationError) Error() string {
	return fmt.Sprintf("property %q declared more than once", e.Property)
}

// Configuration implements ConfigurationError.
func (e *DuplicateDeclarationError) Configuration() {}

// DuplicateRegistrationError reports a second Register call for a property
// that already holds a validator. Registration is exactly-once per property.
type DuplicateRegistrationError struct {
	Property string
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("validator for property %q already registered", e.Property)
}

// Configuration implements ConfigurationError.
func (e *DuplicateRegistrationError) Configuration() {}

// SealedError reports a Register call after construction completed and the
// registry was sealed.
type SealedError struct {
	Property string
}

func (e *SealedError) Error() string {
	return fmt.Sprintf("cannot register property %q: registry is sealed", e.Property)
}

// Configuration implements ConfigurationError.
func (e *SealedError) Configuration() {}

// CompletenessError reports a mismatch between the declared property set and
// the registered property set at the end of construction.
type CompletenessError struct {
	// Missing holds declared properties that received no validator.
	Missing []string
}

func (e *CompletenessError) Error() string {
	missing := append([]string(nil), e.Missing...)
	sort.Strings(missing)
	return fmt.Sprintf("declared properties without a registered validator: %s",
		strings.Join(missing, ", "))
}

// Configuration implements ConfigurationError.
func (e *CompletenessError) Configuration() {}
