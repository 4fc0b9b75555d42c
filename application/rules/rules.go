// Package rules builds the zero-argument validator predicates stored in a
// model's registry. Predicates close over a getter for the guarded
// property, so every evaluation reads the property's current value.
package rules

import (
	"cmp"

	"github.com/go-playground/validator/v10"

	"github.com/formbind-dev/formbind-sdk/domain/entities"
)

// validate is a package-level singleton; creating a validator per predicate
// evaluation is expensive and unnecessary.
var validate = validator.New()

// Tag builds a validator from a go-playground/validator tag expression
// applied to the getter's current value, e.g. Tag(get, "required,email").
func Tag(get func() any, tag string) entities.Validator {
	return func() bool {
		return validate.Var(get(), tag) == nil
	}
}

// NonEmpty passes while the property holds a non-empty string.
func NonEmpty(get func() string) entities.Validator {
	return func() bool {
		return get() != ""
	}
}

// MinLen passes while the property holds a string of at least n bytes.
func MinLen(get func() string, n int) entities.Validator {
	return func() bool {
		return len(get()) >= n
	}
}

// Range passes while the property's value lies in [lo, hi].
func Range[T cmp.Ordered](get func() T, lo, hi T) entities.Validator {
	return func() bool {
		v := get()
		return v >= lo && v <= hi
	}
}

// All passes when every given validator passes. A nil element counts as
// failing, matching the model's treatment of absent validators.
func All(validators ...entities.Validator) entities.Validator {
	return func() bool {
		for _, v := range validators {
			if v == nil || !v() {
				return false
			}
		}
		return true
	}
}

// Any passes when at least one given validator passes. Nil elements count
// as failing.
func Any(validators ...entities.Validator) entities.Validator {
	return func() bool {
		for _, v := range validators {
			if v != nil && v() {
				return true
			}
		}
		return false
	}
}

// Not inverts a validator. Not(nil) always passes, since a nil validator
// counts as failing.
func Not(v entities.Validator) entities.Validator {
	return func() bool {
		return v == nil || !v()
	}
}
