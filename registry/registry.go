// Package registry implements the per-instance validation rule registry.
// A Registry is owned exclusively by one model instance and shares its
// lifetime; it holds one rule per declared property and is sealed once the
// owning model finishes construction.
package registry

import (
	"sort"

	"github.com/formbind-dev/formbind-sdk/domain/entities"
	dErrors "github.com/formbind-dev/formbind-sdk/domain/errors"
)

// Registry maps property names to validation rules. It is not safe for
// concurrent use; the owning model confines it to the mutating goroutine.
type Registry struct {
	decls  *entities.Declarations
	rules  map[string]entities.Rule
	sealed bool
}

// New creates an empty registry bound to a declaration table. Every Register
// call is checked against the table; Verify later checks the table against
// the registered set.
func New(decls *entities.Declarations) *Registry {
	return &Registry{
		decls: decls,
		rules: make(map[string]entities.Rule, decls.Len()),
	}
}

// Register stores the validator for a declared property, paired with the
// message its declaration carries. Each property may be registered exactly
// once; registering an undeclared property, an empty name, or a nil
// validator is a configuration error.
func (r *Registry) Register(property string, validator entities.Validator) error {
	if r.sealed {
		return &dErrors.SealedError{Property: property}
	}
	if property == "" {
		return &dErrors.InvalidArgumentError{Argument: "property", Reason: "must not be empty"}
	}
	if validator == nil {
		return &dErrors.InvalidArgumentError{Argument: "validator", Reason: "must not be nil for property " + property}
	}
	decl, ok := r.decls.Lookup(property)
	if !ok {
		return &dErrors.UndeclaredPropertyError{Property: property}
	}
	if _, exists := r.rules[property]; exists {
		return &dErrors.DuplicateRegistrationError{Property: property}
	}
	r.rules[property] = entities.Rule{Validate: validator, Message: decl.Message}
	return nil
}

// Lookup returns the rule for a property. Absence is not an error: a
// property without a rule is treated as always valid by the caller.
func (r *Registry) Lookup(property string) (entities.Rule, bool) {
	rule, ok := r.rules[property]
	return rule, ok
}

// Verify checks that every declared property received a validator. Register
// already rejects undeclared and duplicate names, so set equality reduces to
// "nothing declared is missing". Runs once, at the end of construction.
func (r *Registry) Verify() error {
	if len(r.rules) == r.decls.Len() {
		return nil
	}
	var missing []string
	for _, name := range r.decls.Names() {
		if _, ok := r.rules[name]; !ok {
			missing = append(missing, name)
		}
	}
	return &dErrors.CompletenessError{Missing: missing}
}

// Seal closes the registry for further registration. Called by the owning
// model when construction completes.
func (r *Registry) Seal() {
	r.sealed = true
}

// Properties returns the registered property names, sorted.
func (r *Registry) Properties() []string {
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	return len(r.rules)
}
