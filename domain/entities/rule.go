package entities

// Validator is a zero-argument predicate over the current state of a single
// property. It is evaluated freshly on every validity query; results are
// never cached.
type Validator func() bool

// Rule pairs a property's validator with the message reported when the
// validator fails. Rules are created once, during model construction, and
// never mutated afterward.
type Rule struct {
	Validate Validator
	Message  string
}
