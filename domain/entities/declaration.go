package entities

import (
	"reflect"
	"strings"

	dErrors "github.com/formbind-dev/formbind-sdk/domain/errors"
)

// TagKey is the struct tag read by DeclarationsFromStruct.
const TagKey = "bind"

// Declaration marks one property as validated and carries the message
// reported when its validator fails.
type Declaration struct {
	Property string
	Message  string
}

// Declarations is the declaration table for one model type: the full set of
// properties that must receive exactly one validator during construction.
// The zero value is not usable; build via NewDeclarations or
// DeclarationsFromStruct.
type Declarations struct {
	order  []string
	byName map[string]Declaration
}

// NewDeclarations builds a declaration table from the given declarations.
// Property names must be non-empty and unique; messages must be non-empty.
func NewDeclarations(decls ...Declaration) (*Declarations, error) {
	d := &Declarations{byName: make(map[string]Declaration, len(decls))}
	for _, decl := range decls {
		if decl.Property == "" {
			return nil, &dErrors.InvalidArgumentError{Argument: "property", Reason: "must not be empty"}
		}
		if decl.Message == "" {
			return nil, &dErrors.InvalidArgumentError{Argument: "message", Reason: "must not be empty for property " + decl.Property}
		}
		if _, exists := d.byName[decl.Property]; exists {
			return nil, &dErrors.DuplicateDeclarationError{Property: decl.Property}
		}
		d.order = append(d.order, decl.Property)
		d.byName[decl.Property] = decl
	}
	return d, nil
}

// DeclarationsFromStruct builds a declaration table by introspecting the
// struct tags of a model type. Each field carrying a `bind` tag declares one
// validated property; the tag value is "PropertyName,failure message".
// Fields without the tag are ignored. The model may be a struct or a pointer
// to one.
func DeclarationsFromStruct(model any) (*Declarations, error) {
	t := reflect.TypeOf(model)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, &dErrors.InvalidArgumentError{Argument: "model", Reason: "must be a struct or pointer to struct"}
	}

	var decls []Declaration
	for i := 0; i < t.NumField(); i++ {
		tag, ok := t.Field(i).Tag.Lookup(TagKey)
		if !ok {
			continue
		}
		name, message, found := strings.Cut(tag, ",")
		if !found || name == "" || message == "" {
			return nil, &dErrors.InvalidArgumentError{
				Argument: "tag",
				Reason:   "field " + t.Field(i).Name + ": " + TagKey + ` tag must be "PropertyName,message"`,
			}
		}
		decls = append(decls, Declaration{Property: name, Message: message})
	}
	return NewDeclarations(decls...)
}

// Lookup returns the declaration for a property, if declared.
func (d *Declarations) Lookup(property string) (Declaration, bool) {
	decl, ok := d.byName[property]
	return decl, ok
}

// Names returns the declared property names in declaration order.
func (d *Declarations) Names() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Len returns the number of declared properties.
func (d *Declarations) Len() int {
	return len(d.order)
}
