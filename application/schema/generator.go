// Package schema exports a model's validated-property declarations as a
// JSON Schema document for form-rendering binding layers.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/formbind-dev/formbind-sdk/domain/entities"
)

// ForModel generates a JSON Schema (Draft 2020-12) from a view struct and
// annotates each property that appears in the declaration table with its
// validation failure message under "x-error-message". The view struct's
// property names (field names, or json tags if present) must match the
// declared names for annotations to attach.
func ForModel(view any, decls *entities.Declarations) ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true, // expand struct definitions inline
	}
	s := reflector.Reflect(view)

	if decls != nil && s.Properties != nil {
		for _, name := range decls.Names() {
			prop, ok := s.Properties.Get(name)
			if !ok {
				continue
			}
			decl, _ := decls.Lookup(name)
			if prop.Extras == nil {
				prop.Extras = make(map[string]any, 1)
			}
			prop.Extras["x-error-message"] = decl.Message
		}
	}

	jsonBytes, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return jsonBytes, nil
}
