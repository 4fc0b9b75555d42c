package domain_test

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modulePath = "github.com/formbind-dev/formbind-sdk/"

// TestDomainHasNoOutwardDependencies verifies the domain layer imports only
// the standard library and other domain packages. The registry, observable,
// and application layers depend on domain, never the reverse.
func TestDomainHasNoOutwardDependencies(t *testing.T) {
	fset := token.NewFileSet()

	for _, pkg := range []string{"entities", "errors", "ports"} {
		files, err := filepath.Glob(filepath.Join(pkg, "*.go"))
		require.NoError(t, err)
		require.NotEmpty(t, files, "domain/%s should contain Go files", pkg)

		for _, file := range files {
			if strings.HasSuffix(file, "_test.go") {
				// Test files may import testing helpers.
				continue
			}

			f, err := parser.ParseFile(fset, file, nil, parser.ImportsOnly)
			require.NoError(t, err, "failed to parse %s", file)

			for _, imp := range f.Imports {
				importPath := strings.Trim(imp.Path.Value, `"`)
				if !strings.Contains(importPath, modulePath) {
					continue
				}
				assert.True(t, strings.Contains(importPath, modulePath+"domain/"),
					"domain/%s (%s) imports non-domain package %s",
					pkg, filepath.Base(file), importPath)
			}
		}
	}
}
