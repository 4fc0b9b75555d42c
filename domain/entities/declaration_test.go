package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "github.com/formbind-dev/formbind-sdk/domain/errors"
)

func TestNewDeclarations(t *testing.T) {
	t.Run("preserves declaration order", func(t *testing.T) {
		decls, err := NewDeclarations(
			Declaration{Property: "Name", Message: "name is required"},
			Declaration{Property: "Age", Message: "age must be positive"},
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"Name", "Age"}, decls.Names())
		assert.Equal(t, 2, decls.Len())
	})

	t.Run("lookup", func(t *testing.T) {
		decls, err := NewDeclarations(
			Declaration{Property: "Name", Message: "name is required"},
		)
		require.NoError(t, err)

		decl, ok := decls.Lookup("Name")
		require.True(t, ok)
		assert.Equal(t, "name is required", decl.Message)

		_, ok = decls.Lookup("Age")
		assert.False(t, ok)
	})

	t.Run("empty table is allowed", func(t *testing.T) {
		decls, err := NewDeclarations()
		require.NoError(t, err)
		assert.Zero(t, decls.Len())
	})

	t.Run("rejects empty property name", func(t *testing.T) {
		_, err := NewDeclarations(Declaration{Message: "m"})
		assert.True(t, dErrors.IsConfiguration(err))
	})

	t.Run("rejects empty message", func(t *testing.T) {
		_, err := NewDeclarations(Declaration{Property: "Name"})
		assert.True(t, dErrors.IsConfiguration(err))
	})

	t.Run("rejects duplicate property", func(t *testing.T) {
		_, err := NewDeclarations(
			Declaration{Property: "Name", Message: "a"},
			Declaration{Property: "Name", Message: "b"},
		)
		var dup *dErrors.DuplicateDeclarationError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "Name", dup.Property)
	})
}

func TestDeclarationsFromStruct(t *testing.T) {
	type form struct {
		text  string `bind:"Text,You have to enter something"`
		count int    `bind:"Count,count must be set"`
		note  string // undeclared, ignored
	}
	t.Run("reads bind tags in field order", func(t *testing.T) {
		decls, err := DeclarationsFromStruct(form{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Text", "Count"}, decls.Names())

		decl, ok := decls.Lookup("Text")
		require.True(t, ok)
		assert.Equal(t, "You have to enter something", decl.Message)
	})

	t.Run("accepts pointer to struct", func(t *testing.T) {
		decls, err := DeclarationsFromStruct(&form{})
		require.NoError(t, err)
		assert.Equal(t, 2, decls.Len())
	})

	t.Run("message may contain commas", func(t *testing.T) {
		type commas struct {
			v string `bind:"V,first, then second"`
		}
		decls, err := DeclarationsFromStruct(commas{})
		require.NoError(t, err)
		decl, ok := decls.Lookup("V")
		require.True(t, ok)
		assert.Equal(t, "first, then second", decl.Message)
	})

	t.Run("rejects tag without message", func(t *testing.T) {
		type bad struct {
			v string `bind:"V"`
		}
		_, err := DeclarationsFromStruct(bad{})
		assert.True(t, dErrors.IsConfiguration(err))
	})

	t.Run("rejects non-struct model", func(t *testing.T) {
		_, err := DeclarationsFromStruct(42)
		assert.True(t, dErrors.IsConfiguration(err))
		_, err = DeclarationsFromStruct(nil)
		assert.True(t, dErrors.IsConfiguration(err))
	})
}
