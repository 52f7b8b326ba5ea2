package apierror_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apikit/apierror"
)

func TestNew(t *testing.T) {
	errNotFound := apierror.Define("not_found", http.StatusNotFound, "user does not exist")
	errEmailTaken := apierror.Define("email_taken", http.StatusConflict, "email is already registered")

	t.Run("builds taxonomy with pairwise distinct codes", func(t *testing.T) {
		tax, err := apierror.New("users", errNotFound, errEmailTaken)
		require.NoError(t, err)

		assert.Equal(t, "users", tax.Name())
		require.Len(t, tax.Descriptors(), 2)
	})

	t.Run("preserves declaration order", func(t *testing.T) {
		tax, err := apierror.New("users", errEmailTaken, errNotFound)
		require.NoError(t, err)

		descs := tax.Descriptors()
		assert.Same(t, errEmailTaken, descs[0])
		assert.Same(t, errNotFound, descs[1])
	})

	t.Run("descriptors returns a copy", func(t *testing.T) {
		tax, err := apierror.New("users", errNotFound, errEmailTaken)
		require.NoError(t, err)

		descs := tax.Descriptors()
		descs[0] = nil
		assert.Same(t, errNotFound, tax.Descriptors()[0])
	})

	t.Run("rejects duplicate codes", func(t *testing.T) {
		dup := apierror.Define("not_found", http.StatusGone, "resource is gone")

		tax, err := apierror.New("users", errNotFound, dup)
		require.ErrorIs(t, err, apierror.ErrDefinitionConflict)
		assert.Contains(t, err.Error(), `"not_found"`)
		assert.Nil(t, tax)
	})

	t.Run("tolerates the same descriptor listed twice", func(t *testing.T) {
		tax, err := apierror.New("users", errNotFound, errNotFound)
		require.NoError(t, err)
		assert.Len(t, tax.Descriptors(), 1)
	})

	t.Run("rejects empty taxonomy name", func(t *testing.T) {
		_, err := apierror.New("  ", errNotFound)
		assert.ErrorIs(t, err, apierror.ErrDefinitionConflict)
	})

	t.Run("rejects empty code", func(t *testing.T) {
		_, err := apierror.New("users", apierror.Define("", http.StatusNotFound, "missing"))
		assert.ErrorIs(t, err, apierror.ErrDefinitionConflict)
	})

	t.Run("rejects status outside http range", func(t *testing.T) {
		_, err := apierror.New("users", apierror.Define("odd", 42, "odd status"))
		assert.ErrorIs(t, err, apierror.ErrDefinitionConflict)
	})

	t.Run("rejects nil descriptor", func(t *testing.T) {
		_, err := apierror.New("users", errNotFound, nil)
		assert.ErrorIs(t, err, apierror.ErrDefinitionConflict)
	})

	t.Run("allows empty descriptor list", func(t *testing.T) {
		tax, err := apierror.New("users")
		require.NoError(t, err)
		assert.Empty(t, tax.Descriptors())
	})
}

func TestMustNew(t *testing.T) {
	t.Run("returns taxonomy on valid input", func(t *testing.T) {
		tax := apierror.MustNew("users", apierror.Define("not_found", http.StatusNotFound, "user does not exist"))
		assert.Equal(t, "users", tax.Name())
	})

	t.Run("panics on definition conflict", func(t *testing.T) {
		a := apierror.Define("not_found", http.StatusNotFound, "user does not exist")
		b := apierror.Define("not_found", http.StatusNotFound, "copy of the above")

		assert.Panics(t, func() {
			apierror.MustNew("users", a, b)
		})
	})
}

func TestTaxonomy_Lookup(t *testing.T) {
	errNotFound := apierror.Define("not_found", http.StatusNotFound, "user does not exist")
	tax := apierror.MustNew("users", errNotFound)

	t.Run("finds registered code", func(t *testing.T) {
		d, ok := tax.Lookup("not_found")
		require.True(t, ok)
		assert.Same(t, errNotFound, d)
	})

	t.Run("misses unknown code", func(t *testing.T) {
		d, ok := tax.Lookup("unknown")
		assert.False(t, ok)
		assert.Nil(t, d)
	})
}
