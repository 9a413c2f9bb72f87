package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("swatch.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "swatch.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: swatch.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("swatch.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: swatch.yaml: no such file", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("gallery.menu.selected[0]", "references unknown item", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "gallery.menu.selected[0]", validationErr.Field)
	require.Contains(t, validationErr.Message, "references unknown item")
	require.Contains(t, err.Error(), "gallery.menu.selected[0]")
}

func TestStateErrorDescribesPolicy(t *testing.T) {
	t.Parallel()

	err := NewStateError("single", true)

	var stateErr *StateError
	require.ErrorAs(t, err, &stateErr)
	require.Equal(t, "single", stateErr.State)
	require.True(t, stateErr.Multiple)
	require.Contains(t, err.Error(), "multiple selection policy")

	require.Contains(t, NewStateError("multiple", false).Error(), "single selection policy")
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var stateErr *StateError
	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Empty(t, stateErr.Error())
	require.NoError(t, parseErr.Unwrap())
}
