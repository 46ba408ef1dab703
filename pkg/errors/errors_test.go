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

	err := NewValidationError("x_channel", "must differ from y_channel", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "x_channel", validationErr.Field)
	require.Equal(t, "validation error: x_channel: must differ from y_channel", err.Error())
}

func TestColorFormatErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("bad digit")
	err := NewColorFormatError("#ggg", "invalid hex digits", underlying)

	var formatErr *ColorFormatError
	require.ErrorAs(t, err, &formatErr)
	require.Equal(t, "#ggg", formatErr.Input)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "invalid hex digits")
}

func TestChannelErrorMessage(t *testing.T) {
	t.Parallel()

	err := NewChannelError("red", "hsb")
	require.Equal(t, `unsupported color channel "red" for hsb`, err.Error())

	var nilErr *ChannelError
	require.Equal(t, "", nilErr.Error())
}
