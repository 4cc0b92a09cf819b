package oerror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFormatsAndWraps(t *testing.T) {
	base := errors.New("disk gone")
	err := New("load settings: %w", base)
	require.Equal(t, "load settings: disk gone", err.Error())
	require.ErrorIs(t, err, base)

	plain := New("missing %s", "world")
	require.Equal(t, "missing world", plain.Error())
	require.Nil(t, plain.Unwrap())
}
