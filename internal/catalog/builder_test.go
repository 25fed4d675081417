package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// validBuilder returns a builder with every required field populated.
func validBuilder() *Builder {
	return NewBuilder("test-board").
		Name("Test Board").
		FQBN("vendor:arch:variant").
		Core("vendor:arch").
		BaudRate(115200).
		Capabilities("wifi", "pwm").
		Snippets(map[string]string{"wifi": "#include <WiFi.h>"})
}

func TestBuilder_Build(t *testing.T) {
	board, err := validBuilder().Build()

	require.NoError(t, err)
	require.Equal(t, "test-board", board.Slug())
	require.Equal(t, "Test Board", board.Name())
	require.Equal(t, "vendor:arch:variant", board.FQBN())
	require.Equal(t, "vendor:arch", board.Core())
	require.Equal(t, 115200, board.BaudRate())
}

func TestBuilder_Build_EmptySlug(t *testing.T) {
	_, err := NewBuilder("").Name("X").FQBN("a:b:c").Core("a:b").BaudRate(9600).Build()

	require.ErrorIs(t, err, ErrEmptySlug)
}

func TestBuilder_Build_EmptyName(t *testing.T) {
	_, err := NewBuilder("x").FQBN("a:b:c").Core("a:b").BaudRate(9600).Build()

	require.ErrorIs(t, err, ErrEmptyName)
}

func TestBuilder_Build_EmptyCore(t *testing.T) {
	_, err := NewBuilder("x").Name("X").FQBN("a:b:c").BaudRate(9600).Build()

	require.ErrorIs(t, err, ErrEmptyCore)
}

func TestBuilder_Build_FQBNSegmentCount(t *testing.T) {
	cases := []string{"", "a", "a:b", "a:b:c:d", "a:b:c:UploadSpeed=115200"}
	for _, fqbn := range cases {
		_, err := validBuilder().FQBN(fqbn).Build()
		require.ErrorIs(t, err, ErrInvalidFQBN, "fqbn %q should be rejected", fqbn)
	}
}

func TestBuilder_Build_FQBNEmptySegment(t *testing.T) {
	cases := []string{"a::c", ":b:c", "a:b:"}
	for _, fqbn := range cases {
		_, err := validBuilder().FQBN(fqbn).Build()
		require.ErrorIs(t, err, ErrInvalidFQBN, "fqbn %q should be rejected", fqbn)
	}
}

func TestBuilder_Build_BaudRate(t *testing.T) {
	_, err := validBuilder().BaudRate(0).Build()
	require.ErrorIs(t, err, ErrInvalidBaudRate)

	_, err = validBuilder().BaudRate(-9600).Build()
	require.ErrorIs(t, err, ErrInvalidBaudRate)
}

func TestBuilder_Build_SnippetWithoutCapability(t *testing.T) {
	_, err := validBuilder().
		Snippets(map[string]string{"ethernet": "#include <Ethernet.h>"}).
		Build()

	require.ErrorIs(t, err, ErrUndeclaredCapability)
}

func TestBuilder_Build_CapabilityWithoutSnippet(t *testing.T) {
	// The reverse subset relation is allowed: descriptive-only tags have no
	// snippet and are never rendered.
	board, err := validBuilder().
		Capabilities("wifi", "digital_io", "pwm").
		Build()

	require.NoError(t, err)
	_, ok := board.Snippet("digital_io")
	require.False(t, ok)
	_, ok = board.Snippet("wifi")
	require.True(t, ok)
}

func TestBuilder_Build_NoSnippets(t *testing.T) {
	board, err := validBuilder().Snippets(nil).Build()

	require.NoError(t, err)
	require.False(t, board.HasSnippets())
}
