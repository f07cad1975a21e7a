package envfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchOnKey(t *testing.T) {
	f, err := Compile(`key startsWith "PATH"`)
	require.NoError(t, err)

	match, err := f.Match("PATH", "/bin:/usr/bin")
	require.NoError(t, err)
	assert.True(t, match)

	match, err = f.Match("HOME", "/home/user")
	require.NoError(t, err)
	assert.False(t, match)
}

func TestMatchOnValue(t *testing.T) {
	f, err := Compile(`value contains "/usr"`)
	require.NoError(t, err)

	match, err := f.Match("PATH", "/bin:/usr/bin")
	require.NoError(t, err)
	assert.True(t, match)

	match, err = f.Match("SHELL", "/bin/sh")
	require.NoError(t, err)
	assert.False(t, match)
}

func TestMatchCombined(t *testing.T) {
	f, err := Compile(`key == "TERM" && value != ""`)
	require.NoError(t, err)

	match, err := f.Match("TERM", "xterm")
	require.NoError(t, err)
	assert.True(t, match)

	match, err = f.Match("TERM", "")
	require.NoError(t, err)
	assert.False(t, match)
}

func TestCompileInvalidSyntax(t *testing.T) {
	_, err := Compile(`key startsWith`)
	assert.Error(t, err)
}

func TestCompileNonBoolean(t *testing.T) {
	// Expressions must produce a boolean; a bare string is rejected at
	// compile time.
	_, err := Compile(`key`)
	assert.Error(t, err)
}

func TestCompileUnknownIdentifier(t *testing.T) {
	_, err := Compile(`pid == 1`)
	assert.Error(t, err)
}
