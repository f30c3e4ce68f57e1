package editor

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FallbackOrder(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	assert.Equal(t, "vi", New("").Command)

	t.Setenv("EDITOR", "nano")
	assert.Equal(t, "nano", New("").Command)

	t.Setenv("VISUAL", "emacs -nw")
	assert.Equal(t, "emacs -nw", New("").Command)

	assert.Equal(t, "vim", New("vim").Command)
}

func TestEdit_RunsCommandWithPath(t *testing.T) {
	path, cleanup, err := TempFile("dyn.example.com")
	require.NoError(t, err)
	defer cleanup()

	// "touch"-like edit via true(1) just proves the command wiring
	e := New("/bin/sh -c :")
	assert.NoError(t, e.Edit(path))
}

func TestTempFile(t *testing.T) {
	path, cleanup, err := TempFile("dyn.example.com")
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)

	cleanup()

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
