// Package editor handles the interactive suspension point of a session:
// the temp file holding the rendered zone and the operator's text editor
// working on it.
package editor

import (
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Editor runs one editor command on files.
type Editor struct {
	Command string
}

// New returns an editor for the given command line. An empty command
// falls back to $VISUAL, then $EDITOR, then vi.
func New(command string) *Editor {
	if command == "" {
		command = os.Getenv("VISUAL")
	}

	if command == "" {
		command = os.Getenv("EDITOR")
	}

	if command == "" {
		command = "vi"
	}

	return &Editor{Command: command}
}

// Edit opens path in the editor, attached to the terminal, and blocks
// until the editor exits.
func (e *Editor) Edit(path string) error {
	parts := strings.Fields(e.Command)
	args := append(parts[1:], path) //nolint:gocritic

	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return errors.Wrapf(cmd.Run(), "editor %q failed", e.Command)
}

// TempFile creates the working zone file for one editing session and
// returns its path with a cleanup func removing it.
func TempFile(zoneName string) (string, func(), error) {
	f, err := os.CreateTemp("", "zonevi-"+strings.ReplaceAll(zoneName, "/", "_")+"-*.zone")
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to create zone temp file")
	}

	if err := f.Close(); err != nil {
		return "", nil, errors.Wrap(err, "failed to create zone temp file")
	}

	path := f.Name()

	return path, func() { _ = os.Remove(path) }, nil
}
