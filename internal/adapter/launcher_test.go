package adapter

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLauncher_CommandFor(t *testing.T) {
	url := "https://openlibrary.org/works/OL1W"

	t.Run("system default", func(t *testing.T) {
		l := NewLauncher("", nil, NullLogger())

		name, args := l.commandFor(url, "linux")
		assert.Equal(t, "xdg-open", name)
		assert.Equal(t, []string{url}, args)

		name, args = l.commandFor(url, "darwin")
		assert.Equal(t, "open", name)
		assert.Equal(t, []string{url}, args)

		name, args = l.commandFor(url, "windows")
		assert.Equal(t, "cmd", name)
		assert.Equal(t, []string{"/c", "start", "", url}, args)
	})

	t.Run("configured browser", func(t *testing.T) {
		cfgArgs := []string{"--new-tab"}
		l := NewLauncher("firefox", cfgArgs, NullLogger())

		name, args := l.commandFor(url, "linux")
		assert.Equal(t, "firefox", name)
		assert.Equal(t, []string{"--new-tab", url}, args)
		assert.Equal(t, []string{"--new-tab"}, cfgArgs)
	})
}

func TestLauncher_Launch(t *testing.T) {
	l := NewLauncher("browser", nil, NullLogger())

	var started *exec.Cmd
	l.start = func(cmd *exec.Cmd) error {
		started = cmd
		return nil
	}

	require.NoError(t, l.Launch("https://example.com"))
	require.NotNil(t, started)
	assert.Equal(t, []string{"browser", "https://example.com"}, started.Args)

	assert.Error(t, l.Launch(""))

	l.start = func(*exec.Cmd) error { return errors.New("not found") }
	assert.ErrorContains(t, l.Launch("https://example.com"), "not found")
}
