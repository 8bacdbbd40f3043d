package adapter

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"
)

// Launcher opens catalog pages and cover images in a browser
type Launcher struct {
	command string   // configured browser command, empty for system default
	args    []string // additional arguments for the browser
	logger  *slog.Logger

	start func(*exec.Cmd) error
}

// NewLauncher creates a new Launcher. An empty command uses the system default handler.
func NewLauncher(command string, args []string, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{
		command: strings.TrimSpace(command),
		args:    args,
		logger:  logger,
		start:   func(cmd *exec.Cmd) error { return cmd.Start() },
	}
}

// Launch opens url without waiting for the browser to exit
func (l *Launcher) Launch(url string) error {
	if url == "" {
		return fmt.Errorf("nothing to open")
	}

	name, args := l.commandFor(url, runtime.GOOS)
	l.logger.Info("launching browser", "command", name, "args", args)

	if err := l.start(exec.Command(name, args...)); err != nil {
		return fmt.Errorf("failed to launch %s: %w", name, err)
	}
	return nil
}

// commandFor returns the command line that opens url on goos
func (l *Launcher) commandFor(url, goos string) (string, []string) {
	// Tier 1: User configured a specific browser
	if l.command != "" {
		args := append([]string{}, l.args...)
		return l.command, append(args, url)
	}

	// Tier 2: System default (open/start/xdg-open)
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "cmd", []string{"/c", "start", "", url}
	default:
		return "xdg-open", []string{url}
	}
}
