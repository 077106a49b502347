// Package player launches the surface a resolved URL is loaded in.
// All player invocations use exec.Command with explicit argument slices;
// no shell is involved.
package player

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"helium/internal/media"
)

// Options carries window hints for players that support them.
type Options struct {
	OnTop bool // Keep the player window above other windows
}

// Player is the interface for media player implementations.
type Player interface {
	// Play loads the target and blocks until the player exits.
	Play(target media.Target, opts Options) error

	// Name returns the player name.
	Name() string

	// Available checks if the player binary exists in PATH.
	Available() bool
}

// New creates a player by name.
func New(name string) Player {
	switch strings.ToLower(name) {
	case "mpv":
		return &MPV{}
	case "vlc":
		return &VLC{}
	case "iina", "celluloid":
		return &Generic{name: strings.ToLower(name)}
	case "browser":
		return &Browser{command: browserCommand(runtime.GOOS)}
	default:
		return &MPV{} // Default to mpv
	}
}

// run executes bin with args attached to the terminal. Players commonly
// exit non-zero when the user closes the window, so exit errors are ignored.
func run(bin string, args []string) error {
	cmd := exec.Command(bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return nil
		}
		return fmt.Errorf("running %s: %w", bin, err)
	}
	return nil
}

func available(bin string) bool {
	_, err := exec.LookPath(bin)
	return err == nil
}
