package player

import (
	"helium/internal/media"
)

// Browser opens the target in the system's default browser. Window hints
// are not supported.
type Browser struct {
	command string
}

func (b *Browser) Name() string { return "browser" }

func (b *Browser) Available() bool { return available(b.command) }

// Play hands the URL to the platform opener, which returns immediately.
func (b *Browser) Play(target media.Target, opts Options) error {
	return run(b.command, []string{target.URL})
}

func browserCommand(goos string) string {
	switch goos {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		return "xdg-open"
	}
}
