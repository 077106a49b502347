package player

import (
	"helium/internal/media"
)

// MPV implements the Player interface for mpv. Embed URLs are handed to
// mpv as-is; its ytdl hook resolves them.
type MPV struct{}

func (m *MPV) Name() string { return "mpv" }

func (m *MPV) Available() bool { return available("mpv") }

// Play launches mpv with the target URL.
func (m *MPV) Play(target media.Target, opts Options) error {
	return run("mpv", m.args(target, opts))
}

func (m *MPV) args(target media.Target, opts Options) []string {
	args := []string{
		target.URL,
		"--force-media-title=" + target.Title(),
		"--really-quiet",
	}
	if opts.OnTop {
		args = append(args, "--ontop")
	}
	return args
}
