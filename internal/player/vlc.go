package player

import (
	"helium/internal/media"
)

// VLC implements the Player interface for VLC media player.
type VLC struct{}

func (v *VLC) Name() string { return "vlc" }

func (v *VLC) Available() bool { return available("vlc") }

// Play launches VLC and exits it when playback ends.
func (v *VLC) Play(target media.Target, opts Options) error {
	return run("vlc", v.args(target, opts))
}

func (v *VLC) args(target media.Target, opts Options) []string {
	args := []string{
		target.URL,
		"--meta-title", target.Title(),
		"--play-and-exit",
	}
	if opts.OnTop {
		args = append(args, "--video-on-top")
	}
	return args
}
