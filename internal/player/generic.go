package player

import (
	"helium/internal/media"
)

// Generic implements the Player interface for players like iina and celluloid
// that accept mpv-compatible arguments.
type Generic struct {
	name string
}

func (g *Generic) Name() string { return g.name }

func (g *Generic) Available() bool { return available(g.name) }

// Play launches the generic player.
func (g *Generic) Play(target media.Target, opts Options) error {
	return run(g.name, g.args(target, opts))
}

func (g *Generic) args(target media.Target, opts Options) []string {
	// Both iina and celluloid accept mpv-style flags
	prefix := "--"
	if g.name == "iina" {
		prefix = "--mpv-"
	}

	args := []string{target.URL, prefix + "force-media-title=" + target.Title()}
	if opts.OnTop {
		args = append(args, prefix+"ontop")
	}
	return args
}
