// Package loader turns user-supplied text into a media.Target: it
// validates the input, normalizes the scheme and applies the magic
// rewrite when enabled.
package loader

import (
	"fmt"
	"strings"

	"helium/internal/magic"
	"helium/internal/media"
	"helium/internal/urlutil"
)

// Options controls how a URL is resolved.
type Options struct {
	Magic bool // Apply magic rewrites
}

// FromInput resolves text typed or pasted by the user. A missing
// http(s):// scheme is added before rewriting.
func FromInput(input string, opts Options) (media.Target, error) {
	input = strings.TrimSpace(input)
	if err := urlutil.ValidateInput(input); err != nil {
		return media.Target{}, err
	}
	target, err := FromURL(magic.EnsureScheme(input), opts)
	if err != nil {
		return media.Target{}, err
	}
	target.Input = input
	return target, nil
}

// FromURL resolves an already absolute URL, such as one delivered by the
// helium:// scheme or found in pasted text.
func FromURL(raw string, opts Options) (media.Target, error) {
	raw = strings.TrimSpace(raw)
	if err := urlutil.ValidateURL(raw); err != nil {
		return media.Target{}, fmt.Errorf("invalid URL %q: %w", raw, err)
	}

	target := media.Target{Input: raw, URL: raw}
	if !opts.Magic {
		return target, nil
	}

	if res, ok := magic.Resolve(raw); ok {
		target.URL = res.URL.String()
		target.Platform = res.Platform
		target.Rewritten = target.URL != raw
	}
	return target, nil
}
