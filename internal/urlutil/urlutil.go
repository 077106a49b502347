// Package urlutil validates and extracts the URLs users hand to helium
// before they reach the rewrite engine or a player.
package urlutil

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"mvdan.cc/xurls/v2"
)

// AppScheme is the custom URL scheme helium registers for itself.
const AppScheme = "helium://"

// ErrNotHelium is returned by TrimAppScheme for strings without AppScheme.
var ErrNotHelium = errors.New("not a helium:// URL")

var (
	// inputPattern matches a host-like run of dotted or slashed words,
	// optionally schemed, followed by anything but whitespace.
	inputPattern = regexp.MustCompile(`^(?:https?://)?[\w-]+(?:[./][\w-]+)+\S*$`)

	linkPattern = xurls.Strict()
)

// ValidateURL checks that a URL is well-formed, absolute and uses HTTP(S).
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("only HTTP(S) URLs are allowed, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL has no host")
	}
	return nil
}

// ValidateInput checks that typed text looks like a URL worth loading.
func ValidateInput(input string) error {
	if input == "" {
		return fmt.Errorf("URL cannot be empty")
	}
	if len(input) > 4096 {
		return fmt.Errorf("URL too long: %d characters", len(input))
	}
	if !inputPattern.MatchString(input) {
		return fmt.Errorf("%q does not look like a URL", input)
	}
	return nil
}

// TrimAppScheme strips the helium:// prefix from a URL delivered through
// the custom scheme and returns the URL to load.
func TrimAppScheme(raw string) (string, error) {
	if len(raw) < len(AppScheme) || !strings.EqualFold(raw[:len(AppScheme)], AppScheme) {
		return "", ErrNotHelium
	}
	rest := strings.TrimSpace(raw[len(AppScheme):])
	if rest == "" {
		return "", fmt.Errorf("empty URL after %s", AppScheme)
	}
	return rest, nil
}

// FindURLs returns every absolute URL in text in order of appearance,
// without duplicates.
func FindURLs(text string) []string {
	seen := make(map[string]bool)
	var urls []string
	for _, u := range linkPattern.FindAllString(text, -1) {
		if seen[u] {
			continue
		}
		seen[u] = true
		urls = append(urls, u)
	}
	return urls
}
