// Package magic recognizes links to known video-hosting pages and rewrites
// them into the platform's embeddable player URL.
//
// Every function in this package is pure. Patterns are compiled once at
// package init and never mutated, so callers may use the package from any
// number of goroutines without coordination.
package magic

import (
	"net/url"
)

// Source is the URL handed to the detectors. Raw keeps the exact original
// string because several detectors match against it rather than against
// the parsed fields.
type Source struct {
	Raw string
	URL *url.URL
}

// NewSource parses raw into a Source.
func NewSource(raw string) (Source, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Source{}, err
	}
	return Source{Raw: raw, URL: u}, nil
}

// MatchFunc reports the rewritten URL for src, or false when src is not
// recognized. It must not modify src.
type MatchFunc func(src Source) (*url.URL, bool)

// Detector is a named MatchFunc for one platform's URL family.
type Detector struct {
	Name  string
	Match MatchFunc
}

// Detectors lists the platform detectors in the order Resolve tries them.
var Detectors = []Detector{
	{Name: "youtube", Match: YouTube},
	{Name: "twitch", Match: Twitch},
	{Name: "vimeo", Match: Vimeo},
	{Name: "youku", Match: Youku},
	{Name: "dailymotion", Match: DailyMotion},
}

// Result is a successful rewrite.
type Result struct {
	Platform string   // Name of the detector that matched
	URL      *url.URL // Embeddable player URL
}

// Resolve runs the detectors over raw and returns the first match.
// Unparseable input and URLs without a host never match.
func Resolve(raw string) (Result, bool) {
	return resolve(Detectors, raw)
}

// Rewrite returns the embeddable form of raw, or false if no platform
// recognized it. Callers load raw unchanged in that case.
func Rewrite(raw string) (string, bool) {
	res, ok := Resolve(raw)
	if !ok {
		return "", false
	}
	return res.URL.String(), true
}

func resolve(detectors []Detector, raw string) (Result, bool) {
	src, err := NewSource(raw)
	if err != nil || src.URL.Host == "" {
		return Result{}, false
	}

	for _, d := range detectors {
		u, ok := d.Match(src)
		if !ok || u == nil || u.Scheme == "" || u.Host == "" {
			continue
		}
		return Result{Platform: d.Name, URL: u}, true
	}
	return Result{}, false
}

// base returns an empty URL carrying only src's scheme.
func base(src Source) *url.URL {
	return &url.URL{Scheme: src.URL.Scheme}
}

// group returns the text of capture group i from a FindStringSubmatchIndex
// result, or false if the group did not participate in the match.
func group(s string, loc []int, i int) (string, bool) {
	if 2*i+1 >= len(loc) {
		return "", false
	}
	start, end := loc[2*i], loc[2*i+1]
	if start < 0 || end < start || end > len(s) {
		return "", false
	}
	return s[start:end], true
}
