// Package media defines shared types for the helium application.
package media

import "fmt"

// Target is a URL resolved for loading, together with where it came from.
type Target struct {
	Input     string `json:"input"`              // Text as supplied by the user
	URL       string `json:"url"`                // URL handed to the player
	Platform  string `json:"platform,omitempty"` // Detector that rewrote the URL, if any
	Rewritten bool   `json:"rewritten"`          // True when URL differs from the schemed input
}

// Title returns a short display title for the target.
func (t Target) Title() string {
	if t.Platform != "" {
		return fmt.Sprintf("%s · %s", t.Platform, t.URL)
	}
	return t.URL
}
