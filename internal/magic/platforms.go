package magic

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
)

var (
	// Groups: video id, hours, minutes, seconds.
	youTubePattern = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:youtube\.com/watch\?v=|youtu\.be/)([\w-]+)(?:[&?]t=(?:(\d+)h)?(?:(\d+)m)?(?:(\d+)s?))?`)

	// Groups: channel, trailing numeric id.
	twitchPattern = regexp.MustCompile(`https?://(?:www\.)?twitch\.tv/(\w+)(?:/(\d+))?`)

	vimeoPattern = regexp.MustCompile(`(?:https?://)?(?:www\.)?vimeo\.com/(\d+)`)
)

// Twitch site sections that share the channel URL shape.
var twitchReserved = map[string]bool{
	"directory": true,
	"products":  true,
	"p":         true,
	"user":      true,
}

// YouTube rewrites watch and youtu.be links to youtube.com/embed/<id>,
// converting a t= offset such as 1h2m3s into start=<seconds>.
func YouTube(src Source) (*url.URL, bool) {
	loc := youTubePattern.FindStringSubmatchIndex(src.Raw)
	if loc == nil {
		return nil, false
	}
	id, ok := group(src.Raw, loc, 1)
	if !ok || id == "" {
		return nil, false
	}

	u := base(src)
	u.Host = "youtube.com"
	u.Path = "/embed/" + id

	start := 0
	multiplier := 60 * 60
	for i := 2; i <= 4; i++ {
		if s, ok := group(src.Raw, loc, i); ok {
			// Components that overflow contribute nothing.
			if n, err := strconv.Atoi(s); err == nil && n <= (math.MaxInt-start)/multiplier {
				start += n * multiplier
			}
		}
		multiplier /= 60
	}
	if start != 0 {
		u.RawQuery = "start=" + strconv.Itoa(start)
	}

	return u, true
}

// Twitch rewrites channel pages and /videos/<id> pages to player.twitch.tv.
func Twitch(src Source) (*url.URL, bool) {
	loc := twitchPattern.FindStringSubmatchIndex(src.Raw)
	if loc == nil {
		return nil, false
	}
	channel, ok := group(src.Raw, loc, 1)
	if !ok {
		return nil, false
	}

	switch {
	case twitchReserved[channel]:
		return nil, false
	case channel == "videos":
		id, ok := group(src.Raw, loc, 2)
		if !ok || id == "" {
			return nil, false
		}
		u := base(src)
		u.Host = "player.twitch.tv"
		u.RawQuery = "html5&video=v" + id
		return u, true
	default:
		u := base(src)
		u.Host = "player.twitch.tv"
		u.RawQuery = "html5&channel=" + channel
		return u, true
	}
}

// Vimeo rewrites every vimeo.com/<id> occurrence to player.vimeo.com/video/<id>.
func Vimeo(src Source) (*url.URL, bool) {
	replaced := vimeoPattern.ReplaceAllString(src.Raw, "https://player.vimeo.com/video/${1}")
	if replaced == src.Raw {
		return nil, false
	}
	u, err := url.Parse(replaced)
	if err != nil {
		return nil, false
	}
	return u, true
}
