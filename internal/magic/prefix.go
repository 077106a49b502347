package magic

import (
	"net/url"
	"strings"
)

// PrefixRewriter returns a MatchFunc that swaps a literal leading prefix of
// the raw URL for replacement. The rest of the string is kept byte for byte.
func PrefixRewriter(prefix, replacement string) MatchFunc {
	return func(src Source) (*url.URL, bool) {
		if !strings.HasPrefix(src.Raw, prefix) {
			return nil, false
		}
		u, err := url.Parse(replacement + src.Raw[len(prefix):])
		if err != nil {
			return nil, false
		}
		return u, true
	}
}

var (
	youku = PrefixRewriter("http://v.youku.com/v_show/id_", "http://player.youku.com/embed/")

	dailyMotionFull  = PrefixRewriter("http://dai.ly/video/", "http://www.dailymotion.com/embed/video/")
	dailyMotionShort = PrefixRewriter("http://www.dailymotion.com/video/", "http://www.dailymotion.com/embed/video/")
)

// Youku rewrites v.youku.com show pages to the embed player.
func Youku(src Source) (*url.URL, bool) {
	return youku(src)
}

// DailyMotion rewrites dai.ly and dailymotion.com video pages to the embed
// player. The dai.ly form is tried first.
func DailyMotion(src Source) (*url.URL, bool) {
	if u, ok := dailyMotionFull(src); ok {
		return u, true
	}
	return dailyMotionShort(src)
}
