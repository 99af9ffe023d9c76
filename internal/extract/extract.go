// package extract parses YouTube video and playlist identifiers out of the
// reference formats users paste: share links, full watch URLs, embed URLs,
// and bare IDs.
package extract

import (
	"net/url"
	"regexp"
	"strings"
)

// Video IDs are exactly 11 characters drawn from the URL-safe base64 alphabet.
var (
	shortLinkPattern = regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`)
	embedPathPattern = regexp.MustCompile(`/(?:embed|v)/([A-Za-z0-9_-]{11})`)
	bareIDPattern    = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	playlistPattern  = regexp.MustCompile(`list=([A-Za-z0-9_-]+)`)
)

// VideoID extracts an 11-character video ID from a reference string. Rules
// are applied in order and the first match wins:
//
//  1. youtu.be short links
//  2. youtube.com URLs with a ?v= query parameter
//  3. youtube.com /embed/ or /v/ paths
//  4. bare 11-character IDs
//
// The second return value is false when the reference matches none of the
// supported shapes. Extraction never fails with an error.
func VideoID(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}

	if m := shortLinkPattern.FindStringSubmatch(ref); m != nil {
		return m[1], true
	}

	if strings.Contains(ref, "youtube.com") {
		if id, ok := watchParam(ref); ok {
			return id, true
		}
		if m := embedPathPattern.FindStringSubmatch(ref); m != nil {
			return m[1], true
		}
		return "", false
	}

	if bareIDPattern.MatchString(ref) {
		return ref, true
	}

	return "", false
}

// watchParam pulls the v query parameter out of a watch URL. Values that are
// not exactly 11 characters are rejected so that malformed links fall through
// to the path-based rules.
func watchParam(ref string) (string, bool) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", false
	}
	v := u.Query().Get("v")
	if bareIDPattern.MatchString(v) {
		return v, true
	}
	return "", false
}

// PlaylistID extracts the list query parameter from a playlist URL. The
// second return value is false when no list parameter is present.
func PlaylistID(rawURL string) (string, bool) {
	m := playlistPattern.FindStringSubmatch(strings.TrimSpace(rawURL))
	if m == nil {
		return "", false
	}
	return m[1], true
}
