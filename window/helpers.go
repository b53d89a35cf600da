package window

import (
	"regexp"
	"strings"

	"github.com/rohanthewiz/pageurl/consts"
)

var reScheme = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*$`)

// splitHref splits "scheme://host/path?query#hash" into its parts.
// search and hash keep their leading '?' and '#', and are empty when
// nothing follows the delimiter. A missing path becomes "/".
// Though we could have used the standard URL package we want the raw,
// still-encoded pieces exactly as they appear in the href.
func splitHref(href string) (scheme, host, pathname, search, hash string) {
	rest := href

	if hashPos := strings.IndexByte(rest, consts.RuneHash); hashPos != -1 {
		hash = rest[hashPos:]
		rest = rest[:hashPos]
	}

	if schemeEndPos := schemeEnd(rest); schemeEndPos != -1 {
		scheme = rest[:schemeEndPos]
		rest = rest[schemeEndPos+len(consts.SchemeDelimiter):]

		hostEndPos := strings.IndexAny(rest, "/?")
		if hostEndPos == -1 {
			hostEndPos = len(rest)
		}
		host = rest[:hostEndPos]
		rest = rest[hostEndPos:]
	}

	if queryPos := strings.IndexByte(rest, consts.RuneQuestion); queryPos != -1 {
		search = rest[queryPos:]
		rest = rest[:queryPos]
	}
	pathname = rest

	// FIXUPS

	if pathname == "" {
		pathname = consts.StrSlash
	}
	if search == consts.StrQuestion {
		search = ""
	}
	if hash == "#" {
		hash = ""
	}

	return
}

// schemeEnd returns the position of the "://" ending a leading scheme, or -1.
// A "://" that only shows up after the path or query has started (e.g. a
// redirect target in a query value) does not make a scheme.
func schemeEnd(href string) int {
	pos := strings.Index(href, consts.SchemeDelimiter)
	if pos < 1 {
		return -1
	}
	if strings.ContainsAny(href[:pos], "/?#") || !reScheme.MatchString(href[:pos]) {
		return -1
	}
	return pos
}

// origin joins scheme and host, or returns "" for a relative href.
func origin(scheme, host string) string {
	if scheme == "" || host == "" {
		return ""
	}
	return scheme + consts.SchemeDelimiter + host
}
