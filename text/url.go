package text

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/kbukum/fnkit/errors"
)

var (
	bareProtocol     = regexp.MustCompile(`^[^/:]+:/*$`)
	fileTripleSlash  = regexp.MustCompile(`^file:///`)
	protocolSlashes  = regexp.MustCompile(`^([^/:]+):/*`)
	leadingSlashes   = regexp.MustCompile(`^/+`)
	trailingSlashes  = regexp.MustCompile(`/+$`)
	slashBeforeQuery = regexp.MustCompile(`/(\?|&|#[^!])`)
)

// URLJoin joins URL parts with single slashes.
//
// A leading bare protocol ("http:", "http://") is merged with the next part,
// "file:" URLs keep an absolute third slash, empty parts are skipped and
// repeated query strings are merged with "&":
//
//	text.URLJoin("http:", "example.org/", "a", "?x=1", "?y=2")
//	// "http://example.org/a?x=1&y=2"
func URLJoin(parts ...string) string {
	if len(parts) == 0 {
		return ""
	}
	parts = append([]string(nil), parts...)
	if len(parts) > 1 && bareProtocol.MatchString(parts[0]) {
		parts = append([]string{parts[0] + parts[1]}, parts[2:]...)
	}
	if fileTripleSlash.MatchString(parts[0]) {
		parts[0] = protocolSlashes.ReplaceAllString(parts[0], "${1}:///")
	} else {
		parts[0] = protocolSlashes.ReplaceAllString(parts[0], "${1}://")
	}

	kept := make([]string, 0, len(parts))
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i > 0 {
			p = leadingSlashes.ReplaceAllString(p, "")
		}
		if i < len(parts)-1 {
			p = trailingSlashes.ReplaceAllString(p, "")
		} else {
			p = trailingSlashes.ReplaceAllString(p, "/")
		}
		kept = append(kept, p)
	}

	joined := slashBeforeQuery.ReplaceAllString(strings.Join(kept, "/"), "${1}")
	head, query, found := strings.Cut(joined, "?")
	if !found {
		return head
	}
	return head + "?" + strings.ReplaceAll(query, "?", "&")
}

// URLToRelative strips the scheme and host of rawURL, keeping the path, query
// and fragment: "https://www.npmjs.com/package/qs" gives "/package/qs".
func URLToRelative(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.InvalidInput("url", err.Error())
	}
	rel := &url.URL{Path: u.Path, RawPath: u.RawPath, RawQuery: u.RawQuery, Fragment: u.Fragment}
	out := rel.String()
	if !strings.HasPrefix(out, "/") {
		out = "/" + out
	}
	return out, nil
}
