package portal

import (
	"errors"
	"net/url"
	"strings"
)

// TokenFromLink extracts the signing token from a pasted link. The token is
// the last non-empty path segment; a bare token pastes through unchanged.
func TokenFromLink(link string) (string, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return "", errors.New("empty signing link")
	}

	if !strings.Contains(link, "/") {
		return link, nil
	}

	u, err := url.Parse(link)
	if err != nil {
		return "", errors.New("invalid signing link")
	}
	segments := strings.Split(u.Path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if s := strings.TrimSpace(segments[i]); s != "" {
			return s, nil
		}
	}
	return "", errors.New("signing link has no token")
}
