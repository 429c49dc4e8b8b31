package ytinfo

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/ytget/ytinfo/errs"
)

var bareID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ParseID accepts a bare video identifier or a watch, short-link, shorts or embed URL
// and returns the identifier.
func ParseID(input string) (string, error) {
	input = strings.TrimSpace(input)
	if bareID.MatchString(input) {
		return input, nil
	}

	u, err := url.Parse(input)
	if err != nil || u.Host == "" {
		return "", errs.ErrInvalidID
	}

	var id string
	host := strings.TrimPrefix(strings.ToLower(u.Host), "m.")
	switch host {
	case "youtu.be":
		id = strings.TrimPrefix(u.Path, "/")
	case "youtube.com", "www.youtube.com":
		switch {
		case strings.HasPrefix(u.Path, "/watch"):
			id = u.Query().Get("v")
		case strings.HasPrefix(u.Path, "/shorts/"):
			id = strings.TrimPrefix(u.Path, "/shorts/")
		case strings.HasPrefix(u.Path, "/embed/"):
			id = strings.TrimPrefix(u.Path, "/embed/")
		}
	}

	id = strings.TrimSuffix(id, "/")
	if !bareID.MatchString(id) {
		return "", errs.ErrInvalidID
	}
	return id, nil
}
