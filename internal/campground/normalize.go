package campground

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"path"
	"sort"
	"strings"
)

var errNotHTTP = errors.New("image URL must be an absolute http or https URL")

// NormalizeImageURL validates a campground image URL and returns its canonical
// form:
//   - only absolute http and https URLs with a host are accepted
//   - scheme and host are lower-cased
//   - an empty path becomes "/", dot-segments and duplicate slashes are removed
//   - default ports (http:80, https:443) are dropped, others kept
//   - query parameters are sorted by key and by value
//   - the fragment is removed
//
// Unlike page URLs, a trailing slash is kept since some image hosts route on it.
func NormalizeImageURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("could not parse URL: %w", err)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", errNotHTTP
	}
	u.User = nil

	if u.Path == "" {
		u.Path = "/"
	}
	trailing := u.Path != "/" && strings.HasSuffix(u.Path, "/")
	cleaned := path.Clean(u.Path)
	if !strings.HasPrefix(cleaned, "/") {
		cleaned = "/" + cleaned
	}
	if trailing && cleaned != "/" {
		cleaned += "/"
	}
	u.Path = cleaned
	u.RawPath = ""

	host := strings.ToLower(u.Host)
	port := ""
	if ph, pp, err := net.SplitHostPort(host); err == nil {
		host, port = ph, pp
	}
	if port != "" {
		if (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443") {
			u.Host = bracketIPv6(host)
		} else {
			u.Host = net.JoinHostPort(host, port)
		}
	} else {
		u.Host = host
	}

	if u.RawQuery != "" {
		q := u.Query()
		for k := range q {
			sort.Strings(q[k])
		}
		u.RawQuery = q.Encode()
	}

	u.Fragment = ""
	u.RawFragment = ""

	return u.String(), nil
}

func bracketIPv6(host string) string {
	if strings.Contains(host, ":") {
		return "[" + host + "]"
	}

	return host
}
