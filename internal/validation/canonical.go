package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

var (
	schemePrefix   = regexp.MustCompile(`(?i)^https?://`)
	numericHost    = regexp.MustCompile(`^[0-9.]+$`)
	hostnameFormat = regexp.MustCompile(`^([a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}$`)
)

// hostProfile lowercases and punycodes hostnames the way browsers do. Hyphen
// placement and character set are left to hostnameFormat.
var hostProfile = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
	idna.CheckHyphens(false),
	idna.StrictDomainName(false),
)

// MaxLinkLength caps canonical links so they fit the unique index on the
// stored link column.
const MaxLinkLength = 2048

// queryEscaper percent-encodes the query bytes browsers encode but
// url.Parse leaves raw.
var queryEscaper = strings.NewReplacer(
	" ", "%20",
	`"`, "%22",
	"'", "%27",
	"<", "%3C",
	">", "%3E",
)

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
}

// Canonicalize turns user input such as "example.com" or
// "HTTPS://Example.com/Path" into the absolute URL used as the storage key.
// Links without an http(s) scheme get https. Dot segments in the path are
// resolved. The result is stable: Canonicalize of a canonical URL returns it
// unchanged.
func Canonicalize(raw string) (string, error) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return "", ErrEmptyURL
	}

	if !schemePrefix.MatchString(input) {
		input = "https://" + input
	}

	u, err := url.Parse(input)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURLFormat, err)
	}

	host, err := hostProfile.ToASCII(u.Hostname())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidHostname, err)
	}

	switch {
	case host == "localhost":
		return "", ErrLocalhost
	case numericHost.MatchString(host):
		return "", ErrIPAddressHost
	case !hostnameFormat.MatchString(host):
		return "", ErrInvalidHostname
	}

	port := u.Port()
	u.Host = host
	if port != "" && port != defaultPorts[u.Scheme] {
		u.Host = host + ":" + port
	}
	u = u.ResolveReference(&url.URL{})
	if u.Path == "" {
		u.Path = "/"
		u.RawPath = ""
	}
	u.RawQuery = queryEscaper.Replace(u.RawQuery)

	link := u.String()
	if len(link) > MaxLinkLength {
		return "", ErrLinkTooLong
	}
	return link, nil
}
