package validation

import "errors"

var (
	ErrEmptyURL         = errors.New("link is required")
	ErrInvalidURLFormat = errors.New("invalid link format")
	ErrLocalhost        = errors.New("localhost links are not allowed")
	ErrIPAddressHost    = errors.New("ip address hosts are not allowed")
	ErrInvalidHostname  = errors.New("hostname must be a domain with a top-level domain")
	ErrLinkTooLong      = errors.New("link is too long")
)

var rejections = []error{
	ErrEmptyURL,
	ErrInvalidURLFormat,
	ErrLocalhost,
	ErrIPAddressHost,
	ErrInvalidHostname,
	ErrLinkTooLong,
}

// IsValidationError reports whether err is a canonicalization rejection.
func IsValidationError(err error) bool {
	for _, target := range rejections {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
