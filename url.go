package keytopics

import (
	"net/url"
	"strings"
)

// ValidateURL returns EINVALID unless raw is an absolute http or https URL
// with a host.
func ValidateURL(raw string) error {
	if raw == "" || strings.ContainsAny(raw, " \t\r\n") {
		return Errorf(EINVALID, "entered URL is not valid: %q", raw)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Errorf(EINVALID, "entered URL is not valid: %q", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "entered URL is not valid: %q", raw)
	}
	host := u.Hostname()
	if host == "" || strings.HasPrefix(host, ".") {
		return Errorf(EINVALID, "entered URL is not valid: %q", raw)
	}
	return nil
}

// IsValidURL reports whether raw passes ValidateURL.
func IsValidURL(raw string) bool {
	return ValidateURL(raw) == nil
}
