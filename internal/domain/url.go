package domain

import "net/url"

// ExtractDomain pulls the host out of an endpoint URL with any :port
// stripped. Host case is preserved. URLs are validated at load time, so
// the fallback to the raw string is defensive only.
func ExtractDomain(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	return u.Hostname()
}
