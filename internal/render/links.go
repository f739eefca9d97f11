package render

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// displayLabel tidies a user-entered URL into a short label for narrow
// layouts: scheme stripped, eTLD+1 when it can be derived, hostname
// otherwise, the raw input as a last resort.
func displayLabel(raw string) string {
	if raw == "" {
		return ""
	}
	candidate := raw
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return raw
	}
	host := parsed.Hostname()
	if host == "" {
		return raw
	}
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}
