package probe

import "strings"

// NormalizeURL ensures a candidate domain carries a scheme. Inputs already
// starting with http:// or https:// pass through untouched; everything else
// gets https:// prepended. No other validation happens here — malformed
// hosts are left for the HTTP client to reject at request time.
func NormalizeURL(domain string) string {
	if strings.HasPrefix(domain, "http://") || strings.HasPrefix(domain, "https://") {
		return domain
	}
	return "https://" + domain
}
