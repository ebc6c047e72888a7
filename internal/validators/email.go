package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid reports whether the address carries a resolvable domain:
// an MX record if the domain publishes one, otherwise any A/AAAA record.
// Malformed addresses are rejected before any lookup runs.
func IsEmailDomainValid(email string) bool {
	domain, ok := emailDomain(email)
	if !ok {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}

func emailDomain(email string) (string, bool) {
	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" || domain == "" || strings.ContainsAny(domain, " @") {
		return "", false
	}
	return strings.ToLower(domain), true
}
