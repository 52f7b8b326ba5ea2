package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// proxyHeaders in resolution order. X-Forwarded-For may carry a
// comma-separated chain; the first valid address wins.
var proxyHeaders = []string{
	"CF-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// FromRequest resolves the originating client address of an HTTP request.
// Proxy headers are consulted first, falling back to the TCP peer address.
// Invalid entries are skipped; the result is a canonical textual address or
// an empty string when nothing parses.
func FromRequest(r *http.Request) string {
	for _, header := range proxyHeaders {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}
		for _, entry := range strings.Split(value, ",") {
			if ip := normalize(entry); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr without a port, as some test servers set it.
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

// normalize parses a candidate address and returns its canonical form, or
// an empty string when the candidate is not a valid IP.
func normalize(candidate string) string {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return ""
	}
	addr, err := netip.ParseAddr(candidate)
	if err != nil {
		return ""
	}
	return addr.String()
}
