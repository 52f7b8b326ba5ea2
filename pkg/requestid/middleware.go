package requestid

import (
	"net/http"

	"github.com/google/uuid"
)

// Header carries the request ID on both the request and the response.
const Header = "X-Request-ID"

// maxLen caps client-supplied IDs.
const maxLen = 128

// Middleware tags every request with a correlation ID. A well-formed
// X-Request-ID header is trusted and reused; anything else is replaced
// with a fresh UUID. The ID is stored in the request context and echoed
// on the response so clients and server logs can be matched up.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !wellFormed(id) {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}

// wellFormed accepts IDs made of ASCII letters, digits, hyphens, and
// underscores, at most maxLen bytes long.
func wellFormed(id string) bool {
	if id == "" || len(id) > maxLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		switch c := id[i]; {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
