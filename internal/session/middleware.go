package session

import (
	"context"
	"net/http"
)

// HeaderName carries the browser's session id. The server mints one when a
// request arrives without it and echoes the id back so the browser can
// persist it.
const HeaderName = "X-Session-ID"

type sessionContextKey struct{}

// FromContext returns the session attached by Middleware, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionContextKey{}).(*Session)
	return s, ok
}

// Middleware resolves the request's session from the X-Session-ID header and
// attaches it to the request context. Requests without the header get a
// freshly minted session.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderName)
		if id == "" {
			id = m.NewID()
		}
		s := m.Get(id)

		w.Header().Set(HeaderName, s.ID)
		ctx := context.WithValue(r.Context(), sessionContextKey{}, s)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ── Handler wiring helpers ──────────────────────────────

// FromRequest is FromContext for a request.
func FromRequest(r *http.Request) (*Session, bool) {
	return FromContext(r.Context())
}
