package dto

import "context"

// Session is the authenticated identity the middleware resolves for a
// request: the owning user and the exact token string the request carried.
// Handlers read it once from the request context and pass it explicitly to
// services, so no layer below the handler touches the context for identity.
type Session struct {
	UserID string
	Email  string
	Token  string
}

type sessionContextKey struct{}

// NewSessionContext returns a context carrying the resolved session.
func NewSessionContext(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// SessionFromContext returns the session resolved by the authentication
// middleware, if any.
func SessionFromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(Session)

	return session, ok
}
