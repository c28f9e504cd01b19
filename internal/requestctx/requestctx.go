// Package requestctx carries the request id through context so layers
// below the router can tag logs and audit rows without importing the
// HTTP middleware.
package requestctx

import "context"

type requestIDKey struct{}

// WithRequestID returns a child context tagged with the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestID returns the request id set by the middleware, or the
// empty string outside a request.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
