package core

import "context"

// Context keys for execution options
type contextKey string

const suppressHeaderKey contextKey = "suppressHeader"

// WithSuppressHeader marks the context so dataset headers are not logged.
// The MCP server uses it since stdio carries the protocol.
func WithSuppressHeader(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressHeaderKey, true)
}

// shouldSuppressHeader returns whether headers should be suppressed from context
func shouldSuppressHeader(ctx context.Context) bool {
	val := ctx.Value(suppressHeaderKey)
	if val == nil {
		return false // default: show headers
	}
	suppress, ok := val.(bool)
	return ok && suppress
}
