// Package requestctx carries per-request identity through context.Context so
// that code below the HTTP layer can annotate logs without depending on gin.
package requestctx

import "context"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	subjectKey
)

// WithRequestID returns a copy of ctx carrying the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withValue(ctx, requestIDKey, requestID)
}

// RequestID returns the request ID stored in ctx, or "".
func RequestID(ctx context.Context) string {
	return stringValue(ctx, requestIDKey)
}

// WithSubject returns a copy of ctx carrying the authenticated token subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	return withValue(ctx, subjectKey, subject)
}

// Subject returns the authenticated token subject stored in ctx, or "".
func Subject(ctx context.Context) string {
	return stringValue(ctx, subjectKey)
}

func withValue(ctx context.Context, key ctxKey, value string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, key, value)
}

func stringValue(ctx context.Context, key ctxKey) string {
	if ctx == nil {
		return ""
	}
	s, _ := ctx.Value(key).(string)
	return s
}
