package internal

import (
	"context"
	"time"
)

type ctxKey string

const ContextUserKey ctxKey = "userEid"

func UserEidFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if eid, ok := ctx.Value(ContextUserKey).(string); ok {
		return eid
	}
	return ""
}

func ContextWithUserEid(ctx context.Context, eid string) context.Context {
	return context.WithValue(ctx, ContextUserKey, eid)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
