package reqcontext

import (
	"context"
	"time"
)

type KeyContext string

var (
	keyRequestID KeyContext = "request_id"
	keyStartTime KeyContext = "request_start_time"
)

// Begin attaches the request ID and start time to ctx
func Begin(parentCtx context.Context, requestID string) context.Context {
	ctx := context.WithValue(parentCtx, keyRequestID, requestID)
	ctx = context.WithValue(ctx, keyStartTime, time.Now())
	return ctx
}

// GetRequestID extracts the request ID from context, "" when absent
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)
	return id
}

// GetStartTime extracts the request start time from context
func GetStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyStartTime).(time.Time)
	return startTime, ok
}

// Elapsed returns the time since Begin, or zero if Begin was never called
func Elapsed(ctx context.Context) time.Duration {
	startTime, ok := GetStartTime(ctx)
	if !ok {
		return 0
	}
	return time.Since(startTime)
}
