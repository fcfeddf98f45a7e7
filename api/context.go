package api

import (
	"context"
)

type keyType string

const requestIDKey keyType = "requestID"

// ctxWithRequestID adds a request ID to the context
func ctxWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// ctxGetRequestID retrieves the request ID from the context, "" when unset
func ctxGetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDKey).(string)
	return requestID
}
