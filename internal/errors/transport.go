package errors

import (
	"context"
	"errors"
	"net"
	"time"
)

// MapTransportError maps a failed round trip to an APIError.
// It handles the transport failure shapes the client can observe:
// - an existing *APIError is returned unchanged
// - deadline exceeded (request ctx or a net.Error timeout) → Timeout
// - cancellation → Timeout
// - anything else → Network
//
// ctx is the request context; its state is checked first because some
// transports report the abort as a plain connection error.
func MapTransportError(ctx context.Context, path string, timeout time.Duration, err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	if isDeadline(ctx, err) {
		return Timeout(path, timeoutMessage(timeout), err)
	}
	if isCanceled(ctx, err) {
		return Timeout(path, "Request was canceled", err)
	}

	return Network(path, err)
}

func isDeadline(ctx context.Context, err error) bool {
	if ctx != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isCanceled(ctx context.Context, err error) bool {
	if ctx != nil && errors.Is(ctx.Err(), context.Canceled) {
		return true
	}
	return errors.Is(err, context.Canceled)
}

func timeoutMessage(timeout time.Duration) string {
	if timeout <= 0 {
		return "Request timed out"
	}
	return "Request timed out after " + timeout.String()
}
