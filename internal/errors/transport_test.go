package errors

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"
)

type timeoutNetError struct{}

func (timeoutNetError) Error() string   { return "i/o timeout" }
func (timeoutNetError) Timeout() bool   { return true }
func (timeoutNetError) Temporary() bool { return true }

var _ net.Error = timeoutNetError{}

func TestMapTransportError_NilError(t *testing.T) {
	if err := MapTransportError(context.Background(), "/admin", time.Second, nil); err != nil {
		t.Errorf("MapTransportError(nil) = %v, want nil", err)
	}
}

func TestMapTransportError(t *testing.T) {
	expired, cancelExpired := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancelExpired()
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name     string
		ctx      context.Context
		err      error
		wantKind Kind
		wantMsg  string
	}{
		{
			name:     "deadline exceeded error",
			ctx:      context.Background(),
			err:      context.DeadlineExceeded,
			wantKind: KindTimeout,
			wantMsg:  "Request timed out after 10s",
		},
		{
			name:     "expired request context",
			ctx:      expired,
			err:      errors.New("read: connection reset by peer"),
			wantKind: KindTimeout,
			wantMsg:  "Request timed out after 10s",
		},
		{
			name:     "net timeout",
			ctx:      context.Background(),
			err:      timeoutNetError{},
			wantKind: KindTimeout,
			wantMsg:  "Request timed out after 10s",
		},
		{
			name:     "canceled",
			ctx:      canceled,
			err:      context.Canceled,
			wantKind: KindTimeout,
			wantMsg:  "Request was canceled",
		},
		{
			name:     "connection refused",
			ctx:      context.Background(),
			err:      errors.New("dial tcp 127.0.0.1:1: connect: connection refused"),
			wantKind: KindNetwork,
			wantMsg:  "Network request failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapTransportError(tt.ctx, "/admin", 10*time.Second, tt.err)
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", got.Message, tt.wantMsg)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("cause not preserved: %v", got.Cause)
			}
		})
	}
}

func TestMapTransportError_PassesThroughAPIError(t *testing.T) {
	orig := Token("/admin", errors.New("expired"))
	if got := MapTransportError(context.Background(), "/admin", time.Second, orig); got != orig {
		t.Errorf("MapTransportError() = %v, want original error", got)
	}
}
