package rpcserver

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"

	"github.com/yndnr/keyval-go/internal/core/domain"
)

func TestToConnectError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want connect.Code
	}{
		{"not found", domain.ErrKeyNotFound, connect.CodeNotFound},
		{"wrapped not found", fmt.Errorf("get: %w", domain.ErrKeyNotFound), connect.CodeNotFound},
		{"snapshot io", domain.ErrSnapshotIO.WithCause(errors.New("disk full")), connect.CodeInternal},
		{"snapshot decode", domain.ErrSnapshotDecode, connect.CodeInternal},
		{"internal", domain.ErrInternal, connect.CodeInternal},
		{"invalid argument", domain.ErrInvalidArgument, connect.CodeInvalidArgument},
		{"rate limited", domain.ErrRateLimited, connect.CodeResourceExhausted},
		{"canceled", context.Canceled, connect.CodeCanceled},
		{"deadline", context.DeadlineExceeded, connect.CodeDeadlineExceeded},
		{"other", errors.New("boom"), connect.CodeUnknown},
		{"already connect", connect.NewError(connect.CodeAborted, errors.New("x")), connect.CodeAborted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := connect.CodeOf(toConnectError(tt.err)); got != tt.want {
				t.Errorf("code = %v, want %v", got, tt.want)
			}
		})
	}

	if toConnectError(nil) != nil {
		t.Error("toConnectError(nil) should be nil")
	}
}

func TestToConnectError_HidesCause(t *testing.T) {
	err := domain.ErrSnapshotIO.WithCause(errors.New("open /secret/path: permission denied"))

	var ce *connect.Error
	if !errors.As(toConnectError(err), &ce) {
		t.Fatal("expected *connect.Error")
	}
	if ce.Message() != "KV-SNAP-5000: snapshot io error" {
		t.Errorf("Message() = %q", ce.Message())
	}
}
