package rpcserver

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/yndnr/keyval-go/internal/core/domain"
)

// toConnectError maps service errors onto Connect codes. Domain errors keep
// their public message; the underlying cause is not sent to the client.
func toConnectError(err error) error {
	if err == nil {
		return nil
	}

	var ce *connect.Error
	if errors.As(err, &ce) {
		return ce
	}

	switch {
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	case errors.Is(err, domain.ErrKeyNotFound):
		return connect.NewError(connect.CodeNotFound, errors.New(domain.ErrKeyNotFound.Message))
	case errors.Is(err, domain.ErrInvalidArgument):
		return connect.NewError(connect.CodeInvalidArgument, errors.New(domain.ErrInvalidArgument.Message))
	case errors.Is(err, domain.ErrRateLimited):
		return connect.NewError(connect.CodeResourceExhausted, errors.New(domain.ErrRateLimited.Message))
	case errors.Is(err, domain.ErrSnapshotIO),
		errors.Is(err, domain.ErrSnapshotDecode),
		errors.Is(err, domain.ErrInternal):
		return connect.NewError(connect.CodeInternal, errors.New(publicMessage(err)))
	default:
		return connect.NewError(connect.CodeUnknown, err)
	}
}

func publicMessage(err error) string {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return de.Code + ": " + de.Message
	}
	return "internal error"
}
