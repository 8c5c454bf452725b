package rpcserver

import (
	"context"

	"connectrpc.com/connect"

	keyvalv1 "github.com/yndnr/keyval-go/api/proto/v1"
	"github.com/yndnr/keyval-go/api/proto/v1/keyvalv1connect"
	"github.com/yndnr/keyval-go/internal/core/service"
)

var (
	_ keyvalv1connect.ValueHandler = (*ValueHandler)(nil)
	_ keyvalv1connect.AdminHandler = (*AdminHandler)(nil)
)

// ValueHandler implements the keyval.Value service.
type ValueHandler struct {
	svc *service.ValueService
}

// NewValueHandler creates a ValueHandler backed by svc.
func NewValueHandler(svc *service.ValueService) *ValueHandler {
	return &ValueHandler{svc: svc}
}

// GetValue handles keyval.Value/GetValue.
func (h *ValueHandler) GetValue(
	ctx context.Context,
	req *connect.Request[keyvalv1.GetValueRequest],
) (*connect.Response[keyvalv1.GetValueReply], error) {
	v, err := h.svc.GetValue(ctx, req.Msg.Key)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&keyvalv1.GetValueReply{Value: v}), nil
}

// InsertKeyValue handles keyval.Value/InsertKeyValue.
func (h *ValueHandler) InsertKeyValue(
	ctx context.Context,
	req *connect.Request[keyvalv1.InsertKeyValueRequest],
) (*connect.Response[keyvalv1.InsertKeyValueResponse], error) {
	ack, err := h.svc.InsertKeyValue(ctx, req.Msg.Key, req.Msg.Value)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&keyvalv1.InsertKeyValueResponse{Result: ack}), nil
}

// AdminHandler implements the keyval.admin.v1.Admin service.
type AdminHandler struct {
	svc *service.SnapshotService
}

// NewAdminHandler creates an AdminHandler backed by svc.
func NewAdminHandler(svc *service.SnapshotService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// Snapshot handles keyval.admin.v1.Admin/Snapshot.
func (h *AdminHandler) Snapshot(
	ctx context.Context,
	_ *connect.Request[keyvalv1.SnapshotRequest],
) (*connect.Response[keyvalv1.SnapshotResponse], error) {
	info, err := h.svc.TriggerSnapshot(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&keyvalv1.SnapshotResponse{
		Path:      info.Path,
		KeyCount:  uint64(info.KeyCount),
		SizeBytes: info.Size,
		CreatedAt: info.CreatedAt.UnixMilli(),
	}), nil
}
