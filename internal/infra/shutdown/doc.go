// Package shutdown coordinates graceful process termination.
//
// A Handler waits for SIGINT, SIGTERM or cancellation of a parent context,
// then runs the registered hooks in reverse order of registration under a
// shared timeout. Hook errors are aggregated rather than stopping the
// sequence, so a failed listener close does not skip the final snapshot.
//
// Usage:
//
//	h := shutdown.NewHandler(10*time.Second, shutdown.WithLogger(log))
//	h.OnShutdown("rpc server", srv.Shutdown)
//	h.OnShutdown("snapshotter", stopSnapshotter)
//	err := h.Wait(ctx)
package shutdown
