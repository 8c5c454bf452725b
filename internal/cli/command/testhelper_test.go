package command

import (
	"bytes"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/keyval-go/internal/core/service"
	"github.com/yndnr/keyval-go/internal/server/rpcserver"
	"github.com/yndnr/keyval-go/internal/storage"
)

// testServer runs a real keyval server on an httptest listener.
type testServer struct {
	URL          string
	Engine       *storage.Engine
	SnapshotPath string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := storage.Fresh(storage.WithLogger(log))
	path := filepath.Join(t.TempDir(), "state.bin")

	srv := rpcserver.New(rpcserver.Config{Logger: log},
		service.NewValueService(engine, log),
		service.NewSnapshotService(engine, path, log),
	)
	hs := httptest.NewServer(srv.Handler())
	t.Cleanup(hs.Close)

	return &testServer{URL: hs.URL, Engine: engine, SnapshotPath: path}
}

type runResult struct {
	stdout string
	err    error
}

// run executes the CLI with args and captures its output. Exit errors are
// returned instead of terminating the test binary.
func run(t *testing.T, args ...string) runResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := App()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"keyval-cli"}, args...))
	return runResult{stdout: stdout.String(), err: err}
}

func exitCode(err error) int {
	if ec, ok := err.(cli.ExitCoder); ok {
		return ec.ExitCode()
	}
	if err != nil {
		return -1
	}
	return 0
}
