package command

import (
	"testing"
)

func TestApp(t *testing.T) {
	app := App()

	if app.Name != "keyval-cli" {
		t.Errorf("Name = %q, want %q", app.Name, "keyval-cli")
	}
	if app.Version == "" {
		t.Error("Version should not be empty")
	}

	commandNames := make(map[string]bool)
	for _, cmd := range app.Commands {
		commandNames[cmd.Name] = true
	}
	for _, name := range []string{"get", "insert", "snapshot", "inspect"} {
		if !commandNames[name] {
			t.Errorf("missing command: %s", name)
		}
	}
}

func TestApp_GlobalFlags(t *testing.T) {
	flagNames := make(map[string]bool)
	for _, flag := range globalFlags() {
		flagNames[flag.Names()[0]] = true
	}

	for _, name := range []string{"server", "output", "protocol", "json-codec", "timeout"} {
		if !flagNames[name] {
			t.Errorf("missing flag: %s", name)
		}
	}
}

func TestApp_RejectsBadOutputFormat(t *testing.T) {
	res := run(t, "--output", "xml", "get", "k")
	if exitCode(res.err) != ExitUsage {
		t.Errorf("exit code = %d, want %d (err = %v)", exitCode(res.err), ExitUsage, res.err)
	}
}

func TestApp_RejectsBadProtocol(t *testing.T) {
	res := run(t, "--protocol", "thrift", "get", "k")
	if exitCode(res.err) != ExitUsage {
		t.Errorf("exit code = %d, want %d (err = %v)", exitCode(res.err), ExitUsage, res.err)
	}
}
