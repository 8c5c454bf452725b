package command

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/keyval-go/internal/cli/connection"
	"github.com/yndnr/keyval-go/internal/cli/output"
	"github.com/yndnr/keyval-go/internal/infra/buildinfo"
)

const (
	defaultServer  = "127.0.0.1:50051"
	defaultTimeout = 10 * time.Second
)

// Exit codes.
const (
	ExitError    = 1
	ExitUsage    = 2
	ExitNotFound = 3
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "keyval-cli",
		Usage:   "keyval command-line client",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			GetCommand(),
			InsertCommand(),
			SnapshotCommand(),
			InspectCommand(),
		},
		Before: func(c *cli.Context) error {
			if _, err := output.ParseFormat(c.String("output")); err != nil {
				return cli.Exit(err.Error(), ExitUsage)
			}
			if _, err := connection.ParseProtocol(c.String("protocol")); err != nil {
				return cli.Exit(err.Error(), ExitUsage)
			}
			return nil
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "keyval server address (host:port or URL)",
			EnvVars: []string{"KEYVAL_SERVER"},
			Value:   defaultServer,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			EnvVars: []string{"KEYVAL_OUTPUT"},
			Value:   string(output.FormatTable),
		},
		&cli.StringFlag{
			Name:  "protocol",
			Usage: "RPC protocol: connect, grpc, grpc-web",
			Value: string(connection.ProtocolConnect),
		},
		&cli.BoolFlag{
			Name:  "json-codec",
			Usage: "Send requests as JSON instead of binary protobuf",
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Aliases: []string{"t"},
			Usage:   "Request timeout",
			Value:   defaultTimeout,
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	Server    string
	Output    output.Format
	Protocol  connection.Protocol
	JSONCodec bool
	Timeout   time.Duration
}

// ParseGlobalFlags extracts global flags from context. Values were
// validated by the app's Before hook.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	format, _ := output.ParseFormat(c.String("output"))
	protocol, _ := connection.ParseProtocol(c.String("protocol"))
	return &GlobalFlags{
		Server:    c.String("server"),
		Output:    format,
		Protocol:  protocol,
		JSONCodec: c.Bool("json-codec"),
		Timeout:   c.Duration("timeout"),
	}
}

// newClient builds a server client from the global flags.
func newClient(c *cli.Context) (*connection.Client, *GlobalFlags) {
	flags := ParseGlobalFlags(c)
	return connection.NewClient(connection.Options{
		Server:   flags.Server,
		Protocol: flags.Protocol,
		JSON:     flags.JSONCodec,
		Timeout:  flags.Timeout,
	}), flags
}

// printResult writes data to the app's writer in the selected format.
func printResult(c *cli.Context, data any) error {
	flags := ParseGlobalFlags(c)
	return output.NewFormatter(flags.Output).Format(c.App.Writer, data)
}

// requireArgs fails with a usage error unless exactly n arguments were given.
func requireArgs(c *cli.Context, n int) error {
	if c.NArg() != n {
		return cli.Exit(fmt.Sprintf("%s: expected %d argument(s) %s, got %d",
			c.Command.Name, n, c.Command.ArgsUsage, c.NArg()), ExitUsage)
	}
	return nil
}
