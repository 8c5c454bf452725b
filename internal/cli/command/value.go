package command

import (
	"context"
	"fmt"

	"connectrpc.com/connect"
	"github.com/urfave/cli/v2"

	keyvalv1 "github.com/yndnr/keyval-go/api/proto/v1"
	"github.com/yndnr/keyval-go/internal/cli/output"
)

// ValueResult is the output of get.
type ValueResult struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Table implements output.Tabular.
func (r ValueResult) Table() *output.Table {
	t := &output.Table{Headers: []string{"KEY", "VALUE"}}
	t.AddRow(output.Cell(r.Key), output.Cell(r.Value))
	return t
}

// InsertResult is the output of insert.
type InsertResult struct {
	Key    string `json:"key" yaml:"key"`
	Result string `json:"result" yaml:"result"`
}

// Table implements output.Tabular.
func (r InsertResult) Table() *output.Table {
	t := &output.Table{Headers: []string{"KEY", "RESULT"}}
	t.AddRow(output.Cell(r.Key), output.Cell(r.Result))
	return t
}

// GetCommand returns the get command.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Get the value stored under KEY",
		ArgsUsage: "KEY",
		Action:    getValue,
	}
}

// InsertCommand returns the insert command.
func InsertCommand() *cli.Command {
	return &cli.Command{
		Name:      "insert",
		Aliases:   []string{"put", "set"},
		Usage:     "Insert or overwrite KEY with VALUE",
		ArgsUsage: "KEY VALUE",
		Action:    insertValue,
	}
}

func getValue(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	key := c.Args().Get(0)

	client, flags := newClient(c)
	ctx, cancel := context.WithTimeout(c.Context, flags.Timeout)
	defer cancel()

	resp, err := client.Value.GetValue(ctx, connect.NewRequest(&keyvalv1.GetValueRequest{Key: key}))
	if err != nil {
		if connect.CodeOf(err) == connect.CodeNotFound {
			return cli.Exit(fmt.Sprintf("key %q not found", key), ExitNotFound)
		}
		return cli.Exit(fmt.Sprintf("get %q: %v", key, err), ExitError)
	}

	return printResult(c, ValueResult{Key: key, Value: resp.Msg.Value})
}

func insertValue(c *cli.Context) error {
	if err := requireArgs(c, 2); err != nil {
		return err
	}
	key, value := c.Args().Get(0), c.Args().Get(1)

	client, flags := newClient(c)
	ctx, cancel := context.WithTimeout(c.Context, flags.Timeout)
	defer cancel()

	resp, err := client.Value.InsertKeyValue(ctx, connect.NewRequest(&keyvalv1.InsertKeyValueRequest{
		Key:   key,
		Value: value,
	}))
	if err != nil {
		return cli.Exit(fmt.Sprintf("insert %q: %v", key, err), ExitError)
	}

	return printResult(c, InsertResult{Key: key, Result: resp.Msg.Result})
}
