package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// ConfigValidateCmd implements the taskbee config validate command.
type ConfigValidateCmd struct {
	flags *Flags
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config command group to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "taskbee config validate",
				Description: "Validates the configuration file and reports the effective values.",
				Action:      cmd.run,
			},
		},
	})

	return app
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	// Config was loaded and validated in the Before hook; getting here
	// means it passed.
	out := c.Root().Writer

	fmt.Fprintf(out, "config ok: %s\n", cmd.flags.ConfigPath)
	fmt.Fprintf(out, "  console.sender: %s\n", cmd.flags.Config.Console.Sender)
	if cmd.flags.Config.Token != "" {
		fmt.Fprintln(out, "  token: set")
	} else {
		fmt.Fprintln(out, "  token: not set")
	}

	return nil
}
