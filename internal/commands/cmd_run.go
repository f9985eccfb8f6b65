package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskbee/internal/bot"
	"github.com/colonyops/taskbee/internal/data/stores"
	"github.com/colonyops/taskbee/internal/transports/console"
)

// RunCmd implements the taskbee run command.
type RunCmd struct {
	flags *Flags
}

// NewRunCmd creates a new run command.
func NewRunCmd(flags *Flags) *RunCmd {
	return &RunCmd{flags: flags}
}

// Register adds the run command to the application.
func (cmd *RunCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "run",
		Usage:     "Run the bot with the console transport",
		UsageText: "taskbee run",
		Description: `Starts the bot against a local console chat: every line typed on
stdin is treated as a message from the configured sender, and replies are
printed back. State is in-memory and lost on exit.

Examples:
  taskbee run
  echo '/help' | taskbee run`,
		Action: cmd.run,
	})

	return app
}

func (cmd *RunCmd) run(ctx context.Context, c *cli.Command) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := stores.NewTaskStore()
	router := bot.NewRouter(store, log.Logger)
	transport := console.New(cmd.flags.Config.Console.Sender, os.Stdin, c.Root().Writer)

	log.Info().Str("sender", cmd.flags.Config.Console.Sender).Msg("starting console transport")

	return router.Run(ctx, transport)
}
