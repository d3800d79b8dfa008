package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/desk/internal/config"
	"github.com/example/desk/internal/ctxutil"
	"github.com/example/desk/internal/wire"
)

// AddGlobalFlags registers the flags shared by every desk command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("operator", "", "Operator name recorded in the activity log (env: DESK_OPERATOR)")
	cmd.PersistentFlags().String("seed-file", "", "YAML seed file (default: built-in seed)")
	cmd.PersistentFlags().String("activity-db", "", "SQLite activity log path (default: in memory)")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}

// RunCmd returns the run command
func RunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the interactive service desk",
		Long: `Start the interactive service desk.

The desk begins with the seeded customer queue and request history and
keeps everything in memory until you exit.`,
		Args: cobra.NoArgs,
		RunE: RunMenu,
	}
	cmd.Flags().Bool("empty", false, "Start with an empty queue and history")
	return cmd
}

// RunMenu seeds the desk and runs the interactive menu on stdin/stdout.
func RunMenu(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	wire.Configure(cfg)
	defer wire.Close()

	ctx := ctxutil.WithOperator(cmd.Context(), cfg.Operator)

	empty, _ := cmd.Flags().GetBool("empty")
	if !empty {
		if err := wire.DeskService().Seed(ctx); err != nil {
			return err
		}
	}

	menu := NewMenu(wire.DeskAdapterWithOutput(cmd.OutOrStdout()), cmd.InOrStdin(), cmd.OutOrStdout())
	return menu.Run(ctx)
}

// loadConfig resolves config from the working directory and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.Resolve(cwd)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("operator") {
		cfg.Operator, _ = flags.GetString("operator")
	}
	if flags.Changed("seed-file") {
		cfg.SeedFile, _ = flags.GetString("seed-file")
	}
	if flags.Changed("activity-db") {
		cfg.ActivityDB, _ = flags.GetString("activity-db")
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		cfg.NoColor = true
	}

	if cfg.NoColor {
		color.NoColor = true
	}
	return cfg, nil
}
