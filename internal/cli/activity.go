package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/desk/internal/config"
	"github.com/example/desk/internal/db"
	"github.com/example/desk/internal/ports/primary"
	"github.com/example/desk/internal/wire"
)

// DefaultActivityLimit is how many entries `desk activity` lists by default.
const DefaultActivityLimit = 50

var noteColor = color.New(color.FgHiBlack)

// ActivityCmd returns the activity command
func ActivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "List desk activity",
		Long: `List entries from the activity log, newest first.

The log only outlives a session when activity_db in .desk/config.json (or
--activity-db) names a file. The default in-memory log starts empty.

Examples:
  desk activity --activity-db .desk/activity.db
  desk activity --structure queue --action dequeue
  desk activity --operator ana --limit 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			warnInMemory(cmd, cfg)
			wire.Configure(cfg)
			defer wire.Close()

			return wire.DeskAdapterWithOutput(cmd.OutOrStdout()).Activity(cmd.Context(), activityFilters(cmd))
		},
	}
	cmd.Flags().String("structure", "", "Only entries on this structure (queue or history)")
	cmd.Flags().String("action", "", "Only entries with this action (seed, enqueue, dequeue, push, pop)")
	cmd.Flags().String("operator", "", "Only entries recorded by this operator")
	cmd.Flags().Int("limit", DefaultActivityLimit, "Maximum entries to list (0 for all)")

	cmd.AddCommand(activityShowCmd())
	return cmd
}

func activityShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [activity-id]",
		Short: "Show one activity entry",
		Long:  "Show a single activity log entry (e.g., ACT-0001)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			warnInMemory(cmd, cfg)
			wire.Configure(cfg)
			defer wire.Close()

			return wire.DeskAdapterWithOutput(cmd.OutOrStdout()).ShowActivity(cmd.Context(), args[0])
		},
	}
}

// activityFilters reads the filter flags of the activity command.
// The local --operator flag shadows the global one here.
func activityFilters(cmd *cobra.Command) primary.ActivityFilters {
	flags := cmd.Flags()
	structure, _ := flags.GetString("structure")
	action, _ := flags.GetString("action")
	operator, _ := flags.GetString("operator")
	limit, _ := flags.GetInt("limit")

	return primary.ActivityFilters{
		Structure: structure,
		Action:    action,
		Operator:  operator,
		Limit:     limit,
	}
}

func warnInMemory(cmd *cobra.Command, cfg *config.Config) {
	if cfg.ActivityDB == "" || cfg.ActivityDB == db.MemoryPath {
		noteColor.Fprintln(cmd.ErrOrStderr(), "note: activity log is in memory; set activity_db or --activity-db to read a saved log")
	}
}
