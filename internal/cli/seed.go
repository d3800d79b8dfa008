package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/desk/internal/ctxutil"
	"github.com/example/desk/internal/wire"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Inspect the seed data loaded at startup",
	}
	cmd.AddCommand(seedShowCmd())
	return cmd
}

func seedShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the queue and history the desk starts with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			wire.Configure(cfg)
			defer wire.Close()

			ctx := ctxutil.WithOperator(cmd.Context(), cfg.Operator)
			if err := wire.DeskService().Seed(ctx); err != nil {
				return err
			}

			desk := wire.DeskAdapterWithOutput(cmd.OutOrStdout())
			desk.ShowQueue(ctx)
			desk.ShowHistory(ctx)
			return nil
		},
	}
}
