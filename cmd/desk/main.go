package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/desk/internal/cli"
	"github.com/example/desk/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "desk",
		Short:   "Customer service desk simulator",
		Version: version.String(),
		Long: `desk simulates a customer service desk: a FIFO queue of waiting customers
and a LIFO history of service requests. Run without a subcommand to start
the interactive menu.`,
		Args:          cobra.NoArgs,
		RunE:          cli.RunMenu,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.Flags().Bool("empty", false, "Start with an empty queue and history")
	cli.AddGlobalFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(cli.RunCmd())
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.ActivityCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
