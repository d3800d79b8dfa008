package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/desk/internal/adapters/seed"
	"github.com/example/desk/internal/config"
)

const seedFileName = "seed.yaml"

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create .desk/config.json and .desk/seed.yaml",
		Long: `Create a desk configuration in the current directory.

Existing files are left untouched. Edit .desk/seed.yaml to change the
customers and requests loaded at startup.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			return initDesk(cmd, cwd)
		},
	}
}

func initDesk(cmd *cobra.Command, dir string) error {
	out := cmd.OutOrStdout()

	configPath := filepath.Join(config.Dir(dir), "config.json")
	if _, err := os.Stat(configPath); err == nil {
		fmt.Fprintf(out, "Config already exists at %s\n", configPath)
	} else if errors.Is(err, fs.ErrNotExist) {
		cfg := config.DefaultConfig()
		cfg.SeedFile = filepath.Join(".desk", seedFileName)
		if err := config.SaveConfig(dir, cfg); err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ Config written to %s\n", configPath)
	} else {
		return fmt.Errorf("failed to check config: %w", err)
	}

	seedPath := filepath.Join(config.Dir(dir), seedFileName)
	if _, err := os.Stat(seedPath); err == nil {
		fmt.Fprintf(out, "Seed file already exists at %s\n", seedPath)
		return nil
	}
	if err := os.WriteFile(seedPath, seed.DefaultYAML(), 0644); err != nil {
		return fmt.Errorf("failed to write seed file: %w", err)
	}
	fmt.Fprintf(out, "✓ Seed file written to %s\n", seedPath)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  desk seed show")
	fmt.Fprintln(out, "  desk run")
	return nil
}
