package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmcdole/bookfinder/internal/adapter"
	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command and its subcommands.
func NewConfigCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath(root)
			if err := initConfig(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	cmd.AddCommand(initCmd)
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), configPath(root))
		},
	})

	return cmd
}

// configPath is the --config file or the default location
func configPath(root *rootOptions) string {
	if root.configFile != "" {
		return root.configFile
	}
	return filepath.Join(adapter.DefaultConfigDir(), "config.yaml")
}

func initConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	return adapter.SaveConfig(adapter.DefaultConfig(), path)
}
