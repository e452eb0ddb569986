package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sift-dev/sift/internal/config"
	"github.com/sift-dev/sift/internal/errors"
)

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [name]",
		Short: "Create a sift.json in the current directory",
		Long: `Create a sift.json configuration file in the current directory.

The config names the project, points at the snapshot directory, and
holds the inspector and store settings.

Examples:
  sift init
  sift init my-app
  sift init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return runInit(name, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing sift.json")

	return cmd
}

func runInit(name string, force bool) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	if config.Exists(wd) && !force {
		return errors.Newf(errors.CategoryCLI, "sift.json already exists").
			WithSuggestion("Use --force to overwrite it")
	}

	if name == "" {
		name = filepath.Base(wd)
	}

	cfg := config.New()
	cfg.Name = name

	path := filepath.Join(wd, config.ConfigFileName)
	if err := cfg.SaveTo(path); err != nil {
		return err
	}

	success("Created %s", config.ConfigFileName)
	info("Snapshot directory: %s", cfg.Snapshots.Dir)
	info("Inspector address:  %s", cfg.ServeURL())
	info("Run 'sift serve' to start the inspector")

	return nil
}
