package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sift-dev/sift/internal/errors"
)

func pullCmd() *cobra.Command {
	var urlOnly bool

	cmd := &cobra.Command{
		Use:   "pull <name>",
		Short: "Download a snapshot from the shared store",
		Long: `Download a snapshot from the S3 bucket configured in sift.json
into the local snapshot directory.

With --url, print a presigned download link instead of fetching the
snapshot. The link works for anyone, with no AWS credentials.

Examples:
  sift pull home
  sift pull home --url`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPull(cmd.Context(), args[0], urlOnly)
		},
	}

	cmd.Flags().BoolVar(&urlOnly, "url", false, "Print a presigned download URL instead of downloading")

	return cmd
}

func runPull(ctx context.Context, name string, urlOnly bool) error {
	cfg := loadOrDefaultConfig()

	store, err := remoteStore(cfg)
	if err != nil {
		return err
	}

	if urlOnly {
		url, err := store.PresignGet(ctx, name)
		if err != nil {
			return errors.New("E142").
				WithDetail("Could not presign a URL for " + name).
				Wrap(err)
		}
		fmt.Println(url)
		return nil
	}

	data, err := store.Get(ctx, name)
	if err != nil {
		return errors.New("E142").
			WithDetail("Download of " + name + " failed").
			Wrap(err)
	}

	dir := cfg.SnapshotsDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	dest := filepath.Join(dir, name+".json")
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return err
	}

	success("Pulled %s to %s", name, dest)

	return nil
}
