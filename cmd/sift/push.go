package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sift-dev/sift/internal/errors"
	"github.com/sift-dev/sift/pkg/snapshot"
)

func pushCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push <snapshot.json>",
		Short: "Upload a snapshot to the shared store",
		Long: `Upload a snapshot file to the S3 bucket configured in sift.json.

The snapshot is validated before upload, so a broken file never reaches
the shared store.

Examples:
  sift push snapshots/home.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPush(cmd.Context(), args[0])
		},
	}

	return cmd
}

func runPush(ctx context.Context, path string) error {
	cfg := loadOrDefaultConfig()

	store, err := remoteStore(cfg)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.New("E122").
			WithDetail("Could not read " + path).
			Wrap(err)
	}

	// Validate before uploading
	if _, err := snapshot.Unmarshal(data); err != nil {
		return errors.New("E120").
			WithDetail(path + " is not a valid snapshot").
			Wrap(err)
	}

	name := strings.TrimSuffix(filepath.Base(path), ".json")

	if err := store.Put(ctx, name, data); err != nil {
		return errors.New("E141").
			WithDetail("Upload of " + name + " failed").
			Wrap(err)
	}

	success("Pushed %s to s3://%s/%s%s.json", name, cfg.Store.Bucket, cfg.Store.Prefix, name)

	return nil
}
