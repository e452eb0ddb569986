package main

import (
	"github.com/sift-dev/sift/internal/config"
	"github.com/sift-dev/sift/internal/errors"
	"github.com/sift-dev/sift/pkg/snapstore"
)

// remoteStore builds the S3 store from the project configuration.
func remoteStore(cfg *config.Config) (*snapstore.S3Store, error) {
	if cfg.Store.Bucket == "" {
		return nil, errors.New("E143").
			WithDetail("sift.json has no store.bucket entry").
			WithSuggestion("Add a store section to sift.json").
			WithExample(`{
  "store": {
    "bucket": "team-snapshots",
    "prefix": "my-app/",
    "region": "us-east-1"
  }
}`)
	}

	client := snapstore.NewS3Client(cfg.Store.Region, cfg.Store.Endpoint)

	return snapstore.NewS3Store(client, cfg.Store.Bucket, cfg.Store.Prefix), nil
}
