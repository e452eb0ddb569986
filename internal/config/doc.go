// Package config provides configuration parsing for sift projects.
//
// The configuration is stored in sift.json at the project root. This
// package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "name": "myapp",
//	  "snapshots": {
//	    "dir": "snapshots",
//	    "pretty": true
//	  },
//	  "serve": {
//	    "host": "localhost",
//	    "port": 4680
//	  },
//	  "watch": {
//	    "ignore": ["*.tmp"],
//	    "debounceMs": 100
//	  },
//	  "store": {
//	    "bucket": "team-snapshots",
//	    "prefix": "myapp/",
//	    "region": "us-east-1"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Port:", cfg.Serve.Port)
package config
