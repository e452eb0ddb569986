package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sift-dev/sift/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┬┌─┐┌┬┐
  └─┐│├┤  │
  └─┘┴└   ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "sift",
		Short: "Query and inspect shallow-rendered UI trees",
		Long: `Sift queries and inspects shallow-rendered UI element trees.

Snapshots are JSON files describing an element tree. Sift walks them,
matches nodes against CSS-flavored selectors, and serves them to
viewers. Features include:

  • Selector queries over snapshot files
  • Whole-token class and strict property matching
  • A local inspector server with live reload
  • Push/pull of snapshots to a shared S3 bucket`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add commands
	rootCmd.AddCommand(
		initCmd(),
		queryCmd(),
		tokensCmd(),
		serveCmd(),
		pushCmd(),
		pullCmd(),
		versionCmd(),
	)

	// Execute
	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// printBanner prints the Sift ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
