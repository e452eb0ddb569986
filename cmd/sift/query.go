package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sift-dev/sift/internal/errors"
	"github.com/sift-dev/sift/pkg/query"
	"github.com/sift-dev/sift/pkg/sdom"
	"github.com/sift-dev/sift/pkg/snapshot"
)

func queryCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "query <snapshot.json> <selector>",
		Short: "Run a selector query against a snapshot file",
		Long: `Run a selector query against a snapshot file and print the matches.

Selectors combine an element type, classes, and attribute tests:

  button                 every button
  .btn.primary           nodes carrying both classes
  input[type="text"]     inputs whose type is exactly "text"
  Card[title="Hello"]    components by name

Examples:
  sift query snapshots/home.json button
  sift query snapshots/home.json '.btn.primary'
  sift query snapshots/login.json 'input[type="password"]' --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(args[0], args[1], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print matches as JSON")

	return cmd
}

func runQuery(path, selector string, asJSON bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.New("E122").
			WithDetail("Could not read " + path).
			Wrap(err)
	}

	root, err := snapshot.Unmarshal(data)
	if err != nil {
		return errors.New("E120").
			WithDetail(path + " is not a valid snapshot").
			Wrap(err)
	}

	matches, err := query.FindAll(root, selector)
	if err != nil {
		return errors.New("E160").
			WithDetail(err.Error()).
			WithSuggestion("Selectors look like: an element type, .class tokens, and [attr] tests").
			WithExample(`sift query home.json 'button.primary[type="submit"]'`).
			Wrap(err)
	}

	if asJSON {
		return printMatchesJSON(path, selector, matches)
	}

	if len(matches) == 0 {
		warn("No matches for %q in %s", selector, path)
		return nil
	}

	success("%d match(es) for %q", len(matches), selector)
	fmt.Println()
	for i, m := range matches {
		info("%d.", i+1)
		for _, line := range strings.Split(sdom.Outline(m), "\n") {
			info("   %s", line)
		}
	}

	return nil
}

func printMatchesJSON(path, selector string, matches []*sdom.Node) error {
	type jsonMatch struct {
		Type    string `json:"type"`
		Outline string `json:"outline"`
	}
	out := struct {
		Snapshot string      `json:"snapshot"`
		Selector string      `json:"selector"`
		Count    int         `json:"count"`
		Matches  []jsonMatch `json:"matches"`
	}{
		Snapshot: path,
		Selector: selector,
		Count:    len(matches),
		Matches:  make([]jsonMatch, 0, len(matches)),
	}
	for _, m := range matches {
		out.Matches = append(out.Matches, jsonMatch{
			Type:    sdom.TypeName(m),
			Outline: sdom.Outline(m),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
