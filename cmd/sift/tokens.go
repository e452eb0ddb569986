package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sift-dev/sift/internal/errors"
	"github.com/sift-dev/sift/pkg/selector"
)

func tokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <selector>",
		Short: "Show how a selector splits into tokens",
		Long: `Show how a selector splits into its ordered tokens.

Useful for checking what a selector actually tests before running a
query with it.

Examples:
  sift tokens 'input.bar'
  sift tokens 'div[title="title"][data-value="foo"]'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(args[0])
		},
	}

	return cmd
}

func runTokens(sel string) error {
	tokens := selector.Split(sel)
	if len(tokens) == 0 {
		return errors.New("E160").
			WithDetail("No tokens found in " + strconv.Quote(sel)).
			WithSuggestion("Selectors start with an element type, a .class, or an [attr] test")
	}

	success("%d token(s)", len(tokens))
	fmt.Println()
	for i, tok := range tokens {
		info("%d. %-6s %s", i+1, tok.Kind, tok.Raw)
	}

	return nil
}
