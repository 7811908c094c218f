package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathlib-go/pathlib/pkg/purepath"
)

var (
	matchFull          bool
	matchCaseSensitive bool
	matchIgnoreCase    bool
)

var matchCmd = &cobra.Command{
	Use:   "match PATTERN PATH [PATH...]",
	Short: "Test paths against a glob pattern",
	Long: `Test paths against a glob pattern under the active flavor. By default
the pattern is matched against a right-aligned suffix of each path;
--full anchors it against the whole path. "**" matches any number of
whole segments. Case sensitivity defaults to the flavor's.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := activeFlavor()
		if err != nil {
			return err
		}
		caseSensitive := f.CaseSensitive()
		if cfg != nil && cfg.CaseSensitive != nil {
			caseSensitive = *cfg.CaseSensitive
		}
		if matchCaseSensitive {
			caseSensitive = true
		}
		if matchIgnoreCase {
			caseSensitive = false
		}

		pattern := args[0]
		for _, arg := range args[1:] {
			p, err := purepath.New(f, arg)
			if err != nil {
				return err
			}
			var ok bool
			if matchFull {
				ok, err = p.FullMatchWithCase(pattern, caseSensitive)
			} else {
				ok, err = p.MatchWithCase(pattern, caseSensitive)
			}
			if err != nil {
				return err
			}
			verdict := "no match"
			if ok {
				verdict = "match"
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", p.String(), verdict); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	matchCmd.Flags().BoolVar(&matchFull, "full", false, "Anchor the pattern against the whole path")
	matchCmd.Flags().BoolVar(&matchCaseSensitive, "case-sensitive", false, "Force case-sensitive matching")
	matchCmd.Flags().BoolVar(&matchIgnoreCase, "ignore-case", false, "Force case-insensitive matching")
	matchCmd.MarkFlagsMutuallyExclusive("case-sensitive", "ignore-case")
}
