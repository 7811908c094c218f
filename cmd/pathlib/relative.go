package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathlib-go/pathlib/pkg/purepath"
)

var walkUp bool

var relativeCmd = &cobra.Command{
	Use:   "relative PATH BASE",
	Short: "Express PATH relative to BASE",
	Long: `Express PATH relative to BASE. Without --walk-up, BASE must be a
lexical prefix of PATH; with it, ".." segments bridge diverging paths
that share an anchor.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := activeFlavor()
		if err != nil {
			return err
		}
		p, err := purepath.New(f, args[0])
		if err != nil {
			return err
		}
		base, err := purepath.New(f, args[1])
		if err != nil {
			return err
		}
		rel, err := p.RelativeTo(base, walkUp)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), rel.String())
		return err
	},
}

func init() {
	relativeCmd.Flags().BoolVar(&walkUp, "walk-up", false,
		`Allow ".." segments to bridge diverging paths`)
}
