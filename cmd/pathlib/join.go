package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathlib-go/pathlib/pkg/purepath"
)

var joinCmd = &cobra.Command{
	Use:   "join PATH FRAGMENT [FRAGMENT...]",
	Short: "Join fragments onto a path and print the result",
	Long: `Join fragments onto a path under the active flavor. An absolute
fragment discards everything before it; on Windows, a rooted but
drive-less fragment keeps the current drive.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := activeFlavor()
		if err != nil {
			return err
		}
		p, err := purepath.New(f, args...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), p.String())
		return err
	},
}
