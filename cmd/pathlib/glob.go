package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathlib-go/pathlib/pkg/pathfs"
)

var globRecursive bool

var globCmd = &cobra.Command{
	Use:   "glob PATTERN [DIR]",
	Short: "List filesystem entries matching a glob pattern",
	Long: `Walk DIR (default ".") and print every entry whose path relative to
DIR matches the glob pattern. This command uses the native flavor and
does touch the filesystem, unlike the lexical commands.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 2 {
			dir = args[1]
		}
		root, err := pathfs.New(dir)
		if err != nil {
			return err
		}
		var matches []*pathfs.Path
		if globRecursive {
			matches, err = root.RGlob(args[0])
		} else {
			matches, err = root.Glob(args[0])
		}
		if err != nil {
			return err
		}
		for _, m := range matches {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), m.String()); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	globCmd.Flags().BoolVarP(&globRecursive, "recursive", "r", false,
		`Match at any depth, like a leading "**/"`)
}
