package main

import (
	"github.com/spf13/cobra"

	"github.com/pathlib-go/pathlib/pkg/purepath"
)

// pathReport is the serializable view of a parsed path.
type pathReport struct {
	Input     []string `yaml:"input" toml:"input"`
	Flavor    string   `yaml:"flavor" toml:"flavor"`
	Canonical string   `yaml:"canonical" toml:"canonical"`
	AsPosix   string   `yaml:"as_posix" toml:"as_posix"`
	Drive     string   `yaml:"drive" toml:"drive"`
	Root      string   `yaml:"root" toml:"root"`
	Anchor    string   `yaml:"anchor" toml:"anchor"`
	Parts     []string `yaml:"parts" toml:"parts"`
	Name      string   `yaml:"name" toml:"name"`
	Stem      string   `yaml:"stem" toml:"stem"`
	Suffix    string   `yaml:"suffix" toml:"suffix"`
	Suffixes  []string `yaml:"suffixes" toml:"suffixes"`
	Absolute  bool     `yaml:"absolute" toml:"absolute"`
	Parent    string   `yaml:"parent" toml:"parent"`
}

func buildReport(p *purepath.PurePath) *pathReport {
	return &pathReport{
		Input:     p.RawFragments(),
		Flavor:    p.Flavor().String(),
		Canonical: p.String(),
		AsPosix:   p.AsPosix(),
		Drive:     p.Drive(),
		Root:      p.Root(),
		Anchor:    p.Anchor(),
		Parts:     p.Parts(),
		Name:      p.Name(),
		Stem:      p.Stem(),
		Suffix:    p.Suffix(),
		Suffixes:  p.Suffixes(),
		Absolute:  p.IsAbsolute(),
		Parent:    p.Parent().String(),
	}
}

var inspectCmd = &cobra.Command{
	Use:   "inspect PATH [PATH...]",
	Short: "Parse path fragments and print their components",
	Long: `Parse one or more path fragments under the active flavor and print the
lexical components of the combined path. Later absolute fragments
override earlier ones, exactly as in join.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := activeFlavor()
		if err != nil {
			return err
		}
		p, err := purepath.New(f, args...)
		if err != nil {
			return err
		}
		return writeReport(cmd.OutOrStdout(), buildReport(p))
	},
}
