package main

import (
	"fmt"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/pathlib-go/pathlib/pkg/errors"
)

// writeReport renders a path report in the selected output format.
func writeReport(w io.Writer, rep *pathReport) error {
	switch outputFmt {
	case "", "text":
		return writeTextReport(w, rep)
	case "yaml":
		data, err := yaml.Marshal(rep)
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode report")
		}
		_, err = w.Write(data)
		return err
	case "toml":
		data, err := toml.Marshal(rep)
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode report")
		}
		_, err = w.Write(data)
		return err
	}
	return errors.Newf(errors.ErrConfigParse, "unknown output format %q", outputFmt)
}

func writeTextReport(w io.Writer, rep *pathReport) error {
	lines := []struct {
		label string
		value string
	}{
		{"flavor", rep.Flavor},
		{"canonical", rep.Canonical},
		{"as_posix", rep.AsPosix},
		{"drive", rep.Drive},
		{"root", rep.Root},
		{"anchor", rep.Anchor},
		{"parts", strings.Join(rep.Parts, ", ")},
		{"name", rep.Name},
		{"stem", rep.Stem},
		{"suffix", rep.Suffix},
		{"suffixes", strings.Join(rep.Suffixes, ", ")},
		{"absolute", fmt.Sprintf("%t", rep.Absolute)},
		{"parent", rep.Parent},
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%-10s %s\n", line.label+":", line.value); err != nil {
			return err
		}
	}
	return nil
}
