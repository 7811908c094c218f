package pathfs

import (
	"io/fs"
	"path/filepath"

	"github.com/pathlib-go/pathlib/pkg/errors"
	"github.com/pathlib-go/pathlib/pkg/flavor"
	"github.com/pathlib-go/pathlib/pkg/purepath"
)

// Glob returns the entries under p whose path relative to p matches the
// glob pattern. Directories and files are both reported, in lexical walk
// order. The pattern must be relative.
func (p *Path) Glob(pattern string) ([]*Path, error) {
	f := flavor.Native()
	pt, err := purepath.CompilePattern(f, pattern, f.CaseSensitive())
	if err != nil {
		return nil, err
	}
	if pt.Anchored() {
		return nil, errors.Newf(errors.ErrPattern, "non-relative pattern %q", pattern)
	}

	root := p.String()
	log.Debug().Str("root", root).Str("pattern", pattern).Msg("Globbing")

	var out []*Path
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rp, err := purepath.New(f, rel)
		if err != nil {
			return err
		}
		if pt.FullMatch(rp) {
			match, err := p.Join(rel)
			if err != nil {
				return err
			}
			out = append(out, match)
		}
		return nil
	})
	if walkErr != nil {
		return nil, wrapOSError(walkErr, errors.ErrFileAccess, "glob", root)
	}
	return out, nil
}

// RGlob matches pattern against entries at any depth, like Glob with a
// leading "**/".
func (p *Path) RGlob(pattern string) ([]*Path, error) {
	f := flavor.Native()
	pt, err := purepath.CompilePattern(f, pattern, f.CaseSensitive())
	if err != nil {
		return nil, err
	}
	if pt.Anchored() {
		return nil, errors.Newf(errors.ErrPattern, "non-relative pattern %q", pattern)
	}
	return p.Glob("**/" + pattern)
}
