package purepath

import (
	"strings"

	"github.com/pathlib-go/pathlib/pkg/errors"
)

// Parent returns the lexical parent. A bare anchor or the dot path is its
// own parent.
func (p *PurePath) Parent() *PurePath {
	n := len(p.parts.segments)
	if n == 0 {
		return p
	}
	return newFromParts(p.flavor, parts{
		drive:    p.parts.drive,
		root:     p.parts.root,
		segments: p.parts.segments[: n-1 : n-1],
	})
}

// Parents returns the ancestors from the immediate parent up to the anchor
// (or the dot path for unanchored values). Its length always equals the
// number of segments. The returned values share the segment backing array
// with p; nothing ever mutates it.
func (p *PurePath) Parents() []*PurePath {
	segs := p.parts.segments
	out := make([]*PurePath, len(segs))
	for i := range out {
		end := len(segs) - 1 - i
		out[i] = newFromParts(p.flavor, parts{
			drive:    p.parts.drive,
			root:     p.parts.root,
			segments: segs[:end:end],
		})
	}
	return out
}

// Join appends fragments to the path, applying the same absolute-override
// rules as construction: an absolute fragment discards what came before
// it, and a drive-less rooted fragment keeps the current drive.
func (p *PurePath) Join(fragments ...string) (*PurePath, error) {
	acc := p.parts
	for _, frag := range fragments {
		next, err := parseOne(p.flavor, frag)
		if err != nil {
			return nil, err
		}
		acc = acc.join(p.flavor, next)
	}
	return newFromParts(p.flavor, acc), nil
}

// RelativeTo expresses p relative to other. Without walkUp, other's
// segments must be a prefix of p's; with walkUp, ".." segments bridge the
// divergence and only a differing anchor is an error. Comparison of the
// common prefix follows the flavor's case-fold rules.
func (p *PurePath) RelativeTo(other *PurePath, walkUp bool) (*PurePath, error) {
	if p.flavor != other.flavor {
		return nil, errors.Newf(errors.ErrFlavorMismatch,
			"cannot make a %s path relative to a %s path", p.flavor, other.flavor)
	}
	fold := p.flavor.Fold
	if fold(p.parts.anchor()) != fold(other.parts.anchor()) {
		return nil, errors.Newf(errors.ErrNotRelative,
			"%q and %q have different anchors", p.String(), other.String())
	}
	a, b := p.parts.segments, other.parts.segments
	n := 0
	for n < len(a) && n < len(b) && fold(a[n]) == fold(b[n]) {
		n++
	}
	if !walkUp && n < len(b) {
		return nil, errors.Newf(errors.ErrNotRelative,
			"%q is not in the subpath of %q", p.String(), other.String())
	}
	ups := len(b) - n
	segs := make([]string, 0, ups+len(a)-n)
	for i := 0; i < ups; i++ {
		segs = append(segs, "..")
	}
	segs = append(segs, a[n:]...)
	return newFromParts(p.flavor, parts{segments: segs}), nil
}

// IsRelativeTo reports whether RelativeTo(other, false) would succeed. It
// is total: flavor mismatches simply report false.
func (p *PurePath) IsRelativeTo(other *PurePath) bool {
	if p.flavor != other.flavor {
		return false
	}
	fold := p.flavor.Fold
	if fold(p.parts.anchor()) != fold(other.parts.anchor()) {
		return false
	}
	a, b := p.parts.segments, other.parts.segments
	if len(b) > len(a) {
		return false
	}
	for i := range b {
		if fold(a[i]) != fold(b[i]) {
			return false
		}
	}
	return true
}

// WithName replaces the final segment. It fails on a path with no name
// (a bare anchor or the dot path) and on names that are empty, a single
// dot, contain a separator, or carry a drive marker.
func (p *PurePath) WithName(name string) (*PurePath, error) {
	if p.Name() == "" {
		return nil, errors.Newf(errors.ErrInvalidName, "%q has an empty name", p.String())
	}
	if err := p.checkName(name); err != nil {
		return nil, err
	}
	segs := make([]string, len(p.parts.segments))
	copy(segs, p.parts.segments)
	segs[len(segs)-1] = name
	return newFromParts(p.flavor, parts{
		drive:    p.parts.drive,
		root:     p.parts.root,
		segments: segs,
	}), nil
}

// WithStem replaces the name while keeping the current suffix.
func (p *PurePath) WithStem(stem string) (*PurePath, error) {
	return p.WithName(stem + p.Suffix())
}

// WithSuffix replaces the final suffix, appends one if the name has none,
// or strips it when suffix is empty. A non-empty suffix must begin with a
// dot and contain no separator.
func (p *PurePath) WithSuffix(suffix string) (*PurePath, error) {
	if suffix != "" {
		if !strings.HasPrefix(suffix, ".") || suffix == "." {
			return nil, errors.Newf(errors.ErrInvalidSuffix, "invalid suffix %q", suffix)
		}
		for i := 1; i < len(suffix); i++ {
			if p.flavor.IsSeparator(suffix[i]) {
				return nil, errors.Newf(errors.ErrInvalidSuffix, "invalid suffix %q", suffix)
			}
		}
	}
	if p.Name() == "" {
		return nil, errors.Newf(errors.ErrInvalidName, "%q has an empty name", p.String())
	}
	return p.WithName(p.Stem() + suffix)
}

func (p *PurePath) checkName(name string) error {
	if name == "" || name == "." {
		return errors.Newf(errors.ErrInvalidName, "invalid name %q", name)
	}
	for i := 0; i < len(name); i++ {
		if p.flavor.IsSeparator(name[i]) {
			return errors.Newf(errors.ErrInvalidName, "invalid name %q", name)
		}
	}
	if d, _, _ := p.flavor.SplitDrive(name); d != "" {
		return errors.Newf(errors.ErrInvalidName, "invalid name %q", name)
	}
	return nil
}
