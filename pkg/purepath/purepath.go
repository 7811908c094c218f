package purepath

import (
	"strings"
	"sync"

	"github.com/pathlib-go/pathlib/pkg/flavor"
)

// PurePath is an immutable, flavor-aware lexical path value. It is safe to
// share across goroutines: the memoized representations are write-once
// results of pure functions over immutable inputs.
type PurePath struct {
	flavor flavor.Flavor
	parts  parts
	raw    []string

	canonOnce sync.Once
	canon     string

	normOnce sync.Once
	norm     string
	normSegs []string

	hashOnce sync.Once
	hashSum  uint64
}

// New parses fragments into a PurePath of the given flavor. Fragments are
// combined left to right; a later absolute fragment discards everything
// before it. No fragments (or all-empty fragments) yield the dot path.
func New(f flavor.Flavor, fragments ...string) (*PurePath, error) {
	p, err := parseFragments(f, fragments)
	if err != nil {
		return nil, err
	}
	raw := make([]string, len(fragments))
	copy(raw, fragments)
	return &PurePath{flavor: f, parts: p, raw: raw}, nil
}

// NewPosix is shorthand for New(flavor.Posix, fragments...).
func NewPosix(fragments ...string) (*PurePath, error) {
	return New(flavor.Posix, fragments...)
}

// NewWindows is shorthand for New(flavor.Windows, fragments...).
func NewWindows(fragments ...string) (*PurePath, error) {
	return New(flavor.Windows, fragments...)
}

// newFromParts builds a derived value from already-parsed parts, skipping
// the parser entirely.
func newFromParts(f flavor.Flavor, p parts) *PurePath {
	return &PurePath{flavor: f, parts: p}
}

// Flavor returns the rule set this value was parsed under.
func (p *PurePath) Flavor() flavor.Flavor {
	return p.flavor
}

// Drive returns the drive prefix, such as "C:" or `\\server\share`. It is
// always empty under the Posix flavor.
func (p *PurePath) Drive() string {
	return p.parts.drive
}

// Root returns the root marker, normalized to the primary separator, or
// an empty string for relative paths.
func (p *PurePath) Root() string {
	return p.parts.root
}

// Anchor returns the drive and root combined.
func (p *PurePath) Anchor() string {
	return p.parts.anchor()
}

// Segments returns the path segments after the anchor.
func (p *PurePath) Segments() []string {
	out := make([]string, len(p.parts.segments))
	copy(out, p.parts.segments)
	return out
}

// Parts returns the path components with the anchor, when present, merged
// into a single leading element.
func (p *PurePath) Parts() []string {
	if !p.parts.hasAnchor() {
		return p.Segments()
	}
	out := make([]string, 0, len(p.parts.segments)+1)
	out = append(out, p.parts.anchor())
	out = append(out, p.parts.segments...)
	return out
}

// Name returns the final segment, or an empty string when the value is a
// bare anchor or the dot path.
func (p *PurePath) Name() string {
	if n := len(p.parts.segments); n > 0 {
		return p.parts.segments[n-1]
	}
	return ""
}

// Suffix returns the final extension of the name, including the dot. A
// leading dot does not start a suffix, so dotfiles have none.
func (p *PurePath) Suffix() string {
	_, suffix := splitSuffix(p.Name())
	return suffix
}

// Suffixes returns all trailing dot-delimited groups of the name in
// left-to-right order, e.g. [".tar", ".gz"] for "library.tar.gz".
func (p *PurePath) Suffixes() []string {
	name := p.Name()
	if name == "" || name == ".." {
		return nil
	}
	rem := strings.TrimPrefix(name, ".")
	var out []string
	for {
		i := strings.IndexByte(rem, '.')
		if i < 0 {
			return out
		}
		rem = rem[i+1:]
		if j := strings.IndexByte(rem, '.'); j >= 0 {
			out = append(out, "."+rem[:j])
		} else {
			out = append(out, "."+rem)
		}
	}
}

// Stem returns the name without its final suffix.
func (p *PurePath) Stem() string {
	stem, _ := splitSuffix(p.Name())
	return stem
}

func splitSuffix(name string) (stem, suffix string) {
	if name == "" || name == ".." {
		return name, ""
	}
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[:i], name[i:]
	}
	return name, ""
}

// IsAbsolute reports whether the path is anchored. The Windows flavor
// requires both a drive and a root.
func (p *PurePath) IsAbsolute() bool {
	return p.parts.isAbsolute(p.flavor)
}

// String returns the canonical string, computed once per value.
func (p *PurePath) String() string {
	p.canonOnce.Do(func() {
		p.canon = formatParts(p.flavor, p.parts)
	})
	return p.canon
}

// AsPosix returns the canonical string with forward slashes.
func (p *PurePath) AsPosix() string {
	return strings.ReplaceAll(p.String(), `\`, "/")
}

// RawFragments returns the original input strings, unjoined, for
// round-trip serialization. Derived values report their canonical string
// as the single fragment.
func (p *PurePath) RawFragments() []string {
	if p.raw == nil {
		return []string{p.String()}
	}
	out := make([]string, len(p.raw))
	copy(out, p.raw)
	return out
}

// normalized returns the case-folded canonical string and the case-folded
// Parts sequence, computing both at most once. They are used only for
// equality, ordering and hashing.
func (p *PurePath) normalized() (string, []string) {
	p.normOnce.Do(func() {
		p.norm = p.flavor.Fold(p.String())
		src := p.Parts()
		segs := make([]string, len(src))
		for i, s := range src {
			segs[i] = p.flavor.Fold(s)
		}
		p.normSegs = segs
	})
	return p.norm, p.normSegs
}
