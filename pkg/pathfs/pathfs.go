// Package pathfs provides concrete paths: a native-flavor PurePath plus
// the filesystem operations the lexical core deliberately excludes. Every
// operation that touches the disk lives here.
package pathfs

import (
	"os"

	"github.com/pathlib-go/pathlib/pkg/errors"
	"github.com/pathlib-go/pathlib/pkg/flavor"
	"github.com/pathlib-go/pathlib/pkg/logging"
	"github.com/pathlib-go/pathlib/pkg/purepath"
)

var log = logging.GetLogger("pathfs")

// Path is a concrete path: a lexical core held by reference plus
// filesystem capability. Like PurePath it is immutable.
type Path struct {
	pure *purepath.PurePath
}

// New parses fragments into a concrete path of the native flavor.
func New(fragments ...string) (*Path, error) {
	p, err := purepath.New(flavor.Native(), fragments...)
	if err != nil {
		return nil, err
	}
	return &Path{pure: p}, nil
}

// FromPure wraps an existing lexical value. The value should be of the
// native flavor; filesystem calls on a foreign-flavor path will fail in
// whatever way the OS sees fit.
func FromPure(p *purepath.PurePath) *Path {
	return &Path{pure: p}
}

// Cwd returns the current working directory as a concrete path.
func Cwd() (*Path, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to determine working directory")
	}
	return New(dir)
}

// Home returns the current user's home directory as a concrete path.
func Home() (*Path, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to determine home directory")
	}
	return New(dir)
}

// Pure returns the lexical core of the path.
func (p *Path) Pure() *purepath.PurePath {
	return p.pure
}

// String returns the canonical string of the lexical core.
func (p *Path) String() string {
	return p.pure.String()
}

// Name returns the final segment of the path.
func (p *Path) Name() string {
	return p.pure.Name()
}

// Parent returns the lexical parent as a concrete path.
func (p *Path) Parent() *Path {
	return &Path{pure: p.pure.Parent()}
}

// Join appends fragments lexically and returns a concrete path.
func (p *Path) Join(fragments ...string) (*Path, error) {
	joined, err := p.pure.Join(fragments...)
	if err != nil {
		return nil, err
	}
	return &Path{pure: joined}, nil
}

// Equal compares the lexical cores.
func (p *Path) Equal(other *Path) bool {
	return p.pure.Equal(other.pure)
}

// ExpandUser replaces a leading "~" segment with the home directory.
// Paths without one are returned unchanged.
func (p *Path) ExpandUser() (*Path, error) {
	segs := p.pure.Segments()
	if p.pure.Anchor() != "" || len(segs) == 0 || segs[0] != "~" {
		return p, nil
	}
	home, err := Home()
	if err != nil {
		return nil, err
	}
	return home.Join(segs[1:]...)
}
