package purepath

import (
	"strings"

	"github.com/pathlib-go/pathlib/pkg/errors"
	"github.com/pathlib-go/pathlib/pkg/flavor"
)

// parts is the structural form of a path: an optional drive, an optional
// root marker, and the ordered segments after the anchor. Segments never
// contain separators or single dots; ".." is kept as-is.
type parts struct {
	drive    string
	root     string
	segments []string
}

func (p parts) hasAnchor() bool {
	return p.drive != "" || p.root != ""
}

// anchor is the non-segment portion of the path: drive plus root.
func (p parts) anchor() string {
	return p.drive + p.root
}

// isAbsolute reports whether the path is anchored. Windows requires both a
// drive and a root; a rooted drive-less path like `\Windows` is not
// absolute because it still depends on the current drive.
func (p parts) isAbsolute(f flavor.Flavor) bool {
	if f == flavor.Windows {
		return p.drive != "" && p.root != ""
	}
	return p.root != ""
}

// parseFragments folds raw fragments left to right into a single parts
// value, applying the absolute-override rules of join.
func parseFragments(f flavor.Flavor, fragments []string) (parts, error) {
	var acc parts
	for _, frag := range fragments {
		next, err := parseOne(f, frag)
		if err != nil {
			return parts{}, err
		}
		acc = acc.join(f, next)
	}
	return acc, nil
}

// parseOne parses a single raw fragment.
func parseOne(f flavor.Flavor, s string) (parts, error) {
	if s == "" {
		return parts{}, nil
	}
	// Fast path for plain names, which dominate join workloads.
	if isSimpleName(f, s) {
		return parts{segments: []string{s}}, nil
	}
	if f == flavor.Windows {
		return parseWindows(s)
	}
	return parsePosix(s), nil
}

func isSimpleName(f flavor.Flavor, s string) bool {
	if s == "." || s == ".." {
		return false
	}
	if f == flavor.Windows {
		return !strings.ContainsAny(s, `/\:`)
	}
	return !strings.ContainsRune(s, '/')
}

func parsePosix(s string) parts {
	var p parts
	rest := s
	// POSIX keeps exactly two leading slashes as a distinct root; three or
	// more collapse to one.
	if strings.HasPrefix(s, "//") && !strings.HasPrefix(s, "///") {
		p.root = "//"
		rest = s[2:]
	} else if strings.HasPrefix(s, "/") {
		p.root = "/"
		rest = strings.TrimLeft(s, "/")
	}
	p.segments = splitSegments(flavor.Posix, rest)
	return p
}

func parseWindows(s string) (parts, error) {
	var p parts
	drive, rest, uncRoot := flavor.Windows.SplitDrive(s)
	if drive != "" && strings.Trim(drive, `\/`) == "" {
		return parts{}, errors.Newf(errors.ErrParse, "malformed UNC prefix in %q", s)
	}
	p.drive = drive
	if uncRoot || (rest != "" && flavor.Windows.IsSeparator(rest[0])) {
		p.root = `\`
		rest = strings.TrimLeft(rest, `\/`)
	}
	p.segments = splitSegments(flavor.Windows, rest)
	return p, nil
}

// splitSegments splits s on the flavor's separators, dropping empty and
// single-dot segments.
func splitSegments(f flavor.Flavor, s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i != len(s) && !f.IsSeparator(s[i]) {
			continue
		}
		if seg := s[start:i]; seg != "" && seg != "." {
			out = append(out, seg)
		}
		start = i + 1
	}
	return out
}

// join merges other into p following the reference override rules: an
// absolute fragment discards everything before it, a fragment with its own
// drive discards the accumulated drive, and a rooted but drive-less
// fragment keeps the accumulated drive (Windows drive-relative rule).
func (p parts) join(f flavor.Flavor, other parts) parts {
	if other.isAbsolute(f) {
		return other
	}
	if f == flavor.Windows && other.drive != "" && other.drive != p.drive {
		return other
	}
	if f == flavor.Windows && other.root != "" {
		return parts{drive: p.drive, root: other.root, segments: other.segments}
	}
	if len(other.segments) == 0 {
		return p
	}
	segs := make([]string, 0, len(p.segments)+len(other.segments))
	segs = append(segs, p.segments...)
	segs = append(segs, other.segments...)
	return parts{drive: p.drive, root: p.root, segments: segs}
}
