package purepath

import (
	"strings"

	"github.com/pathlib-go/pathlib/pkg/flavor"
)

// formatParts reconstructs the canonical string for p. Re-parsing the
// result yields p again (round-trip law).
func formatParts(f flavor.Flavor, p parts) string {
	sep := string(f.Separator())
	anchor := p.anchor()
	if len(p.segments) == 0 {
		if anchor == "" {
			return "."
		}
		return anchor
	}
	tail := strings.Join(p.segments, sep)
	if anchor != "" {
		return anchor + tail
	}
	// A leading segment that would re-parse as carrying a drive marker
	// (e.g. "c:x" under the Windows flavor) needs a "./" prefix to keep
	// the round trip exact.
	if d, _, _ := f.SplitDrive(p.segments[0]); d != "" {
		return "." + sep + tail
	}
	return tail
}
