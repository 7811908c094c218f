// Package flavor defines the POSIX and Windows rule sets that govern path
// parsing, formatting and comparison: separator characters, drive and UNC
// share recognition, and case-fold policy. Flavors are pure lookup tables
// with no state.
package flavor

import (
	"runtime"
	"strings"
)

// Flavor selects the rule set used to parse and compare a path value.
type Flavor int

const (
	// Posix uses "/" separators, no drives and case-sensitive comparison.
	Posix Flavor = iota
	// Windows uses "\" (accepting "/"), drive letters, UNC shares and
	// case-insensitive comparison.
	Windows
)

// String returns the flavor name as used in configuration and flags.
func (f Flavor) String() string {
	if f == Windows {
		return "windows"
	}
	return "posix"
}

// FromName maps a configuration or flag value to a Flavor. The name
// "native" (or an empty string) resolves to the host flavor.
func FromName(name string) (Flavor, bool) {
	switch strings.ToLower(name) {
	case "posix":
		return Posix, true
	case "windows":
		return Windows, true
	case "native", "":
		return Native(), true
	}
	return Posix, false
}

// Native returns the flavor of the running platform.
func Native() Flavor {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Posix
}

// Separator returns the primary separator byte.
func (f Flavor) Separator() byte {
	if f == Windows {
		return '\\'
	}
	return '/'
}

// AltSeparator returns the alternate accepted separator, if the flavor has
// one. Windows accepts "/" in addition to "\".
func (f Flavor) AltSeparator() (byte, bool) {
	if f == Windows {
		return '/', true
	}
	return 0, false
}

// IsSeparator reports whether c is an accepted separator for this flavor.
func (f Flavor) IsSeparator(c byte) bool {
	if c == '/' {
		return true
	}
	return f == Windows && c == '\\'
}

// CaseSensitive reports the default case sensitivity for comparisons and
// pattern matching.
func (f Flavor) CaseSensitive() bool {
	return f == Posix
}

// Fold normalizes the case of s for comparison purposes. It is the
// identity for Posix and lowercasing for Windows.
func (f Flavor) Fold(s string) string {
	if f == Posix {
		return s
	}
	return strings.ToLower(s)
}

// SplitDrive splits a leading drive letter, UNC share or verbatim prefix
// from path. The returned drive is normalized to backslash separators;
// rest keeps the original text, including any leading separator. uncRoot
// reports that the prefix is a complete UNC share, which carries an
// implied root even when rest is empty. POSIX paths never have a drive.
func (f Flavor) SplitDrive(path string) (drive, rest string, uncRoot bool) {
	if f == Posix {
		return "", path, false
	}
	return splitDriveWindows(path)
}

func splitDriveWindows(path string) (string, string, bool) {
	if len(path) >= 2 && path[1] == ':' && isDriveLetter(path[0]) {
		return path[:2], path[2:], false
	}
	if len(path) < 2 || !isWindowsSep(path[0]) || !isWindowsSep(path[1]) {
		return "", path, false
	}

	// Verbatim prefixes: \\?\C:\... and \\.\device\...
	if len(path) >= 4 && (path[2] == '?' || path[2] == '.') && isWindowsSep(path[3]) {
		body := path[4:]
		if i := indexWindowsSep(body); i >= 0 {
			return `\\` + string(path[2]) + `\` + body[:i], body[i:], false
		}
		return `\\` + string(path[2]) + `\` + body, "", false
	}

	// UNC share: \\server\share
	body := path[2:]
	i := indexWindowsSep(body)
	if i < 0 {
		// Incomplete UNC (\\server): drive without root.
		return `\\` + body, "", false
	}
	server, tail := body[:i], body[i+1:]
	j := indexWindowsSep(tail)
	if j < 0 {
		return `\\` + server + `\` + tail, "", true
	}
	return `\\` + server + `\` + tail[:j], tail[j:], true
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isWindowsSep(c byte) bool {
	return c == '\\' || c == '/'
}

func indexWindowsSep(s string) int {
	for i := 0; i < len(s); i++ {
		if isWindowsSep(s[i]) {
			return i
		}
	}
	return -1
}
