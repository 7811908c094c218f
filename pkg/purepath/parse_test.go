package purepath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathlib-go/pathlib/pkg/errors"
	"github.com/pathlib-go/pathlib/pkg/flavor"
	"github.com/pathlib-go/pathlib/pkg/purepath"
)

func mustPath(t *testing.T, f flavor.Flavor, fragments ...string) *purepath.PurePath {
	t.Helper()
	p, err := purepath.New(f, fragments...)
	require.NoError(t, err)
	return p
}

func TestParsePosix(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		wantRoot  string
		wantSegs  []string
		wantStr   string
	}{
		{
			name:      "relative",
			fragments: []string{"foo/bar"},
			wantSegs:  []string{"foo", "bar"},
			wantStr:   "foo/bar",
		},
		{
			name:      "absolute",
			fragments: []string{"/foo/bar"},
			wantRoot:  "/",
			wantSegs:  []string{"foo", "bar"},
			wantStr:   "/foo/bar",
		},
		{
			name:      "empty_input_is_dot",
			fragments: nil,
			wantStr:   ".",
		},
		{
			name:      "all_empty_fragments",
			fragments: []string{"", ""},
			wantStr:   ".",
		},
		{
			name:      "repeated_separators_collapse",
			fragments: []string{"foo//bar"},
			wantSegs:  []string{"foo", "bar"},
			wantStr:   "foo/bar",
		},
		{
			name:      "single_dot_segments_dropped",
			fragments: []string{"foo/./bar"},
			wantSegs:  []string{"foo", "bar"},
			wantStr:   "foo/bar",
		},
		{
			name:      "double_dot_segments_kept",
			fragments: []string{"foo/../bar"},
			wantSegs:  []string{"foo", "..", "bar"},
			wantStr:   "foo/../bar",
		},
		{
			name:      "double_slash_root_preserved",
			fragments: []string{"//foo/bar"},
			wantRoot:  "//",
			wantSegs:  []string{"foo", "bar"},
			wantStr:   "//foo/bar",
		},
		{
			name:      "triple_slash_collapses",
			fragments: []string{"///foo"},
			wantRoot:  "/",
			wantSegs:  []string{"foo"},
			wantStr:   "/foo",
		},
		{
			name:      "later_absolute_fragment_wins",
			fragments: []string{"/etc", "/usr", "lib64"},
			wantRoot:  "/",
			wantSegs:  []string{"usr", "lib64"},
			wantStr:   "/usr/lib64",
		},
		{
			name:      "trailing_slash_ignored",
			fragments: []string{"foo/bar/"},
			wantSegs:  []string{"foo", "bar"},
			wantStr:   "foo/bar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustPath(t, flavor.Posix, tt.fragments...)
			assert.Empty(t, p.Drive(), "posix drive is always empty")
			assert.Equal(t, tt.wantRoot, p.Root())
			assert.Equal(t, tt.wantSegs, p.Segments())
			assert.Equal(t, tt.wantStr, p.String())
		})
	}
}

func TestParseWindows(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		wantDrive string
		wantRoot  string
		wantSegs  []string
		wantStr   string
	}{
		{
			name:      "drive_with_root",
			fragments: []string{`C:\foo\bar`},
			wantDrive: "C:",
			wantRoot:  `\`,
			wantSegs:  []string{"foo", "bar"},
			wantStr:   `C:\foo\bar`,
		},
		{
			name:      "forward_slashes_accepted",
			fragments: []string{"C:/foo/bar"},
			wantDrive: "C:",
			wantRoot:  `\`,
			wantSegs:  []string{"foo", "bar"},
			wantStr:   `C:\foo\bar`,
		},
		{
			name:      "drive_relative",
			fragments: []string{"c:bar"},
			wantDrive: "c:",
			wantSegs:  []string{"bar"},
			wantStr:   "c:bar",
		},
		{
			name:      "rooted_without_drive",
			fragments: []string{`\Windows`},
			wantRoot:  `\`,
			wantSegs:  []string{"Windows"},
			wantStr:   `\Windows`,
		},
		{
			name:      "unc_share",
			fragments: []string{`\\server\share\foo`},
			wantDrive: `\\server\share`,
			wantRoot:  `\`,
			wantSegs:  []string{"foo"},
			wantStr:   `\\server\share\foo`,
		},
		{
			name:      "unc_share_bare_has_root",
			fragments: []string{`\\server\share`},
			wantDrive: `\\server\share`,
			wantRoot:  `\`,
			wantStr:   `\\server\share\`,
		},
		{
			name:      "verbatim_prefix",
			fragments: []string{`\\?\C:\foo`},
			wantDrive: `\\?\C:`,
			wantRoot:  `\`,
			wantSegs:  []string{"foo"},
			wantStr:   `\\?\C:\foo`,
		},
		{
			name:      "new_fragment_drive_overrides",
			fragments: []string{"c:/Windows", "d:bar"},
			wantDrive: "d:",
			wantSegs:  []string{"bar"},
			wantStr:   "d:bar",
		},
		{
			name:      "rooted_fragment_keeps_prior_drive",
			fragments: []string{"c:/Windows", "/Program Files"},
			wantDrive: "c:",
			wantRoot:  `\`,
			wantSegs:  []string{"Program Files"},
			wantStr:   `c:\Program Files`,
		},
		{
			name:      "same_drive_relative_fragment_appends",
			fragments: []string{"c:/Windows", "c:System32"},
			wantDrive: "c:",
			wantRoot:  `\`,
			wantSegs:  []string{"Windows", "System32"},
			wantStr:   `c:\Windows\System32`,
		},
		{
			name:      "leading_drive_marker_disambiguated",
			fragments: []string{"./c:y"},
			wantSegs:  []string{"c:y"},
			wantStr:   `.\c:y`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustPath(t, flavor.Windows, tt.fragments...)
			assert.Equal(t, tt.wantDrive, p.Drive())
			assert.Equal(t, tt.wantRoot, p.Root())
			if tt.wantSegs == nil {
				assert.Empty(t, p.Segments())
			} else {
				assert.Equal(t, tt.wantSegs, p.Segments())
			}
			assert.Equal(t, tt.wantStr, p.String())
		})
	}
}

func TestParseMalformedUNC(t *testing.T) {
	for _, input := range []string{`\\`, `\\\`, "//"} {
		t.Run(input, func(t *testing.T) {
			_, err := purepath.NewWindows(input)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
		})
	}
}

func TestRawFragments(t *testing.T) {
	p := mustPath(t, flavor.Posix, "/etc", "ssl", "certs/")
	assert.Equal(t, []string{"/etc", "ssl", "certs/"}, p.RawFragments())

	// Reconstructing from the raw fragments yields an equal value.
	again := mustPath(t, flavor.Posix, p.RawFragments()...)
	assert.True(t, p.Equal(again))

	// Derived values report their canonical string as the single fragment.
	assert.Equal(t, []string{"/etc/ssl"}, p.Parent().RawFragments())
}
