package flavor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pathlib-go/pathlib/pkg/flavor"
)

func TestSeparators(t *testing.T) {
	assert.Equal(t, byte('/'), flavor.Posix.Separator())
	assert.Equal(t, byte('\\'), flavor.Windows.Separator())

	_, hasAlt := flavor.Posix.AltSeparator()
	assert.False(t, hasAlt)

	alt, hasAlt := flavor.Windows.AltSeparator()
	assert.True(t, hasAlt)
	assert.Equal(t, byte('/'), alt)

	assert.True(t, flavor.Posix.IsSeparator('/'))
	assert.False(t, flavor.Posix.IsSeparator('\\'))
	assert.True(t, flavor.Windows.IsSeparator('/'))
	assert.True(t, flavor.Windows.IsSeparator('\\'))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "Foo", flavor.Posix.Fold("Foo"))
	assert.Equal(t, "foo", flavor.Windows.Fold("Foo"))
	assert.True(t, flavor.Posix.CaseSensitive())
	assert.False(t, flavor.Windows.CaseSensitive())
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		want flavor.Flavor
		ok   bool
	}{
		{"posix", flavor.Posix, true},
		{"windows", flavor.Windows, true},
		{"Windows", flavor.Windows, true},
		{"native", flavor.Native(), true},
		{"", flavor.Native(), true},
		{"vms", flavor.Posix, false},
	}

	for _, tt := range tests {
		t.Run("name_"+tt.name, func(t *testing.T) {
			got, ok := flavor.FromName(tt.name)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSplitDrive(t *testing.T) {
	tests := []struct {
		name      string
		flavor    flavor.Flavor
		path      string
		wantDrive string
		wantRest  string
		wantUNC   bool
	}{
		{"posix_never_has_drive", flavor.Posix, "C:/foo", "", "C:/foo", false},
		{"drive_letter", flavor.Windows, `C:\foo`, "C:", `\foo`, false},
		{"drive_letter_lowercase", flavor.Windows, "c:bar", "c:", "bar", false},
		{"drive_letter_forward_slashes", flavor.Windows, "C:/foo", "C:", "/foo", false},
		{"no_drive", flavor.Windows, `\foo`, "", `\foo`, false},
		{"plain_name", flavor.Windows, "foo", "", "foo", false},
		{"unc_share", flavor.Windows, `\\server\share\x`, `\\server\share`, `\x`, true},
		{"unc_share_bare", flavor.Windows, `\\server\share`, `\\server\share`, "", true},
		{"unc_forward_slashes", flavor.Windows, "//server/share/x", `\\server\share`, "/x", true},
		{"unc_incomplete", flavor.Windows, `\\server`, `\\server`, "", false},
		{"verbatim_drive", flavor.Windows, `\\?\C:\x`, `\\?\C:`, `\x`, false},
		{"verbatim_bare", flavor.Windows, `\\?\C:`, `\\?\C:`, "", false},
		{"device_path", flavor.Windows, `\\.\COM1\x`, `\\.\COM1`, `\x`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drive, rest, unc := tt.flavor.SplitDrive(tt.path)
			assert.Equal(t, tt.wantDrive, drive)
			assert.Equal(t, tt.wantRest, rest)
			assert.Equal(t, tt.wantUNC, unc)
		})
	}
}
