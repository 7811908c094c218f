package purepath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathlib-go/pathlib/pkg/errors"
	"github.com/pathlib-go/pathlib/pkg/flavor"
)

func TestEqualCaseFolding(t *testing.T) {
	// Windows comparison folds case.
	a := mustPath(t, flavor.Windows, `C:\Foo`)
	b := mustPath(t, flavor.Windows, `c:\foo`)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	// POSIX comparison does not.
	c := mustPath(t, flavor.Posix, "Foo")
	d := mustPath(t, flavor.Posix, "foo")
	assert.False(t, c.Equal(d))
}

// Same text, different flavor: the flavor is part of identity.
func TestEqualCrossFlavor(t *testing.T) {
	a := mustPath(t, flavor.Posix, "a/b")
	b := mustPath(t, flavor.Windows, "a/b")

	assert.False(t, a.Equal(b))
	assert.False(t, b.Equal(a))

	// Equality is total; ordering across flavors is not.
	_, err := a.Compare(b)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFlavorMismatch))
}

func TestEqualLaws(t *testing.T) {
	a := mustPath(t, flavor.Windows, `C:\Foo\Bar`)
	b := mustPath(t, flavor.Windows, `c:\foo\bar`)
	c := mustPath(t, flavor.Windows, "C:/FOO/BAR")

	// Reflexive, symmetric, transitive.
	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.True(t, b.Equal(c))
	assert.True(t, a.Equal(c))

	// Equal values hash equal.
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, b.Hash(), c.Hash())

	assert.False(t, a.Equal(nil))
}

func TestCompareOrder(t *testing.T) {
	ordered := []string{
		"/a",
		"/a/b",
		"/a/b/c",
		"/a+",
		"/b",
	}

	for i := 0; i < len(ordered); i++ {
		for j := 0; j < len(ordered); j++ {
			a := mustPath(t, flavor.Posix, ordered[i])
			b := mustPath(t, flavor.Posix, ordered[j])
			got, err := a.Compare(b)
			require.NoError(t, err)

			switch {
			case i < j:
				assert.Equal(t, -1, got, "%s < %s", ordered[i], ordered[j])
			case i > j:
				assert.Equal(t, 1, got, "%s > %s", ordered[i], ordered[j])
			default:
				assert.Equal(t, 0, got)
			}
		}
	}
}

// Ordering is over segment sequences, so a path sorts before its children
// even when a sibling's raw string would compare lower than the separator.
func TestCompareParentBeforeChild(t *testing.T) {
	parent := mustPath(t, flavor.Posix, "/a")
	child := mustPath(t, flavor.Posix, "/a/b")
	sibling := mustPath(t, flavor.Posix, "/a+")

	got, err := parent.Compare(child)
	require.NoError(t, err)
	assert.Equal(t, -1, got)

	got, err = child.Compare(sibling)
	require.NoError(t, err)
	assert.Equal(t, -1, got)
}

func TestCompareConsistentWithEqual(t *testing.T) {
	a := mustPath(t, flavor.Windows, `C:\Windows`)
	b := mustPath(t, flavor.Windows, "c:/windows")

	got, err := a.Compare(b)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
	assert.True(t, a.Equal(b))
}
