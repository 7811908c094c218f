package purepath

import (
	"hash/fnv"
	"slices"

	"github.com/pathlib-go/pathlib/pkg/errors"
)

// Equal reports whether two values denote the same path under their
// flavor's case-fold rules. The flavor is part of identity: values of
// different flavors are never equal, even with identical text. Equal is
// total and never fails.
func (p *PurePath) Equal(other *PurePath) bool {
	if other == nil {
		return false
	}
	if p == other {
		return true
	}
	if p.flavor != other.flavor {
		return false
	}
	pn, _ := p.normalized()
	on, _ := other.normalized()
	return pn == on
}

// Compare orders two values of the same flavor, returning -1, 0 or +1. The
// order is lexicographic over the case-folded component sequences (anchor
// first), so a path always sorts before its children. Ordering across
// flavors is undefined and returns a FLAVOR_MISMATCH error.
func (p *PurePath) Compare(other *PurePath) (int, error) {
	if p.flavor != other.flavor {
		return 0, errors.Newf(errors.ErrFlavorMismatch,
			"cannot order %s and %s paths", p.flavor, other.flavor)
	}
	_, a := p.normalized()
	_, b := other.normalized()
	return slices.Compare(a, b), nil
}

// Hash returns a digest of the flavor tag and the case-folded canonical
// string, computed once per value. Equal values always hash equal.
func (p *PurePath) Hash() uint64 {
	p.hashOnce.Do(func() {
		norm, _ := p.normalized()
		h := fnv.New64a()
		h.Write([]byte{byte(p.flavor)})
		h.Write([]byte(norm))
		p.hashSum = h.Sum64()
	})
	return p.hashSum
}
