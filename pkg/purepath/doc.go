// Package purepath implements flavor-aware lexical path values: parsing
// one or more raw fragments into drive/root/segment form, reconstructing
// canonical strings, deriving new values (parent, join, relative, renamed)
// and evaluating glob patterns. Nothing in this package touches the
// filesystem.
//
// Values are immutable. Derived string representations used for equality,
// ordering and hashing are memoized once per value, so repeated
// comparisons never re-parse the same text.
//
// Single-dot segments are discarded during parsing, but ".." segments are
// kept as-is: collapsing them lexically would change meaning in the
// presence of symlinks.
package purepath
