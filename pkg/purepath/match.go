package purepath

import (
	"strings"

	"github.com/pathlib-go/pathlib/pkg/errors"
	"github.com/pathlib-go/pathlib/pkg/flavor"
)

// Pattern is a compiled glob pattern evaluated against path segments.
// Tokens are matched one per segment, except "**" which matches zero or
// more whole segments. Within a segment, "*", "?" and "[seq]" follow the
// usual glob semantics.
type Pattern struct {
	flavor        flavor.Flavor
	caseSensitive bool
	anchored      bool
	drive         string
	root          string
	tokens        []patternToken
}

type patternToken struct {
	doubleStar bool
	text       string
}

// CompilePattern parses pattern under the given flavor and validates its
// character classes. An unterminated "[" or a "**" glued to other text is
// a PATTERN error.
func CompilePattern(f flavor.Flavor, pattern string, caseSensitive bool) (*Pattern, error) {
	if pattern == "" {
		return nil, errors.New(errors.ErrPattern, "empty pattern")
	}
	pp, err := parseOne(f, pattern)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPattern, "invalid pattern %q", pattern)
	}
	pt := &Pattern{
		flavor:        f,
		caseSensitive: caseSensitive,
		anchored:      pp.hasAnchor(),
		root:          pp.root,
	}
	pt.drive = pt.fold(pp.drive)
	for _, seg := range pp.segments {
		if strings.Contains(seg, "**") {
			if seg != "**" {
				return nil, errors.Newf(errors.ErrPattern,
					"invalid pattern %q: %q must be an entire segment", pattern, seg)
			}
			pt.tokens = append(pt.tokens, patternToken{doubleStar: true})
			continue
		}
		if err := checkClasses(seg); err != nil {
			return nil, errors.Wrapf(err, errors.ErrPattern, "invalid pattern %q", pattern)
		}
		pt.tokens = append(pt.tokens, patternToken{text: pt.fold(seg)})
	}
	return pt, nil
}

// Anchored reports whether the pattern carries a drive or root of its own.
func (pt *Pattern) Anchored() bool {
	return pt.anchored
}

func (pt *Pattern) fold(s string) string {
	if pt.caseSensitive {
		return s
	}
	return strings.ToLower(s)
}

func (pt *Pattern) foldSegments(segs []string) []string {
	if pt.caseSensitive {
		return segs
	}
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = strings.ToLower(s)
	}
	return out
}

// FullMatch reports whether the pattern matches the entire path, anchor
// included.
func (pt *Pattern) FullMatch(p *PurePath) bool {
	if p.flavor != pt.flavor {
		return false
	}
	if pt.fold(p.parts.drive) != pt.drive || p.parts.root != pt.root {
		return false
	}
	return matchTokens(pt.tokens, pt.foldSegments(p.parts.segments))
}

// Match reports whether the pattern matches a right-aligned suffix of the
// path's segments. An anchored pattern must match the whole path.
func (pt *Pattern) Match(p *PurePath) bool {
	if p.flavor != pt.flavor {
		return false
	}
	if pt.anchored {
		return pt.FullMatch(p)
	}
	toks := pt.tokens
	// A leading "**" already floats the match; otherwise add one so the
	// pattern may bind to any trailing run of segments.
	if len(toks) == 0 || !toks[0].doubleStar {
		toks = append([]patternToken{{doubleStar: true}}, toks...)
	}
	return matchTokens(toks, pt.foldSegments(p.parts.segments))
}

// FullMatch evaluates pattern against the entire path using the flavor's
// default case sensitivity.
func (p *PurePath) FullMatch(pattern string) (bool, error) {
	return p.FullMatchWithCase(pattern, p.flavor.CaseSensitive())
}

// FullMatchWithCase is FullMatch with an explicit case-sensitivity choice.
func (p *PurePath) FullMatchWithCase(pattern string, caseSensitive bool) (bool, error) {
	pt, err := CompilePattern(p.flavor, pattern, caseSensitive)
	if err != nil {
		return false, err
	}
	return pt.FullMatch(p), nil
}

// Match evaluates pattern against a right-aligned suffix of the path using
// the flavor's default case sensitivity.
func (p *PurePath) Match(pattern string) (bool, error) {
	return p.MatchWithCase(pattern, p.flavor.CaseSensitive())
}

// MatchWithCase is Match with an explicit case-sensitivity choice.
func (p *PurePath) MatchWithCase(pattern string, caseSensitive bool) (bool, error) {
	pt, err := CompilePattern(p.flavor, pattern, caseSensitive)
	if err != nil {
		return false, err
	}
	return pt.Match(p), nil
}

// matchTokens matches pattern tokens against whole segments. At a "**"
// token it tries consuming 0..len(segs) segments; termination is bounded
// by the remaining segment count.
func matchTokens(tokens []patternToken, segs []string) bool {
	if len(tokens) == 0 {
		return len(segs) == 0
	}
	if tokens[0].doubleStar {
		rest := tokens[1:]
		for len(rest) > 0 && rest[0].doubleStar {
			rest = rest[1:]
		}
		if len(rest) == 0 {
			return true
		}
		for i := 0; i <= len(segs); i++ {
			if matchTokens(rest, segs[i:]) {
				return true
			}
		}
		return false
	}
	if len(segs) == 0 {
		return false
	}
	if !matchSegment(tokens[0].text, segs[0]) {
		return false
	}
	return matchTokens(tokens[1:], segs[1:])
}

// matchSegment matches one glob pattern segment against one path segment,
// character-wise with iterative backtracking at "*".
func matchSegment(pattern, segment string) bool {
	p := []rune(pattern)
	s := []rune(segment)
	pi, si := 0, 0
	starP, starS := -1, 0
	for si < len(s) {
		if pi < len(p) {
			switch p[pi] {
			case '*':
				starP, starS = pi, si
				pi++
				continue
			case '?':
				pi++
				si++
				continue
			case '[':
				if end, ok := classEnd(p, pi); ok {
					if matchClass(p[pi+1:end], s[si]) {
						pi = end + 1
						si++
						continue
					}
				} else if p[pi] == s[si] {
					// Classes are validated at compile time; a stray "["
					// in a folded literal matches itself.
					pi++
					si++
					continue
				}
			default:
				if p[pi] == s[si] {
					pi++
					si++
					continue
				}
			}
		}
		if starP >= 0 {
			// Mismatch after a star: let "*" swallow one more rune.
			starS++
			pi = starP + 1
			si = starS
			continue
		}
		return false
	}
	for pi < len(p) && p[pi] == '*' {
		pi++
	}
	return pi == len(p)
}

// classEnd locates the closing bracket of a character class starting at i.
func classEnd(p []rune, i int) (int, bool) {
	j := i + 1
	if j < len(p) && p[j] == '!' {
		j++
	}
	if j < len(p) && p[j] == ']' {
		j++
	}
	for ; j < len(p); j++ {
		if p[j] == ']' {
			return j, true
		}
	}
	return 0, false
}

// matchClass matches one rune against a class body (the text between the
// brackets). A leading "!" negates; "a-z" ranges are supported and a
// leading "]" is literal.
func matchClass(body []rune, c rune) bool {
	negate := false
	if len(body) > 0 && body[0] == '!' {
		negate = true
		body = body[1:]
	}
	matched := false
	for i := 0; i < len(body); i++ {
		if i+2 < len(body) && body[i+1] == '-' {
			if body[i] <= c && c <= body[i+2] {
				matched = true
			}
			i += 2
			continue
		}
		if body[i] == c {
			matched = true
		}
	}
	if negate {
		return !matched
	}
	return matched
}

// checkClasses rejects segments with an unterminated character class.
func checkClasses(seg string) error {
	r := []rune(seg)
	for i := 0; i < len(r); i++ {
		if r[i] != '[' {
			continue
		}
		end, ok := classEnd(r, i)
		if !ok {
			return errors.Newf(errors.ErrPattern, "unterminated character class in %q", seg)
		}
		i = end
	}
	return nil
}
