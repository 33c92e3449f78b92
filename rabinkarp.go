// Package rabinkarp finds all occurrences of a pattern in a text using the
// Rabin-Karp algorithm.
//
// A polynomial hash of the pattern is compared with a rolling hash of every
// window of the text that has the pattern's length. Windows whose hash
// equals the pattern hash are compared code unit by code unit, so the
// reported offsets are exact. The expected running time is O(n+m); the worst
// case under adversarial hash collisions is O(n*m).
//
// The text may consist of bytes or any other unsigned code units. [Find] is
// the generic entry point; [Search] and [SearchString] work on bytes with
// the default parameters. A [Matcher] holds the hash parameters, which can be
// configured with [Options].
package rabinkarp

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Unit is the constraint for code unit types that can be searched.
type Unit interface {
	constraints.Unsigned
}

// Matcher searches texts for patterns. It is immutable and may be used by
// multiple goroutines concurrently. The zero value uses the default options.
type Matcher struct {
	opts Options
}

var defaultMatcher = &Matcher{
	opts: Options{Base: DefaultBase, Modulus: DefaultModulus},
}

// orDefault returns the default matcher for a nil or zero matcher.
func (m *Matcher) orDefault() *Matcher {
	if m == nil || m.opts.Modulus == 0 {
		return defaultMatcher
	}
	return m
}

// Options returns the options used by the matcher.
func (m *Matcher) Options() Options {
	return m.orDefault().opts
}

// Find returns the offsets of all occurrences of pattern in text in
// increasing order. Occurrences may overlap. If pattern is longer than text
// the result is empty. The empty pattern matches at every offset from 0 to
// len(text) inclusive.
//
// A nil or zero matcher uses the default options.
func Find[T Unit](m *Matcher, text, pattern []T) []int {
	m = m.orDefault()
	n, k := len(text), len(pattern)
	if k > n {
		return nil
	}
	if k == 0 {
		q := make([]int, n+1)
		for i := range q {
			q[i] = i
		}
		return q
	}

	r := newRoller(m.opts.Base, m.opts.Modulus, k)
	ph := hashUnits(&r, pattern)
	h := hashUnits(&r, text[:k])

	var q []int
	for i := 0; i <= n-k; i++ {
		// equal hashes may be a spurious hit
		if h == ph && slices.Equal(text[i:i+k], pattern) {
			q = append(q, i)
		}
		if i < n-k {
			h = r.roll(h, uint64(text[i]), uint64(text[i+k]))
		}
	}
	return q
}

// Search returns the offsets of all occurrences of pattern in text.
func (m *Matcher) Search(text, pattern []byte) []int {
	return Find(m, text, pattern)
}

// SearchString returns the byte offsets of all occurrences of pattern in
// text.
func (m *Matcher) SearchString(text, pattern string) []int {
	return Find(m, []byte(text), []byte(pattern))
}

// SearchText splits text and pattern into the code units selected by u and
// returns the offsets of all occurrences of pattern, counted in those units.
// Invalid UTF-8 is replaced by U+FFFD for UTF16 and Runes.
func (m *Matcher) SearchText(u CodeUnit, text, pattern string) ([]int, error) {
	switch u {
	case Bytes:
		return m.SearchString(text, pattern), nil
	case UTF16:
		return Find(m, utf16.Encode([]rune(text)),
			utf16.Encode([]rune(pattern))), nil
	case Runes:
		return Find(m, codePoints(text), codePoints(pattern)), nil
	default:
		return nil, fmt.Errorf("rabinkarp: unsupported CodeUnit %d", u)
	}
}

// Len returns the number of code units of type u in s. It returns -1 for an
// unknown code unit.
func (u CodeUnit) Len(s string) int {
	switch u {
	case Bytes:
		return len(s)
	case UTF16:
		n := 0
		for _, r := range s {
			n += utf16.RuneLen(r)
		}
		return n
	case Runes:
		return utf8.RuneCountInString(s)
	default:
		return -1
	}
}

// codePoints converts s into a slice of Unicode code points.
func codePoints(s string) []uint32 {
	p := make([]uint32, 0, len(s))
	for _, r := range s {
		p = append(p, uint32(r))
	}
	return p
}

// Search returns the offsets of all occurrences of pattern in text using the
// default options.
func Search(text, pattern []byte) []int {
	return defaultMatcher.Search(text, pattern)
}

// SearchString returns the byte offsets of all occurrences of pattern in
// text using the default options.
func SearchString(text, pattern string) []int {
	return defaultMatcher.SearchString(text, pattern)
}
