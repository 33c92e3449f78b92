// Package report runs the Rabin-Karp matcher over a set of examples, measures
// the time of every search and writes the results as CSV.
package report

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/ulikunitz/rabinkarp"
)

// Example is a text and the pattern to search in it.
type Example struct {
	Text    string
	Pattern string
}

// DefaultExamples returns a short, a medium and a long example.
func DefaultExamples() []Example {
	return []Example{
		{Text: "abcabc", Pattern: "abc"},
		{Text: "ababcabcabababd", Pattern: "ababd"},
		{Text: "abxabcabcabyabcabcabcababcababcababcababcababc",
			Pattern: "abcab"},
	}
}

// Result describes a single search. The lengths and the match offsets are
// counted in the code units the search has been performed on.
type Result struct {
	Example
	TextLen    int
	PatternLen int
	Matches    []int
	Elapsed    time.Duration
}

// ElapsedMs returns the elapsed time in milliseconds.
func (r *Result) ElapsedMs() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// Summary returns a one-line description of the result.
func (r *Result) Summary() string {
	return fmt.Sprintf("Pattern %q: matches=%d, time=%.3fms, indices=%s",
		r.Pattern, len(r.Matches), r.ElapsedMs(), FormatIndices(r.Matches))
}

// Run searches every example with the matcher m in the code units u. A nil
// matcher uses the default options. The context is checked before every
// search. Elapsed covers only the search; the conversion of the strings into
// code units is not measured.
func Run(ctx context.Context, m *rabinkarp.Matcher, u rabinkarp.CodeUnit,
	examples []Example) ([]Result, error) {

	results := make([]Result, 0, len(examples))
	for _, ex := range examples {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		r := Result{Example: ex}
		switch u {
		case rabinkarp.Bytes:
			timedFind(&r, m, []byte(ex.Text), []byte(ex.Pattern))
		case rabinkarp.UTF16:
			timedFind(&r, m, utf16.Encode([]rune(ex.Text)),
				utf16.Encode([]rune(ex.Pattern)))
		case rabinkarp.Runes:
			timedFind(&r, m, codePoints(ex.Text), codePoints(ex.Pattern))
		default:
			return results, fmt.Errorf(
				"report: unsupported code unit %v", u)
		}
		results = append(results, r)
	}
	return results, nil
}

// timedFind runs the search on prepared code units and records the lengths,
// the matches and the time the search took in r.
func timedFind[T rabinkarp.Unit](r *Result, m *rabinkarp.Matcher,
	text, pattern []T) {

	start := time.Now()
	r.Matches = rabinkarp.Find(m, text, pattern)
	r.Elapsed = time.Since(start)
	r.TextLen = len(text)
	r.PatternLen = len(pattern)
}

// codePoints converts s into Unicode code points.
func codePoints(s string) []uint32 {
	p := make([]uint32, 0, len(s))
	for _, c := range s {
		p = append(p, uint32(c))
	}
	return p
}

// FormatIndices renders the offsets as a bracketed list, for instance
// "[0, 7]".
func FormatIndices(q []int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, k := range q {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(k))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Header is the first line of the CSV report.
const Header = "Text,Pattern,TextLength,PatternLength,MatchCount," +
	"ExecutionTimeMs,MatchIndices"

// quote puts s into double quotes. Double quotes inside s are doubled.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Writer writes results in CSV format. Text, pattern and the match offsets
// are always quoted; the numeric columns never are.
type Writer struct {
	w *bufio.Writer
}

// NewWriter creates a writer writing to w. Flush must be called after the
// last row.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteHeader writes the header line.
func (w *Writer) WriteHeader() error {
	_, err := w.w.WriteString(Header + "\n")
	return err
}

// Write writes a row for the result r.
func (w *Writer) Write(r *Result) error {
	_, err := fmt.Fprintf(w.w, "%s,%s,%d,%d,%d,%.3f,%s\n",
		quote(r.Text), quote(r.Pattern), r.TextLen, r.PatternLen,
		len(r.Matches), r.ElapsedMs(), quote(FormatIndices(r.Matches)))
	return err
}

// Flush writes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// WriteAll writes the header and one row per result.
func (w *Writer) WriteAll(results []Result) error {
	if err := w.WriteHeader(); err != nil {
		return err
	}
	for i := range results {
		if err := w.Write(&results[i]); err != nil {
			return err
		}
	}
	return w.Flush()
}

// WriteFile creates or truncates the file at path and writes the report
// into it.
func WriteFile(path string, results []Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("report: %w", cerr))
		}
	}()
	if err = NewWriter(f).WriteAll(results); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return nil
}
