package search

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	highlightStart = "\x1b[1;31m"
	highlightEnd   = "\x1b[0m"
)

// FindMatches writes every line of content that contains pattern to w, in
// order, and reports whether at least one line matched.
func FindMatches(content, pattern string, w io.Writer) (bool, error) {
	res, err := NewMatcher(pattern, Options{}).Scan(content, w)
	return res.Matched, err
}

// Matcher scans text for lines containing a fixed substring.
type Matcher struct {
	pattern string
	opts    Options
}

// NewMatcher creates a matcher for pattern.
func NewMatcher(pattern string, opts Options) *Matcher {
	return &Matcher{
		pattern: pattern,
		opts:    opts,
	}
}

// Pattern returns the substring the matcher looks for
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Scan writes the matching lines of content to w. The first write failure
// stops the scan and is returned wrapped in ErrWrite.
func (m *Matcher) Scan(content string, w io.Writer) (Result, error) {
	var res Result

	rest := content
	lineNum := 0
	for rest != "" {
		var line string
		line, rest, _ = strings.Cut(rest, "\n")
		line = strings.TrimSuffix(line, "\r")
		lineNum++

		if !strings.Contains(line, m.pattern) {
			continue
		}

		if _, err := io.WriteString(w, m.render(lineNum, line)); err != nil {
			return res, fmt.Errorf("%w: %w", ErrWrite, err)
		}
		res.Count++
		res.Matched = true
	}

	return res, nil
}

// render formats one matching line including its trailing newline.
func (m *Matcher) render(lineNum int, line string) string {
	var b strings.Builder

	if m.opts.LineNumbers {
		b.WriteString(strconv.Itoa(lineNum))
		b.WriteByte(':')
	}

	if m.opts.Highlight && m.pattern != "" {
		b.WriteString(highlight(line, m.pattern))
	} else {
		b.WriteString(line)
	}

	b.WriteByte('\n')
	return b.String()
}

func highlight(line, pattern string) string {
	var b strings.Builder
	for {
		before, after, found := strings.Cut(line, pattern)
		b.WriteString(before)
		if !found {
			return b.String()
		}
		b.WriteString(highlightStart)
		b.WriteString(pattern)
		b.WriteString(highlightEnd)
		line = after
	}
}
