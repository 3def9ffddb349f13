// Package document splits a Markdown or plain-text file into pageable sections.
package document

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// Section is one screen worth of document. It satisfies section.Surface.
type Section struct {
	Title  string
	Level  int // heading level, 0 for a preamble or a break-delimited section
	Anchor string
	Line   int // 1-based source line where the section starts
	Lines  []string

	offset float64
}

// DocumentPosition orders sections by source line
func (s *Section) DocumentPosition() int {
	return s.Line
}

// OffsetTop is the scroll offset of the section's first row
func (s *Section) OffsetTop() float64 {
	return s.offset
}

// Document is a parsed file
type Document struct {
	Path     string
	Sections []*Section
}

// ParseOptions control how sections are delimited
type ParseOptions struct {
	// MaxLevel is the deepest heading that starts a section (1-6)
	MaxLevel int
	// Breaks makes a "---" line start a new section
	Breaks bool
}

// DefaultParseOptions splits on level 1 and 2 headings and on "---"
func DefaultParseOptions() ParseOptions {
	return ParseOptions{MaxLevel: 2, Breaks: true}
}

// Load reads and parses a file
func Load(path string, opts ParseOptions) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// Parse splits r into sections. Blank sections are dropped, so a document
// always has at least one section unless it is entirely blank.
func Parse(r io.Reader, opts ParseOptions) (*Document, error) {
	if opts.MaxLevel <= 0 {
		opts.MaxLevel = DefaultParseOptions().MaxLevel
	}

	doc := &Document{}
	var cur *Section
	inFence := false

	flush := func() {
		if cur != nil && !blank(cur.Lines) {
			cur.Lines = trimTrailingBlank(cur.Lines)
			doc.Sections = append(doc.Sections, cur)
		}
		cur = nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(text)

		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
		}

		if !inFence {
			if level, title, ok := heading(trimmed); ok && level <= opts.MaxLevel {
				flush()
				cur = &Section{Title: title, Level: level, Line: line}
				cur.Lines = append(cur.Lines, text)
				continue
			}
			if opts.Breaks && isBreak(trimmed) {
				flush()
				cur = &Section{Line: line + 1}
				continue
			}
		}

		if cur == nil {
			cur = &Section{Line: line}
		}
		if len(cur.Lines) == 0 && trimmed == "" {
			cur.Line = line + 1
			continue
		}
		cur.Lines = append(cur.Lines, text)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()

	doc.assignTitles()
	doc.assignAnchors()
	return doc, nil
}

// Len returns the number of sections
func (d *Document) Len() int {
	return len(d.Sections)
}

// Anchors returns the section anchors in order
func (d *Document) Anchors() []string {
	out := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		out[i] = s.Anchor
	}
	return out
}

// ApplyAnchors overrides anchors by position. Sections past the end of
// anchors keep no anchor, matching a short configured list.
func (d *Document) ApplyAnchors(anchors []string) {
	for i, s := range d.Sections {
		if i < len(anchors) {
			s.Anchor = anchors[i]
		} else {
			s.Anchor = ""
		}
	}
}

// Layout places every section one viewport below the previous one
func (d *Document) Layout(viewportHeight int) {
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	for i, s := range d.Sections {
		s.offset = float64(i * viewportHeight)
	}
}

func (d *Document) assignTitles() {
	for i, s := range d.Sections {
		if s.Title != "" {
			continue
		}
		for _, l := range s.Lines {
			if t := strings.TrimSpace(l); t != "" {
				s.Title = truncateTitle(t, 40)
				break
			}
		}
		if s.Title == "" {
			s.Title = "Section " + strconv.Itoa(i+1)
		}
	}
}

// assignAnchors gives every section a unique slug. The first section with a
// slug keeps it; later ones take the first "-n" suffix that is neither used
// nor the plain slug of another heading.
func (d *Document) assignAnchors() {
	bases := make([]string, len(d.Sections))
	reserved := make(map[string]bool, len(d.Sections))
	for i, s := range d.Sections {
		base := Slug(s.Title)
		if base == "" {
			base = "section-" + strconv.Itoa(i+1)
		}
		bases[i] = base
		reserved[base] = true
	}

	used := make(map[string]bool, len(d.Sections))
	next := make(map[string]int)
	for i, s := range d.Sections {
		base := bases[i]
		anchor := base
		for used[anchor] {
			next[base]++
			anchor = base + "-" + strconv.Itoa(next[base])
			if reserved[anchor] {
				anchor = base
			}
		}
		used[anchor] = true
		s.Anchor = anchor
	}
}

// Slug turns a heading into an anchor: lower case, runs of separators become one '-'
func Slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case r == ' ' || r == '-' || r == '_' || r == '.' || r == '/':
			if b.Len() > 0 && !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func heading(line string) (int, string, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0, "", false
	}
	rest := line[level:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return 0, "", false
	}
	title := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(rest), "#"))
	return level, title, true
}

func isBreak(line string) bool {
	if len(line) < 3 {
		return false
	}
	for _, r := range line {
		if r != '-' {
			return false
		}
	}
	return true
}

func blank(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}
	return true
}

func trimTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end]
}

func truncateTitle(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
