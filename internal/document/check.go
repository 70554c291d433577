// check.go validates the structure of an assembled document.
//
// The body is parsed with goldmark. Each level-2 heading starts a day
// section; every section must hold exactly one fenced code block, day
// numbers must be integers, and they must be strictly ascending. The
// front matter is split off first because goldmark would otherwise read
// the closing "---" as a setext heading underline.
package document

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/aocdoc/internal/model"
)

// Issue is a single structural problem found by Check.
type Issue struct {
	// Day is the section's day number, or 0 if the heading was not numeric
	// or the problem is document-wide.
	Day int `json:"day,omitempty"`

	// Message describes the problem.
	Message string `json:"message"`
}

// String renders the issue for text output.
func (i Issue) String() string {
	if i.Day == 0 {
		return i.Message
	}
	return fmt.Sprintf("day %d: %s", i.Day, i.Message)
}

// Section summarizes one day section of a parsed document.
type Section struct {
	Day        int      `json:"day"`
	CodeBlocks int      `json:"codeBlocks"`
	Languages  []string `json:"languages,omitempty"`
}

// Report is the result of checking a document.
type Report struct {
	Preamble *model.Preamble `json:"preamble,omitempty"`
	Sections []Section       `json:"sections"`
	Issues   []Issue         `json:"issues"`
}

// OK reports whether no issues were found.
func (r *Report) OK() bool {
	return len(r.Issues) == 0
}

// Days returns the day numbers of all sections in document order.
func (r *Report) Days() []int {
	out := make([]int, 0, len(r.Sections))
	for _, s := range r.Sections {
		out = append(out, s.Day)
	}
	return out
}

// CompareDays adds issues for days present in want but missing from the
// document, and for days in the document that are not in want.
func (r *Report) CompareDays(want []model.Day) {
	have := make(map[int]bool, len(r.Sections))
	for _, s := range r.Sections {
		have[s.Day] = true
	}
	expected := make(map[int]bool, len(want))
	for _, d := range want {
		expected[d.Number] = true
		if !have[d.Number] {
			r.Issues = append(r.Issues, Issue{Day: d.Number, Message: "directory has no section in the document"})
		}
	}
	for _, s := range r.Sections {
		if !expected[s.Day] {
			r.Issues = append(r.Issues, Issue{Day: s.Day, Message: "section has no matching directory"})
		}
	}
}

// SplitFrontMatter separates a leading "---" delimited block from the
// rest of the document. If doc does not start with one, front is nil.
func SplitFrontMatter(doc []byte) (front, body []byte, err error) {
	if !bytes.HasPrefix(doc, []byte("---\n")) {
		return nil, doc, nil
	}
	rest := doc[len("---\n"):]
	end := bytes.Index(rest, []byte("\n---\n"))
	if end < 0 {
		return nil, nil, fmt.Errorf("front matter is not terminated")
	}
	return rest[:end+1], rest[end+len("\n---\n"):], nil
}

// Check parses doc and reports its day sections and any structural
// issues. An error is returned only when the front matter cannot be
// parsed; structural problems are reported as issues.
func Check(doc []byte) (*Report, error) {
	front, body, err := SplitFrontMatter(doc)
	if err != nil {
		return nil, err
	}

	report := &Report{Sections: []Section{}, Issues: []Issue{}}
	if front != nil {
		var p model.Preamble
		if err := yaml.Unmarshal(front, &p); err != nil {
			return nil, fmt.Errorf("failed to parse front matter: %w", err)
		}
		report.Preamble = &p
	} else {
		report.Issues = append(report.Issues, Issue{Message: "document has no front matter"})
	}

	root := goldmark.New().Parser().Parse(text.NewReader(body))

	var current *Section
	last := 0
	seen := make(map[int]bool)

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level != 2 {
				continue
			}
			flushSection(report, current)
			current = nil

			title := strings.TrimSpace(string(nodeText(node, body)))
			day, err := strconv.Atoi(title)
			if err != nil || day < 0 {
				report.Issues = append(report.Issues, Issue{Message: fmt.Sprintf("heading %q is not a day number", title)})
				continue
			}
			if seen[day] {
				report.Issues = append(report.Issues, Issue{Day: day, Message: "duplicate section"})
			} else if day <= last {
				report.Issues = append(report.Issues, Issue{Day: day, Message: fmt.Sprintf("out of order after day %d", last)})
			}
			seen[day] = true
			if day > last {
				last = day
			}
			current = &Section{Day: day}

		case *ast.FencedCodeBlock:
			if current == nil {
				report.Issues = append(report.Issues, Issue{Message: "code block outside of a day section"})
				continue
			}
			current.CodeBlocks++
			if lang := node.Language(body); lang != nil {
				current.Languages = append(current.Languages, string(lang))
			}
		}
	}
	flushSection(report, current)

	return report, nil
}

func flushSection(r *Report, s *Section) {
	if s == nil {
		return
	}
	if s.CodeBlocks != 1 {
		r.Issues = append(r.Issues, Issue{Day: s.Day, Message: fmt.Sprintf("expected 1 code block, found %d", s.CodeBlocks)})
	}
	r.Sections = append(r.Sections, *s)
}

// nodeText concatenates the raw source lines of a block node.
func nodeText(n ast.Node, source []byte) []byte {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.Bytes()
}
