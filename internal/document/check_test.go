package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/aocdoc/internal/model"
)

// TestCheck_AssembledDocument round-trips the assembler's output through
// Check and expects a clean report.
func TestCheck_AssembledDocument(t *testing.T) {
	fs := solutionsFS(t, "aoc", map[string]string{
		"1":  "print(1)",
		"2":  "# a comment, not a heading\nprint(2)",
		"10": "s = '''\n```\n'''",
	})
	notes := model.Commentary{
		1: "first",
		2: "Learned about $$\\frac{a}{b}$$\n\nacross paragraphs",
	}

	doc, ds, err := Build(fs, "aoc", "main.py", notes, testOptions())
	require.NoError(t, err)

	report, err := Check(doc)
	require.NoError(t, err)
	assert.True(t, report.OK(), "issues: %v", report.Issues)
	assert.Equal(t, []int{1, 2, 10}, report.Days())
	for _, s := range report.Sections {
		assert.Equal(t, 1, s.CodeBlocks)
		assert.Equal(t, []string{"{python}"}, s.Languages)
	}

	require.NotNil(t, report.Preamble)
	assert.Equal(t, model.DefaultPreamble(), *report.Preamble)

	report.CompareDays(ds)
	assert.True(t, report.OK())
}

func TestCheck_PreambleOnly(t *testing.T) {
	fs := solutionsFS(t, "aoc", nil)
	doc, _, err := Build(fs, "aoc", "main.py", nil, testOptions())
	require.NoError(t, err)

	report, err := Check(doc)
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Empty(t, report.Sections)
}

func TestCheck_Problems(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
		wantDay int
	}{
		{
			name:    "non-numeric heading",
			body:    "## intro\n\n```{python}\nx\n```\n",
			wantMsg: `heading "intro" is not a day number`,
		},
		{
			name:    "out of order",
			body:    "## 2\n```{python}\nx\n```\n## 1\n```{python}\nx\n```\n",
			wantMsg: "out of order after day 2",
			wantDay: 1,
		},
		{
			name:    "duplicate",
			body:    "## 3\n```{python}\nx\n```\n## 3\n```{python}\nx\n```\n",
			wantMsg: "duplicate section",
			wantDay: 3,
		},
		{
			name:    "missing code block",
			body:    "## 5\nno code here\n",
			wantMsg: "expected 1 code block, found 0",
			wantDay: 5,
		},
		{
			name:    "two code blocks",
			body:    "## 6\n```{python}\nx\n```\n```{python}\ny\n```\n",
			wantMsg: "expected 1 code block, found 2",
			wantDay: 6,
		},
		{
			name:    "code before first section",
			body:    "```{python}\nx\n```\n## 1\n```{python}\nx\n```\n",
			wantMsg: "code block outside of a day section",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := "---\ntoc: true\n---\n\n" + tt.body

			report, err := Check([]byte(doc))
			require.NoError(t, err)
			require.False(t, report.OK())
			assert.Contains(t, report.Issues, Issue{Day: tt.wantDay, Message: tt.wantMsg})
		})
	}
}

func TestCheck_NoFrontMatter(t *testing.T) {
	report, err := Check([]byte("## 1\n```{python}\nx\n```\n"))
	require.NoError(t, err)
	assert.Nil(t, report.Preamble)
	assert.Contains(t, report.Issues, Issue{Message: "document has no front matter"})
}

func TestCheck_UnterminatedFrontMatter(t *testing.T) {
	_, err := Check([]byte("---\ntoc: true\n## 1\n"))
	assert.Error(t, err)
}

func TestCheck_BadFrontMatter(t *testing.T) {
	_, err := Check([]byte("---\ntoc: [unclosed\n---\n\n"))
	assert.Error(t, err)
}

func TestReport_CompareDays(t *testing.T) {
	report := &Report{Sections: []Section{{Day: 1, CodeBlocks: 1}, {Day: 3, CodeBlocks: 1}}}

	report.CompareDays([]model.Day{{Number: 1}, {Number: 2}})

	assert.ElementsMatch(t, []Issue{
		{Day: 2, Message: "directory has no section in the document"},
		{Day: 3, Message: "section has no matching directory"},
	}, report.Issues)
}

func TestSplitFrontMatter(t *testing.T) {
	front, body, err := SplitFrontMatter([]byte("---\na: 1\n---\n\n## 1\n"))
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", string(front))
	assert.Equal(t, "\n## 1\n", string(body))

	front, body, err = SplitFrontMatter([]byte("## 1\n"))
	require.NoError(t, err)
	assert.Nil(t, front)
	assert.Equal(t, "## 1\n", string(body))
}

func TestIssue_String(t *testing.T) {
	assert.Equal(t, "day 4: duplicate section", Issue{Day: 4, Message: "duplicate section"}.String())
	assert.Equal(t, "document has no front matter", Issue{Message: "document has no front matter"}.String())
}
