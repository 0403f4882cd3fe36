// Package export renders course question sheets to Markdown and PDF.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"

	"github.com/quizbank/quizbank/internal/quizbank"
)

// Options controls what a course sheet contains.
type Options struct {
	IncludeAnswers bool
}

// BuildCourseMarkdown renders a course and its questions as a Markdown
// document. Question content is stored as Markdown already, so it is
// embedded as-is.
func BuildCourseMarkdown(course quizbank.Course, questions []quizbank.Question, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", course.Name)
	if course.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", course.Description)
	}

	for i, q := range questions {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, q.Summary)
		fmt.Fprintf(&b, "%s\n\n", strings.TrimSpace(q.ContentMarkdown))

		if !opts.IncludeAnswers {
			continue
		}
		fmt.Fprintf(&b, "**Answer**\n\n%s\n\n", strings.TrimSpace(q.AnswerMarkdown))
		if q.ExplanationMarkdown != "" {
			fmt.Fprintf(&b, "**Explanation**\n\n%s\n\n", strings.TrimSpace(q.ExplanationMarkdown))
		}
	}

	return b.String()
}

// WriteCoursePDF renders the course sheet into dir as both a Markdown file
// and a PDF next to it. Returns the absolute PDF path.
func WriteCoursePDF(course quizbank.Course, questions []quizbank.Question, dir string, opts Options) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	content := BuildCourseMarkdown(course, questions, opts)
	name := sanitizeFileName(course.Name)

	markdownPath := filepath.Join(dir, name+".md")
	if err := os.WriteFile(markdownPath, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write markdown file: %w", err)
	}

	pdfPath := filepath.Join(dir, name+".pdf")
	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process([]byte(content)); err != nil {
		return "", fmt.Errorf("render pdf: %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}

func sanitizeFileName(name string) string {
	replacer := strings.NewReplacer("/", "-", " ", "_")
	return replacer.Replace(strings.TrimSpace(name))
}
