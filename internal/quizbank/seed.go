package quizbank

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Seed is the YAML document format for course content fixtures.
type Seed struct {
	Courses []SeedCourse `yaml:"courses"`
}

type SeedCourse struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Questions   []SeedQuestion `yaml:"questions"`
}

type SeedQuestion struct {
	QuestionType string `yaml:"question_type"`
	Summary      string `yaml:"summary"`
	Content      string `yaml:"content"`
	Answer       string `yaml:"answer"`
	Explanation  string `yaml:"explanation"`
}

// ImportResult tracks counts for each import operation.
type ImportResult struct {
	CoursesNew       int
	CoursesSkipped   int
	QuestionsNew     int
	QuestionsSkipped int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool
}

// Importer reads YAML seed data and writes courses and questions to the DB.
// Courses are matched by name and questions by summary within their course;
// existing rows are never modified.
type Importer struct {
	repo   Repository
	writer io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(repo Repository, writer io.Writer) *Importer {
	return &Importer{
		repo:   repo,
		writer: writer,
	}
}

// ImportFile reads a seed YAML file and imports its contents.
func (imp *Importer) ImportFile(ctx context.Context, path string, opts ImportOptions) (*ImportResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var seed Seed
	if err := yaml.Unmarshal(content, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	return imp.Import(ctx, seed, opts)
}

// Import imports a parsed seed document.
func (imp *Importer) Import(ctx context.Context, seed Seed, opts ImportOptions) (*ImportResult, error) {
	result := &ImportResult{}

	for _, seedCourse := range seed.Courses {
		if err := imp.importCourse(ctx, seedCourse, opts, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (imp *Importer) importCourse(ctx context.Context, seedCourse SeedCourse, opts ImportOptions, result *ImportResult) error {
	course, err := imp.repo.FindCourseByName(ctx, seedCourse.Name)
	switch {
	case err == nil:
		_, _ = fmt.Fprintf(imp.writer, "  [SKIP] course %q\n", seedCourse.Name)
		result.CoursesSkipped++
	case errors.Is(err, ErrCourseNotFound):
		_, _ = fmt.Fprintf(imp.writer, "  [NEW]  course %q\n", seedCourse.Name)
		result.CoursesNew++
		if opts.DryRun {
			// Without the created course there is no id to attach questions
			// to; count every question as new and move on.
			for range seedCourse.Questions {
				result.QuestionsNew++
			}
			return nil
		}
		newCourse := &Course{Name: seedCourse.Name, Description: seedCourse.Description}
		if err := imp.repo.BatchCreateCourses(ctx, []*Course{newCourse}); err != nil {
			return fmt.Errorf("create course %q: %w", seedCourse.Name, err)
		}
		course, err = imp.repo.FindCourseByName(ctx, seedCourse.Name)
		if err != nil {
			return fmt.Errorf("reload created course %q: %w", seedCourse.Name, err)
		}
	default:
		return fmt.Errorf("load course %q: %w", seedCourse.Name, err)
	}

	existing, err := imp.repo.FindQuestionsByCourse(ctx, course.ID)
	if err != nil {
		return fmt.Errorf("load questions of course %q: %w", seedCourse.Name, err)
	}
	known := make(map[string]bool, len(existing))
	for _, q := range existing {
		known[q.Summary] = true
	}

	var newQuestions []*Question
	for _, sq := range seedCourse.Questions {
		if known[sq.Summary] {
			_, _ = fmt.Fprintf(imp.writer, "  [SKIP]   question %q\n", sq.Summary)
			result.QuestionsSkipped++
			continue
		}
		known[sq.Summary] = true
		_, _ = fmt.Fprintf(imp.writer, "  [NEW]    question %q\n", sq.Summary)
		result.QuestionsNew++
		newQuestions = append(newQuestions, &Question{
			CourseID:            course.ID,
			QuestionType:        QuestionType(sq.QuestionType),
			Summary:             sq.Summary,
			ContentMarkdown:     sq.Content,
			AnswerMarkdown:      sq.Answer,
			ExplanationMarkdown: sq.Explanation,
		})
	}

	if !opts.DryRun && len(newQuestions) > 0 {
		if err := imp.repo.BatchCreateQuestions(ctx, newQuestions); err != nil {
			return fmt.Errorf("batch create questions of course %q: %w", seedCourse.Name, err)
		}
	}
	return nil
}
