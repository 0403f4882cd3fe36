package quizbank

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/quizbank/quizbank/internal/database"
)

var (
	ErrCourseNotFound   = errors.New("course not found")
	ErrQuestionNotFound = errors.New("question not found")
)

// Repository defines read and batch-write operations for courses and questions.
//
//go:generate mockgen -source=repository.go -destination=../mocks/quizbank/mock_repository.go -package=mock_quizbank
type Repository interface {
	FindCourse(ctx context.Context, id int64) (Course, error)
	FindCourseByName(ctx context.Context, name string) (Course, error)
	FindQuestion(ctx context.Context, id int64) (Question, error)
	FindQuestionsByIDs(ctx context.Context, ids []int64) ([]Question, error)
	FindQuestionsByCourse(ctx context.Context, courseID int64) ([]Question, error)
	ListQuestionIDs(ctx context.Context, courseID int64) ([]int64, error)
	CountQuestions(ctx context.Context, courseID int64) (int, error)
	BatchCreateCourses(ctx context.Context, courses []*Course) error
	BatchCreateQuestions(ctx context.Context, questions []*Question) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindCourse returns the course with the given id.
func (r *DBRepository) FindCourse(ctx context.Context, id int64) (Course, error) {
	var course Course
	if err := r.db.GetContext(ctx, &course, "SELECT * FROM courses WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Course{}, fmt.Errorf("%w: id %d", ErrCourseNotFound, id)
		}
		return Course{}, fmt.Errorf("load course %d: %w", id, err)
	}
	return course, nil
}

// FindCourseByName returns the course with the given name.
func (r *DBRepository) FindCourseByName(ctx context.Context, name string) (Course, error) {
	var course Course
	if err := r.db.GetContext(ctx, &course, "SELECT * FROM courses WHERE name = ?", name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Course{}, fmt.Errorf("%w: name %q", ErrCourseNotFound, name)
		}
		return Course{}, fmt.Errorf("load course %q: %w", name, err)
	}
	return course, nil
}

// FindQuestion returns the question with the given id.
func (r *DBRepository) FindQuestion(ctx context.Context, id int64) (Question, error) {
	var question Question
	if err := r.db.GetContext(ctx, &question, "SELECT * FROM questions WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Question{}, fmt.Errorf("%w: id %d", ErrQuestionNotFound, id)
		}
		return Question{}, fmt.Errorf("load question %d: %w", id, err)
	}
	return question, nil
}

// FindQuestionsByIDs returns the questions for ids, preserving the order of
// ids in the result. Ids without a matching question are skipped.
func (r *DBRepository) FindQuestionsByIDs(ctx context.Context, ids []int64) ([]Question, error) {
	if len(ids) == 0 {
		return []Question{}, nil
	}

	query, args, err := sqlx.In("SELECT * FROM questions WHERE id IN (?)", ids)
	if err != nil {
		return nil, fmt.Errorf("build questions query: %w", err)
	}
	var questions []Question
	if err := r.db.SelectContext(ctx, &questions, query, args...); err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	byID := make(map[int64]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	ordered := make([]Question, 0, len(questions))
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			ordered = append(ordered, q)
		}
	}
	return ordered, nil
}

// FindQuestionsByCourse returns every question of a course in id order.
func (r *DBRepository) FindQuestionsByCourse(ctx context.Context, courseID int64) ([]Question, error) {
	var questions []Question
	if err := r.db.SelectContext(ctx, &questions, "SELECT * FROM questions WHERE course_id = ? ORDER BY id", courseID); err != nil {
		return nil, fmt.Errorf("load questions of course %d: %w", courseID, err)
	}
	return questions, nil
}

// ListQuestionIDs returns the ids of every question of a course in id order.
func (r *DBRepository) ListQuestionIDs(ctx context.Context, courseID int64) ([]int64, error) {
	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, "SELECT id FROM questions WHERE course_id = ? ORDER BY id", courseID); err != nil {
		return nil, fmt.Errorf("list question ids of course %d: %w", courseID, err)
	}
	return ids, nil
}

// CountQuestions returns the number of questions in a course.
func (r *DBRepository) CountQuestions(ctx context.Context, courseID int64) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM questions WHERE course_id = ?", courseID); err != nil {
		return 0, fmt.Errorf("count questions of course %d: %w", courseID, err)
	}
	return count, nil
}

// BatchCreateCourses inserts multiple courses in a single transaction using a multi-row INSERT.
func (r *DBRepository) BatchCreateCourses(ctx context.Context, courses []*Course) error {
	if len(courses) == 0 {
		return nil
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		columns := []string{"name", "description"}
		query := database.BuildMultiRowInsert("courses", columns, len(courses))

		var args []interface{}
		for _, c := range courses {
			args = append(args, c.Name, c.Description)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert courses: %w", err)
		}
		return nil
	})
}

// BatchCreateQuestions inserts multiple questions in a single transaction using a multi-row INSERT.
func (r *DBRepository) BatchCreateQuestions(ctx context.Context, questions []*Question) error {
	if len(questions) == 0 {
		return nil
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		columns := []string{"course_id", "question_type", "summary", "content_markdown", "answer_markdown", "explanation_markdown"}
		query := database.BuildMultiRowInsert("questions", columns, len(questions))

		var args []interface{}
		for _, q := range questions {
			args = append(args, q.CourseID, q.QuestionType, q.Summary, q.ContentMarkdown, q.AnswerMarkdown, q.ExplanationMarkdown)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert questions: %w", err)
		}
		return nil
	})
}
