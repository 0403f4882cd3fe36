package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"github.com/jmoiron/sqlx"

	"github.com/quizbank/quizbank/internal/database"
	"github.com/quizbank/quizbank/internal/quizbank"
	"github.com/quizbank/quizbank/internal/scheduler"
	"github.com/quizbank/quizbank/internal/statistics"
)

// First responses race on the unique (user_id, question_id) key; the losing
// transaction is retried so it reloads the winner's row.
const recordTxAttempts = 3

// BulkItem is one response in a bulk update.
type BulkItem struct {
	QuestionID   int64 `json:"question_id"`
	QualityScore int   `json:"quality_score"`
}

// BulkItemResult reports the outcome of one bulk item. Err is nil on success.
type BulkItemResult struct {
	QuestionID int64
	Created    bool
	Err        error
}

// CourseProgress counts a user's questions of a course by learning status.
type CourseProgress struct {
	CourseID   int64  `json:"course_id"`
	CourseName string `json:"course_name"`
	NotLearned int    `json:"not_learned"`
	Reviewing  int    `json:"reviewing"`
	Mastered   int    `json:"mastered"`
}

// UserStatistics is the statistics read with the most repeated question hydrated.
type UserStatistics struct {
	statistics.LearningStatistics
	MaxRepetitionQuestion *quizbank.Question `json:"max_repetition_question"`
}

// Service implements the study flows over the review and content repositories.
type Service struct {
	db        *sqlx.DB
	reviews   Repository
	questions quizbank.Repository
	now       func() time.Time
}

// NewService creates a new Service.
func NewService(db *sqlx.DB, reviews Repository, questions quizbank.Repository) *Service {
	return &Service{
		db:        db,
		reviews:   reviews,
		questions: questions,
		now:       time.Now,
	}
}

// RecordResponse records one graded response for a question. The record is
// created on the first response and rescheduled on every later one. Returns
// the stored record and whether it was created.
func (s *Service) RecordResponse(ctx context.Context, userID, questionID int64, quality int) (scheduler.ReviewRecord, bool, error) {
	question, err := s.questions.FindQuestion(ctx, questionID)
	if err != nil {
		return scheduler.ReviewRecord{}, false, err
	}

	now := s.now()
	var result scheduler.ReviewRecord
	var created bool
	err = retry.Do(
		func() error {
			return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
				record, err := s.reviews.FindForUpdate(ctx, tx, userID, questionID)
				switch {
				case errors.Is(err, ErrRecordNotFound):
					record = scheduler.NewReviewRecord(userID, questionID, question.CourseID, now)
					created = true
				case err != nil:
					return retry.Unrecoverable(err)
				default:
					created = false
				}

				next, err := scheduler.Apply(record, quality, now)
				if err != nil {
					return retry.Unrecoverable(err)
				}

				if created {
					if err := s.reviews.Insert(ctx, tx, next); err != nil {
						if database.IsDuplicateEntry(err) {
							return err
						}
						return retry.Unrecoverable(err)
					}
				} else {
					if err := s.reviews.Update(ctx, tx, next); err != nil {
						return retry.Unrecoverable(err)
					}
				}
				result = next
				return nil
			})
		},
		retry.Context(ctx),
		retry.Attempts(recordTxAttempts),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return scheduler.ReviewRecord{}, false, fmt.Errorf("record response for question %d: %w", questionID, err)
	}
	return result, created, nil
}

// BulkRecord records many responses for one user. Items are processed
// independently; a failed item is reported in its result and never stops the
// remaining items.
func (s *Service) BulkRecord(ctx context.Context, userID int64, items []BulkItem) []BulkItemResult {
	results := make([]BulkItemResult, 0, len(items))
	for _, item := range items {
		_, created, err := s.RecordResponse(ctx, userID, item.QuestionID, item.QualityScore)
		results = append(results, BulkItemResult{
			QuestionID: item.QuestionID,
			Created:    created,
			Err:        err,
		})
	}
	return results
}

// NewQuestions returns up to limit questions of a course the user has never
// answered, in ascending question id order.
func (s *Service) NewQuestions(ctx context.Context, userID, courseID int64, limit int) ([]quizbank.Question, error) {
	if _, err := s.questions.FindCourse(ctx, courseID); err != nil {
		return nil, err
	}

	courseQuestionIDs, err := s.questions.ListQuestionIDs(ctx, courseID)
	if err != nil {
		return nil, err
	}
	seenQuestionIDs, err := s.reviews.ListQuestionIDs(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	ids := scheduler.SelectNew(courseQuestionIDs, seenQuestionIDs, limit)
	return s.questions.FindQuestionsByIDs(ctx, ids)
}

// DueQuestions returns up to limit questions of a course whose records are
// due now, most overdue first.
func (s *Service) DueQuestions(ctx context.Context, userID, courseID int64, limit int) ([]quizbank.Question, error) {
	if _, err := s.questions.FindCourse(ctx, courseID); err != nil {
		return nil, err
	}

	records, err := s.reviews.FindDue(ctx, userID, courseID, s.now(), limit)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(records))
	for i, record := range records {
		ids[i] = record.QuestionID
	}
	return s.questions.FindQuestionsByIDs(ctx, ids)
}

// Progress classifies a user's standing in a course. Counts are recomputed
// from review records on every call and always sum to the course's question
// total.
func (s *Service) Progress(ctx context.Context, userID, courseID int64) (CourseProgress, error) {
	course, err := s.questions.FindCourse(ctx, courseID)
	if err != nil {
		return CourseProgress{}, err
	}
	total, err := s.questions.CountQuestions(ctx, courseID)
	if err != nil {
		return CourseProgress{}, err
	}
	counts, err := s.reviews.CountByStatus(ctx, userID, courseID)
	if err != nil {
		return CourseProgress{}, err
	}

	reviewing := counts[scheduler.StatusReviewing]
	mastered := counts[scheduler.StatusMastered]
	return CourseProgress{
		CourseID:   course.ID,
		CourseName: course.Name,
		NotLearned: total - reviewing - mastered,
		Reviewing:  reviewing,
		Mastered:   mastered,
	}, nil
}

// Statistics aggregates the user's records across all courses. Returns
// ErrRecordNotFound when the user has never recorded a response.
func (s *Service) Statistics(ctx context.Context, userID int64) (UserStatistics, error) {
	records, err := s.reviews.FindByUser(ctx, userID)
	if err != nil {
		return UserStatistics{}, err
	}
	if len(records) == 0 {
		return UserStatistics{}, fmt.Errorf("%w: user %d has no review records", ErrRecordNotFound, userID)
	}

	stats := statistics.Calculate(records, s.now())
	result := UserStatistics{LearningStatistics: stats}

	question, err := s.questions.FindQuestion(ctx, stats.MaxRepetitionQuestionID)
	if err != nil {
		return UserStatistics{}, err
	}
	result.MaxRepetitionQuestion = &question
	return result, nil
}
