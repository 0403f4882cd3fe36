// Package review provides review record storage and the study flows built
// on the scheduling engine.
package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/quizbank/quizbank/internal/scheduler"
)

var ErrRecordNotFound = errors.New("review record not found")

// Repository defines operations for managing review records.
//
//go:generate mockgen -source=repository.go -destination=../mocks/review/mock_repository.go -package=mock_review
type Repository interface {
	Find(ctx context.Context, userID, questionID int64) (scheduler.ReviewRecord, error)
	FindForUpdate(ctx context.Context, tx *sqlx.Tx, userID, questionID int64) (scheduler.ReviewRecord, error)
	Insert(ctx context.Context, tx *sqlx.Tx, record scheduler.ReviewRecord) error
	Update(ctx context.Context, tx *sqlx.Tx, record scheduler.ReviewRecord) error
	FindDue(ctx context.Context, userID, courseID int64, asOf time.Time, limit int) ([]scheduler.ReviewRecord, error)
	ListQuestionIDs(ctx context.Context, userID, courseID int64) ([]int64, error)
	CountByStatus(ctx context.Context, userID, courseID int64) (map[scheduler.Status]int, error)
	FindByUser(ctx context.Context, userID int64) ([]scheduler.ReviewRecord, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Find returns the review record for a (user, question) pair.
func (r *DBRepository) Find(ctx context.Context, userID, questionID int64) (scheduler.ReviewRecord, error) {
	var record scheduler.ReviewRecord
	err := r.db.GetContext(ctx, &record,
		"SELECT * FROM review_records WHERE user_id = ? AND question_id = ?", userID, questionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return scheduler.ReviewRecord{}, fmt.Errorf("%w: user %d question %d", ErrRecordNotFound, userID, questionID)
		}
		return scheduler.ReviewRecord{}, fmt.Errorf("load review record: %w", err)
	}
	return record, nil
}

// FindForUpdate returns the review record for a (user, question) pair,
// locking the row for the duration of the transaction.
func (r *DBRepository) FindForUpdate(ctx context.Context, tx *sqlx.Tx, userID, questionID int64) (scheduler.ReviewRecord, error) {
	var record scheduler.ReviewRecord
	err := tx.GetContext(ctx, &record,
		"SELECT * FROM review_records WHERE user_id = ? AND question_id = ? FOR UPDATE", userID, questionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return scheduler.ReviewRecord{}, fmt.Errorf("%w: user %d question %d", ErrRecordNotFound, userID, questionID)
		}
		return scheduler.ReviewRecord{}, fmt.Errorf("lock review record: %w", err)
	}
	return record, nil
}

// Insert creates a review record within the given transaction.
func (r *DBRepository) Insert(ctx context.Context, tx *sqlx.Tx, record scheduler.ReviewRecord) error {
	_, err := tx.NamedExecContext(ctx, `
		INSERT INTO review_records
			(user_id, question_id, course_id, ease_factor, interval_days, repetition_count, last_quality, status, created_at, last_review_at, next_review_at)
		VALUES
			(:user_id, :question_id, :course_id, :ease_factor, :interval_days, :repetition_count, :last_quality, :status, :created_at, :last_review_at, :next_review_at)`,
		record)
	if err != nil {
		return fmt.Errorf("insert review record: %w", err)
	}
	return nil
}

// Update persists the scheduling fields of an existing review record within
// the given transaction.
func (r *DBRepository) Update(ctx context.Context, tx *sqlx.Tx, record scheduler.ReviewRecord) error {
	_, err := tx.NamedExecContext(ctx, `
		UPDATE review_records SET
			ease_factor = :ease_factor,
			interval_days = :interval_days,
			repetition_count = :repetition_count,
			last_quality = :last_quality,
			status = :status,
			last_review_at = :last_review_at,
			next_review_at = :next_review_at
		WHERE user_id = :user_id AND question_id = :question_id`,
		record)
	if err != nil {
		return fmt.Errorf("update review record: %w", err)
	}
	return nil
}

// FindDue returns the user's records of a course due at asOf, most overdue
// first, capped at limit.
func (r *DBRepository) FindDue(ctx context.Context, userID, courseID int64, asOf time.Time, limit int) ([]scheduler.ReviewRecord, error) {
	var records []scheduler.ReviewRecord
	err := r.db.SelectContext(ctx, &records, `
		SELECT * FROM review_records
		WHERE user_id = ? AND course_id = ? AND next_review_at <= ?
		ORDER BY next_review_at
		LIMIT ?`,
		userID, courseID, asOf, limit)
	if err != nil {
		return nil, fmt.Errorf("load due review records: %w", err)
	}
	return records, nil
}

// ListQuestionIDs returns the question ids the user has a record for in a course.
func (r *DBRepository) ListQuestionIDs(ctx context.Context, userID, courseID int64) ([]int64, error) {
	var ids []int64
	err := r.db.SelectContext(ctx, &ids,
		"SELECT question_id FROM review_records WHERE user_id = ? AND course_id = ?", userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("list reviewed question ids: %w", err)
	}
	return ids, nil
}

// CountByStatus returns the user's record counts of a course grouped by status.
func (r *DBRepository) CountByStatus(ctx context.Context, userID, courseID int64) (map[scheduler.Status]int, error) {
	rows := []struct {
		Status scheduler.Status `db:"status"`
		Count  int              `db:"count"`
	}{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT status, COUNT(*) AS count FROM review_records
		WHERE user_id = ? AND course_id = ?
		GROUP BY status`,
		userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("count review records by status: %w", err)
	}

	counts := make(map[scheduler.Status]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// FindByUser returns every review record of a user across all courses.
func (r *DBRepository) FindByUser(ctx context.Context, userID int64) ([]scheduler.ReviewRecord, error) {
	var records []scheduler.ReviewRecord
	err := r.db.SelectContext(ctx, &records,
		"SELECT * FROM review_records WHERE user_id = ? ORDER BY id", userID)
	if err != nil {
		return nil, fmt.Errorf("load review records of user %d: %w", userID, err)
	}
	return records, nil
}
