// Package scheduler implements the SM-2 family spaced repetition model:
// the per-(user, question) review state and the pure state transition
// applied after each learner response.
package scheduler

import "time"

const (
	// DefaultEaseFactor is the SM-2 starting easiness for a new record.
	DefaultEaseFactor = 2.5
	// MinEaseFactor is the SM-2 floor; the ease factor never drops below it.
	MinEaseFactor = 1.3

	// MasteredMinIntervalDays is the interval a record must exceed, together
	// with a perfect last response, to be classified as mastered.
	MasteredMinIntervalDays = 30
)

// Status classifies a learner's progress on a single question.
type Status string

const (
	// StatusLearning holds strictly until the first response is recorded.
	StatusLearning Status = "learning"
	// StatusReviewing covers every reviewed record that is not mastered.
	StatusReviewing Status = "reviewing"
	// StatusMastered marks sustained high-quality recall with a long interval.
	StatusMastered Status = "mastered"
)

// ReviewRecord holds the spaced repetition state for one (user, question)
// pair. At most one record exists per pair. Scheduling fields change only
// through Apply; callers persist the returned value.
type ReviewRecord struct {
	ID              int64     `db:"id" json:"id"`
	UserID          int64     `db:"user_id" json:"user_id"`
	QuestionID      int64     `db:"question_id" json:"question_id"`
	CourseID        int64     `db:"course_id" json:"course_id"`
	EaseFactor      float64   `db:"ease_factor" json:"ease_factor"`
	IntervalDays    int       `db:"interval_days" json:"interval_days"`
	RepetitionCount int       `db:"repetition_count" json:"repetition_count"`
	LastQuality     int       `db:"last_quality" json:"last_quality"`
	Status          Status    `db:"status" json:"status"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	LastReviewAt    time.Time `db:"last_review_at" json:"last_review_at"`
	NextReviewAt    time.Time `db:"next_review_at" json:"next_review_at"`
}

// NewReviewRecord returns the initial state for a question the user has
// never answered. The record stays in StatusLearning until the first
// response moves it forward.
func NewReviewRecord(userID, questionID, courseID int64, now time.Time) ReviewRecord {
	return ReviewRecord{
		UserID:          userID,
		QuestionID:      questionID,
		CourseID:        courseID,
		EaseFactor:      DefaultEaseFactor,
		IntervalDays:    1,
		RepetitionCount: 0,
		LastQuality:     0,
		Status:          StatusLearning,
		CreatedAt:       now,
		LastReviewAt:    now,
		NextReviewAt:    now,
	}
}

// IsDue returns true if the record is at or past its scheduled review time.
func (r ReviewRecord) IsDue(now time.Time) bool {
	return !now.Before(r.NextReviewAt)
}

// DaysOverdue returns how many days past the scheduled review time the
// record is. Returns 0 if the record is not yet due.
func (r ReviewRecord) DaysOverdue(now time.Time) float64 {
	if now.Before(r.NextReviewAt) {
		return 0
	}
	return now.Sub(r.NextReviewAt).Hours() / 24.0
}
