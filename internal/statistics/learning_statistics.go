// Package statistics aggregates a user's review records into summary numbers.
package statistics

import (
	"time"

	"github.com/quizbank/quizbank/internal/scheduler"
)

// LearningStatistics summarizes a user's learning across all courses.
type LearningStatistics struct {
	TotalRepetitions        int       `json:"total_repetitions"`
	LearnedCount            int       `json:"learned_count"`
	MasteredCount           int       `json:"mastered_count"`
	LearningDays            int       `json:"learning_days"`
	MaxRepetitionQuestionID int64     `json:"-"`
	LastReviewAt            time.Time `json:"last_review_date"`
	FarthestReviewAt        time.Time `json:"farthest_review_date"`
}

// Calculate aggregates the user's review records as of today.
// LearningDays counts whole days since the earliest record was created.
// The most repeated question wins ties by earliest record.
func Calculate(records []scheduler.ReviewRecord, today time.Time) LearningStatistics {
	stats := LearningStatistics{
		LearnedCount: len(records),
	}
	if len(records) == 0 {
		return stats
	}

	var firstCreatedAt time.Time
	maxRepetitions := -1
	for _, record := range records {
		stats.TotalRepetitions += record.RepetitionCount
		if record.Status == scheduler.StatusMastered {
			stats.MasteredCount++
		}
		if firstCreatedAt.IsZero() || record.CreatedAt.Before(firstCreatedAt) {
			firstCreatedAt = record.CreatedAt
		}
		if record.RepetitionCount > maxRepetitions {
			maxRepetitions = record.RepetitionCount
			stats.MaxRepetitionQuestionID = record.QuestionID
		}
		if record.LastReviewAt.After(stats.LastReviewAt) {
			stats.LastReviewAt = record.LastReviewAt
		}
		if record.NextReviewAt.After(stats.FarthestReviewAt) {
			stats.FarthestReviewAt = record.NextReviewAt
		}
	}

	stats.LearningDays = int(today.Sub(firstCreatedAt).Hours() / 24)
	if stats.LearningDays < 0 {
		stats.LearningDays = 0
	}
	return stats
}
