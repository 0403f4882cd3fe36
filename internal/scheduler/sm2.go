package scheduler

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

// ErrInvalidQualityScore is returned when a quality score is outside 0..5.
var ErrInvalidQualityScore = errors.New("quality score must be between 0 and 5")

const (
	minQuality = 0
	maxQuality = 5

	// passingQuality is the lowest score that counts as a successful recall.
	passingQuality = 3
	// solidQuality is the lowest score that grows the review interval.
	solidQuality = 4
	perfectQuality = 5

	// Fixed warm-up intervals before the ease factor takes over.
	firstIntervalDays  = 1
	secondIntervalDays = 6
)

// Apply returns the record after one review response graded with the given
// quality score. It is a pure function: the input record is not modified,
// no I/O happens, and identical inputs produce identical outputs. Quality
// scores outside 0..5 fail with ErrInvalidQualityScore and return the input
// unchanged.
//
// The transition follows SM-2 with three regimes on the quality score:
// below 3 the learned interval is forgotten entirely (hard reset, ease
// factor untouched); exactly 3 counts toward the streak without growing the
// interval; 4 and 5 grow the interval through two fixed warm-up steps and
// then the ease-factor product.
func Apply(record ReviewRecord, quality int, now time.Time) (ReviewRecord, error) {
	if quality < minQuality || quality > maxQuality {
		return record, fmt.Errorf("%w: got %d", ErrInvalidQualityScore, quality)
	}

	switch {
	case quality < passingQuality:
		record.RepetitionCount = 0
		record.IntervalDays = 1
	case quality < solidQuality:
		record.EaseFactor = nextEaseFactor(record.EaseFactor, quality)
		record.RepetitionCount++
	default:
		record.EaseFactor = nextEaseFactor(record.EaseFactor, quality)
		switch record.RepetitionCount {
		case 0:
			record.IntervalDays = firstIntervalDays
		case 1:
			record.IntervalDays = secondIntervalDays
		default:
			record.IntervalDays = int(record.EaseFactor * float64(record.IntervalDays))
		}
		record.RepetitionCount++
	}

	record.LastQuality = quality
	record.LastReviewAt = now
	record.NextReviewAt = now.AddDate(0, 0, record.IntervalDays)
	record.Status = statusAfter(quality, record.IntervalDays)
	return record, nil
}

// nextEaseFactor applies the canonical SM-2 ease adjustment: +0.1 at
// quality 5, roughly flat at 4, decreasing at 3, clamped at MinEaseFactor.
func nextEaseFactor(ef float64, quality int) float64 {
	if ef == 0 {
		ef = DefaultEaseFactor
	}
	q := float64(quality)
	return math.Max(MinEaseFactor, ef+(0.1-(5-q)*(0.08+(5-q)*0.02)))
}

// statusAfter recomputes the record status from the response just applied.
// A record that has received a response is never StatusLearning again.
func statusAfter(quality, intervalDays int) Status {
	if quality == perfectQuality && intervalDays > MasteredMinIntervalDays {
		return StatusMastered
	}
	return StatusReviewing
}

// SelectNew returns up to limit question ids from courseQuestionIDs that do
// not appear in seenQuestionIDs, in ascending id order. An empty result is a
// valid empty batch. A negative limit means no limit.
func SelectNew(courseQuestionIDs, seenQuestionIDs []int64, limit int) []int64 {
	seen := make(map[int64]struct{}, len(seenQuestionIDs))
	for _, id := range seenQuestionIDs {
		seen[id] = struct{}{}
	}

	ids := make([]int64, 0, len(courseQuestionIDs))
	for _, id := range courseQuestionIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	if limit >= 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids
}
