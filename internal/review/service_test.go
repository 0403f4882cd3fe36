package review

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_quizbank "github.com/quizbank/quizbank/internal/mocks/quizbank"
	mock_review "github.com/quizbank/quizbank/internal/mocks/review"
	"github.com/quizbank/quizbank/internal/quizbank"
	"github.com/quizbank/quizbank/internal/scheduler"
)

type serviceFixture struct {
	service   *Service
	mock      sqlmock.Sqlmock
	reviews   *mock_review.MockRepository
	questions *mock_quizbank.MockRepository
	now       time.Time
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctrl := gomock.NewController(t)
	reviews := mock_review.NewMockRepository(ctrl)
	questions := mock_quizbank.NewMockRepository(ctrl)

	service := NewService(sqlx.NewDb(db, "mysql"), reviews, questions)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	return &serviceFixture{
		service:   service,
		mock:      mock,
		reviews:   reviews,
		questions: questions,
		now:       now,
	}
}

func TestService_RecordResponse_createsRecordOnFirstResponse(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	f.questions.EXPECT().FindQuestion(ctx, int64(10)).
		Return(quizbank.Question{ID: 10, CourseID: 3}, nil)
	f.mock.ExpectBegin()
	f.reviews.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(1), int64(10)).
		Return(scheduler.ReviewRecord{}, fmt.Errorf("%w: user 1 question 10", ErrRecordNotFound))

	want, err := scheduler.Apply(scheduler.NewReviewRecord(1, 10, 3, f.now), 5, f.now)
	require.NoError(t, err)
	f.reviews.EXPECT().Insert(gomock.Any(), gomock.Any(), want).Return(nil)
	f.mock.ExpectCommit()

	got, created, err := f.service.RecordResponse(ctx, 1, 10, 5)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, got.RepetitionCount)
	assert.Equal(t, scheduler.StatusReviewing, got.Status)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestService_RecordResponse_reschedulesExistingRecord(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	existing := scheduler.ReviewRecord{
		UserID: 1, QuestionID: 10, CourseID: 3,
		EaseFactor: 2.6, IntervalDays: 6, RepetitionCount: 2, LastQuality: 5,
		Status: scheduler.StatusReviewing,
	}

	f.questions.EXPECT().FindQuestion(ctx, int64(10)).
		Return(quizbank.Question{ID: 10, CourseID: 3}, nil)
	f.mock.ExpectBegin()
	f.reviews.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(1), int64(10)).
		Return(existing, nil)

	want, err := scheduler.Apply(existing, 4, f.now)
	require.NoError(t, err)
	f.reviews.EXPECT().Update(gomock.Any(), gomock.Any(), want).Return(nil)
	f.mock.ExpectCommit()

	got, created, err := f.service.RecordResponse(ctx, 1, 10, 4)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, want, got)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestService_RecordResponse_unknownQuestion(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	f.questions.EXPECT().FindQuestion(ctx, int64(99)).
		Return(quizbank.Question{}, fmt.Errorf("%w: id 99", quizbank.ErrQuestionNotFound))

	_, _, err := f.service.RecordResponse(ctx, 1, 99, 4)
	assert.ErrorIs(t, err, quizbank.ErrQuestionNotFound)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestService_RecordResponse_invalidQualityDoesNotRetry(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	f.questions.EXPECT().FindQuestion(ctx, int64(10)).
		Return(quizbank.Question{ID: 10, CourseID: 3}, nil)
	f.mock.ExpectBegin()
	f.reviews.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(1), int64(10)).
		Return(scheduler.ReviewRecord{UserID: 1, QuestionID: 10, CourseID: 3, EaseFactor: 2.5, IntervalDays: 1}, nil)
	f.mock.ExpectRollback()

	_, _, err := f.service.RecordResponse(ctx, 1, 10, 6)
	assert.ErrorIs(t, err, scheduler.ErrInvalidQualityScore)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestService_RecordResponse_retriesLostInsertRace(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	f.questions.EXPECT().FindQuestion(ctx, int64(10)).
		Return(quizbank.Question{ID: 10, CourseID: 3}, nil)

	// First attempt loses the insert race against a concurrent first response.
	f.mock.ExpectBegin()
	f.reviews.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(1), int64(10)).
		Return(scheduler.ReviewRecord{}, fmt.Errorf("%w: user 1 question 10", ErrRecordNotFound))
	f.reviews.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("insert review record: %w", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}))
	f.mock.ExpectRollback()

	// Second attempt sees the winner's row and reschedules it.
	winner := scheduler.ReviewRecord{
		UserID: 1, QuestionID: 10, CourseID: 3,
		EaseFactor: 2.6, IntervalDays: 1, RepetitionCount: 1, LastQuality: 5,
		Status: scheduler.StatusReviewing,
	}
	f.mock.ExpectBegin()
	f.reviews.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(1), int64(10)).
		Return(winner, nil)
	want, err := scheduler.Apply(winner, 4, f.now)
	require.NoError(t, err)
	f.reviews.EXPECT().Update(gomock.Any(), gomock.Any(), want).Return(nil)
	f.mock.ExpectCommit()

	got, created, err := f.service.RecordResponse(ctx, 1, 10, 4)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, want, got)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestService_BulkRecord_partialSuccess(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	f.questions.EXPECT().FindQuestion(ctx, int64(10)).
		Return(quizbank.Question{ID: 10, CourseID: 3}, nil)
	f.mock.ExpectBegin()
	f.reviews.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(1), int64(10)).
		Return(scheduler.ReviewRecord{}, fmt.Errorf("%w", ErrRecordNotFound))
	f.reviews.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.mock.ExpectCommit()

	f.questions.EXPECT().FindQuestion(ctx, int64(99)).
		Return(quizbank.Question{}, fmt.Errorf("%w: id 99", quizbank.ErrQuestionNotFound))

	f.questions.EXPECT().FindQuestion(ctx, int64(11)).
		Return(quizbank.Question{ID: 11, CourseID: 3}, nil)
	f.mock.ExpectBegin()
	f.reviews.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(1), int64(11)).
		Return(scheduler.ReviewRecord{UserID: 1, QuestionID: 11, CourseID: 3, EaseFactor: 2.5, IntervalDays: 1}, nil)
	f.reviews.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.mock.ExpectCommit()

	results := f.service.BulkRecord(ctx, 1, []BulkItem{
		{QuestionID: 10, QualityScore: 5},
		{QuestionID: 99, QualityScore: 4},
		{QuestionID: 11, QualityScore: 3},
	})

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.True(t, results[0].Created)
	assert.ErrorIs(t, results[1].Err, quizbank.ErrQuestionNotFound)
	assert.NoError(t, results[2].Err)
	assert.False(t, results[2].Created)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestService_NewQuestions(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	f.questions.EXPECT().FindCourse(ctx, int64(3)).
		Return(quizbank.Course{ID: 3, Name: "Go Basics"}, nil)
	f.questions.EXPECT().ListQuestionIDs(ctx, int64(3)).
		Return([]int64{1, 2, 3, 4, 5}, nil)
	f.reviews.EXPECT().ListQuestionIDs(ctx, int64(1), int64(3)).
		Return([]int64{2, 4}, nil)
	f.questions.EXPECT().FindQuestionsByIDs(ctx, []int64{1, 3}).
		Return([]quizbank.Question{{ID: 1}, {ID: 3}}, nil)

	got, err := f.service.NewQuestions(ctx, 1, 3, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestService_DueQuestions_keepsOverdueOrder(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	f.questions.EXPECT().FindCourse(ctx, int64(3)).
		Return(quizbank.Course{ID: 3}, nil)
	f.reviews.EXPECT().FindDue(ctx, int64(1), int64(3), f.now, 5).
		Return([]scheduler.ReviewRecord{{QuestionID: 8}, {QuestionID: 2}}, nil)
	f.questions.EXPECT().FindQuestionsByIDs(ctx, []int64{8, 2}).
		Return([]quizbank.Question{{ID: 8}, {ID: 2}}, nil)

	got, err := f.service.DueQuestions(ctx, 1, 3, 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(8), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestService_Progress_countsSumToCourseTotal(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	f.questions.EXPECT().FindCourse(ctx, int64(3)).
		Return(quizbank.Course{ID: 3, Name: "Go Basics"}, nil)
	f.questions.EXPECT().CountQuestions(ctx, int64(3)).Return(20, nil)
	f.reviews.EXPECT().CountByStatus(ctx, int64(1), int64(3)).
		Return(map[scheduler.Status]int{
			scheduler.StatusLearning:  1,
			scheduler.StatusReviewing: 7,
			scheduler.StatusMastered:  4,
		}, nil)

	got, err := f.service.Progress(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, CourseProgress{
		CourseID:   3,
		CourseName: "Go Basics",
		NotLearned: 9,
		Reviewing:  7,
		Mastered:   4,
	}, got)
	assert.Equal(t, 20, got.NotLearned+got.Reviewing+got.Mastered)
}

func TestService_Statistics(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	t.Run("no records", func(t *testing.T) {
		f.reviews.EXPECT().FindByUser(ctx, int64(2)).Return(nil, nil)

		_, err := f.service.Statistics(ctx, 2)
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("hydrates the most repeated question", func(t *testing.T) {
		records := []scheduler.ReviewRecord{
			{QuestionID: 10, RepetitionCount: 2, Status: scheduler.StatusReviewing, CreatedAt: f.now.AddDate(0, 0, -10), LastReviewAt: f.now, NextReviewAt: f.now.AddDate(0, 0, 6)},
			{QuestionID: 11, RepetitionCount: 5, Status: scheduler.StatusMastered, CreatedAt: f.now.AddDate(0, 0, -10), LastReviewAt: f.now, NextReviewAt: f.now.AddDate(0, 0, 40)},
		}
		f.reviews.EXPECT().FindByUser(ctx, int64(1)).Return(records, nil)
		f.questions.EXPECT().FindQuestion(ctx, int64(11)).
			Return(quizbank.Question{ID: 11, Summary: "Channels"}, nil)

		got, err := f.service.Statistics(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 7, got.TotalRepetitions)
		assert.Equal(t, 2, got.LearnedCount)
		assert.Equal(t, 1, got.MasteredCount)
		assert.Equal(t, 10, got.LearningDays)
		require.NotNil(t, got.MaxRepetitionQuestion)
		assert.Equal(t, "Channels", got.MaxRepetitionQuestion.Summary)
	})
}
