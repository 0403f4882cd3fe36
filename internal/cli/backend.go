package cli

import (
	"context"
	"errors"

	"github.com/quizbank/quizbank/internal/client"
	"github.com/quizbank/quizbank/internal/quizbank"
	"github.com/quizbank/quizbank/internal/review"
)

// Backend is the study surface the CLI depends on. It is satisfied by a
// local database-backed service and by the HTTP client, so commands behave
// the same in both modes.
type Backend interface {
	NewQuestions(ctx context.Context, courseID int64, limit int) ([]quizbank.Question, error)
	DueQuestions(ctx context.Context, courseID int64, limit int) ([]quizbank.Question, error)
	RecordResponse(ctx context.Context, questionID int64, quality int) (created bool, err error)
	Progress(ctx context.Context, courseID int64) (review.CourseProgress, error)
	Statistics(ctx context.Context) (review.UserStatistics, error)
}

// LocalBackend runs study flows against a local database, bound to one user.
type LocalBackend struct {
	service *review.Service
	userID  int64
}

// NewLocalBackend creates a new LocalBackend acting as userID.
func NewLocalBackend(service *review.Service, userID int64) *LocalBackend {
	return &LocalBackend{service: service, userID: userID}
}

func (b *LocalBackend) NewQuestions(ctx context.Context, courseID int64, limit int) ([]quizbank.Question, error) {
	return b.service.NewQuestions(ctx, b.userID, courseID, limit)
}

func (b *LocalBackend) DueQuestions(ctx context.Context, courseID int64, limit int) ([]quizbank.Question, error) {
	return b.service.DueQuestions(ctx, b.userID, courseID, limit)
}

func (b *LocalBackend) RecordResponse(ctx context.Context, questionID int64, quality int) (bool, error) {
	_, created, err := b.service.RecordResponse(ctx, b.userID, questionID, quality)
	return created, err
}

func (b *LocalBackend) Progress(ctx context.Context, courseID int64) (review.CourseProgress, error) {
	return b.service.Progress(ctx, b.userID, courseID)
}

func (b *LocalBackend) Statistics(ctx context.Context) (review.UserStatistics, error) {
	return b.service.Statistics(ctx, b.userID)
}

// RemoteBackend runs study flows through the server API.
type RemoteBackend struct {
	client *client.Client
}

// NewRemoteBackend creates a new RemoteBackend over an API client.
func NewRemoteBackend(apiClient *client.Client) *RemoteBackend {
	return &RemoteBackend{client: apiClient}
}

func (b *RemoteBackend) NewQuestions(ctx context.Context, courseID int64, limit int) ([]quizbank.Question, error) {
	return b.client.NewQuestions(ctx, courseID, limit)
}

func (b *RemoteBackend) DueQuestions(ctx context.Context, courseID int64, limit int) ([]quizbank.Question, error) {
	return b.client.DueQuestions(ctx, courseID, limit)
}

func (b *RemoteBackend) RecordResponse(ctx context.Context, questionID int64, quality int) (bool, error) {
	result, err := b.client.RecordResponse(ctx, questionID, quality)
	if err != nil {
		return false, err
	}
	if result.Error != "" {
		return false, errors.New(result.Error)
	}
	return result.Created, nil
}

func (b *RemoteBackend) Progress(ctx context.Context, courseID int64) (review.CourseProgress, error) {
	progress, err := b.client.CourseProgress(ctx, courseID)
	if err != nil {
		return review.CourseProgress{}, err
	}
	return review.CourseProgress{
		CourseID:   progress.CourseID,
		CourseName: progress.CourseName,
		NotLearned: progress.LearningStatus.NotLearned,
		Reviewing:  progress.LearningStatus.Reviewing,
		Mastered:   progress.LearningStatus.Mastered,
	}, nil
}

func (b *RemoteBackend) Statistics(ctx context.Context) (review.UserStatistics, error) {
	stats, err := b.client.UserStatistics(ctx)
	if err != nil {
		return review.UserStatistics{}, err
	}
	return review.UserStatistics{
		LearningStatistics:    stats.LearningStatistics,
		MaxRepetitionQuestion: stats.MaxRepetitionQuestion,
	}, nil
}
