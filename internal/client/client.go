// Package client is an HTTP client for the quizbank server API, used by the
// CLI when it talks to a remote server instead of a local database.
package client

import (
	"context"
	"fmt"
	"strconv"

	"resty.dev/v3"

	"github.com/quizbank/quizbank/internal/quizbank"
	"github.com/quizbank/quizbank/internal/review"
	"github.com/quizbank/quizbank/internal/statistics"
)

// Client calls the quizbank server API on behalf of one user.
type Client struct {
	httpClient *resty.Client
}

// New creates a new Client for the server at baseURL, acting as userID.
func New(baseURL string, userID int64) *Client {
	httpClient := resty.New()
	httpClient.SetBaseURL(baseURL)
	httpClient.SetHeader("X-User-ID", strconv.FormatInt(userID, 10))
	httpClient.SetHeader("Content-Type", "application/json")

	return &Client{httpClient: httpClient}
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.httpClient.Close()
}

// BulkItemResult is one per-item outcome of a bulk update.
type BulkItemResult struct {
	QuestionID int64  `json:"question_id"`
	Created    bool   `json:"created"`
	Error      string `json:"error"`
}

type bulkRequest struct {
	Updates []review.BulkItem `json:"updates"`
}

type bulkResponse struct {
	Results []BulkItemResult `json:"results"`
}

// BulkRecord submits graded responses and returns the per-item outcomes.
func (c *Client) BulkRecord(ctx context.Context, items []review.BulkItem) ([]BulkItemResult, error) {
	if items == nil {
		items = []review.BulkItem{}
	}
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(bulkRequest{Updates: items}).
		SetResult(&bulkResponse{}).
		Post("/api/learn/records/bulk")
	if err != nil {
		return nil, fmt.Errorf("post bulk records: %w", err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	return response.Result().(*bulkResponse).Results, nil
}

// RecordResponse submits a single graded response.
func (c *Client) RecordResponse(ctx context.Context, questionID int64, quality int) (BulkItemResult, error) {
	results, err := c.BulkRecord(ctx, []review.BulkItem{{QuestionID: questionID, QualityScore: quality}})
	if err != nil {
		return BulkItemResult{}, err
	}
	if len(results) != 1 {
		return BulkItemResult{}, fmt.Errorf("expected 1 result, got %d", len(results))
	}
	return results[0], nil
}

type questionsResponse struct {
	Questions []quizbank.Question `json:"questions"`
}

// NewQuestions returns up to limit unseen questions of a course.
func (c *Client) NewQuestions(ctx context.Context, courseID int64, limit int) ([]quizbank.Question, error) {
	return c.questionQueue(ctx, fmt.Sprintf("/api/learn/courses/%d/new", courseID), limit)
}

// DueQuestions returns up to limit due questions of a course, most overdue first.
func (c *Client) DueQuestions(ctx context.Context, courseID int64, limit int) ([]quizbank.Question, error) {
	return c.questionQueue(ctx, fmt.Sprintf("/api/learn/courses/%d/due", courseID), limit)
}

func (c *Client) questionQueue(ctx context.Context, path string, limit int) ([]quizbank.Question, error) {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&questionsResponse{}).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	return response.Result().(*questionsResponse).Questions, nil
}

// Progress is the course progress document returned by the server.
type Progress struct {
	CourseID       int64 `json:"course_id"`
	CourseName     string `json:"course_name"`
	LearningStatus struct {
		NotLearned int `json:"not_learned"`
		Reviewing  int `json:"reviewing"`
		Mastered   int `json:"mastered"`
	} `json:"learning_status"`
}

// CourseProgress returns the user's progress in a course.
func (c *Client) CourseProgress(ctx context.Context, courseID int64) (Progress, error) {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&Progress{}).
		Get(fmt.Sprintf("/api/learn/courses/%d/progress", courseID))
	if err != nil {
		return Progress{}, fmt.Errorf("get course progress: %w", err)
	}
	if response.IsError() {
		return Progress{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	return *response.Result().(*Progress), nil
}

// Statistics is the user statistics document returned by the server.
type Statistics struct {
	statistics.LearningStatistics
	MaxRepetitionQuestion *quizbank.Question `json:"max_repetition_question"`
}

// UserStatistics returns the user's learning statistics across all courses.
func (c *Client) UserStatistics(ctx context.Context) (Statistics, error) {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&Statistics{}).
		Get("/api/learn/statistics")
	if err != nil {
		return Statistics{}, fmt.Errorf("get statistics: %w", err)
	}
	if response.IsError() {
		return Statistics{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	return *response.Result().(*Statistics), nil
}
