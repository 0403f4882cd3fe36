package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizbank/quizbank/internal/quizbank"
	"github.com/quizbank/quizbank/internal/review"
)

type recordedResponse struct {
	questionID int64
	quality    int
}

type fakeBackend struct {
	newQuestions []quizbank.Question
	dueQuestions []quizbank.Question
	recorded     []recordedResponse
	recordErr    error
}

func (b *fakeBackend) NewQuestions(ctx context.Context, courseID int64, limit int) ([]quizbank.Question, error) {
	return b.newQuestions, nil
}

func (b *fakeBackend) DueQuestions(ctx context.Context, courseID int64, limit int) ([]quizbank.Question, error) {
	return b.dueQuestions, nil
}

func (b *fakeBackend) RecordResponse(ctx context.Context, questionID int64, quality int) (bool, error) {
	if b.recordErr != nil {
		return false, b.recordErr
	}
	b.recorded = append(b.recorded, recordedResponse{questionID: questionID, quality: quality})
	return true, nil
}

func (b *fakeBackend) Progress(ctx context.Context, courseID int64) (review.CourseProgress, error) {
	return review.CourseProgress{}, nil
}

func (b *fakeBackend) Statistics(ctx context.Context) (review.UserStatistics, error) {
	return review.UserStatistics{}, nil
}

func newTestSession(backend Backend, queue []quizbank.Question, input string) (*StudySession, *bytes.Buffer) {
	var output bytes.Buffer
	return &StudySession{
		backend:      backend,
		courseID:     1,
		queue:        queue,
		stdinReader:  bufio.NewReader(strings.NewReader(input)),
		stdoutWriter: &output,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		correct:      color.New(color.FgGreen),
		wrong:        color.New(color.FgRed),
	}, &output
}

func TestNewStudySession_dueQuestionsComeFirst(t *testing.T) {
	backend := &fakeBackend{
		dueQuestions: []quizbank.Question{{ID: 4, Summary: "due"}},
		newQuestions: []quizbank.Question{{ID: 9, Summary: "new"}},
	}

	session, err := NewStudySession(context.Background(), backend, 1, 5, 5)
	require.NoError(t, err)
	require.Equal(t, 2, session.QuestionCount())
	assert.Equal(t, int64(4), session.queue[0].ID)
	assert.Equal(t, int64(9), session.queue[1].ID)
}

func TestStudySession_Session(t *testing.T) {
	question := quizbank.Question{
		ID:                  10,
		Summary:             "Slices vs arrays",
		ContentMarkdown:     "What is the difference between a slice and an array?",
		AnswerMarkdown:      "A slice is a view over an array.",
		ExplanationMarkdown: "Slices carry a pointer, length and capacity.",
	}

	t.Run("records the quality score and advances", func(t *testing.T) {
		backend := &fakeBackend{}
		session, output := newTestSession(backend, []quizbank.Question{question}, "\n5\n")

		err := session.Session(context.Background())
		require.NoError(t, err)

		require.Len(t, backend.recorded, 1)
		assert.Equal(t, recordedResponse{questionID: 10, quality: 5}, backend.recorded[0])
		assert.Equal(t, 0, session.QuestionCount())
		assert.Contains(t, output.String(), "Slices vs arrays")
		assert.Contains(t, output.String(), "A slice is a view over an array.")
		assert.Contains(t, output.String(), "Scheduled for a later review")
	})

	t.Run("failed recall starts the question over", func(t *testing.T) {
		backend := &fakeBackend{}
		session, output := newTestSession(backend, []quizbank.Question{question}, "\n1\n")

		err := session.Session(context.Background())
		require.NoError(t, err)

		require.Len(t, backend.recorded, 1)
		assert.Equal(t, 1, backend.recorded[0].quality)
		assert.Contains(t, output.String(), "starts over from tomorrow")
	})

	t.Run("re-prompts on invalid scores", func(t *testing.T) {
		backend := &fakeBackend{}
		session, output := newTestSession(backend, []quizbank.Question{question}, "\n9\nabc\n4\n")

		err := session.Session(context.Background())
		require.NoError(t, err)

		require.Len(t, backend.recorded, 1)
		assert.Equal(t, 4, backend.recorded[0].quality)
		assert.Contains(t, output.String(), "Please enter a number between 0 and 5.")
	})

	t.Run("quit ends the session", func(t *testing.T) {
		backend := &fakeBackend{}
		session, _ := newTestSession(backend, []quizbank.Question{question}, "\nq\n")

		err := session.Session(context.Background())
		assert.ErrorIs(t, err, errEnd)
		assert.Empty(t, backend.recorded)
	})

	t.Run("empty queue ends the session", func(t *testing.T) {
		backend := &fakeBackend{}
		session, output := newTestSession(backend, nil, "")

		err := session.Session(context.Background())
		assert.ErrorIs(t, err, errEnd)
		assert.Contains(t, output.String(), "No more questions to study!")
	})

	t.Run("record error is returned", func(t *testing.T) {
		backend := &fakeBackend{recordErr: errors.New("server unavailable")}
		session, _ := newTestSession(backend, []quizbank.Question{question}, "\n3\n")

		err := session.Session(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server unavailable")
	})

	t.Run("eof while reading input", func(t *testing.T) {
		backend := &fakeBackend{}
		session, _ := newTestSession(backend, []quizbank.Question{question}, "")

		err := session.Session(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading input")
	})
}

type blockingReader struct {
	started chan struct{}
	unblock chan struct{}
	once    sync.Once
}

func (r *blockingReader) Read(p []byte) (int, error) {
	r.once.Do(func() { close(r.started) })
	<-r.unblock
	return 0, io.EOF
}

func TestStudySession_Run_returnsOnInterrupt(t *testing.T) {
	backend := &fakeBackend{}
	reader := &blockingReader{
		started: make(chan struct{}),
		unblock: make(chan struct{}),
	}
	session, output := newTestSession(backend, []quizbank.Question{
		{ID: 1, Summary: "first", ContentMarkdown: "c1", AnswerMarkdown: "a1"},
	}, "")
	session.stdinReader = bufio.NewReader(reader)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-reader.started
		cancel()
	}()

	err := session.Run(ctx)
	require.NoError(t, err)
	close(reader.unblock)

	assert.Contains(t, output.String(), "Received interrupt signal")
	assert.Empty(t, backend.recorded)
}

func TestStudySession_Run_drainsQueue(t *testing.T) {
	backend := &fakeBackend{}
	questions := []quizbank.Question{
		{ID: 1, Summary: "first", ContentMarkdown: "c1", AnswerMarkdown: "a1"},
		{ID: 2, Summary: "second", ContentMarkdown: "c2", AnswerMarkdown: "a2"},
	}
	session, output := newTestSession(backend, questions, "\n5\n\n2\n")

	err := session.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, backend.recorded, 2)
	assert.Equal(t, recordedResponse{questionID: 1, quality: 5}, backend.recorded[0])
	assert.Equal(t, recordedResponse{questionID: 2, quality: 2}, backend.recorded[1])
	assert.Contains(t, output.String(), "No more questions to study!")
}
