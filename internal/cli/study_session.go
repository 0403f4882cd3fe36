// Package cli implements the interactive study session and the backends it
// runs against.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/quizbank/quizbank/internal/quizbank"
)

var errEnd = errors.New("end")

// StudySession runs an interactive review loop over one course: due
// questions first, then unseen ones.
type StudySession struct {
	backend      Backend
	courseID     int64
	queue        []quizbank.Question
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	correct      *color.Color
	wrong        *color.Color
}

// NewStudySession loads the user's study queue for a course. Due questions
// come before new ones so overdue reviews are never starved.
func NewStudySession(ctx context.Context, backend Backend, courseID int64, newLimit, dueLimit int) (*StudySession, error) {
	dueQuestions, err := backend.DueQuestions(ctx, courseID, dueLimit)
	if err != nil {
		return nil, fmt.Errorf("load due questions: %w", err)
	}
	newQuestions, err := backend.NewQuestions(ctx, courseID, newLimit)
	if err != nil {
		return nil, fmt.Errorf("load new questions: %w", err)
	}

	return &StudySession{
		backend:      backend,
		courseID:     courseID,
		queue:        append(dueQuestions, newQuestions...),
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		correct:      color.New(color.FgGreen),
		wrong:        color.New(color.FgRed),
	}, nil
}

// QuestionCount returns the number of questions left in the session.
func (s *StudySession) QuestionCount() int {
	return len(s.queue)
}

// Run drives the session until the queue is empty, the user quits, or an
// interrupt arrives.
func (s *StudySession) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	// Buffered so the session goroutine can finish even when the interrupt
	// branch of the select below wins.
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := s.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Fprintln(s.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// Session shows one question, reveals its answer, and records the user's
// self-graded quality score.
func (s *StudySession) Session(ctx context.Context) error {
	if len(s.queue) == 0 {
		fmt.Fprintln(s.stdoutWriter, "No more questions to study!")
		return errEnd
	}
	question := s.queue[0]

	_, _ = s.bold.Fprintf(s.stdoutWriter, "%s\n", question.Summary)
	fmt.Fprintf(s.stdoutWriter, "%s\n\n", strings.TrimSpace(question.ContentMarkdown))
	fmt.Fprint(s.stdoutWriter, "Press Enter to reveal the answer...")
	if _, err := s.stdinReader.ReadString('\n'); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	fmt.Fprint(s.stdoutWriter, "\nAnswer: ")
	_, _ = s.italic.Fprintf(s.stdoutWriter, "%s\n", strings.TrimSpace(question.AnswerMarkdown))
	if question.ExplanationMarkdown != "" {
		fmt.Fprintf(s.stdoutWriter, "%s\n", strings.TrimSpace(question.ExplanationMarkdown))
	}
	fmt.Fprintln(s.stdoutWriter)

	quality, err := s.readQualityScore()
	if err != nil {
		return err
	}

	if _, err := s.backend.RecordResponse(ctx, question.ID, quality); err != nil {
		return fmt.Errorf("record response: %w", err)
	}

	if quality >= 3 {
		_, _ = s.correct.Fprintf(s.stdoutWriter, "✅ Recorded %d. Scheduled for a later review.\n", quality)
	} else {
		_, _ = s.wrong.Fprintf(s.stdoutWriter, "❌ Recorded %d. This question starts over from tomorrow.\n", quality)
	}
	fmt.Fprintln(s.stdoutWriter)

	s.queue = s.queue[1:]
	return nil
}

// readQualityScore prompts until the user enters a score between 0 and 5,
// or quits with "q".
func (s *StudySession) readQualityScore() (int, error) {
	for {
		fmt.Fprint(s.stdoutWriter, "How well did you recall it? (0-5, q to quit): ")
		line, err := s.stdinReader.ReadString('\n')
		if err != nil {
			return 0, fmt.Errorf("error reading input: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "q" || input == "quit" {
			return 0, errEnd
		}
		quality, err := strconv.Atoi(input)
		if err != nil || quality < 0 || quality > 5 {
			fmt.Fprintln(s.stdoutWriter, "Please enter a number between 0 and 5.")
			continue
		}
		return quality, nil
	}
}
