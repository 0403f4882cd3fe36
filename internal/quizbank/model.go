// Package quizbank provides course and question content storage.
package quizbank

import "time"

// QuestionType is the short code classifying how a question is answered.
type QuestionType string

const (
	QuestionTypeSingleChoice       QuestionType = "SC"
	QuestionTypeMultipleChoice     QuestionType = "MC"
	QuestionTypeFillBlank          QuestionType = "FB"
	QuestionTypeTrueFalse          QuestionType = "TF"
	QuestionTypeCodeParseFillBlank QuestionType = "CPFB"
	QuestionTypeCodeParse          QuestionType = "CP"
	QuestionTypeShortAnswer        QuestionType = "SA"
	QuestionTypeEssay              QuestionType = "ES"
)

// Course groups questions into a study unit.
type Course struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Question is one reviewable item. Content fields hold Markdown.
type Question struct {
	ID                  int64        `db:"id" json:"id"`
	CourseID            int64        `db:"course_id" json:"course_id"`
	QuestionType        QuestionType `db:"question_type" json:"question_type"`
	Summary             string       `db:"summary" json:"summary"`
	ContentMarkdown     string       `db:"content_markdown" json:"content_markdown"`
	AnswerMarkdown      string       `db:"answer_markdown" json:"answer_markdown"`
	ExplanationMarkdown string       `db:"explanation_markdown" json:"explanation_markdown"`
	CreatedAt           time.Time    `db:"created_at" json:"created_at"`
}
