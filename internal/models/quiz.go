package models

type QuizMode string

const (
	ModeNormal QuizMode = "normal"
	ModeReview QuizMode = "mistake_review"
)

type QuizRun struct {
	Questions          []Question
	PerQuestionSeconds int
	ChatID             int64
	UserID             int64
	Category           string
	Subject            string
	Mode               QuizMode
}

type SubjectStats struct {
	Category string `db:"category"`
	Subject  string `db:"subject"`
	Total    int    `db:"total"`
	Correct  int    `db:"correct"`
	Wrong    int    `db:"wrong"`
}
