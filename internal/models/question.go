package models

const (
	MinOptions = 2
	MaxOptions = 10
)

type Question struct {
	Text         string
	Options      []string
	CorrectIndex int
}

func (q Question) Valid() bool {
	if len(q.Options) < MinOptions || len(q.Options) > MaxOptions {
		return false
	}
	return q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options)
}

type ChapterInfo struct {
	Name          string `db:"name"`
	QuestionCount int    `db:"question_count"`
}
