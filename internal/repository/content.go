package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/errorkid/examquizbot.git/internal/models"
	"github.com/lib/pq"
)

type ContentR struct {
	db QueryI
}

func NewContentRepository(db QueryI) *ContentR {
	return &ContentR{db: db}
}

type questionRow struct {
	Question     string         `db:"question"`
	Options      pq.StringArray `db:"options"`
	CorrectIndex int            `db:"correct_index"`
}

func (r questionRow) toModel() models.Question {
	return models.Question{
		Text:         r.Question,
		Options:      []string(r.Options),
		CorrectIndex: r.CorrectIndex,
	}
}

func (c *ContentR) Categories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT category FROM subjects ORDER BY category`

	var categories []string
	if err := c.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	return categories, nil
}

func (c *ContentR) Subjects(ctx context.Context, category string) ([]string, error) {
	query := `SELECT name FROM subjects WHERE category = $1 ORDER BY position`

	var subjects []string
	if err := c.db.SelectContext(ctx, &subjects, query, category); err != nil {
		return nil, fmt.Errorf("failed to load subjects: %w", err)
	}

	return subjects, nil
}

// Chapters lists the subject's chapters with their question counts. Empty
// chapters are present with a zero count.
func (c *ContentR) Chapters(ctx context.Context, category, subject string) ([]models.ChapterInfo, error) {
	query := `
		SELECT ch.name, COUNT(q.id) AS question_count
		FROM chapters ch
		LEFT JOIN questions q
			ON q.category = ch.category AND q.subject = ch.subject AND q.chapter = ch.name
		WHERE ch.category = $1 AND ch.subject = $2
		GROUP BY ch.name
		ORDER BY ch.name
	`

	chapters := make([]models.ChapterInfo, 0)
	if err := c.db.SelectContext(ctx, &chapters, query, category, subject); err != nil {
		return nil, fmt.Errorf("failed to load chapters: %w", err)
	}

	return chapters, nil
}

func (c *ContentR) CreateChapter(ctx context.Context, category, subject, name string) error {
	query := `INSERT INTO chapters (category, subject, name) VALUES ($1, $2, $3)
		ON CONFLICT (category, subject, name) DO NOTHING`

	_, err := c.db.ExecContext(ctx, query, category, subject, name)
	if err != nil {
		return fmt.Errorf("failed to create chapter: %w", err)
	}

	return nil
}

// DeleteChapter removes the chapter and all of its questions. Partial edits
// of a chapter are not supported.
func (c *ContentR) DeleteChapter(ctx context.Context, category, subject, name string) error {
	_, err := c.db.ExecContext(ctx,
		`DELETE FROM questions WHERE category = $1 AND subject = $2 AND chapter = $3`,
		category, subject, name)
	if err != nil {
		return fmt.Errorf("failed to delete chapter questions: %w", err)
	}

	_, err = c.db.ExecContext(ctx,
		`DELETE FROM chapters WHERE category = $1 AND subject = $2 AND name = $3`,
		category, subject, name)
	if err != nil {
		return fmt.Errorf("failed to delete chapter: %w", err)
	}

	return nil
}

func (c *ContentR) AddQuestion(ctx context.Context, category, subject, chapter string, q models.Question) error {
	query := `INSERT INTO questions (category, subject, chapter, question, options, correct_index)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := c.db.ExecContext(ctx, query, category, subject, chapter, q.Text, pq.StringArray(q.Options), q.CorrectIndex)
	if err != nil {
		return fmt.Errorf("failed to add question: %w", err)
	}

	return nil
}

// RandomQuestion picks one question across the whole repository, used by
// the group auto-quiz job.
func (c *ContentR) RandomQuestion(ctx context.Context) (models.Question, error) {
	query := `SELECT question, options, correct_index FROM questions
		ORDER BY RANDOM()
		LIMIT 1`

	var row questionRow
	if err := c.db.GetContext(ctx, &row, query); err != nil {
		if err == sql.ErrNoRows {
			return models.Question{}, fmt.Errorf("no questions stored yet")
		}
		return models.Question{}, fmt.Errorf("failed to load random question: %w", err)
	}

	return row.toModel(), nil
}

func (c *ContentR) QuestionsByChapters(ctx context.Context, category, subject string, chapters []string) ([]models.Question, error) {
	query := `SELECT question, options, correct_index FROM questions
		WHERE category = $1 AND subject = $2 AND chapter = ANY($3)`

	var rows []questionRow
	if err := c.db.SelectContext(ctx, &rows, query, category, subject, pq.StringArray(chapters)); err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	questions := make([]models.Question, 0, len(rows))
	for _, row := range rows {
		questions = append(questions, row.toModel())
	}

	return questions, nil
}
