package service

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/errorkid/examquizbot.git/internal/models"
	"go.uber.org/zap"
)

type ContentRI interface {
	Categories(ctx context.Context) ([]string, error)
	Subjects(ctx context.Context, category string) ([]string, error)
	Chapters(ctx context.Context, category, subject string) ([]models.ChapterInfo, error)
	CreateChapter(ctx context.Context, category, subject, name string) error
	DeleteChapter(ctx context.Context, category, subject, name string) error
	AddQuestion(ctx context.Context, category, subject, chapter string, q models.Question) error
	QuestionsByChapters(ctx context.Context, category, subject string, chapters []string) ([]models.Question, error)
	RandomQuestion(ctx context.Context) (models.Question, error)
}

type ContentS struct {
	repo ContentRI
	log  *zap.Logger
}

func NewContentService(repo ContentRI, log *zap.Logger) *ContentS {
	return &ContentS{
		repo: repo,
		log:  log,
	}
}

func (c *ContentS) Categories(ctx context.Context) ([]string, error) {
	return c.repo.Categories(ctx)
}

func (c *ContentS) Subjects(ctx context.Context, category string) ([]string, error) {
	return c.repo.Subjects(ctx, category)
}

func (c *ContentS) Chapters(ctx context.Context, category, subject string) ([]models.ChapterInfo, error) {
	return c.repo.Chapters(ctx, category, subject)
}

func (c *ContentS) CreateChapter(ctx context.Context, category, subject, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("chapter name is empty")
	}
	return c.repo.CreateChapter(ctx, category, subject, name)
}

func (c *ContentS) DeleteChapter(ctx context.Context, category, subject, name string) error {
	return c.repo.DeleteChapter(ctx, category, subject, name)
}

func (c *ContentS) AddQuestion(ctx context.Context, category, subject, chapter string, q models.Question) error {
	if !q.Valid() {
		return fmt.Errorf("invalid question: %d options, correct index %d", len(q.Options), q.CorrectIndex)
	}
	return c.repo.AddQuestion(ctx, category, subject, chapter, q)
}

func (c *ContentS) RandomQuestion(ctx context.Context) (models.Question, error) {
	return c.repo.RandomQuestion(ctx)
}

// SampleQuestions draws a uniform sample without replacement from the chapter
// set. Asking for more questions than exist returns everything available,
// never an error.
func (c *ContentS) SampleQuestions(ctx context.Context, category, subject string, chapters []string, count int) ([]models.Question, error) {
	pool, err := c.repo.QuestionsByChapters(ctx, category, subject, chapters)
	if err != nil {
		c.log.Warn("failed to load question pool",
			zap.String("category", category), zap.String("subject", subject), zap.Error(err))
		return nil, err
	}

	if count <= 0 || len(pool) == 0 {
		return nil, nil
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if count < len(pool) {
		pool = pool[:count]
	}

	return pool, nil
}

// ImportQuestions parses a bulk text block, one question per line:
//
//	question | option1 | option2 [| more options] | correct_index
//
// Malformed lines are skipped individually; the returned count covers only
// the questions actually stored.
func (c *ContentS) ImportQuestions(ctx context.Context, category, subject, chapter, text string) (int, error) {
	imported := 0

	for _, line := range strings.Split(text, "\n") {
		q, ok := parseImportLine(line)
		if !ok {
			continue
		}

		if err := c.repo.AddQuestion(ctx, category, subject, chapter, q); err != nil {
			return imported, fmt.Errorf("import stopped after %d questions: %w", imported, err)
		}
		imported++
	}

	return imported, nil
}

func parseImportLine(line string) (models.Question, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return models.Question{}, false
	}

	parts := strings.Split(line, "|")
	// question + at least two options + correct index
	if len(parts) < 4 {
		return models.Question{}, false
	}

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	correct, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return models.Question{}, false
	}

	q := models.Question{
		Text:         parts[0],
		Options:      parts[1 : len(parts)-1],
		CorrectIndex: correct,
	}

	if q.Text == "" || !q.Valid() {
		return models.Question{}, false
	}
	for _, opt := range q.Options {
		if opt == "" {
			return models.Question{}, false
		}
	}

	return q, true
}
