package repository

import (
	"context"
	"fmt"

	"github.com/errorkid/examquizbot.git/internal/models"
	"github.com/lib/pq"
)

type MistakesR struct {
	db QueryI
}

func NewMistakesRepository(db QueryI) *MistakesR {
	return &MistakesR{db: db}
}

// Add stores a missed question. The primary key on (user_id, category,
// subject, question) deduplicates repeat misses of the same question.
func (m *MistakesR) Add(ctx context.Context, userID int64, category, subject string, q models.Question) error {
	query := `INSERT INTO user_mistakes (user_id, category, subject, question, options, correct_index)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, category, subject, question) DO NOTHING`

	_, err := m.db.ExecContext(ctx, query, userID, category, subject, q.Text, pq.StringArray(q.Options), q.CorrectIndex)
	if err != nil {
		return fmt.Errorf("failed to add mistake: %w", err)
	}

	return nil
}

func (m *MistakesR) Remove(ctx context.Context, userID int64, category, subject, questionText string) error {
	query := `DELETE FROM user_mistakes
		WHERE user_id = $1 AND category = $2 AND subject = $3 AND question = $4`

	_, err := m.db.ExecContext(ctx, query, userID, category, subject, questionText)
	if err != nil {
		return fmt.Errorf("failed to remove mistake: %w", err)
	}

	return nil
}

func (m *MistakesR) Mistakes(ctx context.Context, userID int64, category, subject string) ([]models.Question, error) {
	query := `SELECT question, options, correct_index FROM user_mistakes
		WHERE user_id = $1 AND category = $2 AND subject = $3
		ORDER BY added_at`

	var rows []questionRow
	if err := m.db.SelectContext(ctx, &rows, query, userID, category, subject); err != nil {
		return nil, fmt.Errorf("failed to load mistakes: %w", err)
	}

	questions := make([]models.Question, 0, len(rows))
	for _, row := range rows {
		questions = append(questions, row.toModel())
	}

	return questions, nil
}

// Buckets lists the (category, subject) pairs where the user has ledgered
// mistakes, used to build the review menus.
func (m *MistakesR) Buckets(ctx context.Context, userID int64) ([]models.MistakeBucket, error) {
	query := `SELECT category, subject, COUNT(*) AS count
		FROM user_mistakes
		WHERE user_id = $1
		GROUP BY category, subject
		ORDER BY category, subject`

	buckets := make([]models.MistakeBucket, 0)
	if err := m.db.SelectContext(ctx, &buckets, query, userID); err != nil {
		return nil, fmt.Errorf("failed to load mistake buckets: %w", err)
	}

	return buckets, nil
}
