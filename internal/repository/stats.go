package repository

import (
	"context"
	"fmt"

	"github.com/errorkid/examquizbot.git/internal/models"
)

type StatsR struct {
	db QueryI
}

func NewStatsRepository(db QueryI) *StatsR {
	return &StatsR{db: db}
}

// RecordAnswer bumps the per-subject counters in one atomic upsert, so
// concurrent answer events never lose increments.
func (s *StatsR) RecordAnswer(ctx context.Context, userID int64, category, subject string, correct bool) error {
	right, wrong := 0, 1
	if correct {
		right, wrong = 1, 0
	}

	query := `INSERT INTO user_stats (user_id, category, subject, total, correct, wrong)
		VALUES ($1, $2, $3, 1, $4, $5)
		ON CONFLICT (user_id, category, subject)
		DO UPDATE SET
			total = user_stats.total + 1,
			correct = user_stats.correct + EXCLUDED.correct,
			wrong = user_stats.wrong + EXCLUDED.wrong
		`

	_, err := s.db.ExecContext(ctx, query, userID, category, subject, right, wrong)
	if err != nil {
		return fmt.Errorf("failed to record answer: %w", err)
	}

	return nil
}

func (s *StatsR) Stats(ctx context.Context, userID int64) ([]models.SubjectStats, error) {
	query := `SELECT category, subject, total, correct, wrong
		FROM user_stats
		WHERE user_id = $1
		ORDER BY category, subject`

	stats := make([]models.SubjectStats, 0)
	if err := s.db.SelectContext(ctx, &stats, query, userID); err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	return stats, nil
}

// Reset wipes a user's counters. Admin action only.
func (s *StatsR) Reset(ctx context.Context, userID int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM user_stats WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to reset stats: %w", err)
	}

	return nil
}
