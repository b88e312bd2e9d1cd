package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/errorkid/examquizbot.git/internal/models"
	"go.uber.org/zap"
)

type StatsRI interface {
	RecordAnswer(ctx context.Context, userID int64, category, subject string, correct bool) error
	Stats(ctx context.Context, userID int64) ([]models.SubjectStats, error)
	Reset(ctx context.Context, userID int64) error
}

type MistakesRI interface {
	Add(ctx context.Context, userID int64, category, subject string, q models.Question) error
	Remove(ctx context.Context, userID int64, category, subject, questionText string) error
	Mistakes(ctx context.Context, userID int64, category, subject string) ([]models.Question, error)
	Buckets(ctx context.Context, userID int64) ([]models.MistakeBucket, error)
}

type ResultS struct {
	stats    StatsRI
	mistakes MistakesRI
	log      *zap.Logger
}

func NewResultService(stats StatsRI, mistakes MistakesRI, log *zap.Logger) *ResultS {
	return &ResultS{
		stats:    stats,
		mistakes: mistakes,
		log:      log,
	}
}

// RecordAnswer applies one consumed answer event: exactly one total
// increment, plus the mistake-ledger rules for the quiz mode. A wrong answer
// in normal mode lands in the ledger (deduplicated there); a correct answer
// in review mode leaves it.
func (r *ResultS) RecordAnswer(ctx context.Context, userID int64, category, subject string, mode models.QuizMode, q models.Question, correct bool) error {
	if err := r.stats.RecordAnswer(ctx, userID, category, subject, correct); err != nil {
		r.log.Warn("failed to record answer",
			zap.Int64("user_id", userID), zap.String("subject", subject), zap.Error(err))
		return err
	}

	switch {
	case mode == models.ModeNormal && !correct:
		if err := r.mistakes.Add(ctx, userID, category, subject, q); err != nil {
			r.log.Warn("failed to ledger mistake", zap.Int64("user_id", userID), zap.Error(err))
		}
	case mode == models.ModeReview && correct:
		if err := r.mistakes.Remove(ctx, userID, category, subject, q.Text); err != nil {
			r.log.Warn("failed to clear mistake", zap.Int64("user_id", userID), zap.Error(err))
		}
	}

	return nil
}

func (r *ResultS) ReviewQuestions(ctx context.Context, userID int64, category, subject string) ([]models.Question, error) {
	return r.mistakes.Mistakes(ctx, userID, category, subject)
}

func (r *ResultS) ReviewBuckets(ctx context.Context, userID int64) ([]models.MistakeBucket, error) {
	return r.mistakes.Buckets(ctx, userID)
}

func (r *ResultS) ResetStats(ctx context.Context, userID int64) error {
	return r.stats.Reset(ctx, userID)
}

func (r *ResultS) StatsText(ctx context.Context, userID int64) (string, error) {
	stats, err := r.stats.Stats(ctx, userID)
	if err != nil {
		r.log.Warn("failed to get stats", zap.Int64("user_id", userID), zap.Error(err))
		return "", err
	}

	return statsFormat(stats), nil
}

func statsFormat(stats []models.SubjectStats) string {
	if len(stats) == 0 {
		return "📊 *Stats*\nNo data yet."
	}

	var sb strings.Builder
	sb.WriteString("📊 *Stats*\n")

	category := ""
	for _, s := range stats {
		if s.Category != category {
			category = s.Category
			sb.WriteString("\n🔹 " + category + ":\n")
		}
		sb.WriteString("   - " + s.Subject + ": ")
		sb.WriteString(strconv.Itoa(s.Correct))
		sb.WriteString("/")
		sb.WriteString(strconv.Itoa(s.Total))
		sb.WriteString(" correct\n")
	}

	return sb.String()
}
