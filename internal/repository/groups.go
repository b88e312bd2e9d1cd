package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/errorkid/examquizbot.git/internal/models"
)

type GroupsR struct {
	db QueryI
}

func NewGroupsRepository(db QueryI) *GroupsR {
	return &GroupsR{db: db}
}

func (g *GroupsR) Register(ctx context.Context, group models.GroupSettings) error {
	query := `INSERT INTO groups (chat_id, title, active, interval_seconds)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (chat_id) DO UPDATE SET title = EXCLUDED.title`

	_, err := g.db.ExecContext(ctx, query, group.ChatID, group.Title, group.Active, group.IntervalSeconds)
	if err != nil {
		return fmt.Errorf("failed to register group: %w", err)
	}

	return nil
}

func (g *GroupsR) Group(ctx context.Context, chatID int64) (models.GroupSettings, error) {
	query := `SELECT chat_id, title, active, interval_seconds FROM groups WHERE chat_id = $1`

	var group models.GroupSettings
	if err := g.db.GetContext(ctx, &group, query, chatID); err != nil {
		if err == sql.ErrNoRows {
			return models.GroupSettings{}, fmt.Errorf("group %d is not registered", chatID)
		}
		return models.GroupSettings{}, fmt.Errorf("failed to load group: %w", err)
	}

	return group, nil
}

func (g *GroupsR) SetActive(ctx context.Context, chatID int64, active bool) error {
	_, err := g.db.ExecContext(ctx, `UPDATE groups SET active = $2 WHERE chat_id = $1`, chatID, active)
	if err != nil {
		return fmt.Errorf("failed to toggle group: %w", err)
	}

	return nil
}

func (g *GroupsR) SetInterval(ctx context.Context, chatID int64, seconds int) error {
	_, err := g.db.ExecContext(ctx, `UPDATE groups SET interval_seconds = $2 WHERE chat_id = $1`, chatID, seconds)
	if err != nil {
		return fmt.Errorf("failed to set group interval: %w", err)
	}

	return nil
}

func (g *GroupsR) Groups(ctx context.Context) ([]models.GroupSettings, error) {
	query := `SELECT chat_id, title, active, interval_seconds FROM groups ORDER BY chat_id`

	groups := make([]models.GroupSettings, 0)
	if err := g.db.SelectContext(ctx, &groups, query); err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	return groups, nil
}
