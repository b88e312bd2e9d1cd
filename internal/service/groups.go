package service

import (
	"context"

	"github.com/errorkid/examquizbot.git/internal/models"
	"go.uber.org/zap"
)

const DefaultGroupInterval = 600

type GroupsRI interface {
	Register(ctx context.Context, group models.GroupSettings) error
	Group(ctx context.Context, chatID int64) (models.GroupSettings, error)
	SetActive(ctx context.Context, chatID int64, active bool) error
	SetInterval(ctx context.Context, chatID int64, seconds int) error
	Groups(ctx context.Context) ([]models.GroupSettings, error)
}

type GroupsS struct {
	repo GroupsRI
	log  *zap.Logger
}

func NewGroupsService(repo GroupsRI, log *zap.Logger) *GroupsS {
	return &GroupsS{
		repo: repo,
		log:  log,
	}
}

func (g *GroupsS) Register(ctx context.Context, chatID int64, title string) error {
	return g.repo.Register(ctx, models.GroupSettings{
		ChatID:          chatID,
		Title:           title,
		Active:          true,
		IntervalSeconds: DefaultGroupInterval,
	})
}

func (g *GroupsS) Group(ctx context.Context, chatID int64) (models.GroupSettings, error) {
	return g.repo.Group(ctx, chatID)
}

// ToggleActive flips the group's power switch and returns the new state.
func (g *GroupsS) ToggleActive(ctx context.Context, chatID int64) (bool, error) {
	group, err := g.repo.Group(ctx, chatID)
	if err != nil {
		return false, err
	}

	if err := g.repo.SetActive(ctx, chatID, !group.Active); err != nil {
		return false, err
	}

	return !group.Active, nil
}

func (g *GroupsS) SetInterval(ctx context.Context, chatID int64, seconds int) error {
	return g.repo.SetInterval(ctx, chatID, seconds)
}

func (g *GroupsS) Groups(ctx context.Context) ([]models.GroupSettings, error) {
	return g.repo.Groups(ctx)
}
