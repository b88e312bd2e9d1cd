package service

import (
	"context"
	"fmt"

	"github.com/errorkid/examquizbot.git/internal/config"
	"go.uber.org/zap"
)

type GateAPII interface {
	IsChatMember(ctx context.Context, chat string, userID int64) (bool, error)
}

type AdminsRI interface {
	IsAdmin(ctx context.Context, userID int64) (bool, error)
	Grant(ctx context.Context, userID int64) error
	Admins(ctx context.Context) ([]int64, error)
}

type AccessS struct {
	gate    GateAPII
	repo    AdminsRI
	ownerID int64
	cfg     config.AccessConfig
	log     *zap.Logger
}

func NewAccessService(gate GateAPII, repo AdminsRI, ownerID int64, cfg config.AccessConfig, log *zap.Logger) *AccessS {
	return &AccessS{
		gate:    gate,
		repo:    repo,
		ownerID: ownerID,
		cfg:     cfg,
		log:     log,
	}
}

func (a *AccessS) IsOwner(userID int64) bool {
	return userID == a.ownerID
}

func (a *AccessS) OwnerID() int64 {
	return a.ownerID
}

func (a *AccessS) IsAdmin(ctx context.Context, userID int64) bool {
	if userID == a.ownerID {
		return true
	}

	admin, err := a.repo.IsAdmin(ctx, userID)
	if err != nil {
		a.log.Warn("failed to check admin, denying", zap.Int64("user_id", userID), zap.Error(err))
		return false
	}

	return admin
}

func (a *AccessS) AddAdmin(ctx context.Context, userID int64) error {
	return a.repo.Grant(ctx, userID)
}

func (a *AccessS) GateLink(category string) string {
	return a.cfg.Gates[category].Link
}

func (a *AccessS) MainChannelLink() string {
	return a.cfg.MainChannelLink
}

// VerifyMainChannel checks membership of the bot's main channel.
func (a *AccessS) VerifyMainChannel(ctx context.Context, userID int64) bool {
	return a.verify(ctx, a.cfg.MainChannel, userID)
}

// VerifyGate checks the category's group gate. Unknown categories pass.
func (a *AccessS) VerifyGate(ctx context.Context, category string, userID int64) bool {
	gate, ok := a.cfg.Gates[category]
	if !ok {
		return true
	}
	return a.verify(ctx, fmt.Sprintf("%d", gate.ChatID), userID)
}

// verify applies the configured failure policy: a check that errors out is
// treated per access.fail_open, never ad hoc per call site.
func (a *AccessS) verify(ctx context.Context, chat string, userID int64) bool {
	joined, err := a.gate.IsChatMember(ctx, chat, userID)
	if err != nil {
		a.log.Warn("membership check failed",
			zap.String("chat", chat), zap.Int64("user_id", userID),
			zap.Bool("fail_open", a.cfg.FailOpen), zap.Error(err))
		return a.cfg.FailOpen
	}

	return joined
}
