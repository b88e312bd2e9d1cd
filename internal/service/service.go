package service

import (
	"github.com/errorkid/examquizbot.git/internal/config"
	"go.uber.org/zap"
)

type RepositoryI interface {
	ContentRI
	StatsRI
	MistakesRI
	AdminsRI
	GroupsRI
}

type Service struct {
	*ContentS
	*ResultS
	*AccessS
	*GroupsS
}

func InitServices(api GateAPII, repo RepositoryI, cfg *config.Config, log *zap.Logger) *Service {
	return &Service{
		ContentS: NewContentService(repo, log),
		ResultS:  NewResultService(repo, repo, log),
		AccessS:  NewAccessService(api, repo, cfg.OwnerID, cfg.Access, log),
		GroupsS:  NewGroupsService(repo, log),
	}
}
