package service

import (
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock/service_mock.go github.com/DanRulev/vocabquiz/internal/service RepositoryI

type RepositoryI interface {
	WordRI
	StatsRI
}

type Service struct {
	*WordS
	*StatsS
	*QuizS
}

func InitServices(repo RepositoryI, log *zap.Logger) *Service {
	return &Service{
		WordS:  NewWordService(repo, log),
		StatsS: NewStatsService(repo, log),
		QuizS:  NewQuizService(repo, log),
	}
}
