package services

import (
	"context"

	"github.com/atelier-dourado/backoffice/modules/stats/domain"
)

type StatsService struct {
	repo domain.Repository
}

func NewStatsService(repo domain.Repository) *StatsService {
	return &StatsService{repo: repo}
}

func (s *StatsService) Overview(ctx context.Context) (*domain.Overview, error) {
	return s.repo.Overview(ctx)
}
