package service

import (
	"context"

	"gas_delivery/internal/models"
	"gas_delivery/internal/repository"
)

type StatsService struct {
	statsRepo repository.Stats
}

func NewStatsService(repo repository.Stats) *StatsService {
	return &StatsService{statsRepo: repo}
}

func (s *StatsService) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	return s.statsRepo.Dashboard(ctx)
}
