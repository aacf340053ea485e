package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/model"
	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/repository"
)

// recentLogLimit is how many login events the admin overview shows.
const recentLogLimit = 10

// StatsService aggregates the counters and recent activity for the admin
// view.
type StatsService struct {
	accounts     repository.AccountRepository
	institutions repository.InstitutionRepository
	events       repository.LoginEventRepository
	logger       *slog.Logger
}

func NewStatsService(
	accounts repository.AccountRepository,
	institutions repository.InstitutionRepository,
	events repository.LoginEventRepository,
	logger *slog.Logger,
) *StatsService {
	return &StatsService{
		accounts:     accounts,
		institutions: institutions,
		events:       events,
		logger:       logger,
	}
}

// Overview is the admin statistics payload. The json tags are the wire
// contract of GET /api/admin/stats.
type Overview struct {
	TotalVisits       int                 `json:"total_visits"`
	TotalUsers        int                 `json:"total_users"`
	TotalInstitutions int                 `json:"total_institutions"`
	RecentLogs        []model.RecentLogin `json:"recent_logs"`
}

// Overview gathers the visit/user/institution totals and the ten most
// recent logins, newest first.
func (s *StatsService) Overview(ctx context.Context) (*Overview, error) {
	visits, err := s.events.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/stats: counting visits: %w", err)
	}

	users, err := s.accounts.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/stats: counting users: %w", err)
	}

	institutions, err := s.institutions.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/stats: counting institutions: %w", err)
	}

	recent, err := s.events.Recent(ctx, recentLogLimit)
	if err != nil {
		return nil, fmt.Errorf("service/stats: loading recent logins: %w", err)
	}

	return &Overview{
		TotalVisits:       visits,
		TotalUsers:        users,
		TotalInstitutions: institutions,
		RecentLogs:        recent,
	}, nil
}
