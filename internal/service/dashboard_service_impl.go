package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/trackveil/internal/aggregate"
	"github.com/alexanderramin/trackveil/internal/domain"
	"github.com/alexanderramin/trackveil/internal/repository"
)

type dashboardService struct {
	store    *repository.EntityStore
	observer UseCaseObserver
}

func NewDashboardService(store *repository.EntityStore, observers ...UseCaseObserver) DashboardService {
	return &dashboardService{
		store:    store,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *dashboardService) Rollup(ctx context.Context) (*domain.DashboardRollup, error) {
	started := time.Now()
	rollup, err := s.rollup(ctx)
	observe(ctx, s.observer, "dashboard.rollup", started, err, nil)
	return rollup, err
}

func (s *dashboardService) rollup(ctx context.Context) (*domain.DashboardRollup, error) {
	workstreams, err := s.store.Workstreams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading workstreams: %w", err)
	}
	profiles, err := s.store.Profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profiles: %w", err)
	}
	entries, err := s.store.Timesheets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading timesheet entries: %w", err)
	}
	budgets, err := s.store.Budgets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading budget entries: %w", err)
	}
	return aggregate.Dashboard(workstreams, profiles, entries, budgets), nil
}
