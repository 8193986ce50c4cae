package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/trackveil/internal/domain"
)

// EntityStore bundles the per-kind repos and answers lookups that are not
// scoped to a single kind.
type EntityStore struct {
	Profiles    ProfileRepo
	Workstreams WorkstreamRepo
	Timesheets  TimesheetRepo
	Budgets     BudgetRepo
	Forecasts   ForecastRepo
}

// NewEntityStore creates an EntityStore over the given repos.
func NewEntityStore(profiles ProfileRepo, workstreams WorkstreamRepo, timesheets TimesheetRepo, budgets BudgetRepo, forecasts ForecastRepo) *EntityStore {
	return &EntityStore{
		Profiles:    profiles,
		Workstreams: workstreams,
		Timesheets:  timesheets,
		Budgets:     budgets,
		Forecasts:   forecasts,
	}
}

// GetByToken resolves an anonymized id to its secure record without knowing
// the kind, probing kinds in domain.KindProbeOrder and returning the first
// hit. Kind prefixes on tokens make a hit in more than one kind impossible,
// but the fixed order is kept so behavior is deterministic either way.
func (s *EntityStore) GetByToken(ctx context.Context, token string) (domain.Entity, error) {
	for _, kind := range domain.KindProbeOrder {
		e, err := s.getKindByToken(ctx, kind, token)
		if err == nil {
			return e, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("token %q: %w", token, ErrNotFound)
}

// GetByOriginal resolves an original id within a single kind.
func (s *EntityStore) GetByOriginal(ctx context.Context, kind domain.EntityKind, id string) (domain.Entity, error) {
	switch kind {
	case domain.KindProfile:
		p, err := s.Profiles.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return p, nil
	case domain.KindWorkstream:
		w, err := s.Workstreams.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return w, nil
	case domain.KindTimesheet:
		t, err := s.Timesheets.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return t, nil
	case domain.KindBudget:
		b, err := s.Budgets.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return b, nil
	case domain.KindForecast:
		f, err := s.Forecasts.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	return nil, fmt.Errorf("unknown entity kind %q", kind)
}

func (s *EntityStore) getKindByToken(ctx context.Context, kind domain.EntityKind, token string) (domain.Entity, error) {
	switch kind {
	case domain.KindProfile:
		p, err := s.Profiles.GetByAnonymizedID(ctx, token)
		if err != nil {
			return nil, err
		}
		return p, nil
	case domain.KindWorkstream:
		w, err := s.Workstreams.GetByAnonymizedID(ctx, token)
		if err != nil {
			return nil, err
		}
		return w, nil
	case domain.KindTimesheet:
		t, err := s.Timesheets.GetByAnonymizedID(ctx, token)
		if err != nil {
			return nil, err
		}
		return t, nil
	case domain.KindBudget:
		b, err := s.Budgets.GetByAnonymizedID(ctx, token)
		if err != nil {
			return nil, err
		}
		return b, nil
	case domain.KindForecast:
		f, err := s.Forecasts.GetByAnonymizedID(ctx, token)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	return nil, fmt.Errorf("unknown entity kind %q", kind)
}
