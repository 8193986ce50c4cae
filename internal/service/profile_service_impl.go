package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/trackveil/internal/domain"
	"github.com/alexanderramin/trackveil/internal/projector"
	"github.com/alexanderramin/trackveil/internal/repository"
)

type profileService struct {
	store    *repository.EntityStore
	proj     *projector.Projector
	observer UseCaseObserver
}

func NewProfileService(store *repository.EntityStore, proj *projector.Projector, observers ...UseCaseObserver) ProfileService {
	return &profileService{
		store:    store,
		proj:     proj,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *profileService) Create(ctx context.Context, p *domain.Profile) error {
	started := time.Now()
	err := s.create(ctx, p)
	observe(ctx, s.observer, "profile.create", started, err, map[string]any{"profile_id": p.ID})
	return err
}

func (s *profileService) create(ctx context.Context, p *domain.Profile) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("validating profile: %w", err)
	}
	return s.proj.SaveProfile(ctx, p)
}

func (s *profileService) Get(ctx context.Context, id string) (*domain.Profile, error) {
	return s.store.Profiles.GetByID(ctx, id)
}

func (s *profileService) GetByToken(ctx context.Context, token string) (*domain.Profile, error) {
	return s.store.Profiles.GetByAnonymizedID(ctx, token)
}

func (s *profileService) List(ctx context.Context) ([]*domain.Profile, error) {
	return s.store.Profiles.List(ctx)
}

func (s *profileService) ListPublic(ctx context.Context) ([]*domain.Profile, error) {
	return s.store.Profiles.ListPublic(ctx)
}
