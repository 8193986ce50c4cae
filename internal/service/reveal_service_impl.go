package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/trackveil/internal/privacy"
	"github.com/alexanderramin/trackveil/internal/repository"
)

type revealService struct {
	store    *repository.EntityStore
	mapper   *privacy.TokenMapper
	observer UseCaseObserver
}

func NewRevealService(store *repository.EntityStore, mapper *privacy.TokenMapper, observers ...UseCaseObserver) RevealService {
	return &revealService{
		store:    store,
		mapper:   mapper,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Reveal resolves a token back to what it stands for: a field-level pseudonym
// reverses through the mapper, an anonymized entity id resolves to its secure
// record. Every reveal is reported to the observer; this is the audit trail
// for de-pseudonymization.
func (s *revealService) Reveal(ctx context.Context, token string) (*Revealed, error) {
	started := time.Now()
	revealed, err := s.reveal(ctx, token)
	observe(ctx, s.observer, "reveal", started, err, map[string]any{"token": token})
	return revealed, err
}

func (s *revealService) reveal(ctx context.Context, token string) (*Revealed, error) {
	original, category, err := s.mapper.ReverseAny(ctx, token)
	if err == nil {
		return &Revealed{Token: token, Original: original, Category: category}, nil
	}
	if !errors.Is(err, privacy.ErrNotFound) {
		return nil, err
	}

	entity, err := s.store.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("token %q: %w", token, repository.ErrNotFound)
		}
		return nil, err
	}
	return &Revealed{Token: token, Original: entity.Key(), Entity: entity}, nil
}
