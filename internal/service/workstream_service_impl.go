package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/trackveil/internal/domain"
	"github.com/alexanderramin/trackveil/internal/projector"
	"github.com/alexanderramin/trackveil/internal/repository"
)

// ErrDependencyCycle rejects a workstream whose dependencies would close a
// cycle in the dependency graph.
var ErrDependencyCycle = errors.New("workstream dependency cycle")

type workstreamService struct {
	store    *repository.EntityStore
	proj     *projector.Projector
	observer UseCaseObserver
}

func NewWorkstreamService(store *repository.EntityStore, proj *projector.Projector, observers ...UseCaseObserver) WorkstreamService {
	return &workstreamService{
		store:    store,
		proj:     proj,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *workstreamService) Create(ctx context.Context, w *domain.Workstream) error {
	started := time.Now()
	err := s.create(ctx, w)
	observe(ctx, s.observer, "workstream.create", started, err, map[string]any{"workstream_id": w.ID})
	return err
}

func (s *workstreamService) create(ctx context.Context, w *domain.Workstream) error {
	if err := w.Validate(); err != nil {
		return fmt.Errorf("validating workstream: %w", err)
	}
	if len(w.Dependencies) > 0 {
		if err := s.checkCycle(ctx, w); err != nil {
			return err
		}
	}
	return s.proj.SaveWorkstream(ctx, w)
}

// checkCycle rejects the write when w's dependencies would close a cycle.
// Dependencies on ids that do not exist yet are accepted and flagged through
// the observer; they cannot form a cycle until the other side is written.
func (s *workstreamService) checkCycle(ctx context.Context, w *domain.Workstream) error {
	existing, err := s.store.Workstreams.List(ctx)
	if err != nil {
		return fmt.Errorf("loading workstreams for cycle check: %w", err)
	}

	graph := make(map[string][]string, len(existing)+1)
	known := make(map[string]bool, len(existing)+1)
	for _, other := range existing {
		graph[other.ID] = other.Dependencies
		known[other.ID] = true
	}
	graph[w.ID] = w.Dependencies
	known[w.ID] = true

	for _, dep := range w.Dependencies {
		if !known[dep] {
			s.observer.ObserveUseCase(ctx, UseCaseEvent{
				Name:    "workstream.create",
				Success: true,
				Fields:  map[string]any{"workstream_id": w.ID, "unresolved_dependency": dep},
			})
		}
	}

	// DFS cycle detection
	const (
		white = 0 // unvisited
		gray  = 1 // in current path
		black = 2 // fully processed
	)
	color := make(map[string]int)

	var visit func(node string) error
	visit = func(node string) error {
		color[node] = gray
		for _, neighbor := range graph[node] {
			if color[neighbor] == gray {
				return fmt.Errorf("%w: involving %q and %q", ErrDependencyCycle, node, neighbor)
			}
			if color[neighbor] == white {
				if err := visit(neighbor); err != nil {
					return err
				}
			}
		}
		color[node] = black
		return nil
	}
	return visit(w.ID)
}

func (s *workstreamService) Get(ctx context.Context, id string) (*domain.Workstream, error) {
	return s.store.Workstreams.GetByID(ctx, id)
}

func (s *workstreamService) GetByToken(ctx context.Context, token string) (*domain.Workstream, error) {
	return s.store.Workstreams.GetByAnonymizedID(ctx, token)
}

func (s *workstreamService) List(ctx context.Context) ([]*domain.Workstream, error) {
	return s.store.Workstreams.List(ctx)
}

func (s *workstreamService) ListPublic(ctx context.Context) ([]*domain.Workstream, error) {
	return s.store.Workstreams.ListPublic(ctx)
}
