package projector

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/alexanderramin/trackveil/internal/db"
	"github.com/alexanderramin/trackveil/internal/domain"
	"github.com/alexanderramin/trackveil/internal/privacy"
	"github.com/alexanderramin/trackveil/internal/repository"
)

// DesyncError reports that the public projection of a save could not be
// written. The surrounding transaction rolls the secure write back too, so
// the partitions stay consistent; the error is surfaced so callers can alert
// on projection failures rather than retry blindly.
type DesyncError struct {
	Kind domain.EntityKind
	ID   string
	Err  error
}

func (e *DesyncError) Error() string {
	return fmt.Sprintf("projecting %s %s to public partition: %v", e.Kind, e.ID, e.Err)
}

func (e *DesyncError) Unwrap() error { return e.Err }

// Projector writes each entity to both partitions in one transaction: the
// secure table gets the record as-is, the public table gets a copy whose
// sensitive fields are replaced with stable pseudonym tokens. Token minting
// happens inside the same transaction, so a rolled-back save leaves no
// orphan mappings behind.
type Projector struct {
	uow  db.UnitOfWork
	anon *privacy.Anonymizer
}

// New creates a Projector over the given unit of work.
func New(uow db.UnitOfWork, anon *privacy.Anonymizer) *Projector {
	return &Projector{uow: uow, anon: anon}
}

// SaveProfile upserts a profile into both partitions. A missing id is
// assigned; the anonymized id is always rederived from the original id.
func (pr *Projector) SaveProfile(ctx context.Context, p *domain.Profile) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.AnonymizedID = pr.anon.ID(domain.KindProfile, p.ID)

	err := pr.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteProfileRepo(tx)
		if err := repo.Put(ctx, p); err != nil {
			return fmt.Errorf("storing secure profile: %w", err)
		}
		pub, err := pr.publicProfile(ctx, privacy.NewTokenMapper(tx), p)
		if err != nil {
			return &DesyncError{Kind: domain.KindProfile, ID: p.ID, Err: err}
		}
		if err := repo.PutPublic(ctx, pub); err != nil {
			return &DesyncError{Kind: domain.KindProfile, ID: p.ID, Err: err}
		}
		return nil
	})
	return pr.observe(domain.KindProfile, err)
}

// SaveWorkstream upserts a workstream into both partitions.
func (pr *Projector) SaveWorkstream(ctx context.Context, w *domain.Workstream) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	w.AnonymizedID = pr.anon.ID(domain.KindWorkstream, w.ID)

	err := pr.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteWorkstreamRepo(tx)
		if err := repo.Put(ctx, w); err != nil {
			return fmt.Errorf("storing secure workstream: %w", err)
		}
		pub, err := pr.publicWorkstream(ctx, privacy.NewTokenMapper(tx), w)
		if err != nil {
			return &DesyncError{Kind: domain.KindWorkstream, ID: w.ID, Err: err}
		}
		if err := repo.PutPublic(ctx, pub); err != nil {
			return &DesyncError{Kind: domain.KindWorkstream, ID: w.ID, Err: err}
		}
		return nil
	})
	return pr.observe(domain.KindWorkstream, err)
}

// SaveTimesheet upserts a timesheet entry into both partitions.
func (pr *Projector) SaveTimesheet(ctx context.Context, t *domain.TimesheetEntry) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.AnonymizedID = pr.anon.ID(domain.KindTimesheet, t.ID)

	err := pr.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteTimesheetRepo(tx)
		if err := repo.Put(ctx, t); err != nil {
			return fmt.Errorf("storing secure timesheet entry: %w", err)
		}
		pub, err := pr.publicTimesheet(ctx, privacy.NewTokenMapper(tx), t)
		if err != nil {
			return &DesyncError{Kind: domain.KindTimesheet, ID: t.ID, Err: err}
		}
		if err := repo.PutPublic(ctx, pub); err != nil {
			return &DesyncError{Kind: domain.KindTimesheet, ID: t.ID, Err: err}
		}
		return nil
	})
	return pr.observe(domain.KindTimesheet, err)
}

// SaveBudget upserts a budget entry into both partitions.
func (pr *Projector) SaveBudget(ctx context.Context, b *domain.BudgetEntry) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	b.AnonymizedID = pr.anon.ID(domain.KindBudget, b.ID)

	err := pr.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteBudgetRepo(tx)
		if err := repo.Put(ctx, b); err != nil {
			return fmt.Errorf("storing secure budget entry: %w", err)
		}
		pub, err := pr.publicBudget(ctx, privacy.NewTokenMapper(tx), b)
		if err != nil {
			return &DesyncError{Kind: domain.KindBudget, ID: b.ID, Err: err}
		}
		if err := repo.PutPublic(ctx, pub); err != nil {
			return &DesyncError{Kind: domain.KindBudget, ID: b.ID, Err: err}
		}
		return nil
	})
	return pr.observe(domain.KindBudget, err)
}

// SaveForecast upserts a budget forecast into both partitions.
func (pr *Projector) SaveForecast(ctx context.Context, f *domain.BudgetForecast) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	f.AnonymizedID = pr.anon.ID(domain.KindForecast, f.ID)

	err := pr.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteForecastRepo(tx)
		if err := repo.Put(ctx, f); err != nil {
			return fmt.Errorf("storing secure forecast: %w", err)
		}
		pub, err := pr.publicForecast(ctx, privacy.NewTokenMapper(tx), f)
		if err != nil {
			return &DesyncError{Kind: domain.KindForecast, ID: f.ID, Err: err}
		}
		if err := repo.PutPublic(ctx, pub); err != nil {
			return &DesyncError{Kind: domain.KindForecast, ID: f.ID, Err: err}
		}
		return nil
	})
	return pr.observe(domain.KindForecast, err)
}

// observe records metrics for a completed save attempt and passes err through.
func (pr *Projector) observe(kind domain.EntityKind, err error) error {
	if err == nil {
		savesTotal.WithLabelValues(string(kind)).Inc()
		return nil
	}
	var de *DesyncError
	if errors.As(err, &de) {
		desyncTotal.WithLabelValues(string(de.Kind)).Inc()
	}
	return err
}

func (pr *Projector) publicProfile(ctx context.Context, mapper *privacy.TokenMapper, p *domain.Profile) (*domain.Profile, error) {
	pub := *p
	pub.ID = ""

	var err error
	if pub.Name, err = mapper.Resolve(ctx, privacy.CategoryUsers, p.Name); err != nil {
		return nil, err
	}
	if pub.Role, err = mapper.Resolve(ctx, privacy.CategoryNotes, p.Role); err != nil {
		return nil, err
	}
	if pub.Skills, err = mapper.ResolveAll(ctx, privacy.CategoryNotes, p.Skills); err != nil {
		return nil, err
	}
	if pub.Workstreams, err = mapper.ResolveAll(ctx, privacy.CategoryWorkstreams, p.Workstreams); err != nil {
		return nil, err
	}
	if len(p.AllocatedHours) > 0 {
		alloc := make(map[string]float64, len(p.AllocatedHours))
		for wsID, hours := range p.AllocatedHours {
			token, err := mapper.Resolve(ctx, privacy.CategoryWorkstreams, wsID)
			if err != nil {
				return nil, err
			}
			alloc[token] = hours
		}
		pub.AllocatedHours = alloc
	}
	return &pub, nil
}

func (pr *Projector) publicWorkstream(ctx context.Context, mapper *privacy.TokenMapper, w *domain.Workstream) (*domain.Workstream, error) {
	pub := *w
	pub.ID = ""

	var err error
	if pub.Name, err = mapper.Resolve(ctx, privacy.CategoryWorkstreams, w.Name); err != nil {
		return nil, err
	}
	if pub.Description, err = mapper.Resolve(ctx, privacy.CategoryNotes, w.Description); err != nil {
		return nil, err
	}
	if pub.Tags, err = mapper.ResolveAll(ctx, privacy.CategoryNotes, w.Tags); err != nil {
		return nil, err
	}
	if pub.AssignedProfiles, err = mapper.ResolveAll(ctx, privacy.CategoryUsers, w.AssignedProfiles); err != nil {
		return nil, err
	}
	if pub.Dependencies, err = mapper.ResolveAll(ctx, privacy.CategoryWorkstreams, w.Dependencies); err != nil {
		return nil, err
	}
	return &pub, nil
}

func (pr *Projector) publicTimesheet(ctx context.Context, mapper *privacy.TokenMapper, t *domain.TimesheetEntry) (*domain.TimesheetEntry, error) {
	pub := *t
	pub.ID = ""

	var err error
	if pub.UserID, err = mapper.Resolve(ctx, privacy.CategoryUsers, t.UserID); err != nil {
		return nil, err
	}
	if pub.WorkstreamID, err = mapper.Resolve(ctx, privacy.CategoryWorkstreams, t.WorkstreamID); err != nil {
		return nil, err
	}
	if pub.Notes, err = mapper.Resolve(ctx, privacy.CategoryNotes, t.Notes); err != nil {
		return nil, err
	}
	if pub.ApprovedBy, err = mapper.Resolve(ctx, privacy.CategoryUsers, t.ApprovedBy); err != nil {
		return nil, err
	}
	return &pub, nil
}

func (pr *Projector) publicBudget(ctx context.Context, mapper *privacy.TokenMapper, b *domain.BudgetEntry) (*domain.BudgetEntry, error) {
	pub := *b
	pub.ID = ""

	var err error
	if pub.WorkstreamID, err = mapper.Resolve(ctx, privacy.CategoryWorkstreams, b.WorkstreamID); err != nil {
		return nil, err
	}
	if pub.ProfileID, err = mapper.Resolve(ctx, privacy.CategoryUsers, b.ProfileID); err != nil {
		return nil, err
	}
	if pub.Notes, err = mapper.Resolve(ctx, privacy.CategoryNotes, b.Notes); err != nil {
		return nil, err
	}
	return &pub, nil
}

func (pr *Projector) publicForecast(ctx context.Context, mapper *privacy.TokenMapper, f *domain.BudgetForecast) (*domain.BudgetForecast, error) {
	pub := *f
	pub.ID = ""

	var err error
	if pub.WorkstreamID, err = mapper.Resolve(ctx, privacy.CategoryWorkstreams, f.WorkstreamID); err != nil {
		return nil, err
	}
	if pub.ProfileID, err = mapper.Resolve(ctx, privacy.CategoryUsers, f.ProfileID); err != nil {
		return nil, err
	}
	if pub.Assumptions, err = mapper.ResolveAll(ctx, privacy.CategoryNotes, f.Assumptions); err != nil {
		return nil, err
	}
	return &pub, nil
}
