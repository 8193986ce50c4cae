package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/trackveil/internal/aggregate"
	"github.com/alexanderramin/trackveil/internal/domain"
	"github.com/alexanderramin/trackveil/internal/importer"
	"github.com/alexanderramin/trackveil/internal/projector"
	"github.com/alexanderramin/trackveil/internal/repository"
)

type timesheetService struct {
	store    *repository.EntityStore
	proj     *projector.Projector
	observer UseCaseObserver
}

func NewTimesheetService(store *repository.EntityStore, proj *projector.Projector, observers ...UseCaseObserver) TimesheetService {
	return &timesheetService{
		store:    store,
		proj:     proj,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Log persists a single entry. Entries referencing unknown user or workstream
// ids are accepted and flagged through the observer rather than rejected;
// spreadsheet exports routinely arrive before the referenced records do.
func (s *timesheetService) Log(ctx context.Context, t *domain.TimesheetEntry) error {
	started := time.Now()
	err := s.log(ctx, t)
	observe(ctx, s.observer, "timesheet.log", started, err, map[string]any{"entry_id": t.ID})
	return err
}

func (s *timesheetService) log(ctx context.Context, t *domain.TimesheetEntry) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating timesheet entry: %w", err)
	}
	s.flagUnresolvedRefs(ctx, t)
	return s.proj.SaveTimesheet(ctx, t)
}

func (s *timesheetService) flagUnresolvedRefs(ctx context.Context, t *domain.TimesheetEntry) {
	fields := map[string]any{"entry_id": t.ID}
	flagged := false
	if _, err := s.store.Profiles.GetByID(ctx, t.UserID); errors.Is(err, repository.ErrNotFound) {
		fields["unresolved_user"] = t.UserID
		flagged = true
	}
	if _, err := s.store.Workstreams.GetByID(ctx, t.WorkstreamID); errors.Is(err, repository.ErrNotFound) {
		fields["unresolved_workstream"] = t.WorkstreamID
		flagged = true
	}
	if flagged {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:    "timesheet.log",
			Success: true,
			Fields:  fields,
		})
	}
}

func (s *timesheetService) Get(ctx context.Context, id string) (*domain.TimesheetEntry, error) {
	return s.store.Timesheets.GetByID(ctx, id)
}

func (s *timesheetService) List(ctx context.Context) ([]*domain.TimesheetEntry, error) {
	return s.store.Timesheets.List(ctx)
}

func (s *timesheetService) ListPublic(ctx context.Context) ([]*domain.TimesheetEntry, error) {
	return s.store.Timesheets.ListPublic(ctx)
}

func (s *timesheetService) Import(ctx context.Context, filePath string, skipInvalid bool) (*ImportResult, error) {
	file, err := importer.LoadImportFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportRows(ctx, file.Entries, skipInvalid)
}

// ImportRows saves rows one at a time. Each save commits independently, so a
// failure partway leaves earlier rows durable; re-running the import is safe
// because saves are upserts keyed by id.
func (s *timesheetService) ImportRows(ctx context.Context, rows []importer.TimesheetRow, skipInvalid bool) (*ImportResult, error) {
	started := time.Now()
	result, err := s.importRows(ctx, rows, skipInvalid)
	fields := map[string]any{"rows": len(rows)}
	if result != nil {
		fields["imported"] = result.Imported
		fields["rejected"] = len(result.Rejected)
	}
	observe(ctx, s.observer, "timesheet.import", started, err, fields)
	return result, err
}

func (s *timesheetService) importRows(ctx context.Context, rows []importer.TimesheetRow, skipInvalid bool) (*ImportResult, error) {
	result := &ImportResult{}

	valid := make([]importer.TimesheetRow, 0, len(rows))
	for i, row := range rows {
		errs := importer.ValidateRow(i, row)
		if len(errs) == 0 {
			valid = append(valid, row)
			continue
		}
		if !skipInvalid {
			return nil, formatValidationErrors(importer.ValidateRows(rows))
		}
		result.Rejected = append(result.Rejected, errs...)
	}

	entries, err := importer.Convert(valid)
	if err != nil {
		return nil, fmt.Errorf("converting import rows: %w", err)
	}

	for _, entry := range entries {
		s.flagUnresolvedRefs(ctx, entry)
		if err := s.proj.SaveTimesheet(ctx, entry); err != nil {
			return result, fmt.Errorf("saving entry %q: %w", entry.ID, err)
		}
		result.Imported++
		result.AnonymizedIDs = append(result.AnonymizedIDs, entry.AnonymizedID)
	}
	return result, nil
}

// Summary aggregates the secure snapshot so breakdown keys are the ids the
// operator knows. The computation itself is in the aggregate package.
func (s *timesheetService) Summary(ctx context.Context, filter aggregate.TimeFilter) (*domain.TimesheetSummary, error) {
	entries, err := s.store.Timesheets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading timesheet entries: %w", err)
	}
	workstreams, err := s.store.Workstreams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading workstreams: %w", err)
	}
	known := make(map[string]bool, len(workstreams))
	for _, w := range workstreams {
		known[w.ID] = true
	}
	return aggregate.TimeSummary(entries, known, filter)
}

func (s *timesheetService) Trend(ctx context.Context, period string) (*domain.TrendAnalysis, error) {
	entries, err := s.store.Timesheets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading timesheet entries: %w", err)
	}
	return aggregate.Trend(entries, period)
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
