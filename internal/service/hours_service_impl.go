package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/alexanderramin/tally/internal/app"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/repository"
)

type hoursService struct {
	hours         repository.HoursRepo
	monthlyTarget float64
	observer      UseCaseObserver
}

// NewHoursService creates a HoursService over repo. monthlyTarget is the
// default target reported by MonthSummary; 0 disables it.
func NewHoursService(repo repository.HoursRepo, monthlyTarget float64, observers ...UseCaseObserver) HoursService {
	return &hoursService{
		hours:         repo,
		monthlyTarget: monthlyTarget,
		observer:      useCaseObserverOrNoop(observers),
	}
}

func (s *hoursService) Get(ctx context.Context, date string) (float64, error) {
	return s.hours.Get(ctx, date)
}

func (s *hoursService) Record(ctx context.Context, date string, hours float64) (result *app.RecordResult, err error) {
	defer observe(ctx, s.observer, "record-hours", time.Now(), map[string]any{"date": date, "hours": hours}, &err)

	if err = domain.ValidateDate(date); err != nil {
		return nil, err
	}
	if err = domain.ValidateHours(hours); err != nil {
		return nil, err
	}

	existing, err := s.hours.ListMonth(ctx, domain.MonthOf(date))
	if err != nil {
		return nil, fmt.Errorf("loading month: %w", err)
	}
	result = &app.RecordResult{Date: date, Hours: hours, Created: true}
	for _, e := range existing {
		if e.Date == date {
			result.Previous = e.Hours
			result.Created = false
			break
		}
	}

	if err = s.hours.Upsert(ctx, date, hours); err != nil {
		return nil, err
	}

	result.Total, err = s.hours.SumTotal(ctx)
	if err != nil {
		return nil, fmt.Errorf("summing hours: %w", err)
	}
	return result, nil
}

func (s *hoursService) Total(ctx context.Context) (float64, error) {
	return s.hours.SumTotal(ctx)
}

func (s *hoursService) MonthTotal(ctx context.Context, yearMonth string) (float64, error) {
	if err := domain.ValidateMonth(yearMonth); err != nil {
		return 0, err
	}
	return s.hours.SumMonth(ctx, yearMonth)
}

func (s *hoursService) MonthSummary(ctx context.Context, req app.MonthSummaryRequest) (summary *app.MonthSummary, err error) {
	defer observe(ctx, s.observer, "month-summary", time.Now(), map[string]any{"month": req.YearMonth}, &err)

	if err = domain.ValidateMonth(req.YearMonth); err != nil {
		return nil, err
	}

	entries, err := s.hours.ListMonth(ctx, req.YearMonth)
	if err != nil {
		return nil, fmt.Errorf("listing month: %w", err)
	}

	summary = &app.MonthSummary{
		YearMonth: req.YearMonth,
		ByDay:     make(map[int]float64, len(entries)),
		Entries:   entries,
		Target:    s.monthlyTarget,
	}
	if req.Target > 0 {
		summary.Target = req.Target
	}

	for _, e := range entries {
		day, ok := dayOfMonth(e.Date)
		if !ok {
			continue
		}
		// A repeated date shows the first row, as Get does.
		if _, seen := summary.ByDay[day]; seen {
			continue
		}
		summary.ByDay[day] = e.Hours
	}
	for _, h := range summary.ByDay {
		if h > 0 {
			summary.DaysWorked++
		}
	}

	if summary.Total, err = s.hours.SumMonth(ctx, req.YearMonth); err != nil {
		return nil, fmt.Errorf("summing month: %w", err)
	}
	if summary.GrandTotal, err = s.hours.SumTotal(ctx); err != nil {
		return nil, fmt.Errorf("summing hours: %w", err)
	}
	if summary.Target > 0 {
		summary.Progress = summary.Total / summary.Target
	}
	return summary, nil
}

func (s *hoursService) List(ctx context.Context, yearMonth string) ([]domain.Entry, error) {
	if yearMonth == "" {
		return s.hours.List(ctx)
	}
	if err := domain.ValidateMonth(yearMonth); err != nil {
		return nil, err
	}
	return s.hours.ListMonth(ctx, yearMonth)
}

// Import reads a date,hours file in the store's own format and upserts every
// usable row. Malformed rows and rows with an invalid date are counted as
// skipped; for a date repeated in the source the last row wins.
func (s *hoursService) Import(ctx context.Context, filePath string) (result *app.ImportResult, err error) {
	fields := map[string]any{"source": filePath}
	defer observe(ctx, s.observer, "import-hours", time.Now(), fields, &err)

	if _, err = os.Stat(filePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("import file %s does not exist", filePath)
		}
		return nil, fmt.Errorf("reading import file: %w", err)
	}

	source, malformed, err := repository.NewCSVHoursRepo(filePath).Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}

	existing, err := s.hours.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading current hours: %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, e := range existing {
		known[e.Date] = true
	}

	result = &app.ImportResult{Source: filePath, Skipped: malformed}
	batch := make([]domain.Entry, 0, len(source))
	seen := make(map[string]bool, len(source))
	for _, e := range source {
		if domain.ValidateDate(e.Date) != nil {
			result.Skipped++
			continue
		}
		batch = append(batch, e)
		if seen[e.Date] {
			continue
		}
		seen[e.Date] = true
		if known[e.Date] {
			result.Updated++
		} else {
			result.Created++
		}
	}
	result.Imported = len(seen)
	fields["imported"] = result.Imported

	if err = s.hours.UpsertMany(ctx, batch); err != nil {
		return nil, fmt.Errorf("importing hours: %w", err)
	}

	if result.Total, err = s.hours.SumTotal(ctx); err != nil {
		return nil, fmt.Errorf("summing hours: %w", err)
	}
	return result, nil
}

// dayOfMonth extracts DD from a YYYY-MM-DD key.
func dayOfMonth(date string) (int, bool) {
	if domain.ValidateDate(date) != nil {
		return 0, false
	}
	day, err := strconv.Atoi(date[8:10])
	if err != nil {
		return 0, false
	}
	return day, true
}
