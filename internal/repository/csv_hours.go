package repository

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/tally/internal/domain"
)

// CSVHoursRepo implements HoursRepo on a headerless date,hours file.
// The file is read in full on every call and rewritten in full on every write;
// nothing is cached between calls.
type CSVHoursRepo struct {
	path string
}

// NewCSVHoursRepo creates a CSVHoursRepo for the file at path. The file is
// not touched until the first read or write.
func NewCSVHoursRepo(path string) *CSVHoursRepo {
	return &CSVHoursRepo{path: path}
}

// Path returns the backing file location.
func (r *CSVHoursRepo) Path() string {
	return r.path
}

func (r *CSVHoursRepo) Get(ctx context.Context, date string) (float64, error) {
	entries, err := r.entries(ctx)
	if err != nil {
		return 0, err
	}
	for _, e := range entries {
		if e.Date == date {
			return e.Hours, nil
		}
	}
	return 0, nil
}

func (r *CSVHoursRepo) Upsert(ctx context.Context, date string, hours float64) error {
	return r.UpsertMany(ctx, []domain.Entry{{Date: date, Hours: hours}})
}

// UpsertMany applies every entry to the current lines and rewrites the file once.
// Nothing is written if any entry is invalid.
func (r *CSVHoursRepo) UpsertMany(ctx context.Context, entries []domain.Entry) error {
	for _, e := range entries {
		if err := validateEntry(e.Date, e.Hours); err != nil {
			return err
		}
	}
	if len(entries) == 0 {
		return nil
	}

	lines, err := r.readLines(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		lines = upsertLine(lines, e.Date, e.Hours)
	}
	return r.writeLines(lines)
}

func (r *CSVHoursRepo) SumTotal(ctx context.Context) (float64, error) {
	entries, err := r.entries(ctx)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, e := range entries {
		sum += e.Hours
	}
	return sum, nil
}

func (r *CSVHoursRepo) SumMonth(ctx context.Context, yearMonth string) (float64, error) {
	entries, err := r.ListMonth(ctx, yearMonth)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, e := range entries {
		sum += e.Hours
	}
	return sum, nil
}

func (r *CSVHoursRepo) List(ctx context.Context) ([]domain.Entry, error) {
	return r.entries(ctx)
}

func (r *CSVHoursRepo) ListMonth(ctx context.Context, yearMonth string) ([]domain.Entry, error) {
	entries, err := r.entries(ctx)
	if err != nil {
		return nil, err
	}
	var month []domain.Entry
	for _, e := range entries {
		if e.Month() == yearMonth {
			month = append(month, e)
		}
	}
	return month, nil
}

// Scan returns every row with usable hours, in file order, and the number of
// non-blank lines that were skipped as malformed.
func (r *CSVHoursRepo) Scan(ctx context.Context) ([]domain.Entry, int, error) {
	lines, err := r.readLines(ctx)
	if err != nil {
		return nil, 0, err
	}
	entries := make([]domain.Entry, 0, len(lines))
	skipped := 0
	for _, l := range lines {
		if e, ok := entryFromRecord(l.fields); ok {
			entries = append(entries, e)
		} else if !l.blank() {
			skipped++
		}
	}
	return entries, skipped, nil
}

// entries returns every row with usable hours, in file order. Duplicated
// dates are returned as they appear.
func (r *CSVHoursRepo) entries(ctx context.Context) ([]domain.Entry, error) {
	entries, _, err := r.Scan(ctx)
	return entries, err
}

// hoursLine is one line of the hours file. fields is nil when the line is
// blank or is not a valid csv record.
type hoursLine struct {
	raw    string
	fields []string
}

func (l hoursLine) blank() bool {
	return strings.TrimSpace(l.raw) == ""
}

// readLines loads the backing file line by line. A missing file reads as no
// lines. Each line is parsed on its own, so a stray quote cannot swallow the
// rows after it.
func (r *CSVHoursRepo) readLines(ctx context.Context) ([]hoursLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading hours file: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	raws := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	lines := make([]hoursLine, 0, len(raws))
	for _, raw := range raws {
		lines = append(lines, hoursLine{raw: raw, fields: parseLine(raw)})
	}
	return lines, nil
}

// parseLine reads a single headerless record of any width from raw.
func parseLine(raw string) []string {
	cr := csv.NewReader(strings.NewReader(strings.TrimSuffix(raw, "\r")))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rec, err := cr.Read()
	if err != nil {
		return nil
	}
	return rec
}

// upsertLine replaces the first line for date and drops any later lines for
// the same date. Unrelated lines, malformed ones included, are kept verbatim.
func upsertLine(lines []hoursLine, date string, hours float64) []hoursLine {
	row := hoursLine{
		raw:    date + "," + domain.FormatHours(hours),
		fields: []string{date, domain.FormatHours(hours)},
	}
	out := make([]hoursLine, 0, len(lines)+1)
	found := false
	for _, l := range lines {
		if recordDate(l.fields) != date {
			out = append(out, l)
			continue
		}
		if found {
			continue
		}
		found = true
		out = append(out, row)
	}
	if !found {
		out = append(out, row)
	}
	return out
}

// writeLines replaces the backing file with lines via a temp file in the
// same directory and an atomic rename.
func (r *CSVHoursRepo) writeLines(lines []hoursLine) (err error) {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating hours directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	w := bufio.NewWriter(tmp)
	for _, l := range lines {
		w.WriteString(l.raw)
		w.WriteByte('\n')
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("writing hours file: %w", err)
	}
	if err = tmp.Chmod(0644); err != nil {
		return fmt.Errorf("setting hours file mode: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Rename(tmpPath, r.path); err != nil {
		return fmt.Errorf("replacing hours file: %w", err)
	}
	return nil
}
