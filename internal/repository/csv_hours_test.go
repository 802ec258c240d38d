package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVHoursRepo_MissingFileIsNotCreatedByReads(t *testing.T) {
	path := testutil.NewTestCSVPath(t)
	repo := NewCSVHoursRepo(path)
	ctx := context.Background()

	_, err := repo.SumTotal(ctx)
	require.NoError(t, err)
	assert.NoFileExists(t, path)
}

func TestCSVHoursRepo_WriteFormat(t *testing.T) {
	path := testutil.NewTestCSVPath(t)
	repo := NewCSVHoursRepo(path)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, "2024-05-10", 8))
	require.NoError(t, repo.Upsert(ctx, "2024-05-11", 7.5))

	assert.Equal(t, "2024-05-10,8\n2024-05-11,7.5\n", testutil.ReadFile(t, path))
}

func TestCSVHoursRepo_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "hours.csv")
	repo := NewCSVHoursRepo(path)

	require.NoError(t, repo.Upsert(context.Background(), "2024-05-10", 2))
	assert.FileExists(t, path)
}

func TestCSVHoursRepo_NoTempFilesLeftBehind(t *testing.T) {
	path := testutil.NewTestCSVPath(t)
	repo := NewCSVHoursRepo(path)
	ctx := context.Background()

	for _, e := range testutil.MonthOfEntries("2024-05", 5) {
		require.NoError(t, repo.Upsert(ctx, e.Date, e.Hours))
	}

	files, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "hours.csv", files[0].Name())
}

func TestCSVHoursRepo_SkipsMalformedRows(t *testing.T) {
	path := testutil.NewTestCSV(t, "2024-05-10,3.0\n"+
		"2024-05-11,abc\n"+
		"2024-05-12\n"+
		"\n"+
		"2024-05-13,-4\n"+
		"2024-05-14,2.5,extra\n"+
		"2024-06-01, 4\n")
	repo := NewCSVHoursRepo(path)
	ctx := context.Background()

	total, err := repo.SumTotal(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9.5, total)

	may, err := repo.SumMonth(ctx, "2024-05")
	require.NoError(t, err)
	assert.Equal(t, 5.5, may)

	h, err := repo.Get(ctx, "2024-05-11")
	require.NoError(t, err)
	assert.Zero(t, h)

	h, err = repo.Get(ctx, "2024-05-14")
	require.NoError(t, err)
	assert.Equal(t, 2.5, h)
}

func TestCSVHoursRepo_ReadsPlainDateHoursRows(t *testing.T) {
	path := testutil.NewTestCSV(t, "2024-05-10,8.0\r\n2024-05-11,6.5\r\n")
	repo := NewCSVHoursRepo(path)

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Entry{
		{Date: "2024-05-10", Hours: 8},
		{Date: "2024-05-11", Hours: 6.5},
	}, entries)
}

func TestCSVHoursRepo_DuplicateRows(t *testing.T) {
	path := testutil.NewTestCSV(t, "2024-05-10,3\n2024-05-11,1\n2024-05-10,4\n")
	repo := NewCSVHoursRepo(path)
	ctx := context.Background()

	// Reads do not deduplicate: first match for Get, every row for sums.
	h, err := repo.Get(ctx, "2024-05-10")
	require.NoError(t, err)
	assert.Equal(t, 3.0, h)

	total, err := repo.SumTotal(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8.0, total)

	// Upsert collapses the duplicates into the first row.
	require.NoError(t, repo.Upsert(ctx, "2024-05-10", 6))
	assert.Equal(t, "2024-05-10,6\n2024-05-11,1\n", testutil.ReadFile(t, path))
}

func TestCSVHoursRepo_UpsertKeepsMalformedRows(t *testing.T) {
	path := testutil.NewTestCSV(t, "2024-05-09,oops\n2024-05-10,3\n")
	repo := NewCSVHoursRepo(path)

	require.NoError(t, repo.Upsert(context.Background(), "2024-05-10", 5))
	assert.Equal(t, "2024-05-09,oops\n2024-05-10,5\n", testutil.ReadFile(t, path))
}

func TestCSVHoursRepo_UpsertReplacesMalformedRowForSameDate(t *testing.T) {
	path := testutil.NewTestCSV(t, "2024-05-10,oops\n")
	repo := NewCSVHoursRepo(path)

	require.NoError(t, repo.Upsert(context.Background(), "2024-05-10", 5))
	assert.Equal(t, "2024-05-10,5\n", testutil.ReadFile(t, path))
}

func TestCSVHoursRepo_CancelledContext(t *testing.T) {
	repo := NewCSVHoursRepo(testutil.NewTestCSVPath(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.SumTotal(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCSVHoursRepo_StrayQuoteStaysOnItsLine(t *testing.T) {
	path := testutil.NewTestCSV(t, "2024-05-10,\"8\n2024-05-11,3\n2024-05-12,2\n")
	repo := NewCSVHoursRepo(path)
	ctx := context.Background()

	total, err := repo.SumTotal(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5.0, total)

	may, err := repo.SumMonth(ctx, "2024-05")
	require.NoError(t, err)
	assert.Equal(t, 5.0, may)

	require.NoError(t, repo.Upsert(ctx, "2024-05-20", 1))
	assert.Equal(t, "2024-05-10,\"8\n2024-05-11,3\n2024-05-12,2\n2024-05-20,1\n", testutil.ReadFile(t, path))
}

func TestCSVHoursRepo_UpsertWritesUntouchedLinesVerbatim(t *testing.T) {
	content := "2024-05-09,8\"x\n" +
		"\n" +
		"2024-05-10, 3\n" +
		"2024-05-11,0x1p3\n" +
		"2024-05-12,4\r\n"
	path := testutil.NewTestCSV(t, content)
	repo := NewCSVHoursRepo(path)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, "2024-06-01", 2))
	assert.Equal(t, content+"2024-06-01,2\n", testutil.ReadFile(t, path))

	total, err := repo.SumTotal(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9.0, total, "hex hours and the quoted row are skipped")
}

func TestCSVHoursRepo_Scan(t *testing.T) {
	path := testutil.NewTestCSV(t, "2024-05-10,8\nbroken\n\n2024-05-11,abc\n2024-05-12,\"1\n2024-05-13,2")
	repo := NewCSVHoursRepo(path)

	entries, skipped, err := repo.Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Entry{
		{Date: "2024-05-10", Hours: 8},
		{Date: "2024-05-13", Hours: 2},
	}, entries)
	assert.Equal(t, 3, skipped, "blank lines are not counted")
}

func TestUpsertLine(t *testing.T) {
	lines := []hoursLine{
		{raw: "2024-05-01,1", fields: []string{"2024-05-01", "1"}},
		{raw: "bad\"", fields: nil},
		{raw: "2024-05-01,2", fields: []string{"2024-05-01", "2"}},
	}

	got := upsertLine(lines, "2024-05-01", 9)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-05-01,9", got[0].raw)
	assert.Equal(t, "bad\"", got[1].raw)

	got = upsertLine(got, "2024-05-02", 0.5)
	require.Len(t, got, 3)
	assert.Equal(t, "2024-05-02,0.5", got[2].raw)
	assert.Equal(t, []string{"2024-05-02", "0.5"}, got[2].fields)
}
