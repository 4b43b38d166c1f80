package catalog_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopidistributors/billing-api/internal/application/catalog"
	"github.com/gopidistributors/billing-api/internal/domain"
	domaincatalog "github.com/gopidistributors/billing-api/internal/domain/catalog"
	"github.com/gopidistributors/billing-api/internal/domain/entity"
	"github.com/gopidistributors/billing-api/pkg/logger"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type fakeParser struct {
	records []domaincatalog.Record
	err     error
	// block, when set, stalls Parse until the channel closes. Lets a test
	// observe the in-flight state.
	block chan struct{}
}

func (f *fakeParser) Parse(_ context.Context, _ []byte) ([]domaincatalog.Record, error) {
	if f.block != nil {
		<-f.block
	}
	return f.records, f.err
}

// fakeBulkRepo records every BulkInsert chunk and can fail a chosen one.
type fakeBulkRepo struct {
	mu          sync.Mutex
	chunkSizes  []int
	failAtChunk int // 1-based; 0 never fails
}

func (f *fakeBulkRepo) BulkInsert(products []*entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAtChunk > 0 && len(f.chunkSizes)+1 == f.failAtChunk {
		return errors.New("copy failed")
	}
	f.chunkSizes = append(f.chunkSizes, len(products))
	return nil
}

func (f *fakeBulkRepo) Create(*entity.Product) error            { return nil }
func (f *fakeBulkRepo) GetByID(string) (*entity.Product, error) { return nil, nil }
func (f *fakeBulkRepo) Update(*entity.Product) error            { return nil }
func (f *fakeBulkRepo) Delete(string) error                     { return nil }
func (f *fakeBulkRepo) Search(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}

func makeRecords(n int) []domaincatalog.Record {
	records := make([]domaincatalog.Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, domaincatalog.Record{
			Name:    fmt.Sprintf("Item %d", i),
			Price:   decimal.NewFromInt(10),
			TaxRate: decimal.NewFromInt(18),
		})
	}
	return records
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error"})
}

// ── tests ─────────────────────────────────────────────────────────────────────

// TestImport_ChunksAndProgress feeds 4500 rows and checks the batch lands as
// 2000/2000/500 chunks with progress 44 → 89 → 100.
func TestImport_ChunksAndProgress(t *testing.T) {
	repo := &fakeBulkRepo{}
	svc := catalog.NewImportService(&fakeParser{records: makeRecords(4500)}, repo, testLogger())

	var progress []int
	svc.OnProgress = func(pct int) { progress = append(progress, pct) }

	report, err := svc.Import(context.Background(), []byte("xlsx"))
	require.NoError(t, err)

	assert.Equal(t, []int{2000, 2000, 500}, repo.chunkSizes)
	assert.Equal(t, []int{44, 89, 100}, progress)
	assert.Equal(t, catalog.StateComplete, report.State)
	assert.Equal(t, 4500, report.AcceptedRows)
	assert.Equal(t, 3, report.CommittedChunks)
	assert.Equal(t, 4500, report.CommittedRows)
	assert.Equal(t, 100, report.Progress)
	assert.Equal(t, -1, report.FailedAtRow)
}

// TestImport_ProgressMonotonic verifies the reported percentage never steps
// backwards across a many-chunk import.
func TestImport_ProgressMonotonic(t *testing.T) {
	repo := &fakeBulkRepo{}
	svc := catalog.NewImportService(&fakeParser{records: makeRecords(10500)}, repo, testLogger())

	var progress []int
	svc.OnProgress = func(pct int) { progress = append(progress, pct) }

	_, err := svc.Import(context.Background(), nil)
	require.NoError(t, err)

	require.NotEmpty(t, progress)
	for i := 1; i < len(progress); i++ {
		assert.GreaterOrEqual(t, progress[i], progress[i-1], "progress must not regress")
	}
	assert.Equal(t, 100, progress[len(progress)-1])
	for _, pct := range progress {
		assert.LessOrEqual(t, pct, 100)
	}
}

// TestImport_SingleChunkExactBoundary verifies a batch of exactly one chunk
// reports a single 100% step.
func TestImport_SingleChunkExactBoundary(t *testing.T) {
	repo := &fakeBulkRepo{}
	svc := catalog.NewImportService(&fakeParser{records: makeRecords(2000)}, repo, testLogger())

	report, err := svc.Import(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, []int{2000}, repo.chunkSizes)
	assert.Equal(t, 1, report.CommittedChunks)
	assert.Equal(t, 100, report.Progress)
}

// TestImport_NoValidRows verifies an empty parse touches no storage and
// returns the service to idle.
func TestImport_NoValidRows(t *testing.T) {
	repo := &fakeBulkRepo{}
	svc := catalog.NewImportService(&fakeParser{records: nil}, repo, testLogger())

	report, err := svc.Import(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrNoValidRows)
	assert.Empty(t, repo.chunkSizes, "storage must stay untouched")
	assert.Equal(t, catalog.StateIdle, report.State)
	assert.False(t, svc.Active())
}

// TestImport_ParseFailure verifies a corrupt file fails the session with no
// row offset and no writes.
func TestImport_ParseFailure(t *testing.T) {
	repo := &fakeBulkRepo{}
	svc := catalog.NewImportService(&fakeParser{err: errors.New("zip: not a valid archive")}, repo, testLogger())

	report, err := svc.Import(context.Background(), nil)

	require.Error(t, err)
	assert.Empty(t, repo.chunkSizes)
	assert.Equal(t, catalog.StateFailed, report.State)
	assert.Equal(t, -1, report.FailedAtRow)
}

// TestImport_MidPersistFailure fails the second chunk and checks the first
// stays committed with the failing offset reported.
func TestImport_MidPersistFailure(t *testing.T) {
	repo := &fakeBulkRepo{failAtChunk: 2}
	svc := catalog.NewImportService(&fakeParser{records: makeRecords(4500)}, repo, testLogger())

	report, err := svc.Import(context.Background(), nil)

	require.Error(t, err)
	assert.Equal(t, []int{2000}, repo.chunkSizes, "only the first chunk lands")
	assert.Equal(t, catalog.StateFailed, report.State)
	assert.Equal(t, 1, report.CommittedChunks)
	assert.Equal(t, 2000, report.CommittedRows)
	assert.Equal(t, 2000, report.FailedAtRow, "offset of the failing chunk's first row")
	assert.Error(t, report.Err)
}

// TestImport_SecondStartRejected verifies only one session may be in flight;
// a concurrent start fails fast instead of queuing.
func TestImport_SecondStartRejected(t *testing.T) {
	block := make(chan struct{})
	repo := &fakeBulkRepo{}
	svc := catalog.NewImportService(&fakeParser{records: makeRecords(10), block: block}, repo, testLogger())

	done := make(chan error, 1)
	go func() {
		_, err := svc.Import(context.Background(), nil)
		done <- err
	}()

	// Wait until the first session owns the slot.
	require.Eventually(t, svc.Active, time.Second, time.Millisecond)

	_, err := svc.Import(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrImportInProgress)

	close(block)
	require.NoError(t, <-done, "the first session must finish unaffected")
	assert.Equal(t, []int{10}, repo.chunkSizes)
}

// TestImport_ReusableAfterCompletion verifies the slot frees up once a
// session ends, for success and failure alike.
func TestImport_ReusableAfterCompletion(t *testing.T) {
	repo := &fakeBulkRepo{}
	parser := &fakeParser{records: makeRecords(10)}
	svc := catalog.NewImportService(parser, repo, testLogger())

	_, err := svc.Import(context.Background(), nil)
	require.NoError(t, err)

	_, err = svc.Import(context.Background(), nil)
	require.NoError(t, err, "a finished session must not block the next one")
	assert.Equal(t, []int{10, 10}, repo.chunkSizes)
}
