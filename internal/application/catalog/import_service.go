package catalog

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gopidistributors/billing-api/internal/domain"
	domaincatalog "github.com/gopidistributors/billing-api/internal/domain/catalog"
	"github.com/gopidistributors/billing-api/internal/domain/entity"
	"github.com/gopidistributors/billing-api/internal/domain/repository"
	"github.com/gopidistributors/billing-api/pkg/logger"
)

const (
	// importChunkSize rows per bulk insert. Bounds how long any single
	// storage burst can hold the caller.
	importChunkSize = 2000
	// chunkYield pause between chunks so a host UI can repaint.
	chunkYield = 10 * time.Millisecond
)

// State of an import session.
type State string

const (
	StateIdle       State = "IDLE"
	StateReading    State = "READING"
	StateParsing    State = "PARSING"
	StatePersisting State = "PERSISTING"
	StateComplete   State = "COMPLETE"
	StateFailed     State = "FAILED"
)

// Report is the outcome (or live snapshot) of an import session. Committed
// chunks stay committed on failure; FailedAtRow is the offset of the first
// row of the failing chunk, or -1.
type Report struct {
	State           State
	AcceptedRows    int
	CommittedChunks int
	CommittedRows   int
	Progress        int
	FailedAtRow     int
	Err             error
}

// ImportService drives the bulk catalog import: it hands the raw file bytes
// to a parsing goroutine (exactly one terminal message back), then persists
// the normalized batch in fixed-size chunks with a short yield between them.
//
// Only one import may be in flight; a second start is rejected with
// domain.ErrImportInProgress rather than queued.
type ImportService struct {
	parser   SheetParser
	products repository.ProductRepository
	log      *logger.Logger

	// OnProgress, when set, observes each progress update (0-100,
	// monotonically increasing). Called from the importing goroutine.
	OnProgress func(pct int)

	mu     sync.Mutex
	active bool
	last   Report
}

// NewImportService builds the service.
func NewImportService(parser SheetParser, products repository.ProductRepository, log *logger.Logger) *ImportService {
	return &ImportService{
		parser:   parser,
		products: products,
		log:      log,
		last:     Report{State: StateIdle, FailedAtRow: -1},
	}
}

type parseResult struct {
	records []domaincatalog.Record
	err     error
}

// Import runs one full import session over the raw file bytes and blocks
// until it completes or fails. Partially committed chunks are reported, not
// rolled back. A zero-record parse is a user-level "no valid rows" outcome:
// storage is never touched and the service returns to idle.
func (s *ImportService) Import(ctx context.Context, data []byte) (Report, error) {
	if err := s.begin(); err != nil {
		return s.Status(), err
	}
	defer s.end()

	// Parse in an isolated goroutine. The channel carries exactly one
	// terminal message: the full batch or an error.
	s.setState(StateParsing)
	ch := make(chan parseResult, 1)
	go func() {
		records, err := s.parser.Parse(ctx, data)
		ch <- parseResult{records: records, err: err}
	}()
	res := <-ch
	if res.err != nil {
		err := fmt.Errorf("parse spreadsheet: %w", res.err)
		s.fail(-1, err)
		return s.Status(), err
	}
	if len(res.records) == 0 {
		s.setState(StateIdle)
		return s.Status(), domain.ErrNoValidRows
	}

	s.update(func(r *Report) {
		r.State = StatePersisting
		r.AcceptedRows = len(res.records)
	})

	total := len(res.records)
	for start := 0; start < total; start += importChunkSize {
		end := start + importChunkSize
		if end > total {
			end = total
		}
		chunk := toProducts(res.records[start:end])
		if err := s.products.BulkInsert(chunk); err != nil {
			wrapped := fmt.Errorf("bulk insert chunk at row %d: %w", start, err)
			s.fail(start, wrapped)
			s.log.Error().Err(err).Int("committed_rows", start).
				Msg("catalog import failed mid-persist; committed chunks kept")
			return s.Status(), wrapped
		}

		pct := progressPercent(end, total)
		s.update(func(r *Report) {
			r.CommittedChunks++
			r.CommittedRows = end
			r.Progress = pct
		})
		if s.OnProgress != nil {
			s.OnProgress(pct)
		}
		s.log.Debug().Int("rows", end).Int("total", total).Int("progress", pct).
			Msg("catalog import chunk committed")

		if end < total {
			time.Sleep(chunkYield)
		}
	}

	s.setState(StateComplete)
	s.log.Info().Int("rows", total).Msg("catalog import complete")
	return s.Status(), nil
}

// Status returns a snapshot of the active (or most recent) session.
func (s *ImportService) Status() Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Active reports whether an import is currently in flight.
func (s *ImportService) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *ImportService) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return domain.ErrImportInProgress
	}
	s.active = true
	s.last = Report{State: StateReading, FailedAtRow: -1}
	return nil
}

func (s *ImportService) end() {
	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}

func (s *ImportService) setState(state State) {
	s.update(func(r *Report) { r.State = state })
}

func (s *ImportService) fail(failedAtRow int, err error) {
	s.update(func(r *Report) {
		r.State = StateFailed
		r.FailedAtRow = failedAtRow
		r.Err = err
	})
}

func (s *ImportService) update(fn func(r *Report)) {
	s.mu.Lock()
	fn(&s.last)
	s.mu.Unlock()
}

// progressPercent is min(100, round(processed/total*100)); monotonic while
// processed only grows.
func progressPercent(processed, total int) int {
	pct := int(math.Round(float64(processed) / float64(total) * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}

func toProducts(records []domaincatalog.Record) []*entity.Product {
	now := time.Now()
	products := make([]*entity.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, &entity.Product{
			ID:        uuid.New().String(),
			Name:      rec.Name,
			HSN:       rec.HSN,
			Price:     rec.Price,
			TaxRate:   rec.TaxRate,
			Stock:     rec.Stock,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return products
}
