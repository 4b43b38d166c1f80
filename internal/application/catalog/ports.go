package catalog

import (
	"context"

	domaincatalog "github.com/gopidistributors/billing-api/internal/domain/catalog"
)

// SheetParser decodes raw spreadsheet bytes into normalized, filtered
// records. Implementations run row normalization internally and drop
// unparseable rows; only the aggregate batch comes back. The import pipeline
// invokes Parse once per file inside an isolated goroutine and expects
// exactly one terminal result.
type SheetParser interface {
	Parse(ctx context.Context, data []byte) ([]domaincatalog.Record, error)
}
