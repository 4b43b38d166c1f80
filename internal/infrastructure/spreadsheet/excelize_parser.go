// Package spreadsheet decodes uploaded Excel catalogs into normalized rows.
package spreadsheet

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/gopidistributors/billing-api/internal/application/catalog"
	domaincatalog "github.com/gopidistributors/billing-api/internal/domain/catalog"
)

var _ catalog.SheetParser = (*ExcelizeParser)(nil)

// ExcelizeParser reads the first sheet of an .xlsx workbook. The first row is
// the header; each later row becomes a header→cell map handed to the row
// normalizer, which decides whether the row survives.
type ExcelizeParser struct{}

// NewExcelizeParser builds the parser.
func NewExcelizeParser() *ExcelizeParser {
	return &ExcelizeParser{}
}

// Parse decodes the workbook bytes. A readable workbook with no usable data
// rows returns an empty slice, not an error; a corrupt file returns an error.
func (p *ExcelizeParser) Parse(ctx context.Context, data []byte) ([]domaincatalog.Record, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	// Header cells keep their original case; matching is the normalizer's job.
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	var records []domaincatalog.Record
	for _, cells := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw := make(map[string]string, len(headers))
		for i, h := range headers {
			if h == "" || i >= len(cells) {
				continue
			}
			raw[h] = strings.TrimSpace(cells[i])
		}
		if rec, ok := domaincatalog.NormalizeRow(raw); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}
