package billing

import "fmt"

const invoiceNumberPrefix = "INV-"

// NextNumber derives the display number for the invoice following the one
// with numeric identity lastSeq. With no prior invoice (lastSeq 0) the series
// starts at INV-00001.
//
// This is a display convenience, not a gapless legal sequence: the caller
// reads the last seq and increments, so deletions leave gaps and concurrent
// writers outside the saving transaction could mint the same number.
func NextNumber(lastSeq int64) string {
	return fmt.Sprintf("%s%05d", invoiceNumberPrefix, lastSeq+1)
}
