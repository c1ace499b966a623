package expenselog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// An expense log is a CSV file whose first row is a header and whose data
// rows are "date, time, signed amount, category, notes". Parsing is
// tolerant: a bad row is reported and skipped, it never aborts the file.

// The required field order of a data row.
const (
	fieldDate = iota
	fieldTime
	fieldAmount
	fieldCategory
	fieldNotes
	numFields
)

// DecodeExpenseLog reads an expense log from r, with its civil timestamps
// interpreted in loc, and returns the ledger of accepted transactions and
// the number of rows skipped.
//
// Row indices in diagnostics count the header as row 0, so they match the
// line numbering of a well-formed file. Only whole-stream failures are
// returned as an error; per-row failures go to diag.
func DecodeExpenseLog(r io.Reader, loc *time.Location, diag zerolog.Logger) (*Ledger, int, error) {
	ledger := NewLedger()
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // row arity is checked per row, not globally

	skipped := 0
	for row := 0; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return ledger, skipped, nil
		}
		if row == 0 {
			// the header is skipped unconditionally, whatever it contains
			continue
		}
		if err != nil {
			diag.Warn().Int("row", row).Err(err).Msg("skipping bad row")
			skipped++
			continue
		}

		tx, err := parseRow(record, loc)
		if err != nil {
			diag.Warn().Int("row", row).Err(err).Msg("skipping bad row")
			skipped++
			continue
		}
		ledger.Append(tx)
	}
}

// parseRow converts one raw record into a transaction.
func parseRow(record []string, loc *time.Location) (Transaction, error) {
	if len(record) < numFields {
		return Transaction{}, fmt.Errorf("row has %d fields, want %d", len(record), numFields)
	}

	createdAt, err := ParseDateTime(record[fieldDate], record[fieldTime], loc)
	if err != nil {
		return Transaction{}, err
	}
	amount, err := ParseAmount(record[fieldAmount])
	if err != nil {
		return Transaction{}, err
	}

	// one fresh category instance per row, deduplication happens at
	// aggregation time by name
	category := NewCategory(record[fieldCategory])

	return NewTransaction(createdAt, amount, category, record[fieldNotes])
}
