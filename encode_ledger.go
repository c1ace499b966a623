package expenselog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeDocument renders the ledger as the canonical JSON document and
// writes it to w.
//
// The document has exactly two top-level keys: "categories", one entry per
// distinct category instance in first-reference order, and "transactions",
// one entry per transaction in parse order. A transaction's "category" is
// the first entry of "categories" with the same name.
//
// Encoding derives the category timestamps first, so calling
// [Ledger.SetDefaultCategoryCreatedAts] beforehand is allowed but not
// required.
func EncodeDocument(w io.Writer, l *Ledger) error {
	l.SetDefaultCategoryCreatedAts()

	categories := make([]json.RawMessage, 0)
	firstByName := make(map[string]json.RawMessage)
	for c := range l.Categories() {
		if c.CreatedAt.IsZero() {
			// every referenced category was assigned a minimum just above
			return fmt.Errorf("category %q has no derived timestamp", c.Name)
		}
		entry, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("cannot marshal category %q: %w", c.Name, err)
		}
		categories = append(categories, entry)
		if _, ok := firstByName[c.Name]; !ok {
			firstByName[c.Name] = entry
		}
	}

	transactions := make([]json.RawMessage, 0, l.Len())
	for tx := range l.Transactions() {
		var jw jsonObjectWriter
		jw.Append("category", firstByName[tx.Category().Name])
		jw.Append("description", tx.Notes())
		jw.Append("amount", tx.Amount())
		jw.Append("created_at", FormatStamp(tx.CreatedAt()))
		entry, err := jw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot marshal transaction: %w", err)
		}
		transactions = append(transactions, entry)
	}

	var doc jsonObjectWriter
	doc.Append("categories", categories)
	doc.Append("transactions", transactions)
	compact, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot marshal document: %w", err)
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, compact, "", "  "); err != nil {
		return fmt.Errorf("cannot indent document: %w", err)
	}
	if _, err := w.Write(indented.Bytes()); err != nil {
		return fmt.Errorf("cannot write document: %w", err)
	}
	return nil
}
