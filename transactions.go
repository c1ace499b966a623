package expenselog

import (
	"errors"
	"iter"
	"time"
)

// Transaction is one accepted row of the expense log.
//
// Fields are fixed at construction; the only later mutation in the whole
// pipeline is the category timestamp derived by the ledger.
type Transaction struct {
	createdAt time.Time // always UTC
	amount    Money
	category  *Category
	notes     string
}

// NewTransaction builds a validated transaction.
//
// The timestamp must be set and is normalized to UTC, and the category must
// be present. Notes may be empty.
func NewTransaction(createdAt time.Time, amount Money, category *Category, notes string) (Transaction, error) {
	if createdAt.IsZero() {
		return Transaction{}, errors.New("transaction timestamp is missing")
	}
	if category == nil {
		return Transaction{}, errors.New("transaction category is missing")
	}
	return Transaction{
		createdAt: createdAt.UTC(),
		amount:    amount,
		category:  category,
		notes:     notes,
	}, nil
}

// CreatedAt returns the transaction instant in UTC.
func (t Transaction) CreatedAt() time.Time { return t.createdAt }

// Amount returns the exact signed amount.
func (t Transaction) Amount() Money { return t.amount }

// Category returns the category instance created for this transaction's row.
func (t Transaction) Category() *Category { return t.category }

// Notes returns the free-text note, possibly empty.
func (t Transaction) Notes() string { return t.notes }

// Ledger is the ordered collection of all accepted transactions for one run.
//
// Transactions are kept in parse order, the ledger only ever grows.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Append accepts a transaction into the ledger.
func (l *Ledger) Append(tx Transaction) {
	l.transactions = append(l.transactions, tx)
}

// Len returns the number of accepted transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions iterates over accepted transactions in parse order.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// Categories iterates over the distinct category instances referenced by the
// ledger, in first-reference order.
//
// Distinct means distinct instance: the parser creates one instance per row,
// so a name repeated across rows yields one entry per row.
func (l *Ledger) Categories() iter.Seq[*Category] {
	return func(yield func(*Category) bool) {
		seen := make(map[*Category]bool, len(l.transactions))
		for _, tx := range l.transactions {
			if seen[tx.category] {
				continue
			}
			seen[tx.category] = true
			if !yield(tx.category) {
				return
			}
		}
	}
}

// SetDefaultCategoryCreatedAts derives every category's timestamp: for each
// distinct category name, the earliest transaction timestamp bearing that
// name, assigned to every category instance sharing the name.
//
// Running it again recomputes the same minima, so it is safe to call both
// explicitly and from the encoder.
func (l *Ledger) SetDefaultCategoryCreatedAts() {
	earliest := make(map[string]time.Time)
	for _, tx := range l.transactions {
		first, ok := earliest[tx.category.Name]
		if !ok || tx.createdAt.Before(first) {
			earliest[tx.category.Name] = tx.createdAt
		}
	}
	for _, tx := range l.transactions {
		tx.category.CreatedAt = earliest[tx.category.Name]
	}
}
