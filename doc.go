// Package expenselog converts a personal expense log, a CSV file of dated
// signed amounts with a category and a note, into a structured JSON
// document.
//
// The core functionalities include:
//   - Tolerant row parsing: each data row becomes at most one transaction,
//     a malformed row is reported and skipped, never aborting the file.
//   - Normalization: civil timestamps recorded in a configurable timezone
//     are converted to UTC, and signed currency amounts are decoded with
//     exact decimal arithmetic.
//   - Aggregation: each category is assigned the timestamp of its earliest
//     transaction.
//   - Serialization: the ledger is rendered as a single JSON document with
//     a stable field order.
//
// This package serves as the foundational logic of the `xpl` command-line
// tool.
package expenselog
