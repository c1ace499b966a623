package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/expenselog"
	"github.com/google/subcommands"
)

type convertCmd struct {
	logPath string
	outPath string
	zone    string
}

func (*convertCmd) Name() string { return "convert" }
func (*convertCmd) Synopsis() string {
	return "converts an expense log CSV file into a transactions.json document"
}
func (*convertCmd) Usage() string {
	return `xpl convert -f <expense_log> [-o <output_file>] [-tz <timezone>]

  Reads an expense log CSV file (header row, then
  "date(DD/MM/YY), time(HH:MM), amount($N.NN), category, notes" rows),
  normalizes timestamps to UTC, and writes a JSON document with every
  accepted transaction and each category's earliest-transaction timestamp.
  Malformed rows are reported on stderr and skipped.

Usage Examples:
# Convert a log recorded in the default timezone.
$ xpl convert -f expenses.csv

# Convert a log recorded in Paris time into a chosen file.
$ xpl convert -f expenses.csv -o out.json -tz Europe/Paris
`
}

func (p *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.logPath, "f", "", "Path to the expense log CSV file (required).")
	f.StringVar(&p.outPath, "o", getenv("EXPENSELOG_OUT", "transactions.json"), "Path of the JSON document to write.")
	f.StringVar(&p.zone, "tz", getenv("EXPENSELOG_TZ", "America/Edmonton"), "IANA timezone the expense log was recorded in.")
}

func (p *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.logPath == "" {
		fmt.Fprintln(os.Stderr, "Error: missing required flag -f")
		f.Usage()
		return subcommands.ExitUsageError
	}

	info, err := os.Stat(p.logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot read expense log %q: %v\n", p.logPath, err)
		return subcommands.ExitFailure
	}
	if !info.Mode().IsRegular() {
		fmt.Fprintf(os.Stderr, "Error: expense log %q is not a regular file\n", p.logPath)
		return subcommands.ExitFailure
	}

	loc, err := time.LoadLocation(p.zone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown timezone %q: %v\n", p.zone, err)
		return subcommands.ExitFailure
	}

	in, err := os.Open(p.logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open expense log %q: %v\n", p.logPath, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	diag := Diagnostics()
	ledger, skipped, err := expenselog.DecodeExpenseLog(in, loc, diag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot parse expense log %q: %v\n", p.logPath, err)
		return subcommands.ExitFailure
	}

	out, err := os.Create(p.outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot create output file %q: %v\n", p.outPath, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := expenselog.EncodeDocument(out, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot write output file %q: %v\n", p.outPath, err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot flush output file %q: %v\n", p.outPath, err)
		return subcommands.ExitFailure
	}

	diag.Info().
		Int("transactions", ledger.Len()).
		Int("skipped", skipped).
		Str("file", p.outPath).
		Msg("expense log converted")
	return subcommands.ExitSuccess
}
