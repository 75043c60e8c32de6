package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/pratt/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
	Hash     string // optional - only parses producing this tree
}

// HistoryResult holds the records read from the parse log.
type HistoryResult struct {
	Records []store.Record `json:"records"`
	Total   int            `json:"total"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded parses",
		Long: `List the parses recorded with "pratt parse --db", oldest first.

--limit keeps only the most recent records. --hash lists every input
that produced the tree with that content hash.

Exit codes:
  0 - Success
  2 - Command error (database not found, etc.)

Examples:
  pratt history --db ./parses.db
  pratt history --db ./parses.db --limit 5
  pratt history --db ./parses.db --hash 09863336e60ce292...
  pratt history --db ./parses.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "number of most recent records to show (0 = all)")
	cmd.Flags().StringVar(&opts.Hash, "hash", "", "only show parses producing this tree hash")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	ctx := context.Background()

	if opts.Limit < 0 {
		return NewExitError(ExitCommandError, "--limit must be non-negative")
	}

	// Open creates missing databases; history only reads existing ones.
	if _, err := os.Stat(opts.Database); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("database not found: %s", opts.Database))
	}
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	var records []store.Record
	if opts.Hash != "" {
		records, err = st.FindByHash(ctx, opts.Hash)
	} else {
		records, err = st.ListParses(ctx, opts.Limit)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read parses", err)
	}
	if records == nil {
		records = []store.Record{}
	}

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return formatter.Success(HistoryResult{Records: records, Total: len(records)})
	}

	w := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(w, "No parses recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQ\tGRAMMAR\tINPUT\tRESULT")
	for _, rec := range records {
		outcome := rec.SExpr
		if !rec.OK() {
			code := rec.ErrorCode
			if code == "" {
				code = "ERROR"
			}
			outcome = "error " + code
		}
		fmt.Fprintf(tw, "%d\t%s\t%q\t%s\n", rec.Seq, rec.Grammar, rec.Input, outcome)
	}
	return tw.Flush()
}
