package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/pratt/internal/grammar"
	"github.com/roach88/pratt/internal/pratt"
	"github.com/roach88/pratt/internal/store"
	"github.com/roach88/pratt/internal/tree"
)

// ParseOptions holds flags for the parse command.
type ParseOptions struct {
	*RootOptions
	Grammar  GrammarFlags
	Strict   bool   // fail on missing separators
	MaxDepth int    // nesting limit, 0 for none
	Database string // optional - record the parse
	Hash     bool   // print the tree hash
}

// ParseResult holds a successful parse.
type ParseResult struct {
	Input    string          `json:"input"`
	Grammar  string          `json:"grammar"`
	SExpr    string          `json:"sexpr"`
	Tree     json.RawMessage `json:"tree"`
	TreeHash string          `json:"tree_hash,omitempty"`
	RecordID string          `json:"record_id,omitempty"`
	Seq      int64           `json:"seq,omitempty"`
}

// ParseFailure holds the details of a rejected input.
type ParseFailure struct {
	Input    string `json:"input"`
	Grammar  string `json:"grammar"`
	Pos      int    `json:"pos"`
	Offset   int    `json:"offset"`
	Token    string `json:"token,omitempty"`
	RecordID string `json:"record_id,omitempty"`
}

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ParseOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "parse <expr>",
		Short: "Parse an expression",
		Long: `Parse one expression and print its tree as an s-expression.

The operator table comes from --grammar (a YAML or CUE file) or --builtin
(default "arith"). Identifiers and numbers are atoms when the grammar
enables them.

Separator tokens of mixfix constructs are matched leniently unless
--strict is given: "(a + b" parses as "(() (+ a b))" by default and fails
with MISSING_SEPARATOR under --strict.

With --db the outcome is appended to a SQLite parse log that
"pratt history" reads back.

Exit codes:
  0 - Input parsed
  1 - Input rejected (syntax error, unknown token)
  2 - Command error (grammar not found or invalid, database error, etc.)

Examples:
  pratt parse "a + b * c"
  pratt parse --builtin logic "p -> q -> r"
  pratt parse --grammar ./bool.cue --strict "(T or F"
  pratt parse "x = a ? b : c" --hash --format json
  pratt parse "a ^ b ^ c" --db ./parses.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(opts, args[0], cmd)
		},
	}

	opts.Grammar.Register(cmd)
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "fail when a separator token is missing")
	cmd.Flags().IntVar(&opts.MaxDepth, "max-depth", 0, "maximum nesting depth (0 = unlimited)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record the parse in this SQLite database")
	cmd.Flags().BoolVar(&opts.Hash, "hash", false, "print the content hash of the tree")

	return cmd
}

func runParse(opts *ParseOptions, input string, cmd *cobra.Command) error {
	ctx := context.Background()
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.MaxDepth < 0 {
		_ = formatter.Error(ErrCodeBadFlags, "--max-depth must be non-negative", nil)
		return NewExitError(ExitCommandError, "--max-depth must be non-negative")
	}

	table, err := opts.Grammar.Load()
	if err != nil {
		return outputLoadError(formatter, err)
	}
	formatter.VerboseLog("Using grammar %q (%d operators)", table.Name(), table.Len())

	mode := pratt.SeparatorLenient
	if opts.Strict {
		mode = pratt.SeparatorStrict
	}
	n, parseErr := tree.Parse(input, table,
		pratt.WithSeparatorMode(mode),
		pratt.WithMaxDepth(opts.MaxDepth),
		pratt.WithLogger(opts.Logger(formatter.GetErrWriter())),
	)

	var rec store.Record
	if opts.Database != "" {
		rec, err = recordParse(ctx, opts.Database, table, input, n, parseErr)
		if err != nil {
			_ = formatter.Error(ErrCodeOpenFailed, err.Error(), nil)
			return WrapExitError(ExitCommandError, "failed to record parse", err)
		}
		formatter.VerboseLog("Recorded parse %s (seq %d)", rec.ID, rec.Seq)
	}

	if parseErr != nil {
		return outputParseError(formatter, input, table, parseErr, rec)
	}

	data, err := n.MarshalCanonical()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to encode tree", err)
	}
	result := ParseResult{
		Input:    input,
		Grammar:  table.Name(),
		SExpr:    n.String(),
		Tree:     data,
		RecordID: rec.ID,
		Seq:      rec.Seq,
	}
	if opts.Hash {
		if result.TreeHash, err = n.Hash(); err != nil {
			return WrapExitError(ExitCommandError, "failed to hash tree", err)
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	w := formatter.Writer
	fmt.Fprintln(w, result.SExpr)
	if result.TreeHash != "" {
		fmt.Fprintf(w, "hash: %s\n", result.TreeHash)
	}
	return nil
}

// recordParse appends the outcome to the parse log at path.
func recordParse(ctx context.Context, path string, table *grammar.Table, input string, n *tree.Node, parseErr error) (store.Record, error) {
	st, err := store.Open(path)
	if err != nil {
		return store.Record{}, fmt.Errorf("failed to open database: %w", err)
	}
	defer st.Close()

	recorder, err := store.NewRecorder(ctx, st)
	if err != nil {
		return store.Record{}, err
	}
	return recorder.Record(ctx, table.Name(), input, n, parseErr)
}

// outputParseError reports a rejected input, pointing at the offending token
// in text mode.
func outputParseError(formatter *OutputFormatter, input string, table *grammar.Table, parseErr error, rec store.Record) error {
	code := tree.ErrorCode(parseErr)
	failure := ParseFailure{
		Input:    input,
		Grammar:  table.Name(),
		RecordID: rec.ID,
	}

	message := parseErr.Error()
	offset, located := tree.ErrorOffset(input, table, parseErr)
	var perr *pratt.Error
	if errors.As(parseErr, &perr) {
		message = perr.Message
		failure.Pos = perr.Pos
		failure.Token = perr.Token
		failure.Offset = offset
	}

	if formatter.Format == "json" {
		_ = formatter.Error(code, message, failure)
	} else {
		_ = formatter.Error(code, message, nil)
		if located {
			w := formatter.Writer
			src := norm.NFC.String(input)
			fmt.Fprintf(w, "  %s\n", src)
			fmt.Fprintf(w, "  %s^\n", strings.Repeat(" ", utf8.RuneCountInString(src[:offset])))
		}
	}

	return NewExitError(ExitFailure, fmt.Sprintf("%s: %s", code, message))
}
