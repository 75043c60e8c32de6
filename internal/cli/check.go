package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/pratt/internal/grammar"
	"github.com/roach88/pratt/internal/op"
)

// OperatorSummary describes one operator of a checked grammar.
type OperatorSummary struct {
	Name       string   `json:"name"`
	Affix      string   `json:"affix"`
	Arity      string   `json:"arity"`
	Precedence uint32   `json:"precedence"`
	Follow     []string `json:"follow,omitempty"`
	LBP        uint32   `json:"lbp"`
	NBP        uint32   `json:"nbp"`
	RBP        uint32   `json:"rbp"`
}

// CheckResult holds the result of checking a grammar file.
type CheckResult struct {
	Valid       bool                      `json:"valid"`
	Grammar     string                    `json:"grammar,omitempty"`
	Description string                    `json:"description,omitempty"`
	Atoms       bool                      `json:"atoms"`
	Operators   []OperatorSummary         `json:"operators,omitempty"`
	Errors      []grammar.ValidationError `json:"errors,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <grammar-file>",
		Short: "Validate a grammar file",
		Long: `Load and validate a YAML or CUE grammar file, then summarize its operators.

All validation problems are reported at once, with line numbers where
the source format provides them. The summary lists the binding powers
the parser derives for every operator.

Exit codes:
  0 - Grammar is valid
  1 - Grammar has validation errors
  2 - Command error (file not found, malformed YAML or CUE, etc.)

Examples:
  pratt check ./grammars/arith.yaml
  pratt check ./grammars/logic.cue --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	formatter.VerboseLog("Loading grammar %s", path)
	table, err := LoadGrammarFile(path)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	result := summarize(table)
	formatter.VerboseLog("Grammar %q has %d operator(s)", result.Grammar, len(result.Operators))

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	return outputCheckText(formatter, result)
}

// summarize describes every operator of table in declaration order.
func summarize(table *grammar.Table) CheckResult {
	result := CheckResult{
		Valid:       true,
		Grammar:     table.Name(),
		Description: table.Description(),
		Atoms:       table.Atoms(),
		Operators:   make([]OperatorSummary, 0, table.Len()),
	}
	for _, o := range table.Operators() {
		result.Operators = append(result.Operators, OperatorSummary{
			Name:       o.Name,
			Affix:      o.Affix.String(),
			Arity:      o.Arity.String(),
			Precedence: uint32(o.Precedence),
			Follow:     o.FollowNames(),
			LBP:        uint32(o.LBP()),
			NBP:        uint32(o.NBP()),
			RBP:        uint32(o.RBP()),
		})
	}
	return result
}

func outputCheckText(formatter *OutputFormatter, result CheckResult) error {
	w := formatter.Writer

	atoms := "no atoms"
	if result.Atoms {
		atoms = "identifiers and numbers are atoms"
	}
	fmt.Fprintf(w, "✓ %s: %d operator(s), %s\n", result.Grammar, len(result.Operators), atoms)
	if result.Description != "" {
		fmt.Fprintf(w, "  %s\n", result.Description)
	}
	if len(result.Operators) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tAFFIX\tARITY\tPREC\tLBP\tNBP\tRBP\tFOLLOW")
	for _, o := range result.Operators {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			o.Name, o.Affix, o.Arity, o.Precedence,
			power(o.LBP), power(o.NBP), power(o.RBP),
			strings.Join(o.Follow, " "))
	}
	return tw.Flush()
}

// power formats a binding power, naming the extremes.
func power(p uint32) string {
	switch op.Precedence(p) {
	case op.MinPrecedence:
		return "min"
	case op.MaxPrecedence:
		return "max"
	}
	return fmt.Sprint(p)
}

// outputValidationErrors outputs multiple validation errors.
func outputValidationErrors(formatter *OutputFormatter, errs []grammar.ValidationError) error {
	if formatter.Format == "json" {
		result := CheckResult{
			Valid:  false,
			Errors: errs,
		}

		response := CLIResponse{
			Status: "error",
			Data:   result,
			Error: &CLIError{
				Code:    errs[0].Code,
				Message: errs[0].Message,
			},
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}

		// Validation failures = exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
	}

	// Text format
	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)

	for _, err := range errs {
		if err.Line > 0 {
			fmt.Fprintf(formatter.Writer, "line %d\n", err.Line)
		}
		fmt.Fprintf(formatter.Writer, "  %s: %s: %s\n\n", err.Code, err.Field, err.Message)
	}

	// Validation failures = exit code 1
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
}
