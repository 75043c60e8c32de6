package cli

import (
	"errors"
	"fmt"
	"os"

	"cuelang.org/go/cue/token"
	"github.com/spf13/cobra"

	"github.com/roach88/pratt/internal/grammar"
)

// DefaultBuiltin is the grammar used when neither --grammar nor --builtin
// is given.
const DefaultBuiltin = "arith"

// GrammarFlags selects the operator table a command runs against.
type GrammarFlags struct {
	File    string // path to a .yaml, .yml or .cue grammar
	Builtin string // name of a builtin grammar
}

// Register adds --grammar and --builtin to cmd.
func (g *GrammarFlags) Register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&g.File, "grammar", "g", "", "grammar file (.yaml, .yml or .cue)")
	cmd.Flags().StringVar(&g.Builtin, "builtin", "", fmt.Sprintf("builtin grammar (default %q)", DefaultBuiltin))
}

// Load returns the selected table.
//
// Returns grammar.ValidationErrors when the grammar file decodes but does
// not validate, and *LoadError for every other failure.
func (g *GrammarFlags) Load() (*grammar.Table, error) {
	switch {
	case g.File != "" && g.Builtin != "":
		return nil, &LoadError{Code: ErrCodeBadFlags, Message: "--grammar and --builtin are mutually exclusive"}
	case g.File != "":
		return LoadGrammarFile(g.File)
	}

	name := g.Builtin
	if name == "" {
		name = DefaultBuiltin
	}
	table, err := grammar.Builtin(name)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: err.Error()}
	}
	return table, nil
}

// LoadError represents an error that occurred during grammar loading.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadGrammarFile reads and validates a grammar file.
// Validation failures are returned unchanged as grammar.ValidationErrors.
func LoadGrammarFile(path string) (*grammar.Table, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("grammar file not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing grammar file: %v", err)}
	}
	if info.IsDir() {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a file: %s", path)}
	}

	table, err := grammar.Load(path)
	if err == nil {
		return table, nil
	}

	var verrs grammar.ValidationErrors
	if errors.As(err, &verrs) {
		return nil, verrs
	}
	loadErr := &LoadError{Code: ErrCodeLoadFailed, Message: err.Error()}
	var cerr *grammar.CompileError
	if errors.As(err, &cerr) {
		loadErr.Message = fmt.Sprintf("%s: %s", cerr.Field, cerr.Message)
		loadErr.Pos = cerr.Pos
	}
	return nil, loadErr
}

// outputLoadError reports a grammar that could not be loaded.
// Validation failures exit 1; everything else is a command error.
func outputLoadError(formatter *OutputFormatter, err error) error {
	var verrs grammar.ValidationErrors
	if errors.As(err, &verrs) {
		return outputValidationErrors(formatter, verrs)
	}

	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		var details interface{}
		if loadErr.Pos.IsValid() {
			details = map[string]interface{}{
				"file":   loadErr.Pos.Filename(),
				"line":   loadErr.Pos.Line(),
				"column": loadErr.Pos.Column(),
			}
		}
		_ = formatter.Error(loadErr.Code, loadErr.Message, details)
		return WrapExitError(ExitCommandError, "failed to load grammar", err)
	}

	_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
	return WrapExitError(ExitCommandError, "failed to load grammar", err)
}
