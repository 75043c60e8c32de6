package grammar

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/roach88/pratt/internal/op"
)

// Validation error codes (E100-E199)
const (
	ErrEmptyName         = "E101" // operator name is empty or contains whitespace
	ErrDuplicateOperator = "E102" // operator declared twice
	ErrInvalidShape      = "E103" // position and arity cannot be dispatched
	ErrTooManyFollow     = "E104" // more follow names than operand boundaries
	ErrUndeclaredFollow  = "E105" // follow name is not an interfix or circumfix operator
	ErrPrecedenceRange   = "E106" // precedence makes the operator unreachable
	ErrAssocOnNonInfix   = "E107" // associativity given for a non-infix operator
	ErrUnknownName       = "E108" // unknown affix, arity or associativity name
	ErrEmptyGrammar      = "E109" // no operators and no atoms
)

// ValidationError represents an operator table error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Line    int    `json:"line,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] line %d: %s: %s", e.Code, e.Line, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks a grammar spec.
// Returns all errors found (does not fail-fast).
func Validate(spec *Spec) []ValidationError {
	var errs []ValidationError

	if len(spec.Operators) == 0 && !spec.Atoms {
		errs = append(errs, ValidationError{
			Field:   "operators",
			Message: "grammar declares no operators and no atoms",
			Code:    ErrEmptyGrammar,
		})
	}

	// First pass: names, shapes and the separator vocabulary.
	seen := make(map[string]int)
	separators := make(map[string]bool)
	built := make([]op.Op, len(spec.Operators))
	ok := make([]bool, len(spec.Operators))

	for i, s := range spec.Operators {
		field := fmt.Sprintf("operators[%d]", i)

		name := normalize(s.Name)
		if name == "" || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: fmt.Sprintf("operator name %q must be non-empty and contain no whitespace", s.Name),
				Code:    ErrEmptyName,
				Line:    s.Line,
			})
		} else if first, dup := seen[name]; dup {
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: fmt.Sprintf("duplicate operator %q (first declared at operators[%d])", name, first),
				Code:    ErrDuplicateOperator,
				Line:    s.Line,
			})
		} else {
			seen[name] = i
		}

		nameErrs := validateNames(field, s)
		errs = append(errs, nameErrs...)
		if len(nameErrs) > 0 {
			continue
		}

		if len(s.Follow) > op.MaxFollow {
			errs = append(errs, ValidationError{
				Field:   field + ".follow",
				Message: fmt.Sprintf("%d follow names exceed the maximum of %d", len(s.Follow), op.MaxFollow),
				Code:    ErrTooManyFollow,
				Line:    s.Line,
			})
			continue
		}

		o, err := s.Op()
		if err != nil {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: err.Error(),
				Code:    ErrUnknownName,
				Line:    s.Line,
			})
			continue
		}
		built[i] = o
		ok[i] = true

		if p := o.Position(); p == op.Interfix || p == op.Circumfix {
			separators[o.Name] = true
		}
	}

	// Second pass: rules that depend on the whole table.
	for i, s := range spec.Operators {
		if !ok[i] {
			continue
		}
		errs = append(errs, validateOperator(fmt.Sprintf("operators[%d]", i), s, built[i], separators)...)
	}

	return errs
}

// validateNames checks the enum names of one operator.
func validateNames(field string, s OperatorSpec) []ValidationError {
	var errs []ValidationError

	pos, posErr := op.ParsePosition(s.Affix)
	if posErr != nil {
		errs = append(errs, ValidationError{
			Field:   field + ".affix",
			Message: posErr.Error(),
			Code:    ErrUnknownName,
			Line:    s.Line,
		})
	}
	if s.Arity != "" {
		if _, err := op.ParseArity(s.Arity); err != nil {
			errs = append(errs, ValidationError{
				Field:   field + ".arity",
				Message: err.Error(),
				Code:    ErrUnknownName,
				Line:    s.Line,
			})
		}
	}
	if s.Assoc != "" {
		if _, err := op.ParseAssociativity(s.Assoc); err != nil {
			errs = append(errs, ValidationError{
				Field:   field + ".assoc",
				Message: err.Error(),
				Code:    ErrUnknownName,
				Line:    s.Line,
			})
		} else if posErr == nil && pos != op.Infix {
			errs = append(errs, ValidationError{
				Field:   field + ".assoc",
				Message: fmt.Sprintf("associativity is only meaningful for infix operators, not %s", s.Affix),
				Code:    ErrAssocOnNonInfix,
				Line:    s.Line,
			})
		}
	}
	return errs
}

// validateOperator checks the shape, precedence and follow names of one
// well-formed operator.
func validateOperator(field string, s OperatorSpec, o op.Op, separators map[string]bool) []ValidationError {
	var errs []ValidationError

	shapeOK := o.ValidAt(op.RoleStart) || o.ValidAt(op.RoleContinue)
	if o.Position() == op.Interfix {
		shapeOK = o.Arity == op.Nullary
	}
	if !shapeOK {
		errs = append(errs, ValidationError{
			Field:   field + ".arity",
			Message: fmt.Sprintf("%s operator %q cannot be %s", o.Position(), o.Name, o.Arity),
			Code:    ErrInvalidShape,
			Line:    s.Line,
		})
	}

	// Continuing operators need floor < lbp < ceiling to be satisfiable.
	if p := o.Position(); p == op.Infix || p == op.Postfix {
		if o.Precedence == op.MinPrecedence || o.Precedence == op.MaxPrecedence {
			errs = append(errs, ValidationError{
				Field:   field + ".precedence",
				Message: fmt.Sprintf("%s operator %q needs a precedence strictly between %d and %d", p, o.Name, op.MinPrecedence, op.MaxPrecedence),
				Code:    ErrPrecedenceRange,
				Line:    s.Line,
			})
		}
	}

	boundaries := followBoundaries(o)
	for j := boundaries; j < op.MaxFollow; j++ {
		if o.Follow[j] != "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("%s.follow[%d]", field, j),
				Message: fmt.Sprintf("%s %s operator %q has %d separator boundary(ies); follow name %q is never consulted", o.Position(), o.Arity, o.Name, boundaries, o.Follow[j]),
				Code:    ErrTooManyFollow,
				Line:    s.Line,
			})
		}
	}

	for j, name := range o.Follow {
		if name != "" && !separators[name] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("%s.follow[%d]", field, j),
				Message: fmt.Sprintf("follow name %q is not declared as an interfix or circumfix operator", name),
				Code:    ErrUndeclaredFollow,
				Line:    s.Line,
			})
		}
	}

	return errs
}

// followBoundaries returns how many follow slots the engine consults for o.
func followBoundaries(o op.Op) int {
	switch {
	case o.Position() == op.Prefix && o.Arity == op.Ternary:
		return 2
	case o.Position() == op.Circumfix && o.Arity == op.Unary:
		return 1
	case o.Position() == op.Postfix && o.Arity == op.Ternary:
		return 1
	case o.Position() == op.Infix && o.Arity == op.Ternary:
		return 1
	default:
		return 0
	}
}
