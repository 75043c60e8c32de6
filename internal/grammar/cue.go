package grammar

import (
	"fmt"
	"math"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

// CompileCUE converts a CUE value into a grammar Spec.
// Uses CUE SDK's Go API directly (not CLI subprocess).
//
// The value is the grammar struct itself, e.g.:
//
//	name:  "logic"
//	atoms: true
//	operators: {
//		"&":   {affix: "infix", assoc: "left", precedence: 40}
//		"not": {affix: "prefix", precedence: 50}
//		"(":   {affix: "circumfix", precedence: 1, follow: [")"]}
//		")":   {affix: "interfix"}
//	}
//
// Operators keep their declaration order.
func CompileCUE(v cue.Value) (*Spec, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	spec := &Spec{}

	if nameVal := v.LookupPath(cue.ParsePath("name")); nameVal.Exists() {
		name, err := nameVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		spec.Name = name
	}

	if descVal := v.LookupPath(cue.ParsePath("description")); descVal.Exists() {
		desc, err := descVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		spec.Description = desc
	}

	if atomsVal := v.LookupPath(cue.ParsePath("atoms")); atomsVal.Exists() {
		atoms, err := atomsVal.Bool()
		if err != nil {
			return nil, formatCUEError(err)
		}
		spec.Atoms = atoms
	}

	opsVal := v.LookupPath(cue.ParsePath("operators"))
	if !opsVal.Exists() {
		return spec, nil
	}

	iter, err := opsVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}
	for iter.Next() {
		opSpec, err := parseOperator(iter.Selector().Unquoted(), iter.Value())
		if err != nil {
			return nil, err
		}
		spec.Operators = append(spec.Operators, opSpec)
	}

	return spec, nil
}

// LoadCUE compiles a CUE grammar file, then builds its table.
func LoadCUE(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grammar file: %w", err)
	}

	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	spec, err := CompileCUE(v)
	if err != nil {
		return nil, err
	}
	return NewTable(spec)
}

// parseOperator extracts one operator definition.
func parseOperator(name string, v cue.Value) (OperatorSpec, error) {
	s := OperatorSpec{
		Name: name,
		Line: v.Pos().Line(),
	}

	affix, err := lookupString(v, "affix")
	if err != nil {
		return s, err
	}
	if affix == "" {
		return s, &CompileError{
			Field:   fmt.Sprintf("operators.%q.affix", name),
			Message: "affix is required",
			Pos:     v.Pos(),
		}
	}
	s.Affix = affix

	if s.Assoc, err = lookupString(v, "assoc"); err != nil {
		return s, err
	}
	if s.Arity, err = lookupString(v, "arity"); err != nil {
		return s, err
	}

	if precVal := v.LookupPath(cue.ParsePath("precedence")); precVal.Exists() {
		prec, err := precVal.Int64()
		if err != nil {
			return s, formatCUEError(err)
		}
		if prec < 0 || prec > math.MaxUint32 {
			return s, &CompileError{
				Field:   fmt.Sprintf("operators.%q.precedence", name),
				Message: fmt.Sprintf("precedence %d out of range [0, %d]", prec, uint32(math.MaxUint32)),
				Pos:     precVal.Pos(),
			}
		}
		s.Precedence = uint32(prec)
	}

	if followVal := v.LookupPath(cue.ParsePath("follow")); followVal.Exists() {
		list, err := followVal.List()
		if err != nil {
			return s, formatCUEError(err)
		}
		for list.Next() {
			f, err := list.Value().String()
			if err != nil {
				return s, formatCUEError(err)
			}
			s.Follow = append(s.Follow, f)
		}
	}

	return s, nil
}

// lookupString returns the string at field, or "" when it is absent.
func lookupString(v cue.Value, field string) (string, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return "", nil
	}
	s, err := fv.String()
	if err != nil {
		return "", formatCUEError(err)
	}
	return s, nil
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	// CUE errors may contain multiple errors
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	// Return first error with position info
	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
