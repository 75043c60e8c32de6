package grammar

import (
	"slices"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/pratt/internal/op"
)

// Table maps token text to operator descriptors. It is the descriptor
// lookup collaborator of the parsing engine.
//
// A Table is immutable once built and safe for concurrent use.
type Table struct {
	name        string
	description string
	atoms       bool
	ops         map[string]op.Op
	order       []string
}

// NewTable validates spec and builds its table.
// Returns ValidationErrors when the spec has problems.
func NewTable(spec *Spec) (*Table, error) {
	if errs := Validate(spec); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	t := &Table{
		name:        spec.Name,
		description: spec.Description,
		atoms:       spec.Atoms,
		ops:         make(map[string]op.Op, len(spec.Operators)),
		order:       make([]string, 0, len(spec.Operators)),
	}
	for _, s := range spec.Operators {
		o, err := s.Op()
		if err != nil {
			// Validate has already rejected every spec Op can fail on.
			return nil, err
		}
		t.ops[o.Name] = o
		t.order = append(t.order, o.Name)
	}
	return t, nil
}

// Name returns the grammar name.
func (t *Table) Name() string { return t.name }

// Description returns the grammar description.
func (t *Table) Description() string { return t.description }

// Atoms reports whether identifiers and numbers are nilfix atoms.
func (t *Table) Atoms() bool { return t.atoms }

// Len returns the number of operators.
func (t *Table) Len() int { return len(t.order) }

// Lookup returns the descriptor of a token.
//
// Token text is NFC-normalized before lookup. Operators take priority over
// atoms, so a keyword such as `if` is never read as an identifier.
func (t *Table) Lookup(text string) (op.Op, error) {
	name := normalize(text)
	if o, ok := t.ops[name]; ok {
		return o, nil
	}
	if t.atoms && IsWord(name) {
		return op.New(name, op.Nilfix, op.Nullary, op.MinPrecedence), nil
	}
	return op.Op{}, &UnknownTokenError{Name: name}
}

// Operators returns the descriptors in declaration order.
func (t *Table) Operators() []op.Op {
	ops := make([]op.Op, len(t.order))
	for i, name := range t.order {
		ops[i] = t.ops[name]
	}
	return ops
}

// Symbols returns the operator names that are not words, longest first and
// then lexicographically. A tokenizer matching them in this order finds the
// longest operator at each position.
func (t *Table) Symbols() []string {
	var syms []string
	for _, name := range t.order {
		if !IsWord(name) {
			syms = append(syms, name)
		}
	}
	slices.SortFunc(syms, func(a, b string) int {
		la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
		if la != lb {
			return lb - la
		}
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
		return 0
	})
	return syms
}

// IsWordRune reports whether r can appear in an identifier or number.
// The decimal point is not a word rune; see IsWord.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsWord reports whether s is a non-empty identifier or number. Words are
// runs of word runes. A word that starts with a digit is a number and may
// also contain '.' when a digit follows it, as in "3.14".
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	number := unicode.IsDigit(first)
	for i, r := range s {
		if r == '.' {
			if !number || !IsDigitAt(s, i+1) {
				return false
			}
			continue
		}
		if !IsWordRune(r) {
			return false
		}
	}
	return true
}

// IsDigitAt reports whether s has a digit at byte offset i.
func IsDigitAt(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsDigit(r)
}

// normalize puts names in NFC so equivalent spellings of a symbol match.
func normalize(s string) string {
	return norm.NFC.String(s)
}
