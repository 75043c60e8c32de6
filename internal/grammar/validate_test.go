package grammar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(errs []ValidationError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Code
	}
	return out
}

func TestValidate_Valid(t *testing.T) {
	spec, err := ParseYAML([]byte(arithYAML))
	require.NoError(t, err)
	assert.Empty(t, Validate(spec))
}

func TestValidate_Codes(t *testing.T) {
	tests := []struct {
		name string
		ops  []OperatorSpec
		want []string
	}{
		{
			name: "empty name",
			ops:  []OperatorSpec{{Name: "", Affix: "nilfix"}},
			want: []string{ErrEmptyName},
		},
		{
			name: "whitespace in name",
			ops:  []OperatorSpec{{Name: "a b", Affix: "nilfix"}},
			want: []string{ErrEmptyName},
		},
		{
			name: "duplicate",
			ops: []OperatorSpec{
				{Name: "+", Affix: "infix", Precedence: 10},
				{Name: "+", Affix: "prefix", Precedence: 10},
			},
			want: []string{ErrDuplicateOperator},
		},
		{
			name: "infix unary",
			ops:  []OperatorSpec{{Name: "+", Affix: "infix", Arity: "unary", Precedence: 10}},
			want: []string{ErrInvalidShape},
		},
		{
			name: "prefix binary",
			ops:  []OperatorSpec{{Name: "-", Affix: "prefix", Arity: "binary", Precedence: 10}},
			want: []string{ErrInvalidShape},
		},
		{
			name: "interfix with operands",
			ops:  []OperatorSpec{{Name: ":", Affix: "interfix", Arity: "unary"}},
			want: []string{ErrInvalidShape},
		},
		{
			name: "five follow names",
			ops: []OperatorSpec{
				{Name: "f", Affix: "prefix", Arity: "ternary", Precedence: 1, Follow: []string{"a", "b", "c", "d", "e"}},
			},
			want: []string{ErrTooManyFollow},
		},
		{
			name: "follow beyond operand boundaries",
			ops: []OperatorSpec{
				{Name: "(", Affix: "circumfix", Precedence: 1, Follow: []string{")", ")"}},
				{Name: ")", Affix: "interfix"},
			},
			want: []string{ErrTooManyFollow},
		},
		{
			name: "undeclared follow",
			ops: []OperatorSpec{
				{Name: "(", Affix: "circumfix", Precedence: 1, Follow: []string{")"}},
			},
			want: []string{ErrUndeclaredFollow},
		},
		{
			name: "follow names an infix operator",
			ops: []OperatorSpec{
				{Name: "?", Affix: "infix", Arity: "ternary", Precedence: 5, Follow: []string{"+"}},
				{Name: "+", Affix: "infix", Precedence: 10},
			},
			want: []string{ErrUndeclaredFollow},
		},
		{
			name: "infix precedence zero",
			ops:  []OperatorSpec{{Name: "+", Affix: "infix"}},
			want: []string{ErrPrecedenceRange},
		},
		{
			name: "postfix precedence max",
			ops:  []OperatorSpec{{Name: "!", Affix: "postfix", Precedence: 4294967295}},
			want: []string{ErrPrecedenceRange},
		},
		{
			name: "assoc on prefix",
			ops:  []OperatorSpec{{Name: "-", Affix: "prefix", Assoc: "right", Precedence: 10}},
			want: []string{ErrAssocOnNonInfix},
		},
		{
			name: "unknown affix",
			ops:  []OperatorSpec{{Name: "+", Affix: "sidefix"}},
			want: []string{ErrUnknownName},
		},
		{
			name: "unknown arity and assoc",
			ops:  []OperatorSpec{{Name: "+", Affix: "infix", Arity: "quaternary", Assoc: "diagonal", Precedence: 10}},
			want: []string{ErrUnknownName, ErrUnknownName},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(&Spec{Name: "t", Atoms: true, Operators: tt.ops})
			assert.Equal(t, tt.want, codes(errs))
		})
	}
}

func TestValidate_EmptyGrammar(t *testing.T) {
	errs := Validate(&Spec{Name: "nothing"})
	assert.Equal(t, []string{ErrEmptyGrammar}, codes(errs))

	assert.Empty(t, Validate(&Spec{Name: "atoms-only", Atoms: true}))
}

func TestValidate_CollectsAll(t *testing.T) {
	errs := Validate(&Spec{
		Name: "broken",
		Operators: []OperatorSpec{
			{Name: "+", Affix: "infix"},
			{Name: "-", Affix: "prefix", Assoc: "left", Precedence: 10},
			{Name: "(", Affix: "circumfix", Precedence: 1, Follow: []string{")"}},
		},
	})
	assert.Equal(t, []string{ErrAssocOnNonInfix, ErrPrecedenceRange, ErrUndeclaredFollow}, codes(errs))
}

func TestValidate_LineNumbers(t *testing.T) {
	spec, err := ParseYAML([]byte(`
name: lines
operators:
  - {name: "+", affix: infix, precedence: 10}
  - {name: "*", affix: infix}
`))
	require.NoError(t, err)

	errs := Validate(spec)
	require.Len(t, errs, 1)
	assert.Equal(t, 5, errs[0].Line)
	assert.Equal(t, "operators[1].precedence", errs[0].Field)
	assert.Contains(t, errs[0].Error(), "[E106] line 5")
}

func TestNewTable_ReturnsValidationErrors(t *testing.T) {
	_, err := NewTable(&Spec{
		Name: "bad",
		Operators: []OperatorSpec{
			{Name: "+", Affix: "infix"},
			{Name: "+", Affix: "infix", Precedence: 10},
		},
	})
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, []string{ErrDuplicateOperator, ErrPrecedenceRange}, codes(verrs))
	assert.Contains(t, err.Error(), "2 grammar errors")
}
