package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pratt/internal/grammar"
)

type symbols []string

func (s symbols) Symbols() []string { return s }

func TestTokenize(t *testing.T) {
	vocab := symbols{"<=>", "==", "<=", "+", "<", "(", ")", "‖"}

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", " \t\n ", nil},
		{"spaced", "a + b", []string{"a", "+", "b"}},
		{"unspaced", "a+b", []string{"a", "+", "b"}},
		{"longest match", "a<=b<c", []string{"a", "<=", "b", "<", "c"}},
		{"three rune symbol", "x<=>y", []string{"x", "<=>", "y"}},
		{"numbers", "3.14+x_1", []string{"3.14", "+", "x_1"}},
		{"keywords are words", "if p then q else r", []string{"if", "p", "then", "q", "else", "r"}},
		{"unknown rune", "a # b", []string{"a", "#", "b"}},
		{"unicode symbol", "‖x‖", []string{"‖", "x", "‖"}},
		{"unicode word", "λ+μ", []string{"λ", "+", "μ"}},
		{"leading dot", ".5", []string{".", "5"}},
		{"parens", "(a)", []string{"(", "a", ")"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nilIfEmpty(Texts(Tokenize(tt.src, vocab))))
		})
	}
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

func TestTokenize_Dots(t *testing.T) {
	vocab := symbols{"..", "+", "."}

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"member access", "a.b", []string{"a", ".", "b"}},
		{"chained access", "obj.field.x", []string{"obj", ".", "field", ".", "x"}},
		{"range", "1..5", []string{"1", "..", "5"}},
		{"identifier range", "a..b", []string{"a", "..", "b"}},
		{"decimal", "3.14+1", []string{"3.14", "+", "1"}},
		{"decimal member", "3.14.x", []string{"3.14", ".", "x"}},
		{"trailing dot", "3.", []string{"3", "."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Texts(Tokenize(tt.src, vocab)))
		})
	}
}

func TestTokenize_DotsWithTable(t *testing.T) {
	table, err := grammar.NewTable(&grammar.Spec{
		Name:  "members",
		Atoms: true,
		Operators: []grammar.OperatorSpec{
			{Name: ".", Affix: "infix", Precedence: 90},
			{Name: "..", Affix: "infix", Precedence: 20},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"..", "."}, table.Symbols())

	assert.Equal(t, []string{"a", ".", "b"}, Texts(Tokenize("a.b", table)))
	assert.Equal(t, []string{"1", "..", "5"}, Texts(Tokenize("1..5", table)))
}

func TestTokenize_Offsets(t *testing.T) {
	tokens := Tokenize("ab  <= c", symbols{"<="})
	assert.Equal(t, []Token{
		{Text: "ab", Offset: 0},
		{Text: "<=", Offset: 4},
		{Text: "c", Offset: 7},
	}, tokens)
}

func TestTokenize_NormalizesNFC(t *testing.T) {
	// "A" followed by U+030A composes to U+00C5.
	tokens := Tokenize("A\u030a+b", symbols{"+"})
	require.Len(t, tokens, 3)
	assert.Equal(t, "\u00c5", tokens[0].Text)
	assert.Equal(t, 2, tokens[1].Offset, "offsets index the normalized text")
}

func TestTokenize_WithTable(t *testing.T) {
	table, err := grammar.Builtin("arith")
	require.NoError(t, err)

	got := Texts(Tokenize("x=a==b?c:d[i]=v!", table))
	assert.Equal(t, []string{"x", "=", "a", "==", "b", "?", "c", ":", "d", "[", "i", "]=", "v", "!"}, got)
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, "+", Token{Text: "+", Offset: 3}.String())
}
