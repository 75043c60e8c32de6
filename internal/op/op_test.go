package op

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrecedence_LowerRaise(t *testing.T) {
	p := Precedence(10)
	assert.Equal(t, Precedence(9), p.Lower())
	assert.Equal(t, Precedence(11), p.Raise())
	assert.Equal(t, p, p.Raise().Lower())
}

func TestPrecedence_Saturates(t *testing.T) {
	assert.Equal(t, MinPrecedence, Min().Lower())
	assert.Equal(t, MaxPrecedence, Max().Raise())
	assert.True(t, Min() < Max())
}

func TestBindingPowers(t *testing.T) {
	const p = Precedence(20)
	max := MaxPrecedence
	min := MinPrecedence

	tests := []struct {
		name          string
		op            Op
		lbp, nbp, rbp Precedence
	}{
		{"nilfix", New("x", Nilfix, Nullary, p), min, max, min},
		{"prefix", New("-", Prefix, Unary, p), min, max, p - 1},
		{"circumfix", New("‖", Circumfix, Unary, p), min, max, p - 1},
		{"interfix", New("then", Interfix, Nullary, p), min, max, min},
		{"postfix", New("!", Postfix, Unary, p), p, max, min},
		{"postfix ternary", New("[", Postfix, Ternary, p), p, max, p - 1},
		{"infix left", NewInfix("+", AssocLeft, Binary, p), p, p + 1, p},
		{"infix right", NewInfix("^", AssocRight, Binary, p), p, p + 1, p - 1},
		{"infix null", NewInfix("==", AssocNull, Binary, p), p, p, p},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.lbp, tt.op.LBP(), "lbp")
			assert.Equal(t, tt.nbp, tt.op.NBP(), "nbp")
			assert.Equal(t, tt.rbp, tt.op.RBP(), "rbp")
		})
	}
}

func TestFollowedBy(t *testing.T) {
	o := New("if", Prefix, Ternary, 1).FollowedBy("then", "else")

	assert.Equal(t, "then", o.FollowAt(0))
	assert.Equal(t, "else", o.FollowAt(1))
	assert.Equal(t, "", o.FollowAt(2))
	assert.Equal(t, "", o.FollowAt(7), "out of range slots are empty")
	assert.Equal(t, []string{"then", "else"}, o.FollowNames())
}

func TestFollowedBy_KeepsEmptySlots(t *testing.T) {
	o := New("f", Prefix, Ternary, 1).FollowedBy("", ",")

	assert.Equal(t, "", o.FollowAt(0))
	assert.Equal(t, ",", o.FollowAt(1))
	assert.Equal(t, []string{","}, o.FollowNames())
}

func TestFollowedBy_TooMany(t *testing.T) {
	assert.Panics(t, func() {
		New("f", Prefix, Ternary, 1).FollowedBy("a", "b", "c", "d", "e")
	})
}

func TestValidAt(t *testing.T) {
	tests := []struct {
		op    Op
		start bool
		cont  bool
	}{
		{New("x", Nilfix, Nullary, 0), true, false},
		{New("x", Nilfix, Unary, 0), false, false},
		{New("-", Prefix, Unary, 5), true, false},
		{New("if", Prefix, Ternary, 5), true, false},
		{New("-", Prefix, Binary, 5), false, false},
		{New("(", Circumfix, Unary, 5), true, false},
		{New("(", Circumfix, Binary, 5), false, false},
		{New("then", Interfix, Nullary, 0), false, false},
		{New("!", Postfix, Unary, 5), false, true},
		{New("!", Postfix, Ternary, 5), false, true},
		{New("!", Postfix, Binary, 5), false, false},
		{NewInfix("+", AssocLeft, Binary, 5), false, true},
		{NewInfix("?", AssocRight, Ternary, 5), false, true},
		{NewInfix("+", AssocLeft, Unary, 5), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			assert.Equal(t, tt.start, tt.op.ValidAt(RoleStart))
			assert.Equal(t, tt.cont, tt.op.ValidAt(RoleContinue))
		})
	}
}

func TestParseNames(t *testing.T) {
	pos, err := ParsePosition("Circumfix")
	require.NoError(t, err)
	assert.Equal(t, Circumfix, pos)

	arity, err := ParseArity("ternary")
	require.NoError(t, err)
	assert.Equal(t, Ternary, arity)

	assoc, err := ParseAssociativity("none")
	require.NoError(t, err)
	assert.Equal(t, AssocNull, assoc)

	_, err = ParsePosition("outfix")
	assert.Error(t, err)
	_, err = ParseArity("quaternary")
	assert.Error(t, err)
	_, err = ParseAssociativity("sideways")
	assert.Error(t, err)
}

func TestAffixString(t *testing.T) {
	assert.Equal(t, "infix(right)", InfixAffix(AssocRight).String())
	assert.Equal(t, "prefix", Affix{Position: Prefix}.String())
	assert.Equal(t, "+ infix(left)/binary@10", NewInfix("+", AssocLeft, Binary, 10).String())
}
