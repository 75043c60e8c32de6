package tree

import (
	"fmt"

	"github.com/roach88/pratt/internal/grammar"
	"github.com/roach88/pratt/internal/op"
	"github.com/roach88/pratt/internal/scan"
)

// Builder reduces scanned tokens to Nodes using the descriptors of a
// grammar.Table. It implements every reducer the engine dispatches to.
type Builder struct {
	table *grammar.Table
}

// NewBuilder returns a Builder over table.
func NewBuilder(table *grammar.Table) *Builder {
	return &Builder{table: table}
}

// Table returns the operator table.
func (b *Builder) Table() *grammar.Table { return b.table }

// Query returns the descriptor of tok.
func (b *Builder) Query(tok scan.Token) (op.Op, error) {
	return b.table.Lookup(tok.Text)
}

// Nullary reduces an atom or nilfix operator.
func (b *Builder) Nullary(tok scan.Token) (*Node, error) {
	o, err := b.table.Lookup(tok.Text)
	if err != nil {
		return nil, err
	}
	return Leaf(o.Name, tok.Offset), nil
}

// Unary reduces a prefix, postfix or circumfix operator.
func (b *Builder) Unary(tok scan.Token, operand *Node) (*Node, error) {
	return b.node(tok, operand)
}

// Binary reduces an infix operator.
func (b *Builder) Binary(tok scan.Token, lhs, rhs *Node) (*Node, error) {
	return b.node(tok, lhs, rhs)
}

// Ternary reduces a mixfix operator with three operands.
func (b *Builder) Ternary(tok scan.Token, first, second, third *Node) (*Node, error) {
	return b.node(tok, first, second, third)
}

func (b *Builder) node(tok scan.Token, operands ...*Node) (*Node, error) {
	o, err := b.table.Lookup(tok.Text)
	if err != nil {
		return nil, err
	}
	if want := o.Arity.Operands(); want != len(operands) {
		return nil, fmt.Errorf("operator %q is %s and takes %d operand(s), got %d", o.Name, o.Arity, want, len(operands))
	}
	return &Node{Label: Label(o), Offset: tok.Offset, Operands: operands}, nil
}
