package op

// LBP is the left binding power: whether o may continue a preceding
// expression. Tokens that always start something new return MinPrecedence,
// which no floor is ever strictly below.
func (o Op) LBP() Precedence {
	switch o.Affix.Position {
	case Postfix, Infix:
		return o.Precedence
	default:
		return MinPrecedence
	}
}

// NBP is the next binding power: the exclusive ceiling on the lbp of tokens
// that may still attach once o has been reduced.
func (o Op) NBP() Precedence {
	if o.Affix.Position != Infix {
		return MaxPrecedence
	}
	if o.Affix.Assoc == AssocNull {
		return o.Precedence
	}
	return o.Precedence.Raise()
}

// RBP is the right binding power: the floor used when parsing the final
// operand of o. Interior operands of mixfix constructs are always parsed
// with MinPrecedence and do not use RBP.
//
// Nilfix, interfix and unary postfix tokens have no operand to their right
// and return MinPrecedence.
func (o Op) RBP() Precedence {
	switch o.Affix.Position {
	case Prefix, Circumfix:
		return o.Precedence.Lower()
	case Postfix:
		if o.Arity == Unary {
			return MinPrecedence
		}
		return o.Precedence.Lower()
	case Infix:
		if o.Affix.Assoc == AssocRight {
			return o.Precedence.Lower()
		}
		return o.Precedence
	default:
		return MinPrecedence
	}
}
