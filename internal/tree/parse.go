package tree

import (
	"errors"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/pratt/internal/grammar"
	"github.com/roach88/pratt/internal/pratt"
	"github.com/roach88/pratt/internal/scan"
)

// Parse tokenizes src with the symbols of table and parses the whole
// stream into a tree.
func Parse(src string, table *grammar.Table, opts ...pratt.Option) (*Node, error) {
	tokens := scan.Tokenize(src, table)
	p := pratt.New[scan.Token, *Node](NewBuilder(table), opts...)
	return p.ParseSlice(tokens)
}

// Error codes for failures that are not engine errors.
const (
	CodeUnknownToken = "UNKNOWN_TOKEN"
	CodeOther        = "ERROR"
)

// ErrorCode classifies a parse failure: the engine error code, UNKNOWN_TOKEN
// for tokens missing from the grammar, or ERROR for anything else.
func ErrorCode(err error) string {
	if code := pratt.CodeOf(err); code != "" {
		return string(code)
	}
	var ute *grammar.UnknownTokenError
	if errors.As(err, &ute) {
		return CodeUnknownToken
	}
	return CodeOther
}

// ErrorOffset maps an engine error to a byte offset in the NFC-normalized
// src: the offset of the offending token, or the source length at end of
// input. ok is false when err is not an engine error.
func ErrorOffset(src string, table *grammar.Table, err error) (offset int, ok bool) {
	var perr *pratt.Error
	if !errors.As(err, &perr) {
		return 0, false
	}
	src = norm.NFC.String(src)
	tokens := scan.Tokenize(src, table)
	if perr.Pos < len(tokens) {
		return tokens[perr.Pos].Offset, true
	}
	return len(src), true
}
