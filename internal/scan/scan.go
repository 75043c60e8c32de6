// Package scan splits source text into tokens for the parsing engine.
//
// Tokens are whitespace separated, except that symbolic operators need no
// surrounding space: "a+b*c" scans as five tokens when "+" and "*" are
// operators. Identifier and number runs are matched first, then the longest
// symbolic operator, then a single rune. A run ends where a declared symbol
// begins, so "a.b" and "1..5" split around "." and ".." when the grammar
// declares them.
package scan

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/pratt/internal/grammar"
)

// Token is one lexeme and its byte offset in the NFC-normalized source.
type Token struct {
	Text   string `json:"text"`
	Offset int    `json:"offset"`
}

// String returns the token text, so engine errors quote the lexeme.
func (t Token) String() string { return t.Text }

// Vocabulary supplies the symbolic operator names to match.
// *grammar.Table implements it.
type Vocabulary interface {
	Symbols() []string
}

// Tokenize splits src into tokens.
//
// src is NFC-normalized first and offsets index the normalized text.
// Symbols are tried longest first, so with both "<" and "<=" declared,
// "a<=b" yields a, <=, b. A word may not start with a dot, and only numbers
// may contain one.
func Tokenize(src string, vocab Vocabulary) []Token {
	src = norm.NFC.String(src)
	symbols := vocab.Symbols()

	var tokens []Token
	i := 0
	for i < len(src) {
		r, size := utf8.DecodeRuneInString(src[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}

		start := i
		switch {
		case grammar.IsWordRune(r):
			i = endOfWord(src, i, symbols)
		default:
			if sym := matchSymbol(src[i:], symbols); sym != "" {
				i += len(sym)
			} else {
				i += size
			}
		}
		tokens = append(tokens, Token{Text: src[start:i], Offset: start})
	}
	return tokens
}

// Texts returns the token texts.
func Texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

// endOfWord returns the end of the word run starting at i. A '.' continues
// a number when a digit follows it and no longer symbol starts there.
func endOfWord(src string, i int, symbols []string) int {
	first, size := utf8.DecodeRuneInString(src[i:])
	number := unicode.IsDigit(first)
	i += size
	for i < len(src) {
		r, size := utf8.DecodeRuneInString(src[i:])
		switch {
		case r == '.':
			if !number || !grammar.IsDigitAt(src, i+size) || len(matchSymbol(src[i:], symbols)) > size {
				return i
			}
		case !grammar.IsWordRune(r):
			return i
		case matchSymbol(src[i:], symbols) != "":
			return i
		}
		i += size
	}
	return i
}

// matchSymbol returns the first symbol that prefixes s. symbols must be
// ordered longest first.
func matchSymbol(s string, symbols []string) string {
	for _, sym := range symbols {
		if strings.HasPrefix(s, sym) {
			return sym
		}
	}
	return ""
}
