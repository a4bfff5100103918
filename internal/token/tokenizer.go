package token

import (
	"strings"
	"unicode"
)

// Tokenizer interface defines the method for tokenizing input strings.
type Tokenizer interface {
	Tokenize(input string) []Token
}

type WhitespaceTokenizer struct{}

func NewWhitespaceTokenizer() *WhitespaceTokenizer {
	return &WhitespaceTokenizer{}
}

// Tokenize splits input on runs of whitespace.
// Example: Input: `network   outage 42` -> WORD(network) WORD(outage) NUMBER(42)
func (t *WhitespaceTokenizer) Tokenize(input string) []Token {
	fields := strings.Fields(input)
	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		typ := WORD
		if isDigits(f) {
			typ = NUMBER
		}
		tokens = append(tokens, Token{Type: typ, Value: f})
	}
	return tokens
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
