package sheet

import (
	"fmt"
	"iter"
)

// TokenKind identifies lexical token class.
type TokenKind int

const (
	TokenEOF       TokenKind = iota // end of input
	TokenIdent                      // identifier, e.g. layer, blueColor, Courier-Bold
	TokenString                     // quoted string, Text holds decoded contents
	TokenNumber                     // number, Number holds parsed value
	TokenHash                       // #<name>, Text includes '#'
	TokenLBrace                     // {
	TokenRBrace                     // }
	TokenColon                      // :
	TokenSemicolon                  // ;
	TokenLParen                     // (
	TokenRParen                     // )
	TokenComma                      // ,
	TokenDot                        // .
)

var tokenKindNames = [...]string{
	TokenEOF:       "EOF",
	TokenIdent:     "IDENT",
	TokenString:    "STRING",
	TokenNumber:    "NUMBER",
	TokenHash:      "HASH",
	TokenLBrace:    "'{'",
	TokenRBrace:    "'}'",
	TokenColon:     "':'",
	TokenSemicolon: "';'",
	TokenLParen:    "'('",
	TokenRParen:    "')'",
	TokenComma:     "','",
	TokenDot:       "'.'",
}

// String returns printable token kind name.
func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a single lexical token.
type Token struct {
	Kind   TokenKind
	Text   string  // source text, decoded contents for strings
	Number float64 // value of TokenNumber
	Offset int     // byte offset of the token start in the input
}

// String returns token representation suitable for diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case TokenEOF:
		return "end of input"
	case TokenString:
		return fmt.Sprintf("%q", t.Text)
	case TokenIdent, TokenNumber, TokenHash:
		return t.Text
	default:
		return t.Kind.String()
	}
}

// Tokenizer produces tokens from theme text.
type Tokenizer struct {
	data   []byte
	source string
}

// NewTokenizer creates tokenizer over data. Optional source names the input
// in error messages.
func NewTokenizer(data []byte, source ...string) *Tokenizer {
	t := &Tokenizer{data: data}
	if len(source) > 0 {
		t.source = source[0]
	}
	return t
}

// Tokens returns lazy token sequence. Every call starts from the beginning of
// the input. Sequence ends after TokenEOF or after the first error, comments
// are never produced.
func (t *Tokenizer) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		lx := newLexer(t.data, t.source)
		for {
			tok, err := lx.next()
			if err != nil {
				yield(Token{}, err)
				return
			}
			if !yield(tok, nil) || tok.Kind == TokenEOF {
				return
			}
		}
	}
}
