package sheet

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// lexer adapts CSS3 tokenizer to theme grammar: drops whitespace and
// comments, splits function tokens into identifier and parenthesis, handles
// line comments and reports malformed input.
type lexer struct {
	data    []byte
	source  string
	input   *parse.Input
	lx      *css.Lexer
	pending []Token
	done    bool
}

func newLexer(data []byte, source string) *lexer {
	input := parse.NewInput(bytes.NewReader(data))
	return &lexer{
		data:   data,
		source: source,
		input:  input,
		lx:     css.NewLexer(input),
	}
}

func (l *lexer) next() (Token, error) {
	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok, nil
	}
	if l.done {
		return Token{Kind: TokenEOF, Offset: len(l.data)}, nil
	}

	for {
		start := l.input.Offset()
		tt, text := l.lx.Next()

		switch tt {
		case css.ErrorToken:
			if l.lx.Err() == io.EOF {
				l.done = true
				return Token{Kind: TokenEOF, Offset: len(l.data)}, nil
			}
			return Token{}, l.fail(SyntaxErrorKindUnexpectedCharacter, start, string(text), "unable to read input")

		case css.WhitespaceToken:
			continue

		case css.CommentToken:
			if len(text) < 4 || !bytes.HasSuffix(text, []byte("*/")) {
				return Token{}, l.fail(SyntaxErrorKindUnterminatedComment, start, "/*", "comment is not closed")
			}
			continue

		case css.IdentToken:
			if i := bytes.IndexByte(text, '\\'); i >= 0 {
				return Token{}, l.fail(SyntaxErrorKindUnexpectedCharacter, start+i, string(text), "escapes are not allowed in names")
			}
			return Token{Kind: TokenIdent, Text: string(text), Offset: start}, nil

		case css.FunctionToken:
			if i := bytes.IndexByte(text, '\\'); i >= 0 {
				return Token{}, l.fail(SyntaxErrorKindUnexpectedCharacter, start+i, string(text), "escapes are not allowed in names")
			}
			// "rgb(" - identifier followed by opening parenthesis
			name := string(text[:len(text)-1])
			l.pending = append(l.pending, Token{Kind: TokenLParen, Text: "(", Offset: start + len(name)})
			return Token{Kind: TokenIdent, Text: name, Offset: start}, nil

		case css.StringToken:
			s, ok := unquote(text)
			if !ok {
				return Token{}, l.fail(SyntaxErrorKindUnterminatedString, start, string(text), "string is not closed")
			}
			return Token{Kind: TokenString, Text: s, Offset: start}, nil

		case css.BadStringToken:
			return Token{}, l.fail(SyntaxErrorKindUnterminatedString, start, strings.TrimRight(string(text), "\r\n\f"), "line break inside string")

		case css.NumberToken:
			if text[0] == '+' {
				return Token{}, l.fail(SyntaxErrorKindMalformedNumber, start, string(text), "explicit plus sign is not allowed")
			}
			if l.input.Peek(0) == '.' {
				// "1." or "1..5"
				return Token{}, l.fail(SyntaxErrorKindMalformedNumber, start, string(text)+".", "digits expected after decimal point")
			}
			f, err := strconv.ParseFloat(string(text), 64)
			if err != nil {
				return Token{}, l.fail(SyntaxErrorKindMalformedNumber, start, string(text), err.Error())
			}
			return Token{Kind: TokenNumber, Text: string(text), Number: f, Offset: start}, nil

		case css.DimensionToken, css.PercentageToken:
			return Token{}, l.fail(SyntaxErrorKindMalformedNumber, start, string(text), "units are not supported")

		case css.HashToken:
			return Token{Kind: TokenHash, Text: string(text), Offset: start}, nil

		case css.LeftBraceToken:
			return Token{Kind: TokenLBrace, Text: "{", Offset: start}, nil
		case css.RightBraceToken:
			return Token{Kind: TokenRBrace, Text: "}", Offset: start}, nil
		case css.ColonToken:
			return Token{Kind: TokenColon, Text: ":", Offset: start}, nil
		case css.SemicolonToken:
			return Token{Kind: TokenSemicolon, Text: ";", Offset: start}, nil
		case css.LeftParenthesisToken:
			return Token{Kind: TokenLParen, Text: "(", Offset: start}, nil
		case css.RightParenthesisToken:
			return Token{Kind: TokenRParen, Text: ")", Offset: start}, nil
		case css.CommaToken:
			return Token{Kind: TokenComma, Text: ",", Offset: start}, nil

		case css.DelimToken:
			switch {
			case len(text) == 1 && text[0] == '.':
				return Token{Kind: TokenDot, Text: ".", Offset: start}, nil
			case len(text) == 1 && text[0] == '/' && l.input.Peek(0) == '/':
				l.skipLine()
				continue
			}
			return Token{}, l.fail(SyntaxErrorKindUnexpectedCharacter, start, string(text), "")

		default:
			// at-keywords, url(), brackets, match operators and the like
			return Token{}, l.fail(SyntaxErrorKindUnexpectedCharacter, start, string(text), "")
		}
	}
}

// skipLine discards input up to (not including) the next line break.
func (l *lexer) skipLine() {
	for {
		c := l.input.Peek(0)
		if c == '\n' || c == '\r' || (c == 0 && l.input.Err() != nil) {
			break
		}
		l.input.Move(1)
	}
	l.input.Skip()
}

func (l *lexer) fail(kind SyntaxErrorKind, offset int, text, msg string) error {
	l.done = true
	l.pending = nil
	return newSyntaxError(l.data, l.source, kind, offset, text, msg)
}

// unquote decodes quoted string token. It reports false when closing quote
// is missing.
func unquote(text []byte) (string, bool) {
	if len(text) < 2 {
		return "", false
	}
	delim := text[0]

	var sb strings.Builder
	sb.Grow(len(text))
	for i := 1; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '\\':
			i++
			if i >= len(text) {
				return "", false
			}
			switch text[i] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '\n':
				// escaped line break is a continuation
			default:
				sb.WriteByte(text[i])
			}
		case c == delim:
			return sb.String(), i == len(text)-1
		default:
			sb.WriteByte(c)
		}
	}
	return "", false
}
