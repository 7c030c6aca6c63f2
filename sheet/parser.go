package sheet

import (
	"encoding/hex"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// Parser parses theme text into style sheets.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new theme parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("parser")}
}

// Parse parses theme text into a StyleSheet. The optional source parameter
// identifies what's being parsed (for messages and debug logging). On error
// no style sheet is returned and error is always *SyntaxError.
func (p *Parser) Parse(data []byte, source ...string) (*StyleSheet, error) {
	var name string
	if len(source) > 0 {
		name = source[0]
	}
	p.log.Debug("Parsing theme", zap.String("source", name), zap.Int("bytes", len(data)))

	ps := &parseState{
		lx:  newLexer(data, name),
		log: p.log,
		sheet: &StyleSheet{
			source: name,
			styles: make(map[string][]Assignment),
		},
		data: data,
	}
	if err := ps.file(); err != nil {
		p.log.Debug("Theme parsing failed", zap.String("source", name), zap.Error(err))
		return nil, err
	}

	p.log.Debug("Parsed theme", zap.String("source", name),
		zap.Int("styles", ps.sheet.Len()), zap.Int("warnings", len(ps.sheet.warnings)))
	return ps.sheet, nil
}

type parseState struct {
	lx     *lexer
	log    *zap.Logger
	sheet  *StyleSheet
	data   []byte
	tok    Token
	peeked bool
}

func (ps *parseState) peek() (Token, error) {
	if !ps.peeked {
		tok, err := ps.lx.next()
		if err != nil {
			return Token{}, err
		}
		ps.tok, ps.peeked = tok, true
	}
	return ps.tok, nil
}

func (ps *parseState) next() (Token, error) {
	tok, err := ps.peek()
	if err != nil {
		return Token{}, err
	}
	ps.peeked = false
	return tok, nil
}

// expect consumes the next token requiring it to be of the given kind.
func (ps *parseState) expect(kind TokenKind, what string) (Token, error) {
	tok, err := ps.next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return Token{}, ps.unexpected(tok, "expected "+what)
	}
	return tok, nil
}

func (ps *parseState) unexpected(tok Token, msg string) error {
	return ps.errorAt(SyntaxErrorKindUnexpectedToken, tok, msg)
}

func (ps *parseState) errorAt(kind SyntaxErrorKind, tok Token, msg string) error {
	text := tok.String()
	if tok.Kind == TokenString {
		text = tok.Text
	}
	return newSyntaxError(ps.data, ps.lx.source, kind, tok.Offset, text, msg)
}

func (ps *parseState) line(tok Token) int {
	return 1 + strings.Count(string(ps.data[:min(tok.Offset, len(ps.data))]), "\n")
}

// file = block* ;
func (ps *parseState) file() error {
	for {
		tok, err := ps.peek()
		if err != nil {
			return err
		}
		if tok.Kind == TokenEOF {
			return nil
		}
		if err := ps.block(); err != nil {
			return err
		}
	}
}

// block = IDENT '{' assignment* '}' ;
func (ps *parseState) block() error {
	nameTok, err := ps.expect(TokenIdent, "style name")
	if err != nil {
		return err
	}
	if _, err := ps.expect(TokenLBrace, "'{' after style name"); err != nil {
		return err
	}

	var list []Assignment
	for {
		tok, err := ps.peek()
		if err != nil {
			return err
		}
		if tok.Kind == TokenRBrace {
			ps.peeked = false
			break
		}
		if tok.Kind == TokenEOF {
			return ps.unexpected(tok, fmt.Sprintf("expected '}' to close style %q", nameTok.Text))
		}

		a, err := ps.assignment()
		if err != nil {
			return err
		}
		key := a.Path.String()
		if i := slices.IndexFunc(list, func(e Assignment) bool { return e.Path.String() == key }); i >= 0 {
			ps.warn(fmt.Sprintf("style %q: %q assigned on line %d overrides line %d", nameTok.Text, key, a.Line, list[i].Line))
			list = slices.Delete(list, i, i+1)
		}
		list = append(list, a)
	}

	name := nameTok.Text
	if _, exists := ps.sheet.styles[name]; exists {
		ps.warn(fmt.Sprintf("style %q on line %d replaces earlier definition", name, ps.line(nameTok)))
		ps.sheet.names = slices.DeleteFunc(ps.sheet.names, func(n string) bool { return n == name })
	}
	ps.sheet.styles[name] = list
	ps.sheet.names = append(ps.sheet.names, name)
	return nil
}

func (ps *parseState) warn(msg string) {
	ps.sheet.warnings = append(ps.sheet.warnings, msg)
	ps.log.Debug("Theme warning", zap.String("source", ps.sheet.source), zap.String("warning", msg))
}

// assignment = propertyPath ':' valueExpr ';' ;
func (ps *parseState) assignment() (Assignment, error) {
	first, err := ps.peek()
	if err != nil {
		return Assignment{}, err
	}
	path, err := ps.path()
	if err != nil {
		return Assignment{}, err
	}
	if _, err := ps.expect(TokenColon, fmt.Sprintf("':' after %q", path.String())); err != nil {
		return Assignment{}, err
	}
	val, err := ps.value()
	if err != nil {
		return Assignment{}, err
	}
	if _, err := ps.expect(TokenSemicolon, fmt.Sprintf("';' after value of %q", path.String())); err != nil {
		return Assignment{}, err
	}
	return Assignment{Path: path, Value: val, Line: ps.line(first)}, nil
}

// propertyPath = IDENT ('.' IDENT)* ;
func (ps *parseState) path() (Path, error) {
	tok, err := ps.next()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case TokenIdent:
	case TokenColon:
		return nil, ps.errorAt(SyntaxErrorKindEmptyPath, tok, "property path is missing")
	default:
		return nil, ps.unexpected(tok, "expected property path")
	}

	path := Path{tok.Text}
	for {
		tok, err := ps.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokenDot {
			return path, nil
		}
		ps.peeked = false
		seg, err := ps.next()
		if err != nil {
			return nil, err
		}
		if seg.Kind != TokenIdent {
			return nil, ps.errorAt(SyntaxErrorKindEmptyPath, seg, "empty path segment")
		}
		path = append(path, seg.Text)
	}
}

// value parses valueExpr. Constructor forms are recognized by the identifier
// followed by '(', bare identifiers are stored untyped.
func (ps *parseState) value() (RawValue, error) {
	tok, err := ps.next()
	if err != nil {
		return RawValue{}, err
	}

	switch tok.Kind {
	case TokenNumber:
		return RawValue{Kind: ValueKindNumber, Numbers: []float64{tok.Number}}, nil

	case TokenHash:
		return ps.hexColor(tok)

	case TokenString:
		next, err := ps.peek()
		if err != nil {
			return RawValue{}, err
		}
		if next.Kind != TokenIdent || next.Text != "capInsets" {
			return RawValue{Kind: ValueKindString, Text: tok.Text}, nil
		}
		ps.peeked = false
		insets, err := ps.args(next, 4)
		if err != nil {
			return RawValue{}, err
		}
		return RawValue{Kind: ValueKindImage, Text: tok.Text, Insets: insets}, nil

	case TokenIdent:
		return ps.identValue(tok)

	case TokenSemicolon:
		return RawValue{}, ps.unexpected(tok, "value is missing")

	default:
		return RawValue{}, ps.unexpected(tok, "expected value")
	}
}

func (ps *parseState) identValue(tok Token) (RawValue, error) {
	next, err := ps.peek()
	if err != nil {
		return RawValue{}, err
	}

	switch next.Kind {
	case TokenLParen:
		switch tok.Text {
		case "rgb", "rgba":
			nums, err := ps.args(tok, 3, 4)
			if err != nil {
				return RawValue{}, err
			}
			return RawValue{Kind: ValueKindColor, Numbers: nums}, nil
		case "CGRect":
			nums, err := ps.args(tok, 4)
			if err != nil {
				return RawValue{}, err
			}
			return RawValue{Kind: ValueKindRect, Numbers: nums}, nil
		case "CGSize":
			nums, err := ps.args(tok, 2)
			if err != nil {
				return RawValue{}, err
			}
			return RawValue{Kind: ValueKindSize, Numbers: nums}, nil
		}
		return RawValue{}, ps.unexpected(tok, "unknown value constructor")

	case TokenNumber:
		// unquoted font: Courier-Bold 12
		ps.peeked = false
		return RawValue{Kind: ValueKindFont, Text: tok.Text, Numbers: []float64{next.Number}}, nil
	}

	if b, ok := boolLiteral(tok.Text); ok {
		return RawValue{Kind: ValueKindBoolean, Bool: b, Text: tok.Text}, nil
	}
	if tok.Text == "nil" {
		return RawValue{Kind: ValueKindNil}, nil
	}
	return RawValue{Kind: ValueKindIdent, Text: tok.Text}, nil
}

// args parses '(' NUMBER (',' NUMBER)* ')' for the constructor named by fn.
// Number of arguments must be one of counts.
func (ps *parseState) args(fn Token, counts ...int) ([]float64, error) {
	if _, err := ps.expect(TokenLParen, fmt.Sprintf("'(' after %s", fn.Text)); err != nil {
		return nil, err
	}

	var nums []float64
	for {
		tok, err := ps.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokenNumber {
			return nil, ps.errorAt(SyntaxErrorKindMalformedNumber, tok, fmt.Sprintf("%s arguments must be numbers", fn.Text))
		}
		nums = append(nums, tok.Number)

		sep, err := ps.next()
		if err != nil {
			return nil, err
		}
		if sep.Kind == TokenRParen {
			break
		}
		if sep.Kind != TokenComma {
			return nil, ps.unexpected(sep, fmt.Sprintf("expected ',' or ')' in %s", fn.Text))
		}
	}

	if !slices.Contains(counts, len(nums)) {
		return nil, ps.unexpected(fn, fmt.Sprintf("%s takes %s arguments, got %d", fn.Text, countsText(counts), len(nums)))
	}
	return nums, nil
}

func countsText(counts []int) string {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = fmt.Sprint(c)
	}
	return strings.Join(parts, " or ")
}

func (ps *parseState) hexColor(tok Token) (RawValue, error) {
	digits := tok.Text[1:]
	if len(digits) != 6 && len(digits) != 8 {
		return RawValue{}, ps.errorAt(SyntaxErrorKindMalformedColor, tok, "expected #RRGGBB or #RRGGBBAA")
	}
	if _, err := hex.DecodeString(digits); err != nil {
		return RawValue{}, ps.errorAt(SyntaxErrorKindMalformedColor, tok, "invalid hexadecimal digits")
	}
	return RawValue{Kind: ValueKindColor, Text: tok.Text}, nil
}

// boolLiteral recognizes TRUE, FALSE, YES and NO in any letter case.
func boolLiteral(s string) (bool, bool) {
	switch {
	case strings.EqualFold(s, "TRUE"), strings.EqualFold(s, "YES"):
		return true, true
	case strings.EqualFold(s, "FALSE"), strings.EqualFold(s, "NO"):
		return false, true
	}
	return false, false
}
