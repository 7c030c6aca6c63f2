package sheet

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	parse "github.com/tdewolff/parse/v2"
)

// ErrSyntax is matched by every *SyntaxError with errors.Is.
var ErrSyntax = errors.New("syntax error")

// Class of lexical or grammatical problem.
// ENUM(unterminatedString, unterminatedComment, unexpectedCharacter, unexpectedToken, malformedNumber, malformedColor, emptyPath)
type SyntaxErrorKind int

// SyntaxError describes the first lexical or grammatical violation found in
// theme text. Parsing always stops on it.
type SyntaxError struct {
	Kind    SyntaxErrorKind
	Source  string // name of the input, may be empty
	Offset  int    // byte offset
	Line    int    // 1-based
	Column  int    // 1-based
	Token   string // offending token text
	Context string // source line containing the problem
	Msg     string
}

func newSyntaxError(data []byte, source string, kind SyntaxErrorKind, offset int, token, msg string) *SyntaxError {
	offset = min(max(offset, 0), len(data))
	line, col, _ := parse.Position(bytes.NewReader(data), offset)
	return &SyntaxError{
		Kind:    kind,
		Source:  source,
		Offset:  offset,
		Line:    line,
		Column:  col,
		Token:   token,
		Context: contextLine(data, offset),
		Msg:     msg,
	}
}

func (e *SyntaxError) Error() string {
	var sb strings.Builder
	if e.Source != "" {
		sb.WriteString(e.Source)
		sb.WriteByte(':')
	}
	fmt.Fprintf(&sb, "%d:%d: %s", e.Line, e.Column, e.Kind)
	if e.Token != "" {
		fmt.Fprintf(&sb, " at %q", e.Token)
	}
	if e.Msg != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Msg)
	}
	return sb.String()
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// contextLine returns the line of data containing offset without line break.
func contextLine(data []byte, offset int) string {
	start := bytes.LastIndexByte(data[:offset], '\n') + 1
	end := len(data)
	if i := bytes.IndexByte(data[offset:], '\n'); i >= 0 {
		end = offset + i
	}
	return strings.TrimRight(string(data[start:end]), "\r")
}
