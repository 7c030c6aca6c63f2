package sheet_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap"

	"sct/sheet"
)

func mustParse(t *testing.T, input string) *sheet.StyleSheet {
	t.Helper()
	ss, err := sheet.NewParser(zap.NewNop()).Parse([]byte(input), "test.sct")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return ss
}

func mustStyle(t *testing.T, ss *sheet.StyleSheet, name string) []sheet.Assignment {
	t.Helper()
	list, ok := ss.Style(name)
	if !ok {
		t.Fatalf("style %q not found", name)
	}
	return list
}

func TestParser_SimpleBlock(t *testing.T) {
	ss := mustParse(t, `foo { height: 60; }`)

	if ss.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", ss.Len())
	}
	list := mustStyle(t, ss, "foo")
	if len(list) != 1 {
		t.Fatalf("got %d assignments, want 1", len(list))
	}
	a := list[0]
	if a.Path.String() != "height" {
		t.Errorf("path = %q, want height", a.Path)
	}
	if a.Value.Kind != sheet.ValueKindNumber || a.Value.Number() != 60 {
		t.Errorf("value = %v, want number 60", a.Value)
	}
	if a.Line != 1 {
		t.Errorf("line = %d, want 1", a.Line)
	}
	if ss.Source() != "test.sct" {
		t.Errorf("Source() = %q", ss.Source())
	}
}

func TestParser_EmptyInput(t *testing.T) {
	ss := mustParse(t, "  /* nothing */ \n// at all\n")
	if ss.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ss.Len())
	}
	if _, ok := ss.Style("anything"); ok {
		t.Error("unexpected style")
	}
}

func TestParser_ValueForms(t *testing.T) {
	input := `
cell
{
    detailTextLabel.text: "Hello World!";
    height: 60;
    clipsToBounds: No;
    translucent: true;
    backgroundColor: blueColor;
    tintColor: rgb(100, 0, 255);
    shadowColor: rgb(100, 0, 255, 128);
    borderColor: #CC33FF;
    separatorColor: #CC33FF80;
    textLabel.frame: CGRect(10, 10, 180, 30);
    textLabel.shadowOffset: CGSize(1, -1);
    backgroundImage: "navbar.png" capInsets(1, 2, 3, 4);
    backgroundView: "leather.png";
    textLabel.font: Courier-Bold 12;
    selectedBackgroundView: nil;
    separatorStyle: SeparatorStyleNone;
}
`
	ss := mustParse(t, input)
	list := mustStyle(t, ss, "cell")

	byPath := make(map[string]sheet.RawValue)
	for _, a := range list {
		byPath[a.Path.String()] = a.Value
	}

	tests := []struct {
		path    string
		kind    sheet.ValueKind
		text    string
		numbers []float64
	}{
		{"detailTextLabel.text", sheet.ValueKindString, "Hello World!", nil},
		{"height", sheet.ValueKindNumber, "", []float64{60}},
		{"clipsToBounds", sheet.ValueKindBoolean, "No", nil},
		{"translucent", sheet.ValueKindBoolean, "true", nil},
		{"backgroundColor", sheet.ValueKindIdent, "blueColor", nil},
		{"tintColor", sheet.ValueKindColor, "", []float64{100, 0, 255}},
		{"shadowColor", sheet.ValueKindColor, "", []float64{100, 0, 255, 128}},
		{"borderColor", sheet.ValueKindColor, "#CC33FF", nil},
		{"separatorColor", sheet.ValueKindColor, "#CC33FF80", nil},
		{"textLabel.frame", sheet.ValueKindRect, "", []float64{10, 10, 180, 30}},
		{"textLabel.shadowOffset", sheet.ValueKindSize, "", []float64{1, -1}},
		{"backgroundImage", sheet.ValueKindImage, "navbar.png", nil},
		{"backgroundView", sheet.ValueKindString, "leather.png", nil},
		{"textLabel.font", sheet.ValueKindFont, "Courier-Bold", []float64{12}},
		{"selectedBackgroundView", sheet.ValueKindNil, "", nil},
		{"separatorStyle", sheet.ValueKindIdent, "SeparatorStyleNone", nil},
	}

	if len(list) != len(tests) {
		t.Errorf("got %d assignments, want %d", len(list), len(tests))
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			v, ok := byPath[tt.path]
			if !ok {
				t.Fatalf("assignment %q not found", tt.path)
			}
			if v.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", v.Kind, tt.kind)
			}
			if v.Text != tt.text {
				t.Errorf("text = %q, want %q", v.Text, tt.text)
			}
			if tt.numbers != nil && !slices.Equal(v.Numbers, tt.numbers) {
				t.Errorf("numbers = %v, want %v", v.Numbers, tt.numbers)
			}
		})
	}

	img := byPath["backgroundImage"]
	if !slices.Equal(img.Insets, []float64{1, 2, 3, 4}) {
		t.Errorf("insets = %v, want [1 2 3 4]", img.Insets)
	}
	if byPath["clipsToBounds"].Bool {
		t.Error("clipsToBounds should be false")
	}
	if !byPath["translucent"].Bool {
		t.Error("translucent should be true")
	}
	if !byPath["borderColor"].IsHex() || byPath["tintColor"].IsHex() {
		t.Error("IsHex() mismatch")
	}
}

func TestParser_BooleanLiterals(t *testing.T) {
	tests := []struct {
		literal string
		want    bool
	}{
		{"TRUE", true}, {"true", true}, {"True", true}, {"tRuE", true},
		{"YES", true}, {"yes", true}, {"Yes", true}, {"yEs", true},
		{"FALSE", false}, {"false", false}, {"False", false}, {"fAlSe", false},
		{"NO", false}, {"no", false}, {"No", false}, {"nO", false},
	}
	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			ss := mustParse(t, "s { v: "+tt.literal+"; }")
			v := mustStyle(t, ss, "s")[0].Value
			if v.Kind != sheet.ValueKindBoolean {
				t.Fatalf("kind = %v, want boolean", v.Kind)
			}
			if v.Bool != tt.want {
				t.Errorf("Bool = %v, want %v", v.Bool, tt.want)
			}
		})
	}

	for _, notBool := range []string{"Y", "N", "on", "off", "1", "0", `"YES"`, "yess", "nope"} {
		t.Run("not "+notBool, func(t *testing.T) {
			ss := mustParse(t, "s { v: "+notBool+"; }")
			if v := mustStyle(t, ss, "s")[0].Value; v.Kind == sheet.ValueKindBoolean {
				t.Errorf("%s parsed as boolean", notBool)
			}
		})
	}
}

func TestParser_DuplicatePathLaterWins(t *testing.T) {
	ss := mustParse(t, `
s {
    height: 10;
    width: 5;
    height: 20;
}`)
	list := mustStyle(t, ss, "s")
	if len(list) != 2 {
		t.Fatalf("got %d assignments, want 2", len(list))
	}
	if list[0].Path.String() != "width" || list[1].Path.String() != "height" {
		t.Errorf("order = [%s %s], want [width height]", list[0].Path, list[1].Path)
	}
	if list[1].Value.Number() != 20 {
		t.Errorf("height = %v, want 20", list[1].Value)
	}
	if list[1].Line != 5 {
		t.Errorf("line = %d, want 5", list[1].Line)
	}
	if len(ss.Warnings()) != 1 {
		t.Errorf("warnings = %v, want 1", ss.Warnings())
	}
}

func TestParser_DuplicateBlockReplaces(t *testing.T) {
	ss := mustParse(t, `
a { height: 10; alpha: 0.5; }
b { height: 1; }
a { width: 30; }
`)
	list := mustStyle(t, ss, "a")
	if len(list) != 1 || list[0].Path.String() != "width" {
		t.Fatalf("style a = %v, want only width", list)
	}
	if names := ss.Names(); !slices.Equal(names, []string{"b", "a"}) {
		t.Errorf("Names() = %v, want [b a]", names)
	}
	if len(ss.Warnings()) != 1 {
		t.Errorf("warnings = %v, want 1", ss.Warnings())
	}
}

func TestParser_StyleIsCopy(t *testing.T) {
	ss := mustParse(t, `a { height: 10; }`)
	list := mustStyle(t, ss, "a")
	list[0].Value.Kind = sheet.ValueKindNil

	again := mustStyle(t, ss, "a")
	if again[0].Value.Kind != sheet.ValueKindNumber {
		t.Error("style sheet was modified through returned slice")
	}
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  sheet.SyntaxErrorKind
		token string
	}{
		{name: "missing open brace", input: `foo height: 1; }`, kind: sheet.SyntaxErrorKindUnexpectedToken, token: "height"},
		{name: "missing close brace", input: `foo { height: 1;`, kind: sheet.SyntaxErrorKindUnexpectedToken, token: "end of input"},
		{name: "missing colon", input: `foo { height 1; }`, kind: sheet.SyntaxErrorKindUnexpectedToken, token: "1"},
		{name: "missing semicolon", input: `foo { height: 1 }`, kind: sheet.SyntaxErrorKindUnexpectedToken, token: "'}'"},
		{name: "missing value", input: `foo { height: ; }`, kind: sheet.SyntaxErrorKindUnexpectedToken, token: "';'"},
		{name: "empty path", input: `foo { : 1; }`, kind: sheet.SyntaxErrorKindEmptyPath, token: "':'"},
		{name: "empty path segment", input: `foo { layer..radius: 1; }`, kind: sheet.SyntaxErrorKindEmptyPath, token: "'.'"},
		{name: "trailing dot", input: `foo { layer.: 1; }`, kind: sheet.SyntaxErrorKindEmptyPath, token: "':'"},
		{name: "block without name", input: `{ height: 1; }`, kind: sheet.SyntaxErrorKindUnexpectedToken, token: "'{'"},
		{name: "units", input: `foo { height: 1px; }`, kind: sheet.SyntaxErrorKindMalformedNumber, token: "1px"},
		{name: "trailing decimal point", input: `foo { height: 1.; }`, kind: sheet.SyntaxErrorKindMalformedNumber, token: "1."},
		{name: "escaped name", input: `foo { x: \41 bc; }`, kind: sheet.SyntaxErrorKindUnexpectedCharacter, token: `\41 bc`},
		{name: "string argument", input: `foo { frame: CGRect(1, "2", 3, 4); }`, kind: sheet.SyntaxErrorKindMalformedNumber, token: "2"},
		{name: "rect arity", input: `foo { frame: CGRect(1, 2, 3); }`, kind: sheet.SyntaxErrorKindUnexpectedToken, token: "CGRect"},
		{name: "size arity", input: `foo { size: CGSize(1); }`, kind: sheet.SyntaxErrorKindUnexpectedToken, token: "CGSize"},
		{name: "rgb arity", input: `foo { c: rgb(1, 2); }`, kind: sheet.SyntaxErrorKindUnexpectedToken, token: "rgb"},
		{name: "missing comma", input: `foo { c: rgb(1 2 3); }`, kind: sheet.SyntaxErrorKindUnexpectedToken, token: "2"},
		{name: "insets arity", input: `foo { i: "a.png" capInsets(1, 2); }`, kind: sheet.SyntaxErrorKindUnexpectedToken, token: "capInsets"},
		{name: "unknown constructor", input: `foo { c: hsl(1, 2, 3); }`, kind: sheet.SyntaxErrorKindUnexpectedToken, token: "hsl"},
		{name: "short hex", input: `foo { c: #FFF; }`, kind: sheet.SyntaxErrorKindMalformedColor, token: "#FFF"},
		{name: "bad hex", input: `foo { c: #GG0000; }`, kind: sheet.SyntaxErrorKindMalformedColor, token: "#GG0000"},
		{name: "unterminated string", input: `foo { t: "abc; }`, kind: sheet.SyntaxErrorKindUnterminatedString, token: `"abc; }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ss, err := sheet.NewParser(nil).Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if ss != nil {
				t.Error("partial style sheet returned on error")
			}
			var se *sheet.SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("expected *SyntaxError, got %T: %v", err, err)
			}
			if se.Kind != tt.kind {
				t.Errorf("kind = %v, want %v (%v)", se.Kind, tt.kind, err)
			}
			if se.Token != tt.token {
				t.Errorf("token = %q, want %q", se.Token, tt.token)
			}
		})
	}
}

func TestParser_ErrorMessage(t *testing.T) {
	_, err := sheet.NewParser(nil).Parse([]byte("foo {\n  height: 1\n}\n"), "theme.sct")
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "theme.sct:3:1: unexpectedToken") {
		t.Errorf("Error() = %q", msg)
	}
	var se *sheet.SyntaxError
	if errors.As(err, &se) && se.Context != "}" {
		t.Errorf("Context = %q, want %q", se.Context, "}")
	}
}

func TestParser_SampleTheme(t *testing.T) {
	input := `
UINavigationBar
{
    backgroundImage: "navbar-background.png";
}

UITableView
{
    backgroundView: "leather-background.png";
}

SCTableViewSection
{
    firstCellThemeStyle: firstCell;
    oddCellsThemeStyle: oddCell;
    evenCellsThemeStyle: evenCell;
    lastCellThemeStyle: lastCell;
}

firstCell
{
    backgroundView: "firstCell-background.png";
    selectedBackgroundView: "selectedFirstCell-background.png";
}
`
	ss := mustParse(t, input)
	want := []string{"UINavigationBar", "UITableView", "SCTableViewSection", "firstCell"}
	if names := ss.Names(); !slices.Equal(names, want) {
		t.Errorf("Names() = %v, want %v", names, want)
	}
	if n := len(mustStyle(t, ss, "SCTableViewSection")); n != 4 {
		t.Errorf("SCTableViewSection has %d assignments, want 4", n)
	}
}

func TestStyleSheet_Dump(t *testing.T) {
	ss := mustParse(t, `a { layer.cornerRadius: 5; text: "x"; c: rgb(1,2,3); }`)
	got := ss.Dump()
	want := "a\n    layer.cornerRadius: 5\n    text: \"x\"\n    c: rgb(1, 2, 3)\n"
	if got != want {
		t.Errorf("Dump() = %q, want %q", got, want)
	}
	if got := ss.Dump("missing"); got != "missing (not defined)\n" {
		t.Errorf("Dump(missing) = %q", got)
	}
}

func TestStyleSheet_NilSafe(t *testing.T) {
	var ss *sheet.StyleSheet
	if ss.Len() != 0 || ss.Names() != nil || ss.Source() != "" {
		t.Error("nil style sheet should be empty")
	}
	if _, ok := ss.Style("a"); ok {
		t.Error("nil style sheet has no styles")
	}
}
