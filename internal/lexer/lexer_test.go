package lexer

import (
	"testing"

	"github.com/dws-sandbox/basicscript/internal/token"
)

func collectTypes(l *Lexer) []token.TokenType {
	var types []token.TokenType
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == token.EOF {
			return types
		}
	}
}

func TestNextTokenPunctuationAndOperators(t *testing.T) {
	input := `Dim x
x = (1 + 2) * 3
If x <> 4 Then
End If`

	l := New(input)
	expected := []token.TokenType{
		token.DIM, token.IDENT, token.NEWLINE,
		token.IDENT, token.EQ, token.LPAREN, token.INT, token.PLUS, token.INT, token.RPAREN, token.ASTERISK, token.INT, token.NEWLINE,
		token.IF, token.IDENT, token.NOT_EQ, token.INT, token.THEN, token.NEWLINE,
		token.END, token.IF, token.EOF,
	}
	for i, want := range expected {
		got := l.NextToken()
		if got.Type != want {
			t.Fatalf("token %d: got %s, want %s (%s)", i, got.Type, want, got)
		}
	}
}

func TestNextTokenCaseInsensitiveKeywords(t *testing.T) {
	l := New("FUNCTION\nfunction\nFunction")
	for i := 0; i < 3; i++ {
		tok := l.NextToken()
		if tok.Type != token.FUNCTION {
			t.Fatalf("token %d: got %s, want FUNCTION", i, tok.Type)
		}
		l.NextToken() // consume NEWLINE
	}
}

func TestNextTokenStringLiteralWithDoubledQuote(t *testing.T) {
	l := New(`x = "say ""hi"" now"`)
	l.NextToken() // x
	l.NextToken() // =
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("got %s, want STRING", tok.Type)
	}
	want := `say "hi" now`
	if tok.Literal != want {
		t.Fatalf("got %q, want %q", tok.Literal, want)
	}
}

func TestNextTokenUnterminatedString(t *testing.T) {
	l := New("x = \"abc\ny = 1")
	l.NextToken() // x
	l.NextToken() // =
	l.NextToken() // "abc  (STRING, unterminated)
	if len(l.Errors()) == 0 {
		t.Fatal("expected an unterminated string error")
	}
}

func TestNextTokenHexAndOctalLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"&HFF", "255"},
		{"&hff", "255"},
		{"&O17", "15"},
		{"&o17", "15"},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != token.INT {
			t.Fatalf("%s: got %s, want INT", tt.input, tok.Type)
		}
		if tok.Literal != tt.want {
			t.Fatalf("%s: got %q, want %q", tt.input, tok.Literal, tt.want)
		}
	}
}

func TestNextTokenFloatAndScientificNotation(t *testing.T) {
	tests := []struct {
		input string
		want  token.TokenType
		lit   string
	}{
		{"123", token.INT, "123"},
		{"123.45", token.FLOAT, "123.45"},
		{"1.5e10", token.FLOAT, "1.5e10"},
		{"1e+5", token.FLOAT, "1e+5"},
		{"1e-5", token.FLOAT, "1e-5"},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != tt.want || tok.Literal != tt.lit {
			t.Fatalf("%s: got %s(%q), want %s(%q)", tt.input, tok.Type, tok.Literal, tt.want, tt.lit)
		}
	}
}

func TestNextTokenDateLiteral(t *testing.T) {
	l := New("x = #12/31/2026#")
	l.NextToken() // x
	l.NextToken() // =
	tok := l.NextToken()
	if tok.Type != token.DATE {
		t.Fatalf("got %s, want DATE", tok.Type)
	}
	if tok.Literal != "12/31/2026" {
		t.Fatalf("got %q, want %q", tok.Literal, "12/31/2026")
	}
}

func TestNextTokenApostropheComment(t *testing.T) {
	l := New("x = 1 ' this is a comment\ny = 2")
	types := []token.TokenType{token.IDENT, token.EQ, token.INT, token.NEWLINE, token.IDENT, token.EQ, token.INT, token.EOF}
	for i, want := range types {
		got := l.NextToken()
		if got.Type != want {
			t.Fatalf("token %d: got %s, want %s", i, got.Type, want)
		}
	}
}

func TestNextTokenRemComment(t *testing.T) {
	l := New("x = 1\nRem this whole line is ignored\ny = 2")
	types := []token.TokenType{
		token.IDENT, token.EQ, token.INT, token.NEWLINE,
		token.NEWLINE,
		token.IDENT, token.EQ, token.INT, token.EOF,
	}
	for i, want := range types {
		got := l.NextToken()
		if got.Type != want {
			t.Fatalf("token %d: got %s, want %s", i, got.Type, want)
		}
	}
}

func TestNextTokenRemIsNotPrefixOfLongerIdent(t *testing.T) {
	l := New("Remark = 1")
	tok := l.NextToken()
	if tok.Type != token.IDENT || tok.Literal != "Remark" {
		t.Fatalf("got %s(%q), want IDENT(\"Remark\")", tok.Type, tok.Literal)
	}
}

func TestNextTokenLineContinuation(t *testing.T) {
	l := New("x = 1 + _\n    2")
	types := []token.TokenType{token.IDENT, token.EQ, token.INT, token.PLUS, token.INT, token.EOF}
	for i, want := range types {
		got := l.NextToken()
		if got.Type != want {
			t.Fatalf("token %d: got %s, want %s", i, got.Type, want)
		}
	}
}

func TestNextTokenUnderscoreIdentNotContinuation(t *testing.T) {
	l := New("my_var = 1")
	tok := l.NextToken()
	if tok.Type != token.IDENT || tok.Literal != "my_var" {
		t.Fatalf("got %s(%q), want IDENT(\"my_var\")", tok.Type, tok.Literal)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	l := New("Dim x")
	first := l.Peek(0)
	if first.Type != token.DIM {
		t.Fatalf("Peek(0) = %s, want DIM", first.Type)
	}
	second := l.Peek(1)
	if second.Type != token.IDENT {
		t.Fatalf("Peek(1) = %s, want IDENT", second.Type)
	}
	got := l.NextToken()
	if got.Type != token.DIM {
		t.Fatalf("NextToken after Peek = %s, want DIM", got.Type)
	}
}

func TestSaveRestoreState(t *testing.T) {
	l := New("Dim x = 1")
	state := l.SaveState()
	first := l.NextToken()
	second := l.NextToken()
	l.RestoreState(state)
	replay1 := l.NextToken()
	replay2 := l.NextToken()
	if replay1.Type != first.Type || replay2.Type != second.Type {
		t.Fatalf("restored tokens %s,%s do not match original %s,%s", replay1.Type, replay2.Type, first.Type, second.Type)
	}
}

func TestNextTokenIllegalCharacterRecorded(t *testing.T) {
	l := New("x = @")
	types := collectTypes(l)
	if types[len(types)-1] != token.EOF {
		t.Fatal("expected scan to reach EOF despite illegal character")
	}
	if len(l.Errors()) == 0 {
		t.Fatal("expected an illegal character error")
	}
}
