package surface

import "testing"

func TestLexerTokenizesBasicForms(t *testing.T) {
	l := NewLexer("(app x 12) ; trailing comment\n")
	var kinds []TokenKind
	for {
		tok := l.NextToken()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == TokenEOF {
			break
		}
	}
	want := []TokenKind{TokenLParen, TokenSymbol, TokenSymbol, TokenNumber, TokenRParen, TokenEOF}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(kinds), len(want), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestLexerTracksLineAndColumn(t *testing.T) {
	l := NewLexer("(a\nb)")
	_ = l.NextToken() // (
	_ = l.NextToken() // a
	b := l.NextToken()
	if b.Line != 2 {
		t.Fatalf("expected symbol b on line 2, got line %d", b.Line)
	}
	if b.Column != 1 {
		t.Fatalf("expected symbol b at column 1, got column %d", b.Column)
	}
}

func TestLexerClassifiesNumbers(t *testing.T) {
	l := NewLexer("42 foo 4a")
	if tok := l.NextToken(); tok.Kind != TokenNumber {
		t.Fatalf("expected a number token, got %v", tok.Kind)
	}
	if tok := l.NextToken(); tok.Kind != TokenSymbol {
		t.Fatalf("expected a symbol token, got %v", tok.Kind)
	}
	if tok := l.NextToken(); tok.Kind != TokenSymbol {
		t.Fatalf("expected 4a to lex as a symbol (not purely numeric), got %v", tok.Kind)
	}
}
