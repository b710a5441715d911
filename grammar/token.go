package grammar

// Token is the unit the parse drivers consume and produce. Callers build
// the input sequence out of Tokens (one per lexeme, optionally ending with a
// Name == SymEnd sentinel; both drivers treat running out of tokens as
// reaching SymEnd); the LR driver also uses Token to represent the
// values it pushes back onto the symbol stack after a reduction.
type Token struct {
	Name  Symbol
	Value interface{}
}

func (t *Token) String() string {
	return string(t.Name)
}

// EndToken returns the mandatory end-of-input sentinel token.
func EndToken() *Token {
	return &Token{Name: SymEnd}
}
