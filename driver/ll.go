package driver

import "github.com/nihei9/parsegen/grammar"

// LLParser is a top-down predictive parser built directly from a grammar's
// FIRST and FOLLOW sets, with no precomputed table. FirstSet, FollowSet, and
// BuildItems are all run once, eagerly, when the parser is constructed.
type LLParser struct {
	g      *grammar.Grammar
	first  map[grammar.Symbol][]grammar.Symbol
	follow map[grammar.Symbol][]grammar.Symbol
}

// NewLLParser analyzes g and returns a parser ready to run Parse. g must
// already have a start symbol set.
func NewLLParser(g *grammar.Grammar) (*LLParser, error) {
	first, err := g.FirstSet()
	if err != nil {
		return nil, err
	}
	follow, err := g.FollowSet()
	if err != nil {
		return nil, err
	}
	if err := g.BuildItems(); err != nil {
		return nil, err
	}
	return &LLParser{g: g, first: first, follow: follow}, nil
}

// Parse predicts and expands the grammar's start symbol against tokens.
// attrs seeds the start symbol's inherited attribute map; nil is treated as
// empty. It returns whatever tokens remain unconsumed.
func (p *LLParser) Parse(tokens []*grammar.Token, attrs map[string]interface{}) ([]*grammar.Token, error) {
	if attrs == nil {
		attrs = map[string]interface{}{}
	}
	return p.expand(p.g.Start(), attrs, tokens)
}

// expand recognizes sym at the front of tokens. attrs is the attribute map
// sym's caller prepared for it: sym's own hooks read their inherited values
// out of it and write their synthesized results back into it, so that once
// expand returns, the caller finds sym's results in the same map it passed
// in.
func (p *LLParser) expand(sym grammar.Symbol, attrs map[string]interface{}, tokens []*grammar.Token) ([]*grammar.Token, error) {
	if p.g.IsTerminal(sym) {
		return p.matchTerminal(sym, tokens)
	}

	next := grammar.SymEnd
	if len(tokens) > 0 {
		next = tokens[0].Name
	}

	for _, prod := range p.g.ProductionsFor(sym) {
		first, err := p.g.FirstOf(prod.RHS)
		if err != nil {
			return tokens, err
		}
		if !symbolIn(first, next) {
			continue
		}
		return p.expandProduction(prod, attrs, tokens)
	}

	if symbolIn(p.follow[sym], next) {
		for _, prod := range p.g.ProductionsFor(sym) {
			if prod.IsEmpty() {
				return p.expandProduction(prod, attrs, tokens)
			}
		}
		return tokens, grammar.ErrConflict("%q has no empty alternative to match %q via FOLLOW", string(sym), string(next))
	}

	return tokens, grammar.ErrParse("unexpected token %q while expanding %q", string(next), string(sym))
}

// expandProduction runs one alternative's hooks and RHS symbols in lockstep.
// workspace is the single dict shared across every hook call in this
// expansion: the hook run before RHS position i prepares workspace as the
// inherited map that position i's own expand call receives, and whatever
// that call (or its own trailing hook) writes into workspace is what the
// hook after position i, and the final trailing hook, read back out of it.
func (p *LLParser) expandProduction(prod *grammar.Production, attrs map[string]interface{}, tokens []*grammar.Token) ([]*grammar.Token, error) {
	workspace := map[string]interface{}{}
	var err error
	for i, sym := range prod.RHS {
		prod.HookAt(i)(workspace, attrs)
		tokens, err = p.expand(sym, workspace, tokens)
		if err != nil {
			return tokens, err
		}
	}
	prod.HookAt(len(prod.RHS))(workspace, attrs)
	return tokens, nil
}

func (p *LLParser) matchTerminal(sym grammar.Symbol, tokens []*grammar.Token) ([]*grammar.Token, error) {
	if len(tokens) == 0 {
		return tokens, grammar.ErrParse("unexpected end of input, expected %q", string(sym))
	}
	if tokens[0].Name != sym {
		return tokens, grammar.ErrParse("unexpected token %q, expected %q", string(tokens[0].Name), string(sym))
	}
	return tokens[1:], nil
}

func symbolIn(syms []grammar.Symbol, sym grammar.Symbol) bool {
	for _, s := range syms {
		if s == sym {
			return true
		}
	}
	return false
}
