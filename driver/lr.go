// Package driver runs parses against an already-built grammar: LRParser
// drives a compiled action/goto table bottom-up, and LLParser drives a
// grammar directly, top-down, via FIRST/FOLLOW.
package driver

import (
	"github.com/nihei9/parsegen/grammar"
)

// LRParser is a shift/reduce driver over a precomputed Table. A Table is
// read-only once built, so a single LRParser value can run Parse any number
// of times; each call starts from fresh stacks.
type LRParser struct {
	table *grammar.Table

	stateStack []int
	symStack   []*grammar.Token
}

// NewLRParser wraps table for parsing. table is typically the result of
// grammar.SLRTable or grammar.CLRTable.
func NewLRParser(table *grammar.Table) *LRParser {
	return &LRParser{table: table}
}

func (p *LRParser) restart() {
	p.stateStack = []int{p.table.InitialState}
	p.symStack = []*grammar.Token{grammar.EndToken()}
}

// Parse consumes tokens left to right, applying each production's Action on
// reduction, and returns the value the start symbol's synthesized token
// carries when the driver accepts. tokens need not carry a trailing $end
// token; Parse supplies one itself once the slice is exhausted.
func (p *LRParser) Parse(tokens []*grammar.Token) (interface{}, error) {
	p.restart()

	pos := 0
	peek := func() *grammar.Token {
		if pos >= len(tokens) {
			return grammar.EndToken()
		}
		return tokens[pos]
	}

	tok := peek()
	for {
		state := p.top()
		entry, ok := p.table.Action[state][tok.Name]
		if !ok {
			return nil, grammar.ErrParse("unexpected token %q in state %d", string(tok.Name), state)
		}

		switch entry.Kind {
		case grammar.ActionShift:
			p.push(entry.Target, tok)
			pos++
			tok = peek()

		case grammar.ActionReduce:
			prodIdx, _ := entry.ReduceProduction()
			prod, ok := p.table.Grammar.Production(prodIdx)
			if !ok {
				return nil, grammar.ErrParse("reduce table references unknown production %d", prodIdx)
			}

			n := len(prod.RHS)
			var args []*grammar.Token
			if n > 0 {
				args = append(args, p.symStack[len(p.symStack)-n:]...)
			}
			p.pop(n)

			lhs := &grammar.Token{Name: prod.Name}
			if prod.Action != nil {
				prod.Action(lhs, args, p.symStack)
			}

			gotoState, ok := p.table.Goto[p.top()][prod.Name]
			if !ok {
				return nil, grammar.ErrParse("no goto entry for %q from state %d", string(prod.Name), p.top())
			}
			p.push(gotoState, lhs)

		case grammar.ActionAccept:
			return p.symStack[len(p.symStack)-1].Value, nil
		}
	}
}

func (p *LRParser) top() int {
	return p.stateStack[len(p.stateStack)-1]
}

func (p *LRParser) push(state int, sym *grammar.Token) {
	p.stateStack = append(p.stateStack, state)
	p.symStack = append(p.symStack, sym)
}

func (p *LRParser) pop(n int) {
	if n == 0 {
		return
	}
	p.stateStack = p.stateStack[:len(p.stateStack)-n]
	p.symStack = p.symStack[:len(p.symStack)-n]
}
