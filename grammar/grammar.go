package grammar

import "fmt"

// ProdOption configures a Production at AddProduction time.
type ProdOption func(*Production)

// WithAction attaches a bottom-up semantic action to a production.
func WithAction(action LRAction) ProdOption {
	return func(p *Production) {
		p.Action = action
	}
}

// WithHooks attaches the per-position hooks an LL(1) driver runs while
// expanding a production. A production with n RHS symbols takes n+1 hooks;
// extra or missing entries are tolerated (missing ones default to no-ops).
func WithHooks(hooks ...LLHook) ProdOption {
	return func(p *Production) {
		p.Hooks = hooks
	}
}

// Grammar holds a set of productions over a declared terminal vocabulary,
// plus the FIRST/FOLLOW fixed points and LR item chains derived from them.
// A Grammar is built by calling AddProduction zero or more times and then
// SetStart; FirstSet, FollowSet, and BuildItems may be called any number of
// times afterward and recompute lazily the first time they're needed.
type Grammar struct {
	terminals   *symbolSet
	productions []*Production
	byName      map[Symbol][]*Production

	start   Symbol
	started bool

	first *firstSet
	follow *followSet
	items  map[ProductionIndex][]*lr0Item
}

// New creates a grammar whose terminal vocabulary is exactly the given set
// of names. Every symbol that later appears as a production's name is a
// nonterminal; every other RHS symbol must be one of these terminals.
func New(terminals []string) *Grammar {
	g := &Grammar{
		terminals:   newSymbolSet(),
		productions: []*Production{nil}, // index 0 is reserved for the synthetic start production
		byName:      map[Symbol][]*Production{},
	}
	for _, t := range terminals {
		g.terminals.add(Symbol(t))
	}
	return g
}

// IsTerminal reports whether sym was declared in New's terminal set.
func (g *Grammar) IsTerminal(sym Symbol) bool {
	return g.terminals.has(sym)
}

// IsNonterminal reports whether sym is the name of at least one production.
func (g *Grammar) IsNonterminal(sym Symbol) bool {
	_, ok := g.byName[sym]
	return ok
}

// Terminals returns the declared terminal vocabulary in declaration order.
func (g *Grammar) Terminals() []Symbol {
	return g.terminals.Symbols()
}

// AddProduction appends a production `name -> rhs` to the grammar.
// Productions are never deduplicated: adding the same (name, rhs) pair
// twice yields two distinct, independently numbered productions.
func (g *Grammar) AddProduction(name string, rhs []string, opts ...ProdOption) (*Production, error) {
	nameSym := Symbol(name)
	if nameSym == "" {
		return nil, errIllegalSymbol("a production name must not be empty")
	}
	if isReservedSymbol(nameSym) {
		return nil, errIllegalSymbol("%q is a reserved symbol and cannot name a production", name)
	}
	if g.terminals.has(nameSym) {
		return nil, errIllegalSymbol("%q is a declared terminal and cannot also name a production", name)
	}

	rhsSyms := make([]Symbol, len(rhs))
	for i, r := range rhs {
		sym := Symbol(r)
		if isReservedSymbol(sym) {
			return nil, errIllegalSymbol("%q is a reserved symbol and cannot appear in a production's RHS", r)
		}
		rhsSyms[i] = sym
	}

	p := &Production{
		Index: ProductionIndex(len(g.productions)),
		Name:  nameSym,
		RHS:   rhsSyms,
	}
	for _, opt := range opts {
		opt(p)
	}

	g.productions = append(g.productions, p)
	g.byName[nameSym] = append(g.byName[nameSym], p)
	g.invalidateCaches()

	return p, nil
}

// SetStart nominates the grammar's start symbol and installs the synthetic
// production 0, `S' -> start`. When name is empty, the name of the first
// production added via AddProduction is used.
func (g *Grammar) SetStart(name string) error {
	startSym := Symbol(name)
	if startSym == "" {
		if len(g.productions) < 2 {
			return errIllegalStart("no productions have been added; a start symbol cannot be inferred")
		}
		startSym = g.productions[1].Name
	}
	if !g.IsNonterminal(startSym) {
		return errIllegalStart("%q is not a known nonterminal", string(startSym))
	}

	augName := Symbol(fmt.Sprintf("%s'", startSym))
	g.productions[0] = &Production{
		Index: 0,
		Name:  augName,
		RHS:   []Symbol{startSym},
	}
	g.start = startSym
	g.started = true
	g.invalidateCaches()

	return nil
}

// Start returns the nominated start symbol. It is the zero Symbol until
// SetStart succeeds.
func (g *Grammar) Start() Symbol {
	return g.start
}

// StartProduction returns the synthetic production 0. It panics if
// SetStart hasn't been called yet, since no caller should need it before
// then.
func (g *Grammar) StartProduction() *Production {
	if !g.started {
		panic("grammar: StartProduction called before SetStart")
	}
	return g.productions[0]
}

// Productions returns every production, including the synthetic production
// 0 once SetStart has run, in production-index order.
func (g *Grammar) Productions() []*Production {
	if !g.started {
		return append([]*Production(nil), g.productions[1:]...)
	}
	return append([]*Production(nil), g.productions...)
}

// ProductionsFor returns the productions whose name is sym, in declaration
// order.
func (g *Grammar) ProductionsFor(sym Symbol) []*Production {
	return g.byName[sym]
}

// Production looks up a production by its index.
func (g *Grammar) Production(idx ProductionIndex) (*Production, bool) {
	if idx < 0 || int(idx) >= len(g.productions) || g.productions[idx] == nil {
		return nil, false
	}
	return g.productions[idx], true
}

func (g *Grammar) invalidateCaches() {
	g.first = nil
	g.follow = nil
	g.items = nil
}

// checkDefined verifies every RHS symbol used anywhere in the grammar is
// either a declared terminal or the name of at least one production. The
// spec treats this as something table construction would eventually
// surface lazily via a missing FIRST entry; this package instead raises it
// eagerly from FirstSet and FollowSet, and so from SLRTable and CLRTable,
// which run them before building. BuildItems does not check.
func (g *Grammar) checkDefined() error {
	for _, p := range g.productions {
		if p == nil {
			continue
		}
		for _, sym := range p.RHS {
			if g.IsTerminal(sym) || g.IsNonterminal(sym) {
				continue
			}
			return errIllegalSymbol("undefined nonterminal %q used in production for %q", string(sym), string(p.Name))
		}
	}
	return nil
}
