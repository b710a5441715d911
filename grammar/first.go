package grammar

// firstSet is the FIRST function: for every terminal and nonterminal it
// records the set of terminals (plus SymEmpty when the symbol can derive
// the empty string) that can begin some derivation of that symbol.
type firstSet struct {
	set map[Symbol]*symbolSet
}

func (fst *firstSet) of(sym Symbol) *symbolSet {
	e, ok := fst.set[sym]
	if !ok {
		return newSymbolSet()
	}
	return e
}

// Table returns a defensive copy of the computed FIRST sets, keyed by
// symbol, each set given in insertion order.
func (fst *firstSet) Table() map[Symbol][]Symbol {
	out := make(map[Symbol][]Symbol, len(fst.set))
	for sym, e := range fst.set {
		out[sym] = e.Symbols()
	}
	return out
}

// FirstSet computes FIRST for every terminal and nonterminal in the
// grammar. It is idempotent: the fixed point is computed once and cached,
// so repeated calls return equal contents.
func (g *Grammar) FirstSet() (map[Symbol][]Symbol, error) {
	if err := g.checkDefined(); err != nil {
		return nil, err
	}
	if g.first == nil {
		g.first = genFirstSet(g)
	}
	return g.first.Table(), nil
}

// FirstOf computes FIRST(seq) for an arbitrary symbol sequence: the
// terminals that can begin seq, plus SymEmpty if every symbol in seq
// (including the empty sequence) can derive ε. It computes FIRST first if
// that hasn't happened yet.
func (g *Grammar) FirstOf(seq []Symbol) ([]Symbol, error) {
	if g.first == nil {
		if _, err := g.FirstSet(); err != nil {
			return nil, err
		}
	}
	return firstOfSeq(g.first, seq).Symbols(), nil
}

func genFirstSet(g *Grammar) *firstSet {
	fst := &firstSet{set: map[Symbol]*symbolSet{}}
	for nt := range g.byName {
		fst.set[nt] = newSymbolSet()
	}
	for _, t := range g.terminals.Symbols() {
		fst.set[t] = newSymbolSetOf(t)
	}

	for {
		more := false
		for _, p := range g.productions {
			if p == nil {
				continue
			}
			acc, ok := fst.set[p.Name]
			if !ok {
				// The synthetic start production's name is not in byName.
				acc = newSymbolSet()
				fst.set[p.Name] = acc
			}
			if genProdFirst(fst, acc, p) {
				more = true
			}
		}
		if !more {
			break
		}
	}

	return fst
}

// genProdFirst folds one production's contribution to FIRST(p.Name) into
// acc and reports whether acc changed.
func genProdFirst(fst *firstSet, acc *symbolSet, p *Production) bool {
	if p.IsEmpty() {
		return acc.add(SymEmpty)
	}

	changed := false
	for _, sym := range p.RHS {
		e := fst.of(sym)
		if acc.mergeExceptEmpty(e) {
			changed = true
		}
		if !e.has(SymEmpty) {
			return changed
		}
	}
	if acc.add(SymEmpty) {
		changed = true
	}
	return changed
}

// firstOfSeq implements the concatenative FIRST(α) used by FOLLOW
// propagation and the LL(1) driver: accumulate non-ε members of FIRST(Xi)
// left to right, stopping as soon as some Xi cannot derive ε.
func firstOfSeq(fst *firstSet, seq []Symbol) *symbolSet {
	entry := newSymbolSet()
	if len(seq) == 0 {
		entry.add(SymEmpty)
		return entry
	}
	for _, sym := range seq {
		e := fst.of(sym)
		entry.mergeExceptEmpty(e)
		if !e.has(SymEmpty) {
			return entry
		}
	}
	entry.add(SymEmpty)
	return entry
}
