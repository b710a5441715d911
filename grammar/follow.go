package grammar

// followSet is the FOLLOW function: for every nonterminal it records the
// set of terminals (plus SymEnd when the nonterminal can end a sentence)
// that can immediately follow it in some sentential form.
type followSet struct {
	set map[Symbol]*symbolSet
}

func (flw *followSet) of(sym Symbol) *symbolSet {
	e, ok := flw.set[sym]
	if !ok {
		return newSymbolSet()
	}
	return e
}

// Table returns a defensive copy of the computed FOLLOW sets, keyed by
// nonterminal, each set given in insertion order.
func (flw *followSet) Table() map[Symbol][]Symbol {
	out := make(map[Symbol][]Symbol, len(flw.set))
	for sym, e := range flw.set {
		out[sym] = e.Symbols()
	}
	return out
}

// FollowSet computes FOLLOW for every nonterminal in the grammar, seeded
// with FOLLOW(start) = {$end}. It requires SetStart to have run and is
// idempotent like FirstSet.
func (g *Grammar) FollowSet() (map[Symbol][]Symbol, error) {
	if !g.started {
		return nil, errIllegalStart("FollowSet requires a start symbol; call SetStart first")
	}
	if err := g.checkDefined(); err != nil {
		return nil, err
	}
	if g.first == nil {
		g.first = genFirstSet(g)
	}
	if g.follow == nil {
		g.follow = genFollowSet(g, g.first)
	}
	return g.follow.Table(), nil
}

func genFollowSet(g *Grammar, fst *firstSet) *followSet {
	flw := &followSet{set: map[Symbol]*symbolSet{}}
	for nt := range g.byName {
		flw.set[nt] = newSymbolSet()
	}
	flw.set[g.start].add(SymEnd)

	for {
		more := false
		for _, p := range g.productions {
			if p == nil {
				continue
			}
			for i, sym := range p.RHS {
				if !g.IsNonterminal(sym) {
					continue
				}

				acc := flw.set[sym]
				suffixFirst := firstOfSeq(fst, p.RHS[i+1:])
				if acc.mergeExceptEmpty(suffixFirst) {
					more = true
				}
				if suffixFirst.has(SymEmpty) {
					if acc.mergeExceptEmpty(flw.set[p.Name]) {
						more = true
					}
				}
			}
		}
		if !more {
			break
		}
	}

	return flw
}
