package grammar

// SLRTable builds the SLR(1) action/goto table for the grammar: an LR(0)
// canonical collection with reductions keyed by FOLLOW. SetStart must have
// run first. Returns a Conflict error the first time two actions compete
// for the same (state, terminal) cell.
func SLRTable(g *Grammar) (*Table, error) {
	if !g.started {
		return nil, errIllegalStart("SLRTable requires a start symbol; call SetStart first")
	}
	if _, err := g.FollowSet(); err != nil {
		return nil, err
	}

	automaton, err := buildLR0Automaton(g)
	if err != nil {
		return nil, err
	}

	t := newTable(g, automaton.numStates())
	t.InitialState = 0
	startProd := g.StartProduction()

	for i := 0; i < automaton.numStates(); i++ {
		state := automaton.state(i)
		for _, it := range state.items {
			switch {
			case it.prod.Index == startProd.Index && it.atEnd():
				if err := t.setAction(i, SymEnd, acceptEntry()); err != nil {
					return nil, err
				}
			case it.atEnd():
				for _, a := range g.follow.of(it.prod.Name).Symbols() {
					if err := t.setAction(i, a, reduceBy(it.prod.Index)); err != nil {
						return nil, err
					}
				}
			default:
				sym, _ := it.dottedSymbol()
				if !g.IsTerminal(sym) {
					continue
				}
				j, ok := automaton.goto_(i, sym)
				if !ok {
					continue
				}
				if err := t.setAction(i, sym, shiftTo(j)); err != nil {
					return nil, err
				}
			}
		}

		for sym, j := range automaton.goTo[i] {
			if g.IsNonterminal(sym) {
				t.setGoto(i, sym, j)
			}
		}
	}

	return t, nil
}
