package grammar

// CLRTable builds the canonical LR(1) action/goto table for the grammar:
// the full LR(1) canonical collection with reductions keyed by each item's
// own lookahead set rather than FOLLOW. SetStart must have run first.
// Returns a Conflict error the first time two actions compete for the same
// (state, terminal) cell.
func CLRTable(g *Grammar) (*Table, error) {
	if !g.started {
		return nil, errIllegalStart("CLRTable requires a start symbol; call SetStart first")
	}
	if _, err := g.FirstSet(); err != nil {
		return nil, err
	}
	if err := g.BuildItems(); err != nil {
		return nil, err
	}

	automaton, err := buildCLR1Automaton(g)
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
				for _, a := range it.la.Symbols() {
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
