package grammar

// lr0Item is a production together with a dot position marking how much of
// the RHS has been recognized. Dot positions range over 0..=len(RHS); the
// item at dot == len(RHS) is the production's reduce item.
//
// Items are built once per production by buildItemChain and never mutated
// afterward; the chain is cached on the Grammar so that two requests for
// the same (production, dot) pair return the identical *lr0Item. The LR(0)
// engine still canonicalizes states by value, keying each state on its
// sorted (production-index, dot) pairs.
type lr0Item struct {
	prod *Production
	dot  int
}

// atEnd reports whether the dot has reached the end of the RHS, i.e.
// whether this is a reduce item.
func (it *lr0Item) atEnd() bool {
	return it.dot == len(it.prod.RHS)
}

// dottedSymbol returns the symbol immediately to the right of the dot, the
// one closure/goto advance over. ok is false at a reduce item.
func (it *lr0Item) dottedSymbol() (sym Symbol, ok bool) {
	if it.atEnd() {
		return "", false
	}
	return it.prod.RHS[it.dot], true
}

// lrBefore returns the symbol immediately to the left of the dot, or ok ==
// false at the item's initial position.
func (it *lr0Item) lrBefore() (sym Symbol, ok bool) {
	if it.dot == 0 {
		return "", false
	}
	return it.prod.RHS[it.dot-1], true
}

func (it *lr0Item) key() lr0ItemKey {
	return lr0ItemKey{prod: it.prod.Index, dot: it.dot}
}

// lr0ItemKey is the (production-index, dot-position) pair used for item
// equality when item nodes aren't shared by identity.
type lr0ItemKey struct {
	prod ProductionIndex
	dot  int
}

// buildItemChain returns the ordered dot-chain for one production: items at
// dot 0, 1, ..., len(RHS), the last of which is the reduce item.
func buildItemChain(p *Production) []*lr0Item {
	chain := make([]*lr0Item, p.rhsLen()+1)
	for d := range chain {
		chain[d] = &lr0Item{prod: p, dot: d}
	}
	return chain
}

// BuildItems computes (and caches) the LR(0) item chain for every
// production in the grammar. It requires SetStart to have already run,
// since the chain for the synthetic production 0 is part of the result.
// Like FirstSet and FollowSet, it is idempotent.
func (g *Grammar) BuildItems() error {
	if !g.started {
		return errIllegalStart("BuildItems requires a start symbol; call SetStart first")
	}
	if g.items != nil {
		return nil
	}

	items := make(map[ProductionIndex][]*lr0Item, len(g.productions))
	for _, p := range g.productions {
		if p == nil {
			continue
		}
		items[p.Index] = buildItemChain(p)
	}
	g.items = items
	return nil
}

// itemAt returns the shared item for (prod, dot), building the grammar's
// item chains first if that hasn't happened yet.
func (g *Grammar) itemAt(prod *Production, dot int) *lr0Item {
	if g.items == nil {
		_ = g.BuildItems()
	}
	chain := g.items[prod.Index]
	return chain[dot]
}

// initialItem returns the kernel item S' -> . S for the synthetic start
// production.
func (g *Grammar) initialItem() *lr0Item {
	return g.itemAt(g.StartProduction(), 0)
}
