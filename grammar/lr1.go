package grammar

import (
	"sort"

	"github.com/cnf/structhash"
)

// lr1Item is an LR(0) core (production, dot) paired with a lookahead set.
// LR(1) items need no identity sharing: they're plain values, constructed
// fresh whenever closure or goto produces one.
type lr1Item struct {
	prod *Production
	dot  int
	la   *symbolSet
}

func (it *lr1Item) atEnd() bool {
	return it.dot == len(it.prod.RHS)
}

func (it *lr1Item) dottedSymbol() (Symbol, bool) {
	if it.atEnd() {
		return "", false
	}
	return it.prod.RHS[it.dot], true
}

// lr1ItemCore is the plain-value shape hashed to produce an lr1Item's
// canonical key: production index, dot position, and the lookahead set as a
// sorted string tuple so that two sets with the same members, inserted in a
// different order, hash identically.
type lr1ItemCore struct {
	Prod ProductionIndex
	Dot  int
	LA   []string
}

// key is the item's full value-equality key: its core plus its sorted
// lookahead tuple, hashed with structhash so that two items with the same
// core but different lookaheads land on different keys and are tracked as
// distinct items — that's what makes this CLR(1) rather than LALR(1).
func (it *lr1Item) key() string {
	h, err := structhash.Hash(lr1ItemCore{Prod: it.prod.Index, Dot: it.dot, LA: it.la.sortedStrings()}, 1)
	if err != nil {
		panic(err)
	}
	return h
}

// lr1Closure expands an LR(1) kernel the way lr0Closure does, but also
// computes and carries lookahead sets: for `A -> α . B β, L` add
// `B -> . γ, FIRST(βL)` for every production `B -> γ`, where FIRST(βL) is
// FIRST(β) with L substituted wherever β derives ε.
func lr1Closure(g *Grammar, fst *firstSet, kernel []*lr1Item) []*lr1Item {
	visited := map[string]bool{}
	result := make([]*lr1Item, 0, len(kernel))
	queue := make([]*lr1Item, 0, len(kernel))

	add := func(it *lr1Item) {
		k := it.key()
		if visited[k] {
			return
		}
		visited[k] = true
		result = append(result, it)
		queue = append(queue, it)
	}

	for _, it := range kernel {
		add(it)
	}

	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]

		sym, ok := it.dottedSymbol()
		if !ok || g.IsTerminal(sym) {
			continue
		}

		beta := it.prod.RHS[it.dot+1:]
		betaFirst := firstOfSeq(fst, beta)

		la := newSymbolSet()
		la.mergeExceptEmpty(betaFirst)
		if betaFirst.has(SymEmpty) {
			la.mergeExceptEmpty(it.la)
		}

		for _, p := range g.ProductionsFor(sym) {
			add(&lr1Item{prod: p, dot: 0, la: la.clone()})
		}
	}

	return result
}

// lr1Goto advances every item in items that has sym to its immediate right
// of the dot, carrying each item's lookahead set forward unchanged, then
// closes the result. It returns nil when no item in items has sym next.
func lr1Goto(g *Grammar, fst *firstSet, items []*lr1Item, sym Symbol) []*lr1Item {
	var kernel []*lr1Item
	for _, it := range items {
		dsym, ok := it.dottedSymbol()
		if !ok || dsym != sym {
			continue
		}
		kernel = append(kernel, &lr1Item{prod: it.prod, dot: it.dot + 1, la: it.la.clone()})
	}
	if len(kernel) == 0 {
		return nil
	}
	return lr1Closure(g, fst, kernel)
}

// lr1ItemSetKey hashes the sorted tuple of per-item keys, giving the whole
// state a single content-derived identity: two states built from the same
// items in a different discovery order still hash the same.
func lr1ItemSetKey(items []*lr1Item) string {
	keys := make([]string, len(items))
	for i, it := range items {
		keys[i] = it.key()
	}
	sort.Strings(keys)

	h, err := structhash.Hash(keys, 1)
	if err != nil {
		panic(err)
	}
	return h
}

func symbolsWithDotLR1(items []*lr1Item) []Symbol {
	seen := map[Symbol]bool{}
	var syms []Symbol
	for _, it := range items {
		sym, ok := it.dottedSymbol()
		if !ok || seen[sym] {
			continue
		}
		seen[sym] = true
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

// lr1State is one node of the canonical LR(1) collection.
type lr1State struct {
	index int
	items []*lr1Item
}

// lr1Automaton is the canonical collection of LR(1) item sets plus the
// goto transitions between them, deduplicated by value equality rather
// than identity.
type lr1Automaton struct {
	states []*lr1State
	goTo   map[int]map[Symbol]int
}

func (a *lr1Automaton) numStates() int {
	return len(a.states)
}

func (a *lr1Automaton) state(i int) *lr1State {
	return a.states[i]
}

func (a *lr1Automaton) goto_(i int, sym Symbol) (int, bool) {
	row, ok := a.goTo[i]
	if !ok {
		return 0, false
	}
	j, ok := row[sym]
	return j, ok
}

// buildCLR1Automaton constructs the canonical collection of LR(1) item sets
// from the closure of the kernel `S' -> . S, {$end}`.
func buildCLR1Automaton(g *Grammar) (*lr1Automaton, error) {
	if err := g.BuildItems(); err != nil {
		return nil, err
	}
	if g.first == nil {
		g.first = genFirstSet(g)
	}

	auto := &lr1Automaton{goTo: map[int]map[Symbol]int{}}
	seen := map[string]int{}

	initKernel := []*lr1Item{{prod: g.StartProduction(), dot: 0, la: newSymbolSetOf(SymEnd)}}
	initItems := lr1Closure(g, g.first, initKernel)
	initState := &lr1State{index: 0, items: initItems}
	auto.states = append(auto.states, initState)
	seen[lr1ItemSetKey(initItems)] = 0

	queue := []*lr1State{initState}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		for _, sym := range symbolsWithDotLR1(s.items) {
			closure := lr1Goto(g, g.first, s.items, sym)
			if closure == nil {
				continue
			}

			key := lr1ItemSetKey(closure)
			idx, ok := seen[key]
			if !ok {
				idx = len(auto.states)
				ns := &lr1State{index: idx, items: closure}
				auto.states = append(auto.states, ns)
				seen[key] = idx
				queue = append(queue, ns)
			}

			if auto.goTo[s.index] == nil {
				auto.goTo[s.index] = map[Symbol]int{}
			}
			auto.goTo[s.index][sym] = idx
		}
	}

	return auto, nil
}
