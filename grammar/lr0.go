package grammar

import (
	"fmt"
	"sort"
	"strings"
)

// lr0State is one node of the LR(0) canonical collection: the closure of a
// kernel, in the BFS order closure discovered them.
type lr0State struct {
	index int
	items []*lr0Item
}

// lr0Automaton is the canonical collection of LR(0) states plus the goto
// transitions between them. States are numbered 0..N-1; state 0 is the
// closure of the kernel item `S' -> . S`.
type lr0Automaton struct {
	states []*lr0State
	goTo   map[int]map[Symbol]int
}

func (a *lr0Automaton) numStates() int {
	return len(a.states)
}

func (a *lr0Automaton) state(i int) *lr0State {
	return a.states[i]
}

func (a *lr0Automaton) goto_(i int, sym Symbol) (int, bool) {
	row, ok := a.goTo[i]
	if !ok {
		return 0, false
	}
	j, ok := row[sym]
	return j, ok
}

// lr0Closure expands a kernel item set to the smallest superset closed
// under: for every item `A -> α . B β` in the set, for every production
// `B -> γ`, `B -> . γ` is also in the set. Items are appended in BFS order
// and deduplicated by (production, dot) using a visited set local to this
// call instead of a grammar-wide mutable dedup counter.
func lr0Closure(g *Grammar, kernel []*lr0Item) []*lr0Item {
	visited := map[lr0ItemKey]bool{}
	result := make([]*lr0Item, 0, len(kernel))
	queue := make([]*lr0Item, 0, len(kernel))

	for _, it := range kernel {
		k := it.key()
		if visited[k] {
			continue
		}
		visited[k] = true
		result = append(result, it)
		queue = append(queue, it)
	}

	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]

		sym, ok := it.dottedSymbol()
		if !ok || g.IsTerminal(sym) {
			continue
		}
		for _, p := range g.ProductionsFor(sym) {
			ni := g.itemAt(p, 0)
			k := ni.key()
			if visited[k] {
				continue
			}
			visited[k] = true
			result = append(result, ni)
			queue = append(queue, ni)
		}
	}

	return result
}

// lr0Goto advances every item in items that has sym to its immediate right
// of the dot, then closes the result. It returns nil when no item in items
// has sym to the right of the dot.
func lr0Goto(g *Grammar, items []*lr0Item, sym Symbol) []*lr0Item {
	var kernel []*lr0Item
	for _, it := range items {
		dsym, ok := it.dottedSymbol()
		if !ok || dsym != sym {
			continue
		}
		kernel = append(kernel, g.itemAt(it.prod, it.dot+1))
	}
	if len(kernel) == 0 {
		return nil
	}
	return lr0Closure(g, kernel)
}

func lr0ItemSetKey(items []*lr0Item) string {
	keys := make([]string, len(items))
	for i, it := range items {
		keys[i] = fmt.Sprintf("%d:%d", it.prod.Index, it.dot)
	}
	sort.Strings(keys)
	return strings.Join(keys, "|")
}

// symbolsWithDot returns, in a deterministic (lexicographic) order, every
// symbol that appears immediately to the right of the dot in some item of
// items.
func symbolsWithDot(items []*lr0Item) []Symbol {
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

// buildLR0Automaton constructs the canonical collection of LR(0) item sets
// by worklist expansion from the closure of `S' -> . S`. Canonicalization
// is by value equality over the (production, dot) pairs each state
// contains, for implementations that don't share item-set nodes by
// identity.
func buildLR0Automaton(g *Grammar) (*lr0Automaton, error) {
	if err := g.BuildItems(); err != nil {
		return nil, err
	}

	auto := &lr0Automaton{goTo: map[int]map[Symbol]int{}}
	seen := map[string]int{}

	initItems := lr0Closure(g, []*lr0Item{g.initialItem()})
	initState := &lr0State{index: 0, items: initItems}
	auto.states = append(auto.states, initState)
	seen[lr0ItemSetKey(initItems)] = 0

	queue := []*lr0State{initState}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		for _, sym := range symbolsWithDot(s.items) {
			closure := lr0Goto(g, s.items, sym)
			if closure == nil {
				continue
			}

			key := lr0ItemSetKey(closure)
			idx, ok := seen[key]
			if !ok {
				idx = len(auto.states)
				ns := &lr0State{index: idx, items: closure}
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

func (s *lr0State) String() string {
	var b strings.Builder
	for i, it := range s.items {
		if i > 0 {
			b.WriteString("; ")
		}
		writeDottedProduction(&b, it.prod, it.dot)
	}
	return b.String()
}

func writeDottedProduction(b *strings.Builder, p *Production, dot int) {
	fmt.Fprintf(b, "%s ->", p.Name)
	for i, sym := range p.RHS {
		if i == dot {
			b.WriteString(" " + string(symDot))
		}
		fmt.Fprintf(b, " %s", sym)
	}
	if dot == len(p.RHS) {
		b.WriteString(" " + string(symDot))
	}
}
