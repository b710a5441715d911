package grammar

import "fmt"

// ActionKind tags what an Table cell tells the shift/reduce driver to do.
type ActionKind int

const (
	// ActionError is the zero value: the cell is absent, so the driver
	// raises a ParseErr.
	ActionError ActionKind = iota
	ActionShift
	ActionReduce
	ActionAccept
)

func (k ActionKind) String() string {
	switch k {
	case ActionShift:
		return "shift"
	case ActionReduce:
		return "reduce"
	case ActionAccept:
		return "accept"
	default:
		return "error"
	}
}

// ActionEntry is one action-table cell. For ActionShift, Target is the
// state to push; for ActionReduce, Target is the production index to
// reduce by. It carries no information for ActionAccept or ActionError.
type ActionEntry struct {
	Kind   ActionKind
	Target int
}

func shiftTo(state int) ActionEntry {
	return ActionEntry{Kind: ActionShift, Target: state}
}

func reduceBy(prod ProductionIndex) ActionEntry {
	return ActionEntry{Kind: ActionReduce, Target: int(prod)}
}

func acceptEntry() ActionEntry {
	return ActionEntry{Kind: ActionAccept}
}

// ShiftTarget reports the state ActionShift pushes, if this entry is a
// shift.
func (e ActionEntry) ShiftTarget() (int, bool) {
	if e.Kind != ActionShift {
		return 0, false
	}
	return e.Target, true
}

// ReduceProduction reports the production ActionReduce applies, if this
// entry is a reduce.
func (e ActionEntry) ReduceProduction() (ProductionIndex, bool) {
	if e.Kind != ActionReduce {
		return 0, false
	}
	return ProductionIndex(e.Target), true
}

// Table is a compiled action/goto table: for every state, Action maps a
// terminal (or SymEnd) to what the shift/reduce driver should do, and Goto
// maps a nonterminal to the state to push after a reduction exposes it.
// Absent entries mean ActionError. A Table is read-only once built.
type Table struct {
	Grammar      *Grammar
	NumStates    int
	InitialState int
	Action       []map[Symbol]ActionEntry
	Goto         []map[Symbol]int
}

func newTable(g *Grammar, numStates int) *Table {
	t := &Table{
		Grammar:   g,
		NumStates: numStates,
		Action:    make([]map[Symbol]ActionEntry, numStates),
		Goto:      make([]map[Symbol]int, numStates),
	}
	for i := range t.Action {
		t.Action[i] = map[Symbol]ActionEntry{}
		t.Goto[i] = map[Symbol]int{}
	}
	return t
}

// setAction installs an action, raising Conflict if the cell is already
// occupied by a different entry. A shift is never allowed to silently
// overwrite a prior reduce, or vice versa: any pre-existing entry that
// differs from the new one is a conflict. Installing an identical entry
// again is not.
func (t *Table) setAction(state int, term Symbol, entry ActionEntry) error {
	existing, ok := t.Action[state][term]
	if ok && existing != entry {
		return errConflict("%s/%s conflict in state %d on %q", existing.Kind, entry.Kind, state, string(term))
	}
	t.Action[state][term] = entry
	return nil
}

func (t *Table) setGoto(state int, nonterm Symbol, target int) {
	t.Goto[state][nonterm] = target
}

// Describe renders the table as a short multi-line diagnostic string,
// primarily useful in tests and REPL-style debugging.
func (t *Table) Describe() string {
	out := ""
	for i := 0; i < t.NumStates; i++ {
		out += fmt.Sprintf("state %d:\n", i)
		for term, e := range t.Action[i] {
			out += fmt.Sprintf("  on %q: %s %d\n", string(term), e.Kind, e.Target)
		}
		for nt, j := range t.Goto[i] {
			out += fmt.Sprintf("  goto %q -> %d\n", string(nt), j)
		}
	}
	return out
}
