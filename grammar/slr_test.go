package grammar

import "testing"

func TestSLRTableArithmeticAcceptsShiftReduceTrace(t *testing.T) {
	g := arithmeticGrammar(t)
	tbl, err := SLRTable(g)
	if err != nil {
		t.Fatalf("SLRTable failed: %v", err)
	}

	// Drive "d + d * d $end" by hand through the table, simulating the
	// shift/reduce driver's stack discipline without depending on it.
	input := []Symbol{"d", "+", "d", "*", "d", SymEnd}
	pos := 0
	stateStack := []int{tbl.InitialState}
	symStack := []Symbol{}

	accepted := false
	for steps := 0; steps < 100 && !accepted; steps++ {
		cur := stateStack[len(stateStack)-1]
		entry, ok := tbl.Action[cur][input[pos]]
		if !ok {
			t.Fatalf("unexpected parse error at step %d on %q in state %d", steps, input[pos], cur)
		}
		switch entry.Kind {
		case ActionShift:
			stateStack = append(stateStack, entry.Target)
			symStack = append(symStack, input[pos])
			pos++
		case ActionReduce:
			prod, _ := g.Production(ProductionIndex(entry.Target))
			n := prod.rhsLen()
			stateStack = stateStack[:len(stateStack)-n]
			symStack = symStack[:len(symStack)-n]
			symStack = append(symStack, prod.Name)
			gotoState, ok := tbl.Goto[stateStack[len(stateStack)-1]][prod.Name]
			if !ok {
				t.Fatalf("missing goto for %v from state %d", prod.Name, stateStack[len(stateStack)-1])
			}
			stateStack = append(stateStack, gotoState)
		case ActionAccept:
			accepted = true
		}
	}

	if !accepted {
		t.Fatalf("expected the input to be accepted")
	}
}

func TestSLRTableDuplicateProductionsRaiseConflict(t *testing.T) {
	g := New([]string{"a"})
	mustAddProduction(t, g, "S", []string{"A"})
	mustAddProduction(t, g, "A", []string{"a"})
	mustAddProduction(t, g, "A", []string{"a"})
	if err := g.SetStart("S"); err != nil {
		t.Fatalf("SetStart failed: %v", err)
	}

	_, err := SLRTable(g)
	if err == nil {
		t.Fatalf("expected a conflict between the two identical A -> a productions")
	}
}

func TestSLRTableRequiresStart(t *testing.T) {
	g := New([]string{"a"})
	mustAddProduction(t, g, "S", []string{"a"})

	if _, err := SLRTable(g); err == nil {
		t.Fatalf("expected an error when SLRTable is called before SetStart")
	}
}

func TestSLRTableEpsilonGrammar(t *testing.T) {
	// S -> A B; A -> a | <empty>; B -> b
	g := New([]string{"a", "b"})
	mustAddProduction(t, g, "S", []string{"A", "B"})
	mustAddProduction(t, g, "A", []string{"a"})
	mustAddProduction(t, g, "A", nil)
	mustAddProduction(t, g, "B", []string{"b"})
	if err := g.SetStart("S"); err != nil {
		t.Fatalf("SetStart failed: %v", err)
	}

	tbl, err := SLRTable(g)
	if err != nil {
		t.Fatalf("SLRTable failed: %v", err)
	}
	if tbl.NumStates == 0 {
		t.Fatalf("expected a non-empty table")
	}
}
