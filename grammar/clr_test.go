package grammar

import "testing"

func TestCLRTableArithmeticAcceptsShiftReduceTrace(t *testing.T) {
	g := arithmeticGrammar(t)
	tbl, err := CLRTable(g)
	if err != nil {
		t.Fatalf("CLRTable failed: %v", err)
	}

	input := []Symbol{"d", "+", "d", "*", "d", SymEnd}
	if !runShiftReduce(t, g, tbl, input) {
		t.Fatalf("expected %v to be accepted", input)
	}
}

func TestCLRTableDuplicateProductionsRaiseConflict(t *testing.T) {
	g := New([]string{"a"})
	mustAddProduction(t, g, "S", []string{"A"})
	mustAddProduction(t, g, "A", []string{"a"})
	mustAddProduction(t, g, "A", []string{"a"})
	if err := g.SetStart("S"); err != nil {
		t.Fatalf("SetStart failed: %v", err)
	}

	if _, err := CLRTable(g); err == nil {
		t.Fatalf("expected a conflict between the two identical A -> a productions")
	}
}

func TestCLRTableRequiresStart(t *testing.T) {
	g := New([]string{"a"})
	mustAddProduction(t, g, "S", []string{"a"})

	if _, err := CLRTable(g); err == nil {
		t.Fatalf("expected an error when CLRTable is called before SetStart")
	}
}

// TestCLRTableResolvesReduceReduceByLookahead exercises a grammar with a
// state holding two reduce items, A -> C . and B -> C ., which LR(0) alone
// cannot choose between. CLR(1) separates them by lookahead (a for A, b for
// B). SLR(1) also builds this grammar without a conflict, since FOLLOW(A)
// and FOLLOW(B) are disjoint.
func TestCLRTableResolvesReduceReduceByLookahead(t *testing.T) {
	// S -> A a | B b; A -> C; B -> C; C -> c
	g := New([]string{"a", "b", "c"})
	mustAddProduction(t, g, "S", []string{"A", "a"})
	mustAddProduction(t, g, "S", []string{"B", "b"})
	mustAddProduction(t, g, "A", []string{"C"})
	mustAddProduction(t, g, "B", []string{"C"})
	mustAddProduction(t, g, "C", []string{"c"})
	if err := g.SetStart("S"); err != nil {
		t.Fatalf("SetStart failed: %v", err)
	}

	tbl, err := CLRTable(g)
	if err != nil {
		t.Fatalf("CLRTable failed: %v", err)
	}
	for _, input := range [][]Symbol{
		{"c", "a", SymEnd},
		{"c", "b", SymEnd},
	} {
		if !runShiftReduce(t, g, tbl, input) {
			t.Fatalf("expected %v to be accepted", input)
		}
	}
}
