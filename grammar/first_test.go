package grammar

import (
	"errors"
	"testing"
)

// arithmeticGrammar builds the classic expression grammar used throughout
// these tests: S -> E; E -> E + T | T; T -> T * F | F; F -> ( E ) | d.
func arithmeticGrammar(t *testing.T) *Grammar {
	t.Helper()

	g := New([]string{"+", "*", "(", ")", "d"})
	mustAddProduction(t, g, "E", []string{"E", "+", "T"})
	mustAddProduction(t, g, "E", []string{"T"})
	mustAddProduction(t, g, "T", []string{"T", "*", "F"})
	mustAddProduction(t, g, "T", []string{"F"})
	mustAddProduction(t, g, "F", []string{"(", "E", ")"})
	mustAddProduction(t, g, "F", []string{"d"})
	mustAddProduction(t, g, "S", []string{"E"})
	if err := g.SetStart("S"); err != nil {
		t.Fatalf("SetStart failed: %v", err)
	}
	return g
}

func mustAddProduction(t *testing.T, g *Grammar, name string, rhs []string, opts ...ProdOption) *Production {
	t.Helper()
	p, err := g.AddProduction(name, rhs, opts...)
	if err != nil {
		t.Fatalf("AddProduction(%q, %v) failed: %v", name, rhs, err)
	}
	return p
}

func containsSymbol(syms []Symbol, sym Symbol) bool {
	for _, s := range syms {
		if s == sym {
			return true
		}
	}
	return false
}

func TestFirstSetArithmetic(t *testing.T) {
	g := arithmeticGrammar(t)

	first, err := g.FirstSet()
	if err != nil {
		t.Fatalf("FirstSet failed: %v", err)
	}

	for _, nt := range []Symbol{"S", "E", "T", "F"} {
		for _, term := range []Symbol{"(", "d"} {
			if !containsSymbol(first[nt], term) {
				t.Errorf("expected %q in FIRST(%v); got %v", term, nt, first[nt])
			}
		}
		if containsSymbol(first[nt], SymEmpty) {
			t.Errorf("FIRST(%v) must not contain <empty>; none of these symbols derive it", nt)
		}
	}
}

func TestFirstSetIsAFixedPoint(t *testing.T) {
	g := arithmeticGrammar(t)

	first1, err := g.FirstSet()
	if err != nil {
		t.Fatalf("FirstSet failed: %v", err)
	}
	first2, err := g.FirstSet()
	if err != nil {
		t.Fatalf("second FirstSet call failed: %v", err)
	}

	for sym, syms1 := range first1 {
		syms2, ok := first2[sym]
		if !ok || len(syms1) != len(syms2) {
			t.Fatalf("FirstSet is not stable across calls for %v: %v vs %v", sym, syms1, syms2)
		}
		for i := range syms1 {
			if syms1[i] != syms2[i] {
				t.Fatalf("FirstSet order changed across calls for %v: %v vs %v", sym, syms1, syms2)
			}
		}
	}
}

func TestFirstOfSequenceDerivesEmpty(t *testing.T) {
	g := New([]string{"a", "b"})
	mustAddProduction(t, g, "A", nil)
	mustAddProduction(t, g, "B", nil)
	mustAddProduction(t, g, "S", []string{"A", "B"})
	if err := g.SetStart("S"); err != nil {
		t.Fatalf("SetStart failed: %v", err)
	}

	seq, err := g.FirstOf([]Symbol{"A", "B"})
	if err != nil {
		t.Fatalf("FirstOf failed: %v", err)
	}
	if !containsSymbol(seq, SymEmpty) {
		t.Fatalf("expected <empty> in FIRST(A B) when both A and B derive ε; got %v", seq)
	}
}

func TestFirstOfEmptySequenceIsEmpty(t *testing.T) {
	g := arithmeticGrammar(t)
	if _, err := g.FirstSet(); err != nil {
		t.Fatalf("FirstSet failed: %v", err)
	}

	seq, err := g.FirstOf(nil)
	if err != nil {
		t.Fatalf("FirstOf failed: %v", err)
	}
	if len(seq) != 1 || seq[0] != SymEmpty {
		t.Fatalf("expected FIRST of the empty sequence to be exactly {<empty>}; got %v", seq)
	}
}

func TestFirstSetUndefinedNonterminalIsIllegalSymbol(t *testing.T) {
	g := New([]string{"a"})
	mustAddProduction(t, g, "S", []string{"Missing"})
	if err := g.SetStart("S"); err != nil {
		t.Fatalf("SetStart failed: %v", err)
	}

	_, err := g.FirstSet()
	if err == nil {
		t.Fatalf("expected an error for an undefined nonterminal")
	}
	var gerr *Error
	if !errors.As(err, &gerr) || gerr.Kind != IllegalSymbol {
		t.Fatalf("expected an IllegalSymbol error; got %v", err)
	}
}
