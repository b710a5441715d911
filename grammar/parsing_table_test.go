package grammar

import "testing"

func TestActionEntryAccessors(t *testing.T) {
	sh := shiftTo(4)
	if target, ok := sh.ShiftTarget(); !ok || target != 4 {
		t.Fatalf("expected ShiftTarget to report (4, true); got (%d, %v)", target, ok)
	}
	if _, ok := sh.ReduceProduction(); ok {
		t.Fatalf("a shift entry must not report a reduce production")
	}

	rd := reduceBy(7)
	if prod, ok := rd.ReduceProduction(); !ok || prod != 7 {
		t.Fatalf("expected ReduceProduction to report (7, true); got (%d, %v)", prod, ok)
	}
	if _, ok := rd.ShiftTarget(); ok {
		t.Fatalf("a reduce entry must not report a shift target")
	}
}

func TestActionKindString(t *testing.T) {
	cases := map[ActionKind]string{
		ActionShift:  "shift",
		ActionReduce: "reduce",
		ActionAccept: "accept",
		ActionError:  "error",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("ActionKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestSetActionRejectsConflictingEntry(t *testing.T) {
	g := New([]string{"a"})
	tbl := newTable(g, 1)

	if err := tbl.setAction(0, "a", shiftTo(1)); err != nil {
		t.Fatalf("first setAction failed: %v", err)
	}
	if err := tbl.setAction(0, "a", shiftTo(1)); err != nil {
		t.Fatalf("re-setting the identical entry should not conflict: %v", err)
	}
	if err := tbl.setAction(0, "a", reduceBy(2)); err == nil {
		t.Fatalf("expected a conflict when reduce competes with an existing shift")
	}
}

func TestSetGotoOverwritesWithoutConflict(t *testing.T) {
	g := New([]string{"a"})
	tbl := newTable(g, 1)

	tbl.setGoto(0, "A", 3)
	tbl.setGoto(0, "A", 5)
	if tbl.Goto[0]["A"] != 5 {
		t.Fatalf("expected the later setGoto call to win; got %d", tbl.Goto[0]["A"])
	}
}
