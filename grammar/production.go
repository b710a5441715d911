package grammar

// ProductionIndex identifies a Production within a Grammar. Index 0 is
// always the synthetic start production S' -> S that SetStart installs;
// user productions are numbered from 1 in declaration order.
type ProductionIndex int

// LRAction is the semantic callback a production runs when the shift/reduce
// driver reduces its RHS. args holds the popped symbols in left-to-right
// order (nil when the production is empty); stack is whatever remains on
// the symbol stack below them. The callback is expected to set lhs.Value.
type LRAction func(lhs *Token, args []*Token, stack []*Token)

// LLHook is one semantic hook belonging to an LL(1) production. A
// production with n RHS symbols supplies n+1 hooks: hook i runs immediately
// before the predictor for RHS position i is invoked, and the trailing hook
// runs once the last symbol has been recognized. A zero-length RHS still
// supplies exactly one (trailing) hook.
type LLHook func(newAttrs, oldAttrs map[string]interface{})

// Production is a single rewrite rule `Name -> RHS`, optionally carrying a
// semantic action for the bottom-up driver and/or hooks for the top-down
// one. Once appended to a Grammar, a Production is never mutated.
type Production struct {
	Index ProductionIndex
	Name  Symbol
	RHS   []Symbol

	// Action runs during bottom-up (LR) reduction. It may be nil.
	Action LRAction

	// Hooks runs during top-down (LL) prediction, one entry per RHS
	// position plus a trailing entry. It may be nil or partially nil.
	Hooks []LLHook
}

// IsEmpty reports whether the production is an ε-production.
func (p *Production) IsEmpty() bool {
	return len(p.RHS) == 0
}

func (p *Production) rhsLen() int {
	return len(p.RHS)
}

// hookAt returns the hook for RHS position i, or a no-op if none was
// supplied. A zero-RHS production's single hook lives at index 0.
func (p *Production) hookAt(i int) LLHook {
	if i >= 0 && i < len(p.Hooks) && p.Hooks[i] != nil {
		return p.Hooks[i]
	}
	return func(map[string]interface{}, map[string]interface{}) {}
}

// HookAt is the exported form of hookAt, for the LL(1) driver package.
func (p *Production) HookAt(i int) LLHook {
	return p.hookAt(i)
}
