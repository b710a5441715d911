package grammar

import "fmt"

// Kind classifies the error family a Error belongs to, matching the four
// error kinds the core is specified to raise.
type Kind string

const (
	// IllegalSymbol means a production name or an RHS symbol is reserved,
	// empty, or otherwise forbidden.
	IllegalSymbol = Kind("illegal symbol")

	// IllegalStart means a requested start symbol is not a known
	// nonterminal.
	IllegalStart = Kind("illegal start")

	// Conflict means table construction found two actions competing for
	// the same (state, terminal) cell, or LL(1) prediction found the next
	// token in FOLLOW but no empty alternative to take. The LL(1) driver
	// commits to the first viable production and does not report a
	// conflict when several are viable.
	Conflict = Kind("conflict")

	// ParseErr means an input token stream didn't match the grammar.
	ParseErr = Kind("parse error")
)

func (k Kind) String() string {
	return string(k)
}

// Error is the single tagged error family the core raises. Cause carries a
// short, user-facing sentence; Kind lets callers distinguish construction
// failures from runtime parse failures with errors.As.
type Error struct {
	Kind  Kind
	Cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %v", e.Kind, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func errIllegalSymbol(format string, args ...interface{}) error {
	return &Error{Kind: IllegalSymbol, Cause: fmt.Errorf(format, args...)}
}

func errIllegalStart(format string, args ...interface{}) error {
	return &Error{Kind: IllegalStart, Cause: fmt.Errorf(format, args...)}
}

func errConflict(format string, args ...interface{}) error {
	return &Error{Kind: Conflict, Cause: fmt.Errorf(format, args...)}
}

// ErrParse constructs a ParseErr-kind error. It is exported because the
// driver package (which runs outside this package) raises parse errors of
// its own using the same taxonomy.
func ErrParse(format string, args ...interface{}) error {
	return &Error{Kind: ParseErr, Cause: fmt.Errorf(format, args...)}
}

// ErrConflict constructs a Conflict-kind error. It is exported so the LL(1)
// driver can report a failed prediction using the same taxonomy as table
// construction.
func ErrConflict(format string, args ...interface{}) error {
	return &Error{Kind: Conflict, Cause: fmt.Errorf(format, args...)}
}
