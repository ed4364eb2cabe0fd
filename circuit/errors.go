package circuit

import "errors"

var (
	// ErrBadSize indicates a register of non-positive size.
	ErrBadSize = errors.New("circuit: register size must be > 0")
	// ErrDuplicateRegister indicates a register name that is already declared.
	ErrDuplicateRegister = errors.New("circuit: duplicate register name")
	// ErrBadName indicates a register name that is not a valid identifier.
	ErrBadName = errors.New("circuit: invalid register name")
	// ErrIrreversible indicates an operation with no inverse (Measure).
	ErrIrreversible = errors.New("circuit: operation is not reversible")
	// ErrUnknownQubit indicates an index not covered by any register.
	ErrUnknownQubit = errors.New("circuit: index outside declared registers")
)
