// Package circuit models an ordered sequence of reversible operations over
// named qubit and classical-bit registers.
//
// What:
//
//   - Register: a named, contiguous slice of global qubit or bit indices.
//   - Op:       one operation (H, X, CX, MCX, Barrier, Measure).
//   - Circuit:  append-only builder that owns the registers and op list.
//   - Conjugate: scoped flip/apply/unflip sandwich appended atomically;
//     a failing body leaves the circuit exactly as it was.
//   - WriteQASM: OpenQASM 3 text for simulators and devices.
//
// Qubit numbering is global and little-endian: qubit q is bit q of a basis
// state index. Registers are laid out in declaration order.
//
// Gate methods panic on indices outside the declared registers; those are
// programmer errors, and every public constructor in this module validates
// its inputs before it emits gates.
package circuit
