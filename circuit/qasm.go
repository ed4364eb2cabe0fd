// SPDX-License-Identifier: MIT

package circuit

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// QASM header lines.
const (
	qasmVersion = "OPENQASM 3.0;"
	qasmInclude = `include "stdgates.inc";`
)

// WriteQASM writes the circuit as OpenQASM 3 to w. Each comment becomes a
// "// ..." line after the include. Multi-controlled flips with more than two
// controls use the ctrl(n) @ x modifier.
func (c *Circuit) WriteQASM(w io.Writer, comments ...string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, qasmVersion)
	fmt.Fprintln(bw, qasmInclude)
	for _, line := range comments {
		fmt.Fprintf(bw, "// %s\n", line)
	}
	for _, r := range c.qregs {
		fmt.Fprintf(bw, "qubit[%d] %s;\n", r.Size, r.Name)
	}
	for _, r := range c.cregs {
		fmt.Fprintf(bw, "bit[%d] %s;\n", r.Size, r.Name)
	}
	fmt.Fprintln(bw)

	for i, op := range c.ops {
		line, err := c.qasmLine(op)
		if err != nil {
			return fmt.Errorf("WriteQASM: op %d: %w", i, err)
		}
		fmt.Fprintln(bw, line)
	}

	return bw.Flush()
}

// QASM returns WriteQASM output as a string.
func (c *Circuit) QASM(comments ...string) (string, error) {
	var sb strings.Builder
	if err := c.WriteQASM(&sb, comments...); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func (c *Circuit) qasmLine(op Op) (string, error) {
	ref := func(q int) (string, error) { return lookup(c.qregs, q) }
	refs := func(qs []int) (string, error) {
		parts := make([]string, len(qs))
		for i, q := range qs {
			s, err := ref(q)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return strings.Join(parts, ", "), nil
	}

	switch op.Kind {
	case KindH, KindX:
		t, err := ref(op.Target)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s;", op.Kind, t), nil
	case KindCX, KindMCX:
		args, err := refs(append(append([]int(nil), op.Controls...), op.Target))
		if err != nil {
			return "", err
		}
		switch len(op.Controls) {
		case 1:
			return fmt.Sprintf("cx %s;", args), nil
		case 2:
			return fmt.Sprintf("ccx %s;", args), nil
		default:
			return fmt.Sprintf("ctrl(%d) @ x %s;", len(op.Controls), args), nil
		}
	case KindBarrier:
		args, err := refs(op.Qubits)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("barrier %s;", args), nil
	case KindMeasure:
		q, err := ref(op.Target)
		if err != nil {
			return "", err
		}
		b, err := lookup(c.cregs, op.Clbit)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s = measure %s;", b, q), nil
	default:
		return "", fmt.Errorf("unsupported op kind %s", op.Kind)
	}
}

// lookup maps a global index to "name[i]".
func lookup(regs []Register, idx int) (string, error) {
	for _, r := range regs {
		if r.Contains(idx) {
			return fmt.Sprintf("%s[%d]", r.Name, idx-r.Offset), nil
		}
	}

	return "", fmt.Errorf("index %d: %w", idx, ErrUnknownQubit)
}
