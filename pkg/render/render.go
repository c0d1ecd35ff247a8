// Package render serializes cleaned functions back to aligned listing text.
package render

import (
	"fmt"
	"io"

	"asmtidy/pkg/labels"
)

// mnemonicWidth is the column at which operand text starts. Mnemonics of
// twelve characters or more get no padding and are never truncated.
const mnemonicWidth = 12

// Printer writes cleaned functions in the output listing format.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// PrintFunction writes one function: a name header, each instruction
// indented with its mnemonic padded to a fixed column, a label line of its
// own before any instruction that is a branch target, and a trailing blank
// line.
func (p *Printer) PrintFunction(fn labels.CleanedFunction) {
	fmt.Fprintf(p.w, "%s:\n", fn.Name)
	for _, ins := range fn.Instructions {
		if ins.Label != "" {
			fmt.Fprintf(p.w, "%s:\n", ins.Label)
		}
		fmt.Fprintf(p.w, "  %-*s%s\n", mnemonicWidth, ins.Operation, ins.Operands)
	}
	fmt.Fprintln(p.w)
}

// PrintFunctions writes each function in order.
func (p *Printer) PrintFunctions(fns []labels.CleanedFunction) {
	for _, fn := range fns {
		p.PrintFunction(fn)
	}
}
