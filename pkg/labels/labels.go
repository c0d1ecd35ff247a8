// Package labels rewrites raw byte-offset jump targets into symbolic
// labels of the form $L<N>.
package labels

import (
	"fmt"

	"asmtidy/pkg/listing"
)

// CleanedInstruction is an instruction ready for output. Label, when
// non-empty, marks this instruction as a branch target. For jump
// instructions whose target was resolved, Operands holds the target's
// symbolic label instead of the raw offset.
type CleanedInstruction struct {
	Label     string
	Operation string
	Operands  string
}

// CleanedFunction is a function whose jumps reference symbolic labels.
type CleanedFunction struct {
	Name         string
	Instructions []CleanedInstruction
}

// IsJump reports whether op belongs to the jump family. Every conditional
// and unconditional jump mnemonic starts with 'j'.
func IsJump(op string) bool {
	return len(op) > 0 && op[0] == 'j'
}

// CleanFunction rewrites one function's jump targets. nextLabel is shared
// across every function cleaned in one run, so labels never collide within
// a listing and numbering is deterministic.
//
// A jump's operand is matched against the function's own instruction
// offsets by exact string equality, first match wins. Repeated jumps to the
// same target reuse its label. A target not found within the function (a
// tail call or computed jump) leaves the operand untouched.
func CleanFunction(lines []string, def listing.FunctionDefinition, nextLabel *int) CleanedFunction {
	var raw []listing.Instruction
	var cleaned []CleanedInstruction
	for i := def.LineStartIndex + 1; i < def.LineStartIndex+def.LineCount; i++ {
		ins := listing.ParseInstruction(lines[i])
		if ins == nil {
			continue
		}
		raw = append(raw, *ins)
		cleaned = append(cleaned, CleanedInstruction{Operation: ins.Operation, Operands: ins.Operands})
	}

	for i := range raw {
		if !IsJump(raw[i].Operation) {
			continue
		}
		target := raw[i].Operands
		for j := range raw {
			if raw[j].ByteOffset != target {
				continue
			}
			label := cleaned[j].Label
			if label == "" {
				label = fmt.Sprintf("$L%d", *nextLabel)
				*nextLabel++
				cleaned[j].Label = label
			}
			cleaned[i].Operands = label
			break
		}
	}

	return CleanedFunction{Name: def.Name, Instructions: cleaned}
}
