// Package listing parses raw disassembler output into structured records:
// individual instruction lines and the function definitions that group them.
package listing

import "regexp"

// Instruction is one instruction line from the raw listing. ByteOffset is
// the literal token printed by the disassembler; offsets are compared as
// opaque strings and never parsed as numbers, since the disassembler may
// print addressing-mode characters alongside the digits.
type Instruction struct {
	ByteOffset string
	Operation  string
	Operands   string
}

// FunctionDefinition records where one function's block of instruction
// lines sits in the raw listing. LineCount includes the header line.
type FunctionDefinition struct {
	Name           string
	LineStartIndex int
	LineCount      int
}

var (
	instructionRE = regexp.MustCompile(`^\s*(\S+):\s+(\S+)\s*(.*?)$`)
	headerRE      = regexp.MustCompile(`^(.*):\s*$`)
	decoratedRE   = regexp.MustCompile(`^(\S+)\s+\(.*\)$`)
)

// ParseInstruction returns the structured form of an instruction line, or
// nil if the line is not an instruction. This is the sole predicate used to
// tell "inside a function body" from "body ended".
func ParseInstruction(line string) *Instruction {
	m := instructionRE.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	return &Instruction{ByteOffset: m[1], Operation: m[2], Operands: m[3]}
}

// headerName returns the function name of a header line. A header is a line
// consisting of arbitrary text followed by a colon and nothing else, and
// which is not itself an instruction line. Demangled headers of the form
// "short (signature)" keep only the short name.
func headerName(line string) (string, bool) {
	m := headerRE.FindStringSubmatch(line)
	if m == nil || ParseInstruction(line) != nil {
		return "", false
	}
	name := m[1]
	if d := decoratedRE.FindStringSubmatch(name); d != nil {
		name = d[1]
	}
	return name, true
}

// ScanDefinitions walks the raw listing top to bottom and returns every
// function definition in order of appearance. A header opens a function;
// the body runs while lines parse as instructions and is closed by the
// first non-instruction line or the end of input. The closing line is
// re-examined, so a header directly after a body opens the next function.
// Lines outside any function are skipped.
func ScanDefinitions(lines []string) []FunctionDefinition {
	var defs []FunctionDefinition

	i := 0
	for i < len(lines) {
		name, ok := headerName(lines[i])
		if !ok {
			i++
			continue
		}
		start := i
		i++
		for i < len(lines) && ParseInstruction(lines[i]) != nil {
			i++
		}
		defs = append(defs, FunctionDefinition{
			Name:           name,
			LineStartIndex: start,
			LineCount:      i - start,
		})
	}
	return defs
}

// FindDefinition returns the first definition with the given name, or nil.
func FindDefinition(defs []FunctionDefinition, name string) *FunctionDefinition {
	for i := range defs {
		if defs[i].Name == name {
			return &defs[i]
		}
	}
	return nil
}
