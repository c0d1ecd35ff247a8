// Package reach computes the set of functions transitively reachable from
// a list of root functions via direct call instructions.
package reach

import "asmtidy/pkg/listing"

// Resolve appends to used every definition reachable from the given batch
// of names, in discovery order. Names with no matching definition (external
// or library calls) are skipped silently. The accumulated set doubles as
// the visited set, so call cycles terminate.
//
// When a name in the batch has already been resolved, the remainder of that
// batch is abandoned, not just the one name. Callers that need every name
// considered must pass them in separate batches.
func Resolve(lines []string, defs []listing.FunctionDefinition, used *[]listing.FunctionDefinition, names []string) {
	for _, name := range names {
		if listing.FindDefinition(*used, name) != nil {
			return
		}
		d := listing.FindDefinition(defs, name)
		if d == nil {
			continue
		}
		*used = append(*used, *d)

		for i := d.LineStartIndex + 1; i < d.LineStartIndex+d.LineCount; i++ {
			ins := listing.ParseInstruction(lines[i])
			if ins != nil && ins.Operation == "call" {
				Resolve(lines, defs, used, []string{ins.Operands})
			}
		}
	}
}

// Reachable returns the definitions reachable from the roots, each exactly
// once, in discovery order.
func Reachable(lines []string, defs []listing.FunctionDefinition, roots []string) []listing.FunctionDefinition {
	var used []listing.FunctionDefinition
	Resolve(lines, defs, &used, roots)
	return used
}
