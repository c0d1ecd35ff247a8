// Package extract composes the full pipeline: scan the raw listing for
// function definitions, resolve the call closure from the root functions,
// rewrite jump targets into labels and render the result.
package extract

import (
	"strings"

	"asmtidy/pkg/labels"
	"asmtidy/pkg/listing"
	"asmtidy/pkg/reach"
	"asmtidy/pkg/render"
)

// Clean returns the cleaned reachable functions. Output order follows the
// order definitions appear in the raw listing, not discovery order. The
// label counter is threaded across all functions so labels stay unique for
// the whole run.
func Clean(lines []string, roots []string) []labels.CleanedFunction {
	defs := listing.ScanDefinitions(lines)
	used := reach.Reachable(lines, defs, roots)

	nextLabel := 0
	var fns []labels.CleanedFunction
	for _, def := range defs {
		if listing.FindDefinition(used, def.Name) == nil {
			continue
		}
		fns = append(fns, labels.CleanFunction(lines, def, &nextLabel))
	}
	return fns
}

// Listing renders the cleaned reachable functions to text. Empty input or
// roots with no matching definition produce empty output; no input aborts
// the pipeline.
func Listing(lines []string, roots []string) string {
	var sb strings.Builder
	render.NewPrinter(&sb).PrintFunctions(Clean(lines, roots))
	return sb.String()
}

// SplitLines splits raw disassembler output into lines, tolerating CRLF
// endings from Windows tools.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
