package render

import (
	"bytes"
	"testing"

	"asmtidy/pkg/labels"
)

func TestPrintFunctionPadsMnemonicToColumn(t *testing.T) {
	fn := labels.CleanedFunction{
		Name: "foo",
		Instructions: []labels.CleanedInstruction{
			{Operation: "mov", Operands: "eax,1"},
			{Operation: "ret"},
		},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintFunction(fn)

	expected := "foo:\n" +
		"  mov         eax,1\n" +
		"  ret         \n" +
		"\n"
	if buf.String() != expected {
		t.Errorf("output wrong.\nexpected=%q\ngot=%q", expected, buf.String())
	}
}

// Mnemonics at or past the pad column get no padding and are never
// truncated; operands follow immediately.
func TestPrintFunctionLongMnemonic(t *testing.T) {
	fn := labels.CleanedFunction{
		Name: "foo",
		Instructions: []labels.CleanedInstruction{
			{Operation: "vbroadcastf128", Operands: "ymm0,[rax]"},
		},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintFunction(fn)

	expected := "foo:\n" +
		"  vbroadcastf128ymm0,[rax]\n" +
		"\n"
	if buf.String() != expected {
		t.Errorf("output wrong.\nexpected=%q\ngot=%q", expected, buf.String())
	}
}

func TestPrintFunctionLabelOnOwnLine(t *testing.T) {
	fn := labels.CleanedFunction{
		Name: "foo",
		Instructions: []labels.CleanedInstruction{
			{Operation: "jmp", Operands: "$L0"},
			{Label: "$L0", Operation: "ret"},
		},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintFunction(fn)

	expected := "foo:\n" +
		"  jmp         $L0\n" +
		"$L0:\n" +
		"  ret         \n" +
		"\n"
	if buf.String() != expected {
		t.Errorf("output wrong.\nexpected=%q\ngot=%q", expected, buf.String())
	}
}

func TestPrintFunctionsBlankLineBetween(t *testing.T) {
	fns := []labels.CleanedFunction{
		{Name: "foo", Instructions: []labels.CleanedInstruction{{Operation: "ret"}}},
		{Name: "bar", Instructions: []labels.CleanedInstruction{{Operation: "ret"}}},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintFunctions(fns)

	expected := "foo:\n" +
		"  ret         \n" +
		"\n" +
		"bar:\n" +
		"  ret         \n" +
		"\n"
	if buf.String() != expected {
		t.Errorf("output wrong.\nexpected=%q\ngot=%q", expected, buf.String())
	}
}

func TestPrintFunctionEmptyBody(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintFunction(labels.CleanedFunction{Name: "empty"})

	expected := "empty:\n\n"
	if buf.String() != expected {
		t.Errorf("output wrong.\nexpected=%q\ngot=%q", expected, buf.String())
	}
}
