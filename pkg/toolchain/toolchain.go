// Package toolchain models the supported compiler backends and the
// commands used to produce and disassemble an object file.
package toolchain

import (
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
)

// Compiler identifies a supported native compiler backend.
type Compiler int

const (
	MSVC Compiler = iota
	Clang
	GCC
)

// ParseCompiler maps a command-line name to a Compiler.
func ParseCompiler(name string) (Compiler, error) {
	switch name {
	case "msvc":
		return MSVC, nil
	case "clang":
		return Clang, nil
	case "gcc":
		return GCC, nil
	}
	return 0, fmt.Errorf("unknown compiler name: %s", name)
}

func (c Compiler) String() string {
	switch c {
	case MSVC:
		return "msvc"
	case Clang:
		return "clang"
	default:
		return "gcc"
	}
}

// ExeName returns the compiler executable to invoke.
func (c Compiler) ExeName() string {
	switch c {
	case MSVC:
		return "cl"
	case Clang:
		return "clang++"
	default:
		return "g++"
	}
}

// OutputFileArgs returns the backend-specific arguments that place the
// object file in objDir. cl takes a /Fo directory prefix; the unix-style
// compilers take -o with the full path.
func (c Compiler) OutputFileArgs(objDir, objFile string) []string {
	if c == MSVC {
		return []string{fmt.Sprintf("/Fo%s%c", objDir, filepath.Separator)}
	}
	return []string{"-o", filepath.Join(objDir, objFile)}
}

// CompileArgs assembles the compile-to-object argument list for one source
// file: extra options first, then include directories, defines, the output
// location, -c and the source file.
func (c Compiler) CompileArgs(source, objDir, objFile string, includeDirs, defines, options []string) []string {
	args := append([]string{}, options...)
	for _, dir := range includeDirs {
		args = append(args, "-I", dir)
	}
	for _, def := range defines {
		args = append(args, "-D", def)
	}
	args = append(args, c.OutputFileArgs(objDir, objFile)...)
	args = append(args, "-c", source)
	return args
}

// DisasmCommand returns the disassembler invocation for an object file.
// The MSVC toolchain disassembles with dumpbin, the unix toolchains with
// objdump.
func (c Compiler) DisasmCommand(objPath string) (string, []string) {
	if c == MSVC {
		return "dumpbin", []string{"/disasm:nobytes", objPath}
	}
	return "objdump", []string{"-d", "--no-show-raw-insn", objPath}
}

// ObjFileName returns the object file name for a source file: the base
// name with its extension replaced by .obj.
func ObjFileName(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".obj"
}

// Runner executes an external tool, streaming its standard output to
// stdout. Tests substitute a stub; the CLI uses ExecRunner.
type Runner interface {
	Run(name string, args []string, stdout io.Writer) error
}

// ExecRunner runs tools with os/exec.
type ExecRunner struct {
	Stderr io.Writer
}

func (r ExecRunner) Run(name string, args []string, stdout io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}
