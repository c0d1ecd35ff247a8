package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"asmtidy/pkg/config"
	"asmtidy/pkg/extract"
	"asmtidy/pkg/toolchain"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// Compile and extraction options
var (
	compilerName string
	rootNames    []string
	includeDirs  []string
	defineFlags  []string
	extraOptions []string
	outputFile   string
	configFile   string
	keepRaw      bool
)

func main() {
	os.Exit(run())
}

func run() int {
	runner := toolchain.ExecRunner{Stderr: io.Discard}
	rootCmd := newRootCmd(os.Stdout, os.Stderr, runner)
	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(out, errOut io.Writer, runner toolchain.Runner) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "asmtidy [file]",
		Short: "asmtidy extracts a cleaned disassembly listing for chosen root functions",
		Long: `asmtidy compiles a source file to an object file, disassembles it and
reduces the raw listing to the functions reachable from the given roots,
with jump targets rewritten to symbolic labels.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := buildJob(args)
			if err != nil {
				fmt.Fprintf(errOut, "asmtidy: %v\n", err)
				return err
			}
			if job == nil {
				cmd.Help()
				return nil
			}
			comp, err := toolchain.ParseCompiler(job.Compiler)
			if err != nil {
				fmt.Fprintf(errOut, "asmtidy: %v\n", err)
				return err
			}
			if err := generate(job, comp, runner, out, errOut); err != nil {
				fmt.Fprintf(errOut, "asmtidy: %v\n", err)
				return err
			}
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.Flags().StringVar(&compilerName, "compiler", "", "Compiler backend (msvc, clang or gcc)")
	rootCmd.Flags().StringArrayVarP(&rootNames, "root", "r", nil, "Root function to keep (repeatable)")
	rootCmd.Flags().StringArrayVarP(&includeDirs, "include", "I", nil, "Add directory to include search path")
	rootCmd.Flags().StringArrayVarP(&defineFlags, "define", "D", nil, "Define macro (NAME or NAME=VALUE)")
	rootCmd.Flags().StringArrayVar(&extraOptions, "copt", nil, "Pass an extra option to the compiler (repeatable)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default <source>.disasm)")
	rootCmd.Flags().StringVar(&configFile, "config", "", "Read job settings from a yaml file")
	rootCmd.Flags().BoolVar(&keepRaw, "keep-raw", false, "Also write the unfiltered disassembler output to <output>.raw")

	return rootCmd
}

// buildJob merges the yaml job file (if any) with command-line flags.
// Flags override the file. Returns nil when no source was given so the
// caller can print help.
func buildJob(args []string) (*config.Job, error) {
	job := &config.Job{}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		job = loaded
	}

	if len(args) > 0 {
		job.Source = args[0]
	}
	if compilerName != "" {
		job.Compiler = compilerName
	}
	if outputFile != "" {
		job.Output = outputFile
	}
	if len(rootNames) > 0 {
		job.Roots = rootNames
	}
	job.IncludeDirs = append(job.IncludeDirs, includeDirs...)
	job.Defines = append(job.Defines, defineFlags...)
	job.Options = append(job.Options, extraOptions...)

	if job.Source == "" && configFile == "" {
		return nil, nil
	}
	if job.Compiler == "" {
		job.Compiler = "gcc"
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return job, nil
}

// generate compiles the job's source file to a temporary object file,
// disassembles it and writes the reduced listing.
func generate(job *config.Job, comp toolchain.Compiler, runner toolchain.Runner, out, errOut io.Writer) error {
	objDir, err := os.MkdirTemp("", "asmtidy-obj")
	if err != nil {
		return err
	}
	defer os.RemoveAll(objDir)

	objFile := toolchain.ObjFileName(job.Source)
	compileArgs := comp.CompileArgs(job.Source, objDir, objFile, job.IncludeDirs, job.Defines, job.Options)
	printCommand(errOut, comp.ExeName(), compileArgs)
	if err := runner.Run(comp.ExeName(), compileArgs, io.Discard); err != nil {
		fmt.Fprintln(errOut, "!!!!!!!!!!!!!!")
		fmt.Fprintln(errOut, "COMPILE ERRORS")
		fmt.Fprintln(errOut, "!!!!!!!!!!!!!!")
	}

	objPath := filepath.Join(objDir, objFile)
	if _, err := os.Stat(objPath); err != nil {
		return fmt.Errorf("no object file produced for %s", job.Source)
	}

	disasmExe, disasmArgs := comp.DisasmCommand(objPath)
	printCommand(errOut, disasmExe, disasmArgs)
	var raw bytes.Buffer
	if err := runner.Run(disasmExe, disasmArgs, &raw); err != nil {
		return fmt.Errorf("disassembler failed: %w", err)
	}

	outPath := job.Output
	if outPath == "" {
		outPath = disasmOutputFilename(job.Source)
	}
	if keepRaw {
		if err := os.WriteFile(outPath+".raw", raw.Bytes(), 0o644); err != nil {
			return err
		}
	}

	text := extract.Listing(extract.SplitLines(raw.String()), job.Roots)
	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		return err
	}
	fmt.Fprint(out, text)
	return nil
}

// printCommand echoes an external command line before running it.
func printCommand(w io.Writer, name string, args []string) {
	fmt.Fprintf(w, "%s %s\n", name, strings.Join(args, " "))
}

// disasmOutputFilename returns the default output filename:
// input.cpp -> input.disasm
func disasmOutputFilename(filename string) string {
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext) + ".disasm"
}
