// Command fenc drives the front-end for manual smoke-testing: it
// reads source from a file argument or stdin, parses and desugars it,
// and prints the resulting core AST, in the manner of the teacher's
// cmd/funxy single-binary driver (stdin/file reading, panic recovery,
// fmt-to-stderr error reporting) — trimmed to what a front-end-only
// module needs: no VM, no bytecode, no module loader.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fenlang/fenc/internal/astdump"
	"github.com/fenlang/fenc/internal/config"
	"github.com/fenlang/fenc/internal/desugar"
	"github.com/fenlang/fenc/internal/lexer"
	"github.com/fenlang/fenc/internal/parser"
	"github.com/fenlang/fenc/internal/pipeline"
)

// isSourceFile checks path against the recognized source extensions,
// in the manner of the teacher's cmd/funxy isSourceFile.
func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	path, src, err := readInput(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	if path != "<stdin>" && !isSourceFile(path) {
		fmt.Fprintf(os.Stderr, "warning: %s does not have a recognized source extension (%v)\n", path, config.SourceFileExtensions)
	}

	pl := pipeline.New(&lexer.Processor{}, &parser.Processor{})
	result := pl.Run(pipeline.NewContext(path, src))
	if result.Err != nil {
		fmt.Fprintln(os.Stderr, result.Err.Error())
		os.Exit(1)
	}

	core, derr := desugar.Module(result.Module)
	if derr != nil {
		fmt.Fprintln(os.Stderr, derr.Error())
		os.Exit(1)
	}

	fmt.Print(astdump.Dump(core))
}

func readInput(args []string) (path, src string, err error) {
	if len(args) < 2 {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return "", "", fmt.Errorf("usage: %s <file.fen> or pipe source on stdin", args[0])
		}
		data, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			return "", "", fmt.Errorf("reading stdin: %w", readErr)
		}
		return "<stdin>", string(data), nil
	}

	data, readErr := os.ReadFile(args[1])
	if readErr != nil {
		return "", "", fmt.Errorf("reading %s: %w", args[1], readErr)
	}
	return args[1], string(data), nil
}
