package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reedlang/reed-cc/pkg/cabs"
	"github.com/reedlang/reed-cc/pkg/lexer"
	"github.com/reedlang/reed-cc/pkg/parser"
	"github.com/reedlang/reed-cc/pkg/sanitize"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// Debug flags for dumping front-end output
var (
	dTokens bool
	dParse  bool
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	// Accept compiler-style single-dash flags like -dparse
	rootCmd.SetArgs(normalizeFlags(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// debugFlagNames lists flags that should accept single-dash style
var debugFlagNames = []string{"dtokens", "dparse"}

// normalizeFlags converts single-dash debug flags like -dparse to
// --dparse for pflag compatibility
func normalizeFlags(args []string) []string {
	result := make([]string, len(args))
	for i, arg := range args {
		for _, flagName := range debugFlagNames {
			if arg == "-"+flagName {
				result[i] = "--" + flagName
				break
			}
		}
		if result[i] == "" {
			result[i] = arg
		}
	}
	return result
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "reed-cc [files]",
		Short: "reed-cc parses C source files into an abstract syntax tree",
		Long: `reed-cc is a C front end. It tokenizes and parses C translation
units, reports syntax errors with source positions, and can re-emit
the parsed tree as C for inspection.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.Help()
				return nil
			}
			failed := 0
			for _, filename := range args {
				if err := processFile(filename, out, errOut); err != nil {
					fmt.Fprintf(errOut, "reed-cc: %s: %v\n", filename, err)
					failed++
				} else {
					fmt.Fprintf(out, "reed-cc: %s: ok\n", filename)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().BoolVar(&dTokens, "dtokens", false, "Dump the token stream")
	rootCmd.PersistentFlags().BoolVar(&dParse, "dparse", false, "Dump the parsed tree as C")

	rootCmd.AddCommand(newWatchCmd(out, errOut))

	return rootCmd
}

// processFile sanitizes, lexes and parses one file, honoring the
// active debug flags
func processFile(filename string, out, errOut io.Writer) error {
	program, tokens, err := parseFile(filename)
	if err != nil {
		return err
	}

	if dTokens {
		for _, tok := range tokens {
			fmt.Fprintf(out, "%d:%d\t%s\t%q\n", tok.Line, tok.Column, tok.Type, tok.Literal)
		}
	}
	if dParse {
		if err := writeParsed(filename, program, out, errOut); err != nil {
			return err
		}
	}
	return nil
}

// parseFile reads, sanitizes and parses a C file. Captured #include
// and #define directives come back as leading definitions so the
// re-emitted output keeps them.
func parseFile(filename string) (*cabs.Program, []lexer.Token, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, err
	}

	cleaned := sanitize.Sanitize(string(content), nil)
	tokens := lexer.New(cleaned.Source).Tokenize()

	program, err := parser.New(tokens).ParseProgram()
	if err != nil {
		return nil, tokens, err
	}

	var defs []cabs.Definition
	for _, path := range cleaned.Includes {
		defs = append(defs, cabs.Include{Path: path})
	}
	for _, d := range cleaned.Defines {
		defs = append(defs, cabs.Define{Name: d.Name, Value: d.Value})
	}
	program.Definitions = append(defs, program.Definitions...)

	return program, tokens, nil
}

// writeParsed writes the re-emitted tree to input.parsed.c and echoes
// it to stdout
func writeParsed(filename string, program *cabs.Program, out, errOut io.Writer) error {
	outputFilename := parsedOutputFilename(filename)

	outFile, err := os.Create(outputFilename)
	if err != nil {
		fmt.Fprintf(errOut, "reed-cc: error creating %s: %v\n", outputFilename, err)
		return err
	}
	defer outFile.Close()

	cabs.NewPrinter(outFile).PrintProgram(program)
	cabs.NewPrinter(out).PrintProgram(program)
	return nil
}

// parsedOutputFilename returns the output filename for -dparse:
// input.c -> input.parsed.c
func parsedOutputFilename(filename string) string {
	ext := ".c"
	if strings.HasSuffix(filename, ext) {
		return filename[:len(filename)-len(ext)] + ".parsed.c"
	}
	return filename + ".parsed.c"
}
