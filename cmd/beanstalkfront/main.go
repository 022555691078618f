// Command beanstalkfront drives the Beanstalk front end: lex, parse,
// and report. It never resolves names, checks types, or generates code
// (spec.md §1 Non-goals) — its only job is turning source text into
// diagnostics and, on request, a printed AST.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/beanstalk-lang/beanstalk/internal/diagnostics"
	"github.com/beanstalk-lang/beanstalk/internal/lexer"
	"github.com/beanstalk-lang/beanstalk/internal/parser"
	"github.com/beanstalk-lang/beanstalk/internal/pipeline"
	"github.com/beanstalk-lang/beanstalk/internal/prettyprinter"
	"github.com/beanstalk-lang/beanstalk/internal/source"
)

func main() {
	printAST := flag.Bool("ast", false, "print the parsed AST as an indented debug tree")
	printSrc := flag.Bool("print", false, "print the AST rendered back to source text")
	flag.Parse()

	args := flag.Args()
	sourceCode, path, err := readInput(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}

	buf := source.New(path, []byte(sourceCode))

	ctx := pipeline.NewPipelineContext(buf)
	pl := pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{})
	ctx = pl.Run(ctx)

	hasErrors := reportDiagnostics(os.Stderr, ctx.Diagnostics)

	if ctx.AstRoot == nil {
		os.Exit(1)
	}

	if *printAST {
		tp := prettyprinter.NewTreePrinter()
		ctx.AstRoot.Accept(tp)
		fmt.Println(tp.String())
	}

	if *printSrc {
		cp := prettyprinter.NewCodePrinter()
		ctx.AstRoot.Accept(cp)
		fmt.Println(cp.String())
	}

	if hasErrors {
		os.Exit(1)
	}
}

// reportDiagnostics writes every diagnostic in stable (line, column)
// order to w, colored by severity, and reports whether any were errors.
func reportDiagnostics(w io.Writer, bag *diagnostics.Bag) bool {
	hasErrors := false
	for _, d := range bag.Sorted() {
		if d.Severity == diagnostics.Error {
			hasErrors = true
		}
		fmt.Fprintln(w, colorForSeverity(d.Severity)(d.Severity.String())+": "+d.Render())
	}
	return hasErrors
}

func colorForSeverity(s diagnostics.Severity) func(format string, a ...interface{}) string {
	switch s {
	case diagnostics.Error:
		return color.RedString
	case diagnostics.Warning:
		return color.YellowString
	default:
		return color.CyanString
	}
}

func readInput(args []string) (sourceCode, path string, err error) {
	if len(args) == 0 {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return "", "", fmt.Errorf("usage: beanstalkfront [-ast] [-print] <file.bs>")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), "<stdin>", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", err
	}
	return string(data), args[0], nil
}
