package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/miralang/mira/internal/config"
	"github.com/miralang/mira/internal/diagnostics"
	"github.com/miralang/mira/internal/modules"
	"github.com/miralang/mira/internal/pipeline"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "resolve":
		if err := runResolve(os.Args[2:]); err != nil {
			var internal *diagnostics.InternalError
			if errors.As(err, &internal) {
				fmt.Fprintf(os.Stderr, "%s\n", paint(colorRed, internal.Error()))
			} else {
				fmt.Fprintf(os.Stderr, "%s\n", paint(colorRed, "error: "+err.Error()))
			}
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: mira resolve [-m mira.yaml] [entry]")
	fmt.Fprintln(os.Stderr, "  resolve the import closure of the entry module and print it")
}

func runResolve(args []string) error {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	manifestPath := fs.String("m", config.ManifestFileName, "project manifest")
	if err := fs.Parse(args); err != nil {
		return err
	}

	manifest, err := modules.LoadManifest(*manifestPath)
	if err != nil {
		return err
	}
	registry, err := manifest.BuildRegistry()
	if err != nil {
		return err
	}

	entryName := manifest.Entry
	if fs.NArg() > 0 {
		entryName = fs.Arg(0)
	}
	entry, ok := registry.Lookup(entryName)
	if !ok {
		return fmt.Errorf("entry module %q is not declared in %s", entryName, *manifestPath)
	}

	ctx := pipeline.New(pipeline.ImportResolutionProcessor{}).Run(pipeline.NewContext(registry, entry))
	if ctx.Err != nil {
		return ctx.Err
	}

	fmt.Printf("%s: %d module(s) resolved from %s\n", manifest.Name, len(ctx.Resolved), entryName)
	for _, mod := range ctx.Resolved {
		fmt.Printf("  %s [%s]\n", paint(colorCyan, mod.Name), mod.Stage())
		for _, imp := range mod.ResolvedImports() {
			fmt.Printf("    <- %s\n", imp.Name)
		}
	}

	for _, diag := range ctx.Diags.All() {
		color := colorYellow
		if diag.Severity == diagnostics.SeverityError {
			color = colorRed
		}
		fmt.Fprintln(os.Stderr, paint(color, diag.String()))
	}
	return nil
}

// paint wraps s in an ANSI color when stdout is a terminal.
func paint(color, s string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return s
	}
	return color + s + colorReset
}
