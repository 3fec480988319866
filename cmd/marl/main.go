package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/mattn/go-isatty"

	"marl/interpreter-go/pkg/console"
	"marl/interpreter-go/pkg/driver"
	"marl/interpreter-go/pkg/interpreter"
	"marl/interpreter-go/pkg/markup"
	"marl/interpreter-go/pkg/runtime"
)

const cliToolVersion = "marl-cli 0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	opts, optind, err := getopt.Getopts(args, "e:pVh")
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		printUsage(stderr)
		return 1
	}
	var inline string
	plain := false
	for _, opt := range opts {
		switch opt.Option {
		case 'e':
			inline = opt.Value
		case 'p':
			plain = true
		case 'V':
			fmt.Fprintln(stdout, cliToolVersion)
			return 0
		case 'h':
			printUsage(stdout)
			return 0
		}
	}
	rest := args[optind:]

	doc, styleAttrs, err := loadDocument(inline, rest)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	style := console.StyleFromAttrs(styleAttrs)
	sink := console.NewTerminalSink(stdout, style, plain)
	var source console.Source = console.StaticSource{}
	if isatty.IsTerminal(os.Stdin.Fd()) {
		source = console.LinerSource{}
	}

	interp := interpreter.New(sink, source)
	root := runtime.NewEnvironment()
	faults := interp.Run(doc.Nodes(), root)
	for _, fault := range faults {
		fmt.Fprintf(stderr, "marl: %v\n", fault)
	}
	if len(faults) > 0 {
		return 1
	}
	return 0
}

// loadDocument resolves the program source: an inline -e string, an
// explicit file, or the manifest's entry document.
func loadDocument(inline string, rest []string) (*markup.Document, map[string]string, error) {
	if inline != "" {
		if len(rest) > 0 {
			return nil, nil, fmt.Errorf("-e cannot be combined with a file argument")
		}
		doc, err := markup.ParseString(inline)
		if err != nil {
			return nil, nil, err
		}
		return doc, rootAttrs(doc), nil
	}

	switch len(rest) {
	case 0:
		manifestPath, err := driver.FindManifest(".")
		if err != nil {
			if errors.Is(err, driver.ErrManifestNotFound) {
				return nil, nil, fmt.Errorf("marl requires a document argument (no %s found)", driver.ManifestFileName)
			}
			return nil, nil, err
		}
		manifest, err := driver.LoadManifest(manifestPath)
		if err != nil {
			return nil, nil, err
		}
		doc, err := parseFile(manifest.EntryPath())
		if err != nil {
			return nil, nil, err
		}
		return doc, manifest.ApplyStyle(rootAttrs(doc)), nil
	case 1:
		doc, err := parseFile(rest[0])
		if err != nil {
			return nil, nil, err
		}
		return doc, rootAttrs(doc), nil
	default:
		return nil, nil, fmt.Errorf("unexpected arguments: %s", strings.Join(rest[1:], " "))
	}
}

func parseFile(path string) (*markup.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return markup.ParseDocument(f)
}

func rootAttrs(doc *markup.Document) map[string]string {
	if doc.Root == nil {
		return nil
	}
	return doc.Root.Attrs
}

func printUsage(w *os.File) {
	fmt.Fprintln(w, "usage: marl [-p] [-e document | file]")
	fmt.Fprintln(w, "  -e doc   evaluate an inline document string")
	fmt.Fprintln(w, "  -p       plain output (no color)")
	fmt.Fprintln(w, "  -V       print version")
	fmt.Fprintln(w, "  -h       show this help")
	fmt.Fprintln(w, "With no file argument, the entry document from program.yml is run.")
}
