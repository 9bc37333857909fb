// Command schemac reads a YAML schema document and emits a C++
// header/implementation pair containing a standalone validator for it
// (spec.md §2.7, §6).
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/mb0/schemac/compile"
	"github.com/mb0/schemac/diag"
)

func main() {
	notes := &diag.List{}
	schemaPath, hdrPath, srcPath, className := parseArgs(os.Args[1:], notes)

	if notes.OK() {
		d := &compile.Driver{SchemaPath: schemaPath, HdrPath: hdrPath, SrcPath: srcPath, ClassName: className}
		notes.Absorb(d.Run())
	}

	printDiagnostics(os.Stdout, notes)
	if !notes.OK() {
		os.Exit(1)
	}
}

// parseArgs implements spec.md §6's CLI surface by hand: --hdr, --src and
// --class each require a value, an unknown option is a WARN (not an
// abort), and a missing value for a recognised option is an ERROR. The
// standard library's flag package aborts on an unknown flag, which this
// surface explicitly must not do, so arguments are scanned directly.
func parseArgs(args []string, notes *diag.List) (schemaPath, hdrPath, srcPath, className string) {
	className = "Schema"
	var positional []string

	for i := 0; i < len(args); i++ {
		a := args[i]
		switch a {
		case "--hdr", "--src", "--class":
			if i+1 >= len(args) {
				notes.Error("'%s' requires a value.", a)
				continue
			}
			i++
			switch a {
			case "--hdr":
				hdrPath = args[i]
			case "--src":
				srcPath = args[i]
			case "--class":
				className = args[i]
			}
		default:
			if strings.HasPrefix(a, "-") {
				notes.Warn("Unknown option '%s' - ignored.", a)
			} else {
				positional = append(positional, a)
			}
		}
	}

	if len(positional) == 0 {
		notes.Error("An input schema file is required.")
	} else {
		schemaPath = positional[0]
	}

	if hdrPath == "" {
		switch {
		case srcPath != "":
			hdrPath = replaceExt(srcPath, ".h")
		case className != "":
			hdrPath = className + ".h"
		default:
			notes.Error("Unable to determine path for output header file.")
		}
	}
	if srcPath == "" {
		switch {
		case hdrPath != "":
			srcPath = replaceExt(hdrPath, ".cc")
		case className != "":
			srcPath = className + ".cc"
		default:
			notes.Error("Unable to determine path for output source file.")
		}
	}
	return schemaPath, hdrPath, srcPath, className
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// printDiagnostics writes one line per note, colored by severity:
// red ERROR, yellow WARN, cyan INFO (spec.md §6: "all diagnostics are
// written to standard output, one per line").
func printDiagnostics(w *os.File, notes *diag.List) {
	for _, n := range notes.Notes() {
		switch n.Severity {
		case diag.Error:
			fmt.Fprintln(w, color.RedString("%s", n))
		case diag.Warn:
			fmt.Fprintln(w, color.YellowString("%s", n))
		case diag.Info:
			fmt.Fprintln(w, color.CyanString("%s", n))
		default:
			fmt.Fprintln(w, n)
		}
	}
}
