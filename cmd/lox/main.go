// Command lox is the Lox interpreter's entrypoint, matching spec.md §6's
// closed CLI surface exactly:
//
//	lox              start an interactive REPL on stdin/stdout
//	lox <path>       read the file, run it once, and exit
//	lox ... (more)   print a usage message and exit with status 64
//
// Grounded on the teacher corpus's main/main.go, trimmed to this surface:
// the teacher's `server <port>` TCP mode and `--help`/`--version` flags
// are dropped (see DESIGN.md) since spec.md defines no argument besides
// an optional script path.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/golox/internal/repl"
	"github.com/akashmaji946/golox/internal/runner"
)

var redColor = color.New(color.FgRed)

func main() {
	switch len(os.Args) {
	case 1:
		if err := repl.New().Start(os.Stdout); err != nil {
			redColor.Fprintf(os.Stderr, "repl error: %v\n", err)
			os.Exit(1)
		}
	case 2:
		runFile(os.Args[1])
	default:
		fmt.Fprintln(os.Stderr, "Usage: lox [script]")
		os.Exit(64)
	}
}

// runFile reads path, runs its contents once, and exits non-zero on
// either a file-system error or a pipeline error (scan/parse/resolve/
// interpret), printing the latter in spec.md §7's user-visible format.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file %q: %v\n", path, err)
		os.Exit(1)
	}

	if err := runner.Run(string(source), os.Stdout); err != nil {
		redColor.Fprintln(os.Stderr, err.Error())
		os.Exit(70)
	}
}
