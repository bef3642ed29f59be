// Command basicscript is the CLI front-end for the interpreter: run, lex,
// parse, and eval subcommands over a script file or inline source text.
package main

import (
	"os"

	"github.com/dws-sandbox/basicscript/cmd/basicscript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
