// Command nimue runs one script: it parses the whole file (or, with no
// argument, standard input) into a Script and invokes its `main`
// command handler, with the illustrative builtin library wired in.
package main

import (
	"io"
	"os"

	"github.com/uliwitness/nimue/builtin"
	"github.com/uliwitness/nimue/lexer"
	"github.com/uliwitness/nimue/log"
	"github.com/uliwitness/nimue/object"
	"github.com/uliwitness/nimue/parser"
	"github.com/uliwitness/nimue/vm"
)

func main() {
	switch len(os.Args) {
	case 1:
		run(os.Stdin, "<stdin>")
	case 2:
		runFile(os.Args[1])
	default:
		log.Err("usage: %s [file]", os.Args[0])
		os.Exit(1)
	}
}

func runFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Err("%s", err)
		os.Exit(1)
	}
	defer f.Close()
	run(f, path)
}

func run(r io.Reader, name string) {
	source, err := io.ReadAll(r)
	if err != nil {
		log.Err("%s", err)
		os.Exit(1)
	}

	z := lexer.New()
	z.AddTokens(string(source), name)

	scr, err := parser.New(z.Tokens()).Parse()
	if err != nil {
		log.Err("%s", err)
		os.Exit(1)
	}

	ctx := vm.NewRunContext(scr)
	builtin.Register(ctx, os.Stdout, object.NewRegistry())

	if _, err := ctx.Run("main", true, nil); err != nil {
		log.Err("%s", err)
		os.Exit(1)
	}
}
