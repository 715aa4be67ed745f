// Command ptsrun parses a file of declarations and a query term,
// normalizes the query under them, and prints the result — the same
// flag-driven single-shot evaluator shape as the teacher's
// cli/lambdarun, generalized from a bare lambda-calculus reducer to
// this package's three-reducer combined normalizer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/tallentype/pts/internal/ptserr"
	"github.com/tallentype/pts/internal/reduce"
	"github.com/tallentype/pts/internal/stdlib"
	"github.com/tallentype/pts/internal/surface"
	"github.com/tallentype/pts/internal/trace"
)

func main() {
	fuel := flag.Int("fuel", 0, "Maximum combined reduction steps (0 = unbounded)")
	withPrelude := flag.Bool("prelude", true, "Register the Church-numeral/boolean prelude alongside the file's own declarations")
	showTrace := flag.Bool("trace", false, "Print each reduction step instead of only the normal form")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Parses declarations and a trailing query term, then normalizes the query.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	path := flag.Arg(0)

	source, err := os.ReadFile(path)
	if err != nil {
		color.Red("cannot read %s: %v", path, err)
		os.Exit(1)
	}

	file, err := surface.Parse(path, string(source))
	if err != nil {
		os.Exit(1) // Parse already printed the caret diagnostic.
	}

	env, query, err := surface.Resolve(file)
	if err != nil {
		color.Red("resolve error: %v", err)
		os.Exit(1)
	}
	if query == nil {
		color.Red("%s has no query term (add \"query <term>;\")", path)
		os.Exit(1)
	}
	if *withPrelude {
		env.Parent = stdlib.Prelude()
	}

	var opts []reduce.Option
	if *fuel > 0 {
		opts = append(opts, reduce.WithFuel(*fuel))
	}

	if *showTrace {
		tr := trace.Run(env, nil, query, opts...)
		fmt.Print(tr.Render())
		if tr.Err != nil {
			os.Exit(1)
		}
		return
	}

	result, err := reduce.Normalize(env, nil, query, opts...)
	if err != nil {
		if ptserr.Is(err, ptserr.FuelExhausted) {
			color.Yellow("warning: %v", err)
			fmt.Printf("%s\n", result)
			return
		}
		color.Red("reduction error: %v", err)
		os.Exit(1)
	}

	if n, ok := stdlib.ChurchNumeralValue(result); ok {
		fmt.Printf("%d\n", n)
		return
	}
	fmt.Printf("%s\n", result)
}
