package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/repr"

	"github.com/zephyrtronium/qalqulator"
)

// evalLine evaluates one line with env, printing the result to out or the
// error to errs. With echo, the syntax and expression trees are printed
// first. The result reports whether the line succeeded.
func evalLine(out, errs io.Writer, env *qalqulator.Env, line string, echo bool) bool {
	l, err := qalqulator.ParseLine(line)
	if err != nil {
		fmt.Fprintln(errs, err)
		return false
	}
	e, err := qalqulator.Build(l)
	if err != nil {
		fmt.Fprintln(errs, err)
		return false
	}
	slog.Debug("parsed", "line", line, "expr", e, "vars", e.Vars())
	if echo {
		repr.New(out, repr.OmitEmpty(true), repr.Indent("  ")).Println(l)
		fmt.Fprintf(out, "%v : ", e)
	}
	r, err := env.Eval(e)
	if err != nil {
		if echo {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(errs, err)
		return false
	}
	slog.Debug("evaluated", "expr", e, "kind", r.Kind(), "result", r)
	fmt.Fprintln(out, r)
	return true
}

// blank reports whether a line has nothing to evaluate.
func blank(line string) bool {
	return strings.TrimSpace(line) == ""
}
