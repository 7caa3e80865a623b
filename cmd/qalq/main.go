// Command qalq is an interactive calculator for exact rational arithmetic.
package main

import (
	"bufio"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"

	"github.com/zephyrtronium/qalqulator"
)

type cli struct {
	Config    string   `help:"Configuration file. Defaults to qalqulator/config.yaml in the user config directory." placeholder:"FILE"`
	History   string   `help:"History file. Defaults to qalqulator/history.txt in the user data directory." placeholder:"FILE"`
	NoHistory bool     `help:"Don't read or write the history file."`
	In        string   `short:"i" help:"Evaluate each line of a file instead of reading interactively. Use - for stdin." placeholder:"FILE"`
	Echo      bool     `help:"Print parse trees before results."`
	Debug     bool     `help:"Log debugging information to stderr."`
	Given     []string `help:"Binding to evaluate before any input, e.g. --given 'x = 1/3'. May be repeated." placeholder:"NAME=EXPR" sep:"none"`
	Exprs     []string `arg:"" optional:"" help:"Lines to evaluate instead of reading interactively."`
}

func main() {
	log.SetFlags(0)
	var c cli
	kong.Parse(&c,
		kong.Name("qalq"),
		kong.Description("Evaluate arithmetic on exact rational numbers.\n\nWith no arguments, qalq reads lines interactively. Enter exit or EOF to quit."),
		kong.UsageOnError(),
	)
	if c.Debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfgpath, required := c.Config, true
	if cfgpath == "" {
		cfgpath, required = configPath(), false
	}
	cfg, err := loadConfig(cfgpath, required)
	if err != nil {
		log.Fatal(err)
	}

	env := qalqulator.NewEnv()
	for _, g := range append(cfg.Given, c.Given...) {
		if err := given(env, g); err != nil {
			log.Fatalf("setting %q: %v", g, err)
		}
	}

	if c.In != "" || len(c.Exprs) > 0 {
		ok := true
		for _, line := range c.Exprs {
			ok = evalLine(os.Stdout, os.Stderr, env, line, c.Echo) && ok
		}
		if c.In != "" {
			in, err := infile(c.In)
			if err != nil {
				log.Fatal(err)
			}
			b, err := batch(os.Stdout, os.Stderr, env, in, c.Echo)
			in.Close()
			if err != nil {
				log.Fatal(err)
			}
			ok = ok && b
		}
		if !ok {
			os.Exit(1)
		}
		return
	}

	hist := ""
	if !c.NoHistory {
		hist = historyPath(c.History, cfg.History)
	}
	if err := runShell(env, cfg.Prompt, hist, c.Echo); err != nil {
		log.Fatal(err)
	}
}

// given evaluates a binding into env. Lines that are not bindings are errors.
func given(env *qalqulator.Env, line string) error {
	e, err := qalqulator.Parse(line)
	if err != nil {
		return err
	}
	name, ok := e.Binding()
	if !ok {
		return errors.New("not a binding of the form name = value")
	}
	v, err := env.Eval(e)
	if err != nil {
		return err
	}
	slog.Debug("given", "name", name, "value", v)
	return nil
}

// batch evaluates each non-blank line of in. The result reports whether every
// line succeeded; the error is only for failure to read.
func batch(out, errs io.Writer, env *qalqulator.Env, in io.Reader, echo bool) (bool, error) {
	ok := true
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		if blank(line) {
			continue
		}
		ok = evalLine(out, errs, env, line, echo) && ok
	}
	return ok, errors.Wrap(sc.Err(), "reading input")
}

func infile(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	return f, nil
}
