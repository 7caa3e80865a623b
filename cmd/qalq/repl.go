package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"

	"github.com/zephyrtronium/qalqulator"
)

// prompter reads lines interactively. *liner.State implements it.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// historian loads and saves line history. *liner.State implements it.
type historian interface {
	ReadHistory(r io.Reader) (int, error)
	WriteHistory(w io.Writer) (int, error)
}

// runShell reads and evaluates lines from the terminal until exit or end of
// input. hist is the history file, or empty to keep no history.
func runShell(env *qalqulator.Env, prompt, hist string, echo bool) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	if hist != "" {
		readHistory(ln, hist)
		// Lines are appended as they are entered; rewriting at exit trims
		// the file to what liner keeps.
		defer writeHistory(ln, hist)
	}
	return shell(ln, os.Stdout, os.Stderr, env, prompt, hist, echo)
}

// shell is the read-eval-print loop. Interrupting a line discards it. Each
// evaluated line is added to p's history and appended to the file hist
// immediately, if hist is not empty.
func shell(p prompter, out, errs io.Writer, env *qalqulator.Env, prompt, hist string, echo bool) error {
	for {
		line, err := p.Prompt(prompt)
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(out)
			return nil
		case err != nil:
			return errors.Wrap(err, "reading input")
		}
		if blank(line) {
			continue
		}
		p.AppendHistory(line)
		if hist != "" {
			if err := appendHistory(hist, line); err != nil {
				log.Printf("couldn't save history: %v", err)
			}
		}
		if strings.TrimSpace(line) == "exit" {
			return nil
		}
		evalLine(out, errs, env, line, echo)
	}
}

func readHistory(h historian, hist string) {
	f, err := os.Open(hist)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("couldn't read history: %v", err)
		}
		return
	}
	defer f.Close()
	n, err := h.ReadHistory(f)
	if err != nil {
		log.Printf("couldn't read history: %v", err)
	}
	slog.Debug("read history", "file", hist, "lines", n)
}

// appendHistory adds one line to the end of the history file, creating it
// and its directory as needed.
func appendHistory(hist, line string) error {
	if err := os.MkdirAll(filepath.Dir(hist), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(hist, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	_, err = io.WriteString(f, line+"\n")
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func writeHistory(h historian, hist string) {
	if err := os.MkdirAll(filepath.Dir(hist), 0o755); err != nil {
		log.Printf("couldn't save history: %v", err)
		return
	}
	f, err := os.Create(hist)
	if err != nil {
		log.Printf("couldn't save history: %v", err)
		return
	}
	n, err := h.WriteHistory(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Printf("couldn't save history: %v", err)
		return
	}
	slog.Debug("wrote history", "file", hist, "lines", n)
}
