package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	calculator "github.com/digitalwithgovinda/advanced-calculator"
	"github.com/digitalwithgovinda/advanced-calculator/session"
)

const replHelp = `Enter an expression to evaluate it. Commands:
  :deg :rad :angle        set or toggle the angle mode
  :ms :mr :mc :m+ :m-     store, recall, clear, add to, subtract from memory
  :history                list previous results, most recent first
  :recall N               show history entry N
  :clear-history          forget all history
  :clear                  reset the result to 0
  :help                   show this message
  :quit                   exit
`

// repl runs an interactive prompt on the terminal f until EOF or :quit.
func (a *app) repl(f *os.File) error {
	fd := int(f.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, old)

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{f, a.out}, a.cfg.Prompt)
	// The terminal translates newlines for raw mode.
	a.out = t
	a.log.SetOutput(t)
	fmt.Fprintf(t, "angle mode %v, :help for commands\n", a.sess.Mode)
	for {
		line, err := t.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if a.line(line) {
			return nil
		}
	}
}

// line handles one line of interactive input. It reports whether the user
// asked to quit.
func (a *app) line(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if !strings.HasPrefix(line, ":") {
		a.eval(line)
		return false
	}
	cmd, arg, _ := strings.Cut(line[1:], " ")
	arg = strings.TrimSpace(arg)
	s := a.sess
	switch cmd {
	case "quit", "q", "exit":
		return true
	case "help", "h", "?":
		fmt.Fprint(a.out, replHelp)
	case "deg":
		s.Mode = calculator.Degrees
		fmt.Fprintln(a.out, s.Mode)
	case "rad":
		s.Mode = calculator.Radians
		fmt.Fprintln(a.out, s.Mode)
	case "angle":
		fmt.Fprintln(a.out, s.ToggleAngle())
	case "ms":
		s.MemoryStore()
		a.memory()
	case "mr":
		fmt.Fprintln(a.out, s.MemoryRecall())
	case "mc":
		s.Memory.Clear()
		a.memory()
	case "m+":
		s.MemoryAdd()
		a.memory()
	case "m-":
		s.MemorySub()
		a.memory()
	case "history":
		for i, e := range s.History.Entries() {
			fmt.Fprintf(a.out, "%d: %s = %s\n", i+1, e.Expression, session.Format(e.Value))
		}
	case "recall":
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintln(a.out, "usage: :recall N")
			break
		}
		e, ok := s.Recall(n - 1)
		if !ok {
			fmt.Fprintf(a.out, "no history entry %d\n", n)
			break
		}
		fmt.Fprintf(a.out, "%s = %s\n", e.Expression, s.Display())
	case "clear-history":
		s.History.Clear()
	case "clear":
		s.Clear()
		fmt.Fprintln(a.out, s.Display())
	default:
		fmt.Fprintf(a.out, "unknown command %q, :help for commands\n", cmd)
	}
	return false
}

func (a *app) memory() {
	fmt.Fprintf(a.out, "M = %s\n", a.sess.MemoryRecall())
}
