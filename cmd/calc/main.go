package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	calculator "github.com/digitalwithgovinda/advanced-calculator"
	"github.com/digitalwithgovinda/advanced-calculator/config"
	"github.com/digitalwithgovinda/advanced-calculator/session"
)

// errFailed reports that at least one expression did not evaluate. Each
// failure has already been logged.
var errFailed = errors.New("one or more expressions failed")

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var (
		cfgPath       string
		angle         calculator.AngleMode
		verbose, echo bool
	)
	cmd := &cobra.Command{
		Use:   "calc [flags] [--] [expression...]",
		Short: "Evaluate arithmetic expressions",
		Long: `calc evaluates arithmetic expressions such as "2(3+4)", "sin(90)", or
"pow(2, 10)".

With arguments, each argument is evaluated. Otherwise calc reads stdin: an
interactive prompt if stdin is a terminal, or one expression per line if not.
Put -- before an expression that starts with a minus sign.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("angle") {
				cfg.Angle = angle
			}
			if flags.Changed("verbose") {
				cfg.Verbose = verbose
			}
			if flags.Changed("echo") {
				cfg.Echo = echo
			}
			a := newApp(cfg, out, errOut)
			switch {
			case len(args) > 0:
				return a.evalAll(args)
			case isTerminal(in):
				return a.repl(in.(*os.File))
			default:
				return a.evalLines(in)
			}
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&cfgPath, "config", "", "config file (default calc/config.yaml in the user config directory)")
	flags.Var(&angle, "angle", "angle mode for trigonometric functions, deg or rad")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log each evaluation")
	flags.BoolVar(&echo, "echo", false, "print the postfix form of each expression")
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// app evaluates expressions from the command line against one session.
type app struct {
	cfg  config.Config
	sess *session.Session
	log  *logrus.Logger
	out  io.Writer
}

func newApp(cfg config.Config, out, errOut io.Writer) *app {
	log := logrus.New()
	log.SetOutput(errOut)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return &app{
		cfg:  cfg,
		sess: session.New(cfg.Angle),
		log:  log,
		out:  out,
	}
}

// eval evaluates one non-empty expression, prints the display, and reports
// whether evaluation succeeded.
func (a *app) eval(src string) bool {
	fields := logrus.Fields{"expr": src, "angle": a.sess.Mode}
	e, err := calculator.Parse(strings.NewReader(src))
	if err != nil {
		a.sess.Fail(err)
		a.log.WithFields(fields).Warn(err)
		fmt.Fprintln(a.out, a.sess.Display())
		return false
	}
	fields["postfix"] = e.String()
	if a.cfg.Echo {
		fmt.Fprintf(a.out, "%v : ", e)
	}
	v, err := a.sess.Apply(src, e)
	if err != nil {
		a.log.WithFields(fields).Warn(err)
		fmt.Fprintln(a.out, a.sess.Display())
		return false
	}
	fields["result"] = v
	a.log.WithFields(fields).Debug("evaluated")
	fmt.Fprintln(a.out, a.sess.Display())
	return true
}

// evalAll evaluates each argument.
func (a *app) evalAll(srcs []string) error {
	ok := true
	for _, src := range srcs {
		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}
		ok = a.eval(src) && ok
	}
	if !ok {
		return errFailed
	}
	return nil
}

// evalLines evaluates each non-empty line of in.
func (a *app) evalLines(in io.Reader) error {
	ok := true
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		src := strings.TrimSpace(scanner.Text())
		if src == "" {
			continue
		}
		ok = a.eval(src) && ok
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if !ok {
		return errFailed
	}
	return nil
}
