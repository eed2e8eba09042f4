// Package shell runs the converter from command line arguments or as an
// interactive read-eval loop.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"unitconverter"
)

const (
	ExitOK               = 0
	ExitInvalidNumber    = 1
	ExitConversionFailed = 2
)

type Config struct {
	Name   string // program name shown in help
	Prompt string
	Banner string
	// Significant digits of the single-shot result.
	Precision int
	Logger    *slog.Logger
	// Run after every successful interactive conversion.
	Hooks []unitconverter.HookFunc
}

func DefaultConfig() Config {
	return Config{
		Name:      "unitconv",
		Prompt:    "> ",
		Banner:    "Simple Unit Converter — type 'help' for units, 'exit' to quit",
		Precision: 6,
		Logger:    slog.Default(),
	}
}

type Shell struct {
	cfg Config
	in  io.Reader
	out io.Writer
	log *slog.Logger
}

func New(cfg Config, in io.Reader, out io.Writer) *Shell {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Shell{cfg: cfg, in: in, out: out, log: logger}
}

// Run is New(DefaultConfig(), in, out).Run(ctx, args).
func Run(ctx context.Context, args []string, in io.Reader, out io.Writer) int {
	return New(DefaultConfig(), in, out).Run(ctx, args)
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	}
	return false
}

// Run starts the interactive loop when args is empty and converts once
// otherwise. It returns the process exit status.
func (s *Shell) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		s.log.Debug("no arguments, entering interactive mode")
		return s.Interactive(ctx)
	}
	if isHelpArg(args[0]) || len(args) < 3 {
		s.printHelp()
		return ExitOK
	}
	return s.convertOnce(args)
}

func (s *Shell) convertOnce(args []string) int {
	req, err := unitconverter.ParseRequest(args)
	if err != nil {
		s.log.Debug("bad value token", "token", args[0], "err", err)
		fmt.Fprintln(s.out, "First argument must be a number. Use: <value> <from_unit> <to_unit>")
		return ExitInvalidNumber
	}
	res, err := req.Do()
	if err != nil {
		s.log.Debug("conversion failed", "id", req.ID, "from", req.From, "to", req.To, "err", err)
		fmt.Fprintln(s.out, "Error:", errorMessage(err))
		return ExitConversionFailed
	}
	s.log.Debug("converted", "id", req.ID, "category", res.Category)
	fmt.Fprintf(s.out, "%s %s = %s %s\n",
		FormatValue(req.Value), req.From,
		FormatSignificant(res.Value, s.cfg.Precision), req.To)
	return ExitOK
}

// errorMessage is the user-facing text for a dispatch failure.
func errorMessage(err error) string {
	if errors.Is(err, unitconverter.ErrIncompatibleUnits) {
		return "Units belong to different categories or are unsupported"
	}
	return err.Error()
}

func (s *Shell) printHelp() {
	PrintHelp(s.out, s.cfg.Name)
}

type inputLine struct {
	text string
	err  error
}

// readLines delivers lines from r of any length. A read error other than
// io.EOF is delivered as the last item; the channel is then closed. The
// reader stops early once done is closed.
func readLines(r io.Reader, done <-chan struct{}) <-chan inputLine {
	lines := make(chan inputLine)
	send := func(l inputLine) bool {
		select {
		case lines <- l:
			return true
		case <-done:
			return false
		}
	}
	go func() {
		defer close(lines)
		br := bufio.NewReader(r)
		for {
			text, err := br.ReadString('\n')
			if text != "" && !send(inputLine{text: text}) {
				return
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					send(inputLine{err: err})
				}
				return
			}
		}
	}()
	return lines
}

// Interactive reads one conversion per line until end of input, an
// exit/quit command, or ctx is cancelled. All of these end the loop with
// ExitOK. Conversions are recorded in a session carrying cfg.Hooks.
func (s *Shell) Interactive(ctx context.Context) int {
	session := unitconverter.NewSession()
	for _, h := range s.cfg.Hooks {
		session.AddHook(h)
	}
	log := s.log.With("session", session.ID)

	fmt.Fprintln(s.out, s.cfg.Banner)
	done := make(chan struct{})
	defer close(done)
	lines := readLines(s.in, done)
	for {
		fmt.Fprint(s.out, s.cfg.Prompt)
		var raw string
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			log.Debug("interrupted", "conversions", session.Len())
			return ExitOK
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(s.out)
				log.Debug("end of input", "conversions", session.Len())
				return ExitOK
			}
			if line.err != nil {
				fmt.Fprintln(s.out)
				log.Warn("reading input failed", "err", line.err, "conversions", session.Len())
				return ExitOK
			}
			raw = strings.TrimSpace(line.text)
		}
		if raw == "" {
			continue
		}
		switch strings.ToLower(raw) {
		case "exit", "quit":
			log.Debug("exit requested", "conversions", session.Len())
			return ExitOK
		case "help", "h", "?":
			s.printHelp()
			continue
		}
		s.evalLine(log, session, raw)
	}
}

func (s *Shell) evalLine(log *slog.Logger, session *unitconverter.Session, raw string) {
	parts := strings.Fields(raw)
	if len(parts) != 3 {
		fmt.Fprintln(s.out, "Enter: <value> <from_unit> <to_unit>  (e.g. '100 cm m') or 'help'")
		return
	}
	req, err := unitconverter.ParseRequest(parts)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid number")
		return
	}
	res, err := session.Convert(req)
	if errors.Is(err, unitconverter.ErrIncompatibleUnits) {
		fmt.Fprintln(s.out, "Error:", errorMessage(err))
		return
	}
	if err != nil {
		// the result was recorded; only a hook failed
		log.Warn("conversion hook failed", "id", req.ID, "err", err)
	}
	log.Debug("converted", "id", req.ID, "category", res.Category)
	fmt.Fprintf(s.out, "%s %s = %s %s\n", FormatValue(req.Value), req.From, FormatValue(res.Value), req.To)
}
