// Package shell implements the interactive command loop around a
// conversion session.
//
// Commands:
//
//	chars            list the active characters
//	add <range>      add characters (x, x-y, space, all)
//	remove <range>   remove characters
//	res up|down      double or halve the characters per row
//	console          send the next render to the console
//	render           render the image
//	exit             leave the shell
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/wbrown/img2ascii"
)

const (
	prompt       = ">>> "
	invalidInput = "Invalid input"
	widthSet     = "Width set to %d\n"
	maxResMsg    = "You're using the maximal resolution"
	minResMsg    = "You're using the minimal resolution"
)

// Shell reads commands line by line and applies them to a session.
type Shell struct {
	session *img2ascii.Session
	in      io.Reader
	out     io.Writer
	log     logrus.FieldLogger

	// Prompt enables the ">>> " prompt before each command.
	Prompt bool

	// Default receives renders unless "console" was issued since the
	// previous render.
	Default img2ascii.Output

	output img2ascii.Output
}

// New creates a shell reading from in and writing to out. Renders go to
// defaultOut unless redirected to the console.
func New(session *img2ascii.Session, in io.Reader, out io.Writer, defaultOut img2ascii.Output, log logrus.FieldLogger) *Shell {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Shell{
		session: session,
		in:      in,
		out:     out,
		log:     log,
		Default: defaultOut,
		output:  defaultOut,
	}
}

// Run processes commands until "exit", end of input or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.Prompt {
			fmt.Fprint(s.out, prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		if !s.Execute(ctx, scanner.Text()) {
			return nil
		}
	}
}

// Execute runs one command line. It returns false when the shell should
// stop.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	args := strings.Fields(line)
	if len(args) == 0 {
		fmt.Fprintln(s.out, invalidInput)
		return true
	}

	cmd, params := args[0], args[1:]
	switch {
	case cmd == "exit" && len(params) == 0:
		return false
	case cmd == "chars" && len(params) == 0:
		s.showChars()
	case cmd == "add" && len(params) == 1:
		s.changeChars(params[0], s.session.CharacterSet().AddRange)
	case cmd == "remove" && len(params) == 1:
		s.changeChars(params[0], s.session.CharacterSet().RemoveRange)
	case cmd == "res" && len(params) == 1:
		s.changeResolution(params[0])
	case cmd == "console" && len(params) == 0:
		s.output = img2ascii.ConsoleOutput{W: s.out}
	case cmd == "render" && len(params) == 0:
		s.render(ctx)
		s.output = s.Default
	default:
		fmt.Fprintln(s.out, invalidInput)
	}
	return true
}

func (s *Shell) showChars() {
	runes := s.session.CharacterSet().Runes()
	var sb strings.Builder
	for _, r := range runes {
		sb.WriteRune(r)
		sb.WriteByte(' ')
	}
	fmt.Fprintln(s.out, sb.String())
}

func (s *Shell) changeChars(expr string, apply func(string) error) {
	if err := apply(expr); err != nil {
		s.log.WithError(err).Debug("rejected character range")
		fmt.Fprintln(s.out, invalidInput)
	}
}

func (s *Shell) changeResolution(direction string) {
	switch direction {
	case "up":
		if n, ok := s.session.IncreaseResolution(); ok {
			fmt.Fprintf(s.out, widthSet, n)
		} else {
			fmt.Fprintln(s.out, maxResMsg)
		}
	case "down":
		if n, ok := s.session.DecreaseResolution(); ok {
			fmt.Fprintf(s.out, widthSet, n)
		} else {
			fmt.Fprintln(s.out, minResMsg)
		}
	default:
		fmt.Fprintln(s.out, invalidInput)
	}
}

func (s *Shell) render(ctx context.Context) {
	if s.session.CharacterSet().Len() == 0 {
		s.log.Warn("character set is empty, nothing to render")
		return
	}
	result, err := s.session.Render(ctx)
	if err != nil {
		if errors.Is(err, img2ascii.ErrEmptyCharacterSet) {
			s.log.WithError(err).Warn("nothing to render")
			return
		}
		s.log.WithError(err).Error("render failed")
		fmt.Fprintf(s.out, "Render failed: %v\n", err)
		return
	}
	if s.output == nil {
		s.log.Warn("no output configured")
		return
	}
	if err := s.output.Write(result.Grid); err != nil {
		s.log.WithError(err).Error("failed to write output")
		fmt.Fprintf(s.out, "Output failed: %v\n", err)
	}
}
