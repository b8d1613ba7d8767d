package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/etnz/marina"
	"github.com/etnz/marina/logger"
	"github.com/etnz/marina/renderer"
	"github.com/fatih/color"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "manage the marina interactively" }
func (*shellCmd) Usage() string {
	return `mcs shell [file]

  Starts the interactive menu:

  (I)nventory, (A)dd, (R)emove, (P)ayment, (M)onth, e(X)it

  The inventory file is saved on exit. The file can be given as argument,
  instead of -f.
`
}

func (*shellCmd) SetFlags(f *flag.FlagSet) {}

func (*shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		*inventoryFile = f.Arg(0)
	}
	s, err := openSession()
	if err != nil {
		return failure(err)
	}
	sh := &Shell{
		In:   os.Stdin,
		Out:  os.Stdout,
		Inv:  s.inv,
		Save: s.save,
		Log:  logger.Named(Logger(), "shell"),
	}
	if err := sh.Run(ctx); err != nil {
		return failure(err)
	}
	return subcommands.ExitSuccess
}

const (
	menu       = "\n(I)nventory, (A)dd, (R)emove, (P)ayment, (M)onth, e(X)it : "
	askLine    = "Please enter the boat data in CSV format                 : "
	askName    = "Please enter the boat name                               : "
	askAmount  = "Please enter the amount to be paid                       : "
	msgNoBoat  = "No boat with that name"
	msgFull    = "Marina is full."
	msgInvalid = "Invalid input format."
)

// Shell is the interactive menu over an inventory.
type Shell struct {
	In   io.Reader
	Out  io.Writer
	Inv  *marina.Inventory
	Save func() error // called on exit
	Log  *zap.Logger

	r *bufio.Reader
}

var alert = color.New(color.FgRed)

// Run reads commands until exit, or the end of input.
//
// On exit the inventory is saved. If the save fails the user is warned and
// the menu is shown again, the inventory is still in memory. The end of input
// stops without saving.
func (s *Shell) Run(ctx context.Context) error {
	s.r = bufio.NewReader(s.In)
	if s.Log == nil {
		s.Log = zap.NewNop()
	}

	fmt.Fprintln(s.Out, "Welcome to the Boat Management System")
	fmt.Fprintln(s.Out, "-------------------------------------")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.Out, menu)
		input, ok, err := s.readLine()
		if err != nil {
			return err
		}
		if !ok {
			s.Log.Debug("end of input, leaving without saving")
			return nil
		}
		if input == "" {
			continue
		}

		c, _ := utf8.DecodeRuneInString(input)
		switch unicode.ToLower(c) {
		case 'i':
			if err := renderer.Legacy(s.Out, s.Inv); err != nil {
				return err
			}
		case 'a':
			if err := s.add(); err != nil {
				return err
			}
		case 'r':
			if err := s.remove(); err != nil {
				return err
			}
		case 'p':
			if err := s.payment(); err != nil {
				return err
			}
		case 'm':
			s.Inv.AdvanceMonth()
		case 'x':
			fmt.Fprintln(s.Out, "Exiting the Boat Management System")
			if s.Save == nil {
				return nil
			}
			err := s.Save()
			if err == nil {
				return nil
			}
			s.Log.Error("save failed", zap.Error(err))
			alert.Fprintf(s.Out, "Could not save the inventory: %v\n", err)
			alert.Fprintln(s.Out, "Nothing is lost yet, fix the problem and exit again.")
		default:
			fmt.Fprintf(s.Out, "Invalid option %c\n", c)
		}
	}
}

// readLine reads a line without its terminator. ok is false at the end of input.
func (s *Shell) readLine() (line string, ok bool, err error) {
	line, err = s.r.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", false, nil
		}
		err = nil
	}
	if err != nil {
		return "", false, err
	}
	return strings.TrimRight(line, "\r\n"), true, nil
}

// ask prints a prompt and reads the answer.
func (s *Shell) ask(prompt string) (string, bool, error) {
	fmt.Fprint(s.Out, prompt)
	return s.readLine()
}

func (s *Shell) add() error {
	line, ok, err := s.ask(askLine)
	if err != nil || !ok {
		return err
	}
	b, err := marina.ParseLine(line)
	if err != nil {
		s.Log.Debug("add rejected", zap.Error(err))
		warn.Fprintln(s.Out, msgInvalid)
		return nil
	}
	if err := s.Inv.Insert(b); err != nil {
		warn.Fprintln(s.Out, msgFull)
	}
	return nil
}

func (s *Shell) remove() error {
	name, ok, err := s.ask(askName)
	if err != nil || !ok {
		return err
	}
	if err := s.Inv.Remove(name); err != nil {
		warn.Fprintln(s.Out, msgNoBoat)
	}
	return nil
}

func (s *Shell) payment() error {
	name, ok, err := s.ask(askName)
	if err != nil || !ok {
		return err
	}
	b, err := s.Inv.Boat(name)
	if err != nil {
		warn.Fprintln(s.Out, msgNoBoat)
		return nil
	}
	input, ok, err := s.ask(askAmount)
	if err != nil || !ok {
		return err
	}
	amount := marina.ParseMoney(input, s.Inv.Currency())
	if err := s.Inv.AcceptPayment(b.Name, amount); errors.Is(err, marina.ErrOverPayment) {
		warn.Fprintf(s.Out, "That is more than the amount owed, %s%s\n", b.Owed.Symbol(), b.Owed.Fixed())
	} else if err != nil {
		return err
	}
	return nil
}
