// Package console is the line-oriented front end used when stdin is not a
// terminal or the plain UI mode is selected.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/rockpaper/internal/display"
	"github.com/lox/rockpaper/internal/game"
)

// Console reads choices line by line and writes rounds as plain text.
type Console struct {
	session *game.Session
	in      *bufio.Scanner
	out     io.Writer
	logger  *log.Logger
}

// New creates a console for session.
func New(session *game.Session, in io.Reader, out io.Writer, logger *log.Logger) *Console {
	return &Console{
		session: session,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger.WithPrefix("console"),
	}
}

// Run plays rounds until the player exits or input ends.
func (c *Console) Run() error {
	c.println(display.Title())

	for {
		round, err := c.session.StartRound()
		if err != nil {
			return fmt.Errorf("start round: %w", err)
		}

		c.println(display.Digest(round.Digest()))
		c.println(display.Menu(c.session.Moves()))

		choice, ok, err := c.prompt()
		if err != nil {
			return err
		}
		if !ok || choice.Kind == game.ChoiceExit {
			c.println(display.Summary(c.session.Score()))
			return nil
		}

		res, err := round.Play(choice.Move)
		if err != nil {
			return err
		}
		c.println(display.Result(res))
		c.println("")
		c.println("New game:")
	}
}

// prompt asks until the player enters a move or exit. Help is answered
// in place so the live round is not discarded. ok is false at end of input.
func (c *Console) prompt() (game.Choice, bool, error) {
	for {
		fmt.Fprint(c.out, "Enter your move: ")
		if !c.in.Scan() {
			fmt.Fprintln(c.out)
			if err := c.in.Err(); err != nil && !errors.Is(err, io.EOF) {
				return game.Choice{}, false, fmt.Errorf("read input: %w", err)
			}
			return game.Choice{}, false, nil
		}

		choice, err := game.ParseChoice(c.session.Moves(), c.in.Text())
		if err != nil {
			c.logger.Debug("Rejected input", "input", c.in.Text(), "error", err)
			c.println(display.Error(err))
			continue
		}
		if choice.Kind == game.ChoiceHelp {
			c.println(display.HelpTable(c.session.Table()))
			continue
		}
		return choice, true, nil
	}
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}
