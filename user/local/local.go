package local

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/drakos74/free-means/internal/api"
	"github.com/rs/zerolog/log"
)

const (
	prompt   = "number of clusters (k) or 'exit' to quit: "
	invalid  = "invalid input, enter a whole number or 'exit' to quit"
	farewell = "bye"
)

// Handler executes a clustering run for the given k.
type Handler func(k int) error

// Console is the interactive user loop on top of a reader and a writer.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole creates a new console reading commands from in and writing to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run prompts for commands until the user exits, the input ends or the context is cancelled.
// Invalid input and handler errors are reported to the user and do not stop the loop.
func (c *Console) Run(ctx context.Context, handler Handler) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.print(prompt)
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return fmt.Errorf("could not read input: %w", err)
			}
			c.println("")
			c.println(farewell)
			return nil
		}
		cmd, err := api.ParseCommand(c.in.Text())
		if err != nil {
			log.Debug().Err(err).Msg("invalid user input")
			c.println(invalid)
			continue
		}
		if cmd.Exit {
			c.println(farewell)
			return nil
		}
		if err := handler(cmd.K); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			c.println(fmt.Sprintf("error: %s", err.Error()))
		}
	}
}

func (c *Console) print(s string) {
	fmt.Fprint(c.out, s)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}
