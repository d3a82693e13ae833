package list

import (
	"fmt"
	"io"

	"github.com/bokysan/baseconv/internal/util/enc"
	"github.com/k0kubun/go-ansi"
	"github.com/pkg/errors"
)

const (
	Bold      = "\x1b[1m"
	Reset     = "\x1b[0m"
	DarkGray  = "\x1b[90m"
	White     = "\x1b[97m"
	LightGray = "\x1b[37m"
)

// Command prints all known encoding variants
type Command struct {
	Plain bool `json:"plain" short:"p" long:"plain" description:"Only print the names, one per line"`

	out io.Writer
}

func NewCommand() *Command {
	return &Command{
		out: ansi.NewAnsiStdout(),
	}
}

func (c *Command) String() string {
	return "List encoders"
}

//goland:noinspection GoUnhandledErrorResult
func (c *Command) Execute(args []string) error {
	if c.Plain {
		for _, e := range enc.All() {
			if _, err := io.WriteString(c.out, e.Name()+"\n"); err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}

	fmt.Fprintf(c.out, Bold+LightGray+" %-4s %-18s %s"+Reset+"\n", "Code", "Variant", "Chars/byte")
	for _, e := range enc.All() {
		fmt.Fprintf(c.out, DarkGray+" %-4s "+White+"%-18s "+DarkGray+"%.2f"+Reset+"\n", string(e.Code()), e.Name(), e.Ratio())
	}
	return nil
}
