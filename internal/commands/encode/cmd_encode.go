package encode

import (
	"bytes"
	"io"
	"os"

	"github.com/bokysan/baseconv/internal/logging"
	"github.com/bokysan/baseconv/internal/util"
	"github.com/bokysan/baseconv/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command encodes binary data into text
type Command struct {
	InputFile string `json:"input-file" short:"i" long:"input-file" env:"BASECONV_INPUT_FILE" description:"Read the input from a file instead of the argument. Use '-' for stdin."`
	Hex       bool   `json:"hex"        short:"x" long:"hex"                                      description:"The input is hex-encoded bytes, e.g. '00ff10'"`
	NoNewline bool   `json:"no-newline" short:"n" long:"no-newline"                               description:"Do not print the trailing newline"`
	Wrap      int    `json:"wrap"       short:"W" long:"wrap"       env:"BASECONV_WRAP"           description:"Break the output into lines of this many characters. 0 disables wrapping." default:"0"`

	Args struct {
		Variant string `positional-arg-name:"variant" description:"Encoding variant, e.g. base64_url. Run 'list' to see all of them." required:"yes"`
		Input   string `positional-arg-name:"input"   description:"The data to encode"`
	} `positional-args:"yes"`

	in  io.Reader
	out io.Writer
}

func NewCommand() *Command {
	return &Command{
		in:  os.Stdin,
		out: os.Stdout,
	}
}

func (c *Command) String() string {
	return "Encode data"
}

// Run converts the input and writes the result to the output, without touching the logging setup.
func (c *Command) Run() error {
	e, err := enc.FromName(c.Args.Variant)
	if err != nil {
		return err
	}

	data, err := util.ReadInput(c.Args.Input, c.InputFile, c.in)
	if err != nil {
		return err
	}
	if c.Hex {
		if data, err = enc.DecodeString(enc.Base16UpperEncoding, string(bytes.TrimSpace(data))); err != nil {
			return errors.Wrapf(err, "could not read hex input")
		}
	}

	res, err := enc.AppendEncode(e, nil, data)
	if err != nil {
		return err
	}
	log.Debugf("Encoded %d bytes into %d characters using %v", len(data), len(res), e)
	res = util.Wrap(res, c.Wrap)

	if !c.NoNewline {
		res = append(res, '\n')
	}
	if _, err := c.out.Write(res); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()
	if len(args) > 0 {
		return errors.Wrapf(enc.ErrInvalidArgument, "unexpected arguments: %v", args)
	}
	if err := c.Run(); err != nil {
		log.WithError(err).Debugf("Could not encode with %v", c.Args.Variant)
		return err
	}
	return nil
}
