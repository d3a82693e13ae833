package decode

import (
	"bytes"
	"io"
	"os"

	"github.com/bokysan/baseconv/internal/logging"
	"github.com/bokysan/baseconv/internal/util"
	"github.com/bokysan/baseconv/internal/util/enc"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	OutputRaw  = "raw"
	OutputHex  = "hex"
	OutputDump = "dump"
)

// Command decodes text back into binary data
type Command struct {
	InputFile        string `json:"input-file"        short:"i" long:"input-file"        env:"BASECONV_INPUT_FILE" description:"Read the input from a file instead of the argument. Use '-' for stdin."`
	IgnoreWhitespace bool   `json:"ignore-whitespace" short:"w" long:"ignore-whitespace"                           description:"Skip whitespace in the input (base85 variants only)"`
	JoinLines        bool   `json:"join-lines"        short:"j" long:"join-lines"                                  description:"Remove line breaks from the input, e.g. when it was wrapped"`
	Output           string `json:"output"            short:"o" long:"output"            env:"BASECONV_OUTPUT"     description:"Output format" choice:"raw" choice:"hex" choice:"dump" default:"raw"`

	Args struct {
		Variant string `positional-arg-name:"variant" description:"Encoding variant, e.g. base64_url. Run 'list' to see all of them." required:"yes"`
		Input   string `positional-arg-name:"input"   description:"The text to decode"`
	} `positional-args:"yes"`

	in  io.Reader
	out io.Writer
}

func NewCommand() *Command {
	return &Command{
		Output: OutputRaw,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

func (c *Command) String() string {
	return "Decode data"
}

func (c *Command) encoder() (enc.Encoder, error) {
	e, err := enc.FromName(c.Args.Variant)
	if err != nil {
		return nil, err
	}
	if !c.IgnoreWhitespace {
		return e, nil
	}
	if b85, ok := e.(*enc.Base85Encoder); ok {
		return b85.WithIgnoreWhitespace(), nil
	}
	return nil, errors.Wrapf(enc.ErrInvalidArgument, "--ignore-whitespace is not supported by %v", e.Name())
}

// Run converts the input and writes the result to the output, without touching the logging setup.
func (c *Command) Run() error {
	e, err := c.encoder()
	if err != nil {
		return err
	}

	data, err := util.ReadInput(c.Args.Input, c.InputFile, c.in)
	if err != nil {
		return err
	}
	if c.InputFile != "" {
		// Files and pipes usually end with a line break
		data = bytes.TrimRight(data, "\r\n")
	}
	if c.JoinLines {
		data = util.JoinLines(data)
	}

	res, err := enc.AppendDecode(e, nil, data)
	if err != nil {
		return err
	}
	log.Debugf("Decoded %d characters into %d bytes using %v", len(data), len(res), e)

	switch c.Output {
	case OutputHex:
		text, err := enc.AppendEncode(enc.Base16LowerEncoding, nil, res)
		if err != nil {
			return err
		}
		res = append(text, '\n')
	case OutputDump:
		res = []byte(spew.Sdump(res))
	case OutputRaw, "":
	default:
		return errors.Wrapf(enc.ErrInvalidArgument, "unknown output format: %v", c.Output)
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
		log.WithError(err).Debugf("Could not decode with %v", c.Args.Variant)
		return err
	}
	return nil
}
