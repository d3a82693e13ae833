package main

import (
	"fmt"
	"os"
	"path"

	"github.com/bokysan/baseconv/internal/args"
	"github.com/bokysan/baseconv/internal/commands/decode"
	"github.com/bokysan/baseconv/internal/commands/encode"
	"github.com/bokysan/baseconv/internal/commands/list"
	"github.com/bokysan/baseconv/internal/commands/selftest"
	"github.com/bokysan/baseconv/internal/commands/version"
	bcFlags "github.com/bokysan/baseconv/internal/flags"
	"github.com/bokysan/baseconv/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// BaseConv is the main executable
type BaseConv struct {
	parser *flags.Parser
}

// NewBaseConv will create a new instance of BaseConv and initialize the parser
func NewBaseConv() *BaseConv {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	bc := &BaseConv{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	bc.setupGeneral()
	bc.setupVersion()
	bc.setupEncode()
	bc.setupDecode()
	bc.setupList()
	bc.setupSelfTest()

	return bc
}

// setupGeneral will configure general options
func (bc *BaseConv) setupGeneral() {
	if _, err := bc.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (bc *BaseConv) setupVersion() {
	cmd := version.NewCommand()
	_, err := bc.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `enc` command
func (bc *BaseConv) setupEncode() {
	cmd := encode.NewCommand()
	c, err := bc.parser.AddCommand(
		"enc",
		"Encode data",
		"Encode the input bytes with the given variant and print the text to stdout",
		cmd,
	)
	util.MustErrorNilOrExit(err)
	c.Aliases = []string{"encode"}
}

// setupDecode adds the `dec` command
func (bc *BaseConv) setupDecode() {
	cmd := decode.NewCommand()
	c, err := bc.parser.AddCommand(
		"dec",
		"Decode data",
		"Decode the input text with the given variant and print the bytes to stdout",
		cmd,
	)
	util.MustErrorNilOrExit(err)
	c.Aliases = []string{"decode"}
}

// setupList adds the `list` command
func (bc *BaseConv) setupList() {
	cmd := list.NewCommand()
	_, err := bc.parser.AddCommand(
		"list",
		"List the variants",
		"List all supported encoding variants with their codes",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupSelfTest adds the `selftest` command
func (bc *BaseConv) setupSelfTest() {
	cmd := &selftest.Command{}
	_, err := bc.parser.AddCommand(
		"selftest",
		"Test the encoders",
		"Encode and decode the built-in test patterns of every variant",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// main starts baseconv and reads the configuration file
func main() {

	baseConv := NewBaseConv()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := bcFlags.NewYamlParser(baseConv.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	_, err := baseConv.parser.Parse()
	util.MustErrorNilOrExit(err)

}
