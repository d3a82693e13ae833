package version

import (
	"fmt"
	"io"
	"os"

	"github.com/bokysan/baseconv/internal/version"
	"github.com/k0kubun/go-ansi"
	"github.com/pkg/errors"
)

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	BackgroundBlue = "\x1b[44m"
)

// Command prints the version and build details of the application
type Command struct {
	Short bool `json:"short" short:"s" long:"short" description:"Only print the version number"`

	out io.Writer
}

func NewCommand() *Command {
	return &Command{
		out: ansi.NewAnsiStdout(),
	}
}

func (i *Command) String() string {
	return "Version details"
}

//goland:noinspection GoUnhandledErrorResult
func (i *Command) Execute(args []string) error {
	if i.Short {
		if _, err := fmt.Fprintln(i.out, version.AppVersion()); err != nil {
			return errors.WithStack(err)
		}
		return nil
	}

	PrintVersion(i.out)
	details := []struct {
		name, value string
	}{
		{"Author     ", "Bojan Cekrlic <github.com/bokysan>"},
		{"Git tag    ", version.GitTag},
		{"Git branch ", version.GitBranch},
		{"Git state  ", version.GitState},
		{"Go version ", version.GoVersion},
	}
	for _, d := range details {
		if d.value != "" {
			fmt.Fprintf(i.out, DarkGray+" %s "+White+"%+v"+Reset+"\n", d.name, d.value)
		}
	}
	os.Exit(0)
	return nil
}

//goland:noinspection GoUnhandledErrorResult
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, Bold+BackgroundBlue+
		LightGray+" BASECONV - binary to text codecs "+White+"%s"+LightGray+" "+Reset+"\n"+
		DarkGray+" Built on    "+White+"%+v\n"+
		DarkGray+" Git version "+White+"%+v"+Reset+"\n",
		version.AppVersion(), version.BuildDate, version.GitCommit)
}
