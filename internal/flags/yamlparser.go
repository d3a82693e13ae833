package flags

import (
	"fmt"
	"io"
	"os"
	"path"
	"reflect"
	"strings"
	"unsafe"

	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// YamlParser is an argument parser for flags package but takes a YAML file instead of a standard INI.
// Top level keys are command or group names, e.g.
//
//   dec:
//     ignore-whitespace: true
//     output: hex
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses flags from an yaml formatted file. The returned errors
// can be of the type flags.Error.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)

	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	// Let the decoder know where the file is, so references to files in (sub)directories work.
	return y.parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// ParseString parses flags from an in-memory yaml document.
func (y *YamlParser) ParseString(config string) error {
	return y.parse(strings.NewReader(config))
}

// parse reads YAML segments one after another, using the provided decode options. This allows you
// to have multiple individual YAML segments within one physical file / input stream, all separated
// by triple dashes (`---`).
func (y *YamlParser) parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode element at position %v", i)
		}

		if err = y.parseSegment(obj); err != nil {
			return errors.WithStack(err)
		}
	}
}

// parseSegment matches every top level key of the segment to a command or a group of the parser and
// fills in its options. E.g. the top level key "dec:" is matched to the command named "dec".
func (y *YamlParser) parseSegment(obj map[string]interface{}) error {
	for name, val := range obj {
		command := y.parser.Find(name)
		if command == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownGroup,
				Message: fmt.Sprintf("could not find option command '%s'", name),
			})
		}
		log.Debugf("Reading configuration for %v", name)

		// The flags library does not expose the data structure behind a group, so it is
		// read from the private field.
		group := reflect.ValueOf(command.Group)
		dereferencedGroup := reflect.Indirect(group)
		dataField := dereferencedGroup.FieldByName("data")
		dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()
		dataFieldPtr := dataField.Elem() // ptr / *Command

		if conv, err := yaml.Marshal(val); err != nil {
			return errors.WithStack(err)
		} else if err := yaml.Unmarshal(conv, dataFieldPtr.Interface()); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
