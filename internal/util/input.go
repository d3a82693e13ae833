package util

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// StdinName is the file name which stands for the standard input.
const StdinName = "-"

// ReadInput returns the data to convert. If file is set, the data is read from that file (or from
// stdin if file is StdinName), otherwise the positional argument is used as-is.
func ReadInput(arg, file string, stdin io.Reader) ([]byte, error) {
	if file == "" {
		if arg == "" {
			return nil, errors.Errorf("no input given: pass it as an argument or use --input-file")
		}
		return []byte(arg), nil
	}
	if arg != "" {
		return nil, errors.Errorf("input given both as an argument and as a file (%v)", file)
	}

	if file == StdinName {
		return readAll(stdin)
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Errorf("Could not close %s: %v", file, err)
		}
	}()
	return readAll(f)
}

func readAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, errors.WithStack(err)
	}
	return buf.Bytes(), nil
}
