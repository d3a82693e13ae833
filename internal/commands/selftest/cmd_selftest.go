package selftest

import (
	"bytes"

	"github.com/bokysan/baseconv/internal/logging"
	"github.com/bokysan/baseconv/internal/util"
	"github.com/bokysan/baseconv/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command round-trips the test patterns of every encoder
type Command struct {
	Args struct {
		Variants []string `positional-arg-name:"variant" description:"Only test these variants (names may also be comma-separated)"`
	} `positional-args:"yes"`
}

func (c *Command) String() string {
	return "Self test"
}

func (c *Command) encoders() ([]enc.Encoder, error) {
	names := util.SplitList(c.Args.Variants)
	if len(names) == 0 {
		return enc.All(), nil
	}
	res := make([]enc.Encoder, 0, len(names))
	for _, name := range names {
		e, err := enc.FromName(name)
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, nil
}

// Check encodes and decodes every test pattern of the encoder and returns all mismatches.
func Check(e enc.Encoder) error {
	var errs error
	for i, pattern := range e.TestPatterns() {
		encoded, err := enc.AppendEncode(e, nil, pattern)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "%v: could not encode pattern %d", e.Name(), i))
			continue
		}
		decoded, err := enc.AppendDecode(e, nil, encoded)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "%v: could not decode pattern %d (%q)", e.Name(), i, encoded))
			continue
		}
		if !bytes.Equal(pattern, decoded) {
			errs = multierror.Append(errs, errors.Wrapf(util.ErrSelfTestFailed, "%v: pattern %d decoded to %x instead of %x", e.Name(), i, decoded, pattern))
			continue
		}
		log.Tracef("%v: pattern %d -> %q", e.Name(), i, encoded)
	}
	return errs
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	encoders, err := c.encoders()
	if err != nil {
		return err
	}

	var errs *multierror.Error
	for _, e := range encoders {
		if err := Check(e); err != nil {
			errs = multierror.Append(errs, err)
			log.WithError(err).Errorf("%v failed", e)
		} else {
			log.Infof("%v passed", e)
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return errors.Wrapf(util.ErrSelfTestFailed, "%d failure(s): %v", errs.Len(), err)
	}
	log.Infof("All %d encoders passed", len(encoders))
	return nil
}
