package logging

import (
	"os"
	"strings"

	"github.com/bokysan/baseconv/internal/args"
	"github.com/bokysan/baseconv/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// SetupLogging configures logrus from the general options. Logs always go to stderr or to the
// log file, stdout is reserved for the converted data.
func SetupLogging() {
	SetVerbosity(args.General.Verbose)

	if args.General.LogReportCaller {
		log.AddHook(&ContextHook{})
	}

	if args.General.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		})
	} else {
		color := strings.TrimSpace(strings.ToLower(args.General.LogColor))
		fullTimestamp := args.General.LogFullTimestamp
		log.SetFormatter(&log.TextFormatter{
			ForceColors:   color == "yes" || color == "true" || color == "1",
			DisableColors: color == "no" || color == "false" || color == "0",
			FullTimestamp: fullTimestamp,
		})
	}
	log.SetReportCaller(args.General.LogReportCaller)
	log.SetOutput(os.Stderr)
	log.Debugf("Verbosity level: %v", VerbosityName())

	if args.General.LogFile != nil && len(*args.General.LogFile) > 0 && *args.General.LogFile != "-" {
		f, err := os.OpenFile(*args.General.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		util.MustErrorNilOrExit(errors.WithStack(err))
		log.SetOutput(f)
	}
}
