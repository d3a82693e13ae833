package logging

import (
	"path"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

const logrusPackage = "github.com/sirupsen/logrus"

// ContextHook will add go source information (file, line, func) of the code which logged the entry
type ContextHook struct{}

// Levels defines which logging levels fire the hook. In our case, all levels.
func (hook ContextHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire goes back the call stack, skips the frames of logrus itself and records the first caller
// outside of it.
func (hook ContextHook) Fire(entry *logrus.Entry) error {
	pcs := make([]uintptr, 32)
	frames := runtime.CallersFrames(pcs[:runtime.Callers(2, pcs)])
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.Function, logrusPackage) && !strings.Contains(frame.Function, "ContextHook") {
			entry.Data["file"] = path.Base(frame.File)
			entry.Data["line"] = frame.Line
			entry.Data["func"] = path.Base(frame.Function)
			return nil
		}
		if !more {
			return nil
		}
	}
}
