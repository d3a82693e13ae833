package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func Test_CallerHook(t *testing.T) {
	out := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.AddHook(&ContextHook{})

	logger.Infof("decoded %d bytes", 3)

	fields := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &fields))
	require.Equal(t, "logging.Test_CallerHook", fields["func"])
	require.Equal(t, "logrus_hooks_test.go", fields["file"])
}
