package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lxc/xtables/shared/logger"
)

func TestLogrusLoggerContext(t *testing.T) {
	target, hook := test.NewNullLogger()
	target.SetLevel(logrus.DebugLevel)

	log := logger.NewLogrusLogger(target)
	log.Warn("Unable to persist firewall rules", logger.Ctx{"protocol": "IPv4", "err": "first"}, logger.Ctx{"err": "exit status 1"})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "Unable to persist firewall rules", entry.Message)
	assert.Equal(t, "IPv4", entry.Data["protocol"])
	assert.Equal(t, "exit status 1", entry.Data["err"])
}

func TestLogrusLoggerLevelFiltering(t *testing.T) {
	target, hook := test.NewNullLogger()
	target.SetLevel(logrus.InfoLevel)

	log := logger.NewLogrusLogger(target)
	log.Debug("hidden")
	log.Info("shown")

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "shown", hook.LastEntry().Message)
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := logger.InitLogger("", "loud", false, false)
	assert.Error(t, err)
}

func TestInitLoggerReplacesGlobal(t *testing.T) {
	saved := logger.Log
	defer func() { logger.Log = saved }()

	path := filepath.Join(t.TempDir(), "xtables.log")
	require.NoError(t, logger.InitLogger(path, "info", false, false))

	logger.Debug("hidden")
	logger.Warn("Failed to read os-release", logger.Ctx{"err": "permission denied"})

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "hidden")
	assert.Contains(t, string(content), "Failed to read os-release")
	assert.Contains(t, string(content), `err="permission denied"`)
}
