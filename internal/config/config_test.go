package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lxc/xtables/internal/config"
	"github.com/lxc/xtables/internal/facts"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfigMissing(t *testing.T) {
	c, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), c)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
nameserver: 192.0.2.53
log_level: debug
dry_run: true
facts:
  os_family: Debian
  iptables_persistent_version: 1.0.20
`)

	c, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.53", c.Nameserver)
	assert.Equal(t, "debug", c.LogLevel)
	assert.True(t, c.DryRun)
	assert.Equal(t, map[string]string{facts.OSFamily: "Debian", facts.IptablesPersistentVersion: "1.0.20"}, c.Facts)
	assert.Equal(t, []string{facts.IptablesPersistentVersion, facts.OSFamily}, c.FactNames())
}

func TestLoadConfigInvalid(t *testing.T) {
	path := writeConfig(t, `
nameserver: dns.example.com
log_level: loud
facts:
  kernel: linux
`)

	_, err := config.LoadConfig(path)
	require.Error(t, err)
	assert.EqualError(t, err, "cannot set 'facts.kernel': Unknown fact (and 2 more errors)")
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := writeConfig(t, "facts: [")

	_, err := config.LoadConfig(path)
	assert.ErrorContains(t, err, "Unable to decode the configuration")
}

func TestConfigPathEnv(t *testing.T) {
	t.Setenv("XTABLES_CONF", "/etc/xtables/config.yml")

	path, err := config.ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/xtables/config.yml", path)
}

func TestNameserverValidator(t *testing.T) {
	assert.NoError(t, config.NameserverValidator(""))
	assert.NoError(t, config.NameserverValidator("192.0.2.53"))
	assert.NoError(t, config.NameserverValidator("[2001:db8::53]:5353"))
	assert.NoError(t, config.NameserverValidator("2001:db8::53"))
	assert.Error(t, config.NameserverValidator("dns.example.com"))
}
