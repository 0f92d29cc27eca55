package persist_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lxc/xtables/internal/facts"
	"github.com/lxc/xtables/internal/firewall"
	"github.com/lxc/xtables/internal/firewall/persist"
	"github.com/lxc/xtables/shared/logger"
	"github.com/lxc/xtables/shared/subprocess"
)

// trackingFacts records flushes on top of a static fact set.
type trackingFacts struct {
	facts.Static
	flushed []string
}

func (f *trackingFacts) Flush(name string) {
	f.flushed = append(f.flushed, name)
}

type recordingExecutor struct {
	runs [][]string
	err  error
}

func (r *recordingExecutor) Run(_ context.Context, args []string) (string, error) {
	r.runs = append(r.runs, args)
	return "", r.err
}

func newPersister(t *testing.T, f facts.Provider, executor persist.Executor) (*persist.Persister, *test.Hook) {
	t.Helper()

	target, hook := test.NewNullLogger()
	target.SetLevel(logrus.DebugLevel)

	return persist.NewPersister(f, executor, logger.NewLogrusLogger(target)), hook
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		facts    facts.Static
		protocol firewall.Protocol
		key      persist.OSKey
		args     []string
	}{
		{
			name:     "rhel 6",
			facts:    facts.Static{facts.OSFamily: "RedHat", facts.OSName: "RedHat", facts.OSRelease: "6.10"},
			protocol: firewall.ProtocolIPv4,
			key:      persist.OSKeyRedHat,
			args:     []string{"/sbin/service", "iptables", "save"},
		},
		{
			name:     "centos 6 ipv6",
			facts:    facts.Static{facts.OSFamily: "RedHat", facts.OSName: "CentOS", facts.OSRelease: "6"},
			protocol: firewall.ProtocolIPv6,
			key:      persist.OSKeyRedHat,
			args:     []string{"/sbin/service", "ip6tables", "save"},
		},
		{
			name:     "fedora 14",
			facts:    facts.Static{facts.OSFamily: "RedHat", facts.OSName: "Fedora", facts.OSRelease: "14"},
			protocol: firewall.ProtocolIPv4,
			key:      persist.OSKeyRedHat,
			args:     []string{"/sbin/service", "iptables", "save"},
		},
		{
			name:     "fedora 20 without family",
			facts:    facts.Static{facts.OSName: "Fedora", facts.OSRelease: "20"},
			protocol: firewall.ProtocolIPv4,
			key:      persist.OSKeyFedora,
			args:     []string{"/usr/libexec/iptables/iptables.init", "save"},
		},
		{
			name:     "rocky 9",
			facts:    facts.Static{facts.OSFamily: "RedHat", facts.OSName: "Rocky", facts.OSRelease: "9.3"},
			protocol: firewall.ProtocolIPv6,
			key:      persist.OSKeyFedora,
			args:     []string{"/usr/libexec/iptables/ip6tables.init", "save"},
		},
		{
			name:     "amazon",
			facts:    facts.Static{facts.OSFamily: "RedHat", facts.OSName: "Amazon", facts.OSRelease: "2023"},
			protocol: firewall.ProtocolIPv4,
			key:      persist.OSKeyAmazon,
			args:     []string{"/bin/sh", "-c", "/sbin/iptables-save > /etc/sysconfig/iptables.rules"},
		},
		{
			name:     "amazon without family",
			facts:    facts.Static{facts.OSName: "Amazon", facts.OSRelease: "2"},
			protocol: firewall.ProtocolIPv6,
			key:      persist.OSKeyAmazon,
			args:     []string{"/bin/sh", "-c", "/sbin/ip6tables-save > /etc/sysconfig/ip6tables.rules"},
		},
		{
			name:     "debian without package",
			facts:    facts.Static{facts.OSFamily: "Debian", facts.OSName: "Debian", facts.OSRelease: "7"},
			protocol: firewall.ProtocolIPv4,
			key:      persist.OSKeyDebian,
			args:     []string{"/usr/sbin/service", "iptables-persistent", "save"},
		},
		{
			name:     "debian iptables-persistent",
			facts:    facts.Static{facts.OSFamily: "Debian", facts.OSName: "Debian", facts.IptablesPersistentVersion: "0.5.7"},
			protocol: firewall.ProtocolIPv6,
			key:      persist.OSKeyDebian,
			args:     []string{"/usr/sbin/service", "iptables-persistent", "save"},
		},
		{
			name:     "ubuntu netfilter-persistent",
			facts:    facts.Static{facts.OSName: "Ubuntu", facts.OSRelease: "22.04", facts.IptablesPersistentVersion: "1.0.16"},
			protocol: firewall.ProtocolIPv4,
			key:      persist.OSKeyDebian,
			args:     []string{"/usr/sbin/service", "netfilter-persistent", "save"},
		},
		{
			name:     "debian manual",
			facts:    facts.Static{facts.OSFamily: "Debian", facts.IptablesPersistentVersion: "0.0.20101230"},
			protocol: firewall.ProtocolIPv4,
			key:      persist.OSKeyDebianManual,
			args:     []string{"/bin/sh", "-c", "/sbin/iptables-save > /etc/iptables/rules"},
		},
		{
			name:     "archlinux ipv6",
			facts:    facts.Static{facts.OSFamily: "Archlinux", facts.OSName: "Archlinux"},
			protocol: firewall.ProtocolIPv6,
			key:      persist.OSKeyArchlinux,
			args:     []string{"/bin/sh", "-c", "/usr/sbin/ip6tables-save > /etc/iptables/ip6tables.rules"},
		},
		{
			name:     "suse",
			facts:    facts.Static{facts.OSFamily: "Suse", facts.OSName: "SLES"},
			protocol: firewall.ProtocolIPv4,
			key:      persist.OSKeySuse,
			args:     []string{"/bin/sh", "-c", "/usr/sbin/iptables-save > /etc/sysconfig/iptables"},
		},
		{
			name:     "suse ipv6",
			facts:    facts.Static{facts.OSFamily: "Suse", facts.OSName: "SLES"},
			protocol: firewall.ProtocolIPv6,
			key:      persist.OSKeySuse,
		},
		{
			name:     "archlinux without family",
			facts:    facts.Static{facts.OSName: "Archlinux"},
			protocol: firewall.ProtocolIPv4,
			key:      persist.OSKeyArchlinux,
			args:     []string{"/bin/sh", "-c", "/usr/sbin/iptables-save > /etc/iptables/iptables.rules"},
		},
		{
			name:     "gentoo",
			facts:    facts.Static{facts.OSFamily: "Gentoo", facts.OSName: "Gentoo"},
			protocol: firewall.ProtocolIPv4,
			key:      persist.OSKeyUnsupported,
		},
		{
			name:     "no facts",
			facts:    facts.Static{},
			protocol: firewall.ProtocolIPv4,
			key:      persist.OSKeyUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newPersister(t, tt.facts, &recordingExecutor{})

			cmd, platform := p.Resolve(tt.protocol)
			assert.Equal(t, tt.key, platform.Key)
			assert.Equal(t, tt.args, cmd.Args)
			assert.Equal(t, tt.args != nil, cmd.Supported())
		})
	}
}

func TestResolveIdempotent(t *testing.T) {
	p, _ := newPersister(t, facts.Static{facts.OSName: "Fedora", facts.OSRelease: "20"}, &recordingExecutor{})

	first, _ := p.Resolve(firewall.ProtocolIPv4)
	second, _ := p.Resolve(firewall.ProtocolIPv4)
	assert.Equal(t, first, second)
}

func TestPlatformDebianFlushesPackageVersion(t *testing.T) {
	f := &trackingFacts{Static: facts.Static{facts.OSFamily: "Debian"}}
	p, _ := newPersister(t, f, &recordingExecutor{})

	p.Platform()
	assert.Equal(t, []string{facts.IptablesPersistentVersion}, f.flushed)

	f = &trackingFacts{Static: facts.Static{facts.OSFamily: "RedHat"}}
	p, _ = newPersister(t, f, &recordingExecutor{})

	p.Platform()
	assert.Empty(t, f.flushed)
}

func TestPersistRunsCommand(t *testing.T) {
	executor := &recordingExecutor{}
	p, hook := newPersister(t, facts.Static{facts.OSFamily: "RedHat", facts.OSName: "CentOS", facts.OSRelease: "7.9"}, executor)

	cmd := p.Persist(context.Background(), firewall.ProtocolIPv4)
	assert.Equal(t, []string{"/usr/libexec/iptables/iptables.init", "save"}, cmd.Args)
	assert.Equal(t, [][]string{{"/usr/libexec/iptables/iptables.init", "save"}}, executor.runs)

	for _, entry := range hook.AllEntries() {
		assert.NotEqual(t, logrus.WarnLevel, entry.Level)
	}
}

func TestPersistUnsupported(t *testing.T) {
	executor := &recordingExecutor{}
	p, hook := newPersister(t, facts.Static{facts.OSFamily: "Debian", facts.IptablesPersistentVersion: "0.4.0"}, executor)

	cmd := p.Persist(context.Background(), firewall.ProtocolIPv6)
	assert.False(t, cmd.Supported())
	assert.Empty(t, executor.runs)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "Rule persistence is not supported for this OS", entry.Message)
	assert.Equal(t, firewall.ProtocolIPv6, entry.Data["protocol"])
}

func TestPersistFailureIsLogged(t *testing.T) {
	executor := &recordingExecutor{err: errors.New("Failed to run: /sbin/service iptables save: exit status 1")}
	p, hook := newPersister(t, facts.Static{facts.OSFamily: "RedHat", facts.OSName: "CentOS", facts.OSRelease: "6"}, executor)

	cmd := p.Persist(context.Background(), firewall.ProtocolIPv4)
	assert.True(t, cmd.Supported())
	assert.Len(t, executor.runs, 1)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "Unable to persist firewall rules", entry.Message)
	assert.Equal(t, executor.err, entry.Data["err"])
	assert.NotContains(t, entry.Data, "exit")
}

func TestPersistFailureExitCode(t *testing.T) {
	executor := persist.ExecutorFunc(func(ctx context.Context, args []string) (string, error) {
		return subprocess.RunCommandContext(ctx, "sh", "-c", "echo 'iptables-save: not found' >&2; exit 127")
	})

	p, hook := newPersister(t, facts.Static{facts.OSFamily: "Archlinux"}, executor)

	cmd := p.Persist(context.Background(), firewall.ProtocolIPv6)
	assert.True(t, cmd.Supported())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, 127, entry.Data["exit"])
	assert.Contains(t, entry.Data["err"].(error).Error(), "iptables-save: not found")
}

func TestCommandString(t *testing.T) {
	cmd := persist.CommandFor(persist.OSKeySuse, firewall.ProtocolIPv4, "")
	assert.Equal(t, `/bin/sh -c '/usr/sbin/iptables-save > /etc/sysconfig/iptables'`, cmd.String())
	assert.Equal(t, "", persist.Unsupported.String())
}

func TestOSKeyString(t *testing.T) {
	assert.Equal(t, "Debian_manual", persist.OSKeyDebianManual.String())
	assert.Equal(t, "Unsupported", persist.OSKey(42).String())
}
