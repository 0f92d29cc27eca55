// Package persist saves the running iptables rules so they survive a reboot.
//
// The strategy depends on the platform: init scripts on RedHat, the
// iptables-persistent/netfilter-persistent service on Debian, or a plain
// iptables-save redirect where no service exists.
package persist

import (
	"context"
	"errors"
	"slices"

	"github.com/lxc/xtables/internal/facts"
	"github.com/lxc/xtables/internal/firewall"
	"github.com/lxc/xtables/internal/util"
	"github.com/lxc/xtables/shared/logger"
	"github.com/lxc/xtables/shared/subprocess"
)

// Executor runs a command given as argv.
type Executor interface {
	Run(ctx context.Context, args []string) (string, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, args []string) (string, error)

// Run calls f.
func (f ExecutorFunc) Run(ctx context.Context, args []string) (string, error) {
	return f(ctx, args)
}

// SubprocessExecutor runs commands on the host.
var SubprocessExecutor = ExecutorFunc(func(ctx context.Context, args []string) (string, error) {
	return subprocess.RunCommandContext(ctx, args[0], args[1:]...)
})

// Platform is the outcome of the platform detection.
type Platform struct {
	Key               OSKey
	Name              string // OS family or name the key was derived from.
	PersistentVersion string // Installed iptables-persistent/netfilter-persistent version (Debian only).
}

// Persister saves firewall rules using the platform strategy.
type Persister struct {
	facts    facts.Provider
	executor Executor
	logger   logger.Logger
}

// NewPersister returns a Persister. A nil executor runs commands on the host and a nil
// logger logs through the global logger.
func NewPersister(provider facts.Provider, executor Executor, log logger.Logger) *Persister {
	if executor == nil {
		executor = SubprocessExecutor
	}

	if log == nil {
		log = logger.Log
	}

	return &Persister{
		facts:    provider,
		executor: executor,
		logger:   log,
	}
}

// Platform detects the persistence platform from the facts. On Debian the package
// version fact is flushed first, as the package may have been installed since it was read.
func (p *Persister) Platform() Platform {
	osName, _ := p.facts.Fact(facts.OSName)
	osRelease, _ := p.facts.Fact(facts.OSRelease)

	name, ok := p.facts.Fact(facts.OSFamily)
	if !ok {
		switch {
		case slices.Contains(redHatNames, osName):
			name = "RedHat"
		case slices.Contains(debianNames, osName):
			name = "Debian"
		default:
			name = osName
		}
	}

	platform := Platform{Key: parseOSKey(name), Name: name}

	switch platform.Key {
	case OSKeyDebian:
		p.facts.Flush(facts.IptablesPersistentVersion)
		platform.PersistentVersion, _ = p.facts.Fact(facts.IptablesPersistentVersion)

		// Versions before 0.5.0 have no save action.
		if platform.PersistentVersion != "" && compareVersions(platform.PersistentVersion, "0.5.0") < 0 {
			platform.Key = OSKeyDebianManual
		}

	case OSKeyRedHat:
		releaseMajor := util.ReleaseMajor(osRelease)

		if osName == "Fedora" && releaseMajor >= 15 {
			platform.Key = OSKeyFedora
		} else if slices.Contains(systemdRedHatNames, osName) && releaseMajor >= 7 {
			platform.Key = OSKeyFedora
		} else if osName == "Amazon" {
			platform.Key = OSKeyAmazon
		}
	}

	return platform
}

// Resolve returns the command persisting the rules of protocol on this platform.
func (p *Persister) Resolve(protocol firewall.Protocol) (Command, Platform) {
	platform := p.Platform()
	return CommandFor(platform.Key, protocol, platform.PersistentVersion), platform
}

// Persist saves the rules of protocol. Failures are logged and never returned, rule
// changes must not be rolled back because they could not be saved. The command that
// was run is returned, or Unsupported.
func (p *Persister) Persist(ctx context.Context, protocol firewall.Protocol) Command {
	cmd, platform := p.Resolve(protocol)
	if !cmd.Supported() {
		p.logger.Info("Rule persistence is not supported for this OS", logger.Ctx{"os": platform.Name, "protocol": protocol})
		return Unsupported
	}

	p.logger.Debug("Persisting firewall rules", logger.Ctx{"os": platform.Key.String(), "protocol": protocol, "command": cmd.String()})

	_, err := p.executor.Run(ctx, cmd.Args)
	if err != nil {
		logCtx := logger.Ctx{"protocol": protocol, "command": cmd.String(), "err": err}

		var runErr subprocess.RunError
		if errors.As(err, &runErr) {
			logCtx["exit"] = runErr.ExitCode()
		}

		p.logger.Warn("Unable to persist firewall rules", logCtx)
	}

	return cmd
}

// compareVersions compares package versions, treating unparsable versions as equal.
func compareVersions(version1 string, version2 string) int {
	result, err := util.CompareDebianVersions(version1, version2)
	if err != nil {
		logger.Debug("Failed comparing package versions", logger.Ctx{"err": err})
		return 0
	}

	return result
}
