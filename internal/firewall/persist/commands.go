package persist

import (
	"github.com/kballard/go-shellquote"

	"github.com/lxc/xtables/internal/firewall"
)

// Command is the command persisting the rules of a protocol, or Unsupported.
type Command struct {
	Args []string
}

// Unsupported is the Command of platform and protocol pairs without a persistence strategy.
var Unsupported = Command{}

// Supported returns whether there is a command to run.
func (c Command) Supported() bool {
	return len(c.Args) > 0
}

// String returns the command quoted for a shell.
func (c Command) String() string {
	if !c.Supported() {
		return ""
	}

	return shellquote.Join(c.Args...)
}

// commandFunc builds a command from the installed persistence package version.
type commandFunc func(persistentVersion string) Command

func static(args ...string) commandFunc {
	return func(string) Command {
		return Command{Args: args}
	}
}

func shellRedirect(save string, target string) commandFunc {
	return static("/bin/sh", "-c", save+" > "+target)
}

// debianService uses netfilter-persistent when the installed package is newer than 1.0.
func debianService(persistentVersion string) Command {
	if persistentVersion != "" && compareVersions(persistentVersion, "1.0") > 0 {
		return Command{Args: []string{"/usr/sbin/service", "netfilter-persistent", "save"}}
	}

	return Command{Args: []string{"/usr/sbin/service", "iptables-persistent", "save"}}
}

var commands = map[OSKey]map[firewall.Protocol]commandFunc{
	OSKeyRedHat: {
		firewall.ProtocolIPv4: static("/sbin/service", "iptables", "save"),
		firewall.ProtocolIPv6: static("/sbin/service", "ip6tables", "save"),
	},
	OSKeyFedora: {
		firewall.ProtocolIPv4: static("/usr/libexec/iptables/iptables.init", "save"),
		firewall.ProtocolIPv6: static("/usr/libexec/iptables/ip6tables.init", "save"),
	},
	OSKeyDebian: {
		firewall.ProtocolIPv4: debianService,
		firewall.ProtocolIPv6: debianService,
	},
	OSKeyDebianManual: {
		firewall.ProtocolIPv4: shellRedirect("/sbin/iptables-save", "/etc/iptables/rules"),
	},
	OSKeyArchlinux: {
		firewall.ProtocolIPv4: shellRedirect("/usr/sbin/iptables-save", "/etc/iptables/iptables.rules"),
		firewall.ProtocolIPv6: shellRedirect("/usr/sbin/ip6tables-save", "/etc/iptables/ip6tables.rules"),
	},
	OSKeyAmazon: {
		firewall.ProtocolIPv4: shellRedirect("/sbin/iptables-save", "/etc/sysconfig/iptables.rules"),
		firewall.ProtocolIPv6: shellRedirect("/sbin/ip6tables-save", "/etc/sysconfig/ip6tables.rules"),
	},
	OSKeySuse: {
		firewall.ProtocolIPv4: shellRedirect("/usr/sbin/iptables-save", "/etc/sysconfig/iptables"),
	},
}

// CommandFor returns the persistence command of a platform and protocol.
func CommandFor(key OSKey, protocol firewall.Protocol, persistentVersion string) Command {
	build, ok := commands[key][protocol]
	if !ok {
		return Unsupported
	}

	return build(persistentVersion)
}
