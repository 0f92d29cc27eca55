package netresolve

import (
	"net"

	"github.com/lxc/xtables/internal/firewall/attr"
)

// NewHostResolver returns the hostname resolver for a configured nameserver.
// Without a nameserver the system resolver is used.
func NewHostResolver(nameserver string) (attr.HostResolver, error) {
	if nameserver == "" {
		return net.DefaultResolver, nil
	}

	return NewDNS(nameserver)
}
