package attr

import (
	"context"
	"net"
)

// HostResolver resolves a hostname into address literals.
type HostResolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// ServiceResolver resolves a service name into a port number for a transport protocol.
type ServiceResolver interface {
	LookupPort(ctx context.Context, network string, service string) (int, error)
}

// Normalizer converts the rule attributes that need name resolution.
type Normalizer struct {
	hosts    HostResolver
	services ServiceResolver
}

// NewNormalizer returns a Normalizer using the given resolvers.
// A nil resolver is replaced by the Go resolver.
func NewNormalizer(hosts HostResolver, services ServiceResolver) *Normalizer {
	if hosts == nil {
		hosts = net.DefaultResolver
	}

	if services == nil {
		services = net.DefaultResolver
	}

	return &Normalizer{hosts: hosts, services: services}
}
