// Package netresolve provides hostname resolvers for rule address normalization.
package netresolve

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"
)

// DefaultTimeout is the per-query timeout of the DNS resolver.
const DefaultTimeout = 5 * time.Second

// DNS resolves hostnames by querying a single nameserver directly, bypassing the system resolver.
type DNS struct {
	server string
	client *dns.Client
}

// NewDNS returns a resolver querying the given nameserver. Port 53 is used when the
// address has no port.
func NewDNS(server string) (*DNS, error) {
	if server == "" {
		return nil, fmt.Errorf("Invalid nameserver %q", server)
	}

	_, _, err := net.SplitHostPort(server)
	if err != nil {
		server = net.JoinHostPort(server, "53")
	}

	return &DNS{
		server: server,
		client: &dns.Client{Net: "udp", Timeout: DefaultTimeout},
	}, nil
}

// Server returns the nameserver address queried by the resolver.
func (d *DNS) Server() string {
	return d.server
}

// LookupHost returns the A records followed by the AAAA records of host.
func (d *DNS) LookupHost(ctx context.Context, host string) ([]string, error) {
	addresses := []string{}

	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		msg := new(dns.Msg)
		msg.SetQuestion(dns.Fqdn(host), qtype)
		msg.RecursionDesired = true

		resp, _, err := d.client.ExchangeContext(ctx, msg, d.server)
		if err != nil {
			return nil, fmt.Errorf("Failed querying %s for %q: %w", d.server, host, err)
		}

		switch resp.Rcode {
		case dns.RcodeSuccess:
		case dns.RcodeNameError:
			return nil, fmt.Errorf("No such host %q", host)
		default:
			return nil, fmt.Errorf("Failed querying %s for %q: %s", d.server, host, dns.RcodeToString[resp.Rcode])
		}

		for _, rr := range resp.Answer {
			switch record := rr.(type) {
			case *dns.A:
				addresses = append(addresses, record.A.String())
			case *dns.AAAA:
				addresses = append(addresses, record.AAAA.String())
			}
		}
	}

	return addresses, nil
}
