package attr

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"regexp"
	"strconv"
	"strings"

	"go4.org/netipx"

	"github.com/lxc/xtables/internal/firewall"
)

var negatedAddress = regexp.MustCompile(`^!\s*(.*)$`)

// HostToIP converts a hostname, address, CIDR or address/netmask into canonical CIDR notation.
//
// Literals are parsed first; anything else is resolved as a hostname, which requires
// protocol to select the address family. A zero-length prefix returns None, meaning
// the rule should not match on the address at all.
func (n *Normalizer) HostToIP(ctx context.Context, value string, protocol firewall.Protocol) (Value, error) {
	prefix, ok := parsePrefix(value)
	if !ok {
		var err error

		prefix, err = n.resolvePrefix(ctx, value, protocol)
		if err != nil {
			return None(), err
		}
	}

	if prefix.Bits() == 0 {
		return None(), nil
	}

	return Some(prefix.String()), nil
}

// HostToMask is HostToIP for values that may be negated ("! 10.0.0.1").
// The negation is rendered as "! " in front of the CIDR.
func (n *Normalizer) HostToMask(ctx context.Context, value string, protocol firewall.Protocol) (Value, error) {
	m := negatedAddress.FindStringSubmatch(value)
	if m == nil {
		return n.HostToIP(ctx, value, protocol)
	}

	cidr, err := n.HostToIP(ctx, m[1], protocol)
	if err != nil {
		return None(), err
	}

	address, ok := cidr.Get()
	if !ok {
		return None(), nil
	}

	return Some("! " + address), nil
}

func (n *Normalizer) resolvePrefix(ctx context.Context, host string, protocol firewall.Protocol) (netip.Prefix, error) {
	var match func(netip.Addr) bool

	switch protocol {
	case firewall.ProtocolIPv4:
		match = netip.Addr.Is4
	case firewall.ProtocolIPv6:
		match = netip.Addr.Is6
	case "":
		return netip.Prefix{}, fmt.Errorf("Protocol must be specified for a hostname: %w", ErrInvalidArgument)
	default:
		return netip.Prefix{}, fmt.Errorf("Unsupported address family %q: %w", protocol, ErrInvalidArgument)
	}

	addresses, err := n.hosts.LookupHost(ctx, host)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("Failed to resolve hostname %q: %v: %w", host, err, ErrResolutionFailure)
	}

	for _, address := range addresses {
		addr, err := netip.ParseAddr(address)
		if err != nil || !match(addr) {
			continue
		}

		addr = addr.WithZone("")
		return netip.PrefixFrom(addr, addr.BitLen()), nil
	}

	return netip.Prefix{}, fmt.Errorf("Failed to resolve hostname %q: %w", host, ErrResolutionFailure)
}

// parsePrefix parses an address, CIDR or address/netmask literal, clearing host bits.
func parsePrefix(value string) (netip.Prefix, bool) {
	address, mask, hasMask := strings.Cut(value, "/")

	addr, err := netip.ParseAddr(address)
	if err != nil {
		return netip.Prefix{}, false
	}

	addr = addr.WithZone("")
	if !hasMask {
		return netip.PrefixFrom(addr, addr.BitLen()), true
	}

	if isDigits(mask) {
		bits, err := strconv.Atoi(mask)
		if err != nil || bits > addr.BitLen() {
			return netip.Prefix{}, false
		}

		return netip.PrefixFrom(addr, bits).Masked(), true
	}

	maskAddr, err := netip.ParseAddr(mask)
	if err != nil || maskAddr.BitLen() != addr.BitLen() {
		return netip.Prefix{}, false
	}

	ipMask := net.IPMask(maskAddr.AsSlice())

	prefix, ok := netipx.FromStdIPNet(&net.IPNet{IP: addr.AsSlice(), Mask: ipMask})
	if !ok {
		return netip.Prefix{}, false
	}

	// FromStdIPNet unmaps ::ffff:a.b.c.d but keeps the 128-bit mask length.
	if addr.Is4In6() {
		ones, _ := ipMask.Size()
		prefix = netip.PrefixFrom(addr, ones)
	}

	if !prefix.IsValid() {
		return netip.Prefix{}, false
	}

	return prefix.Masked(), true
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}

	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
