// Package firewall holds the types shared by the rule value normalizers and rule persistence.
package firewall

import (
	"fmt"
)

// Protocol is an IP protocol version tag as used by rule resources.
type Protocol string

// Protocol versions.
const (
	ProtocolIPv4 Protocol = "IPv4"
	ProtocolIPv6 Protocol = "IPv6"
)

// Protocols lists all the supported protocol versions.
var Protocols = []Protocol{ProtocolIPv4, ProtocolIPv6}

// ParseProtocol converts a protocol version tag, accepting the "4"/"6" and inet/inet6 shorthands.
// The empty string is returned as the empty Protocol (unspecified).
func ParseProtocol(value string) (Protocol, error) {
	switch value {
	case "":
		return "", nil
	case "IPv4", "ipv4", "4", "inet":
		return ProtocolIPv4, nil
	case "IPv6", "ipv6", "6", "inet6":
		return ProtocolIPv6, nil
	}

	return "", fmt.Errorf("Unsupported protocol %q", value)
}

// Family returns the address family name used by ICMP type tables ("inet" or "inet6").
func (p Protocol) Family() string {
	switch p {
	case ProtocolIPv4:
		return "inet"
	case ProtocolIPv6:
		return "inet6"
	}

	return string(p)
}
