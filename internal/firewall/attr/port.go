package attr

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
)

var (
	portToken   = regexp.MustCompile(`^(!\s+)?(\S+)`)
	portNumeric = regexp.MustCompile(`^\d+(-\d+)?$`)
)

// StringToPort converts a port token ("22", "1000-2000", "! http") into its numeric form.
// The negation prefix is kept as written. Transport protocols other than tcp and udp
// are looked up as tcp.
func (n *Normalizer) StringToPort(ctx context.Context, value string, proto string) (string, error) {
	if proto != "tcp" && proto != "udp" {
		proto = "tcp"
	}

	m := portToken.FindStringSubmatch(value)
	if m == nil {
		return "", fmt.Errorf("Invalid port %q: %w", value, ErrInvalidArgument)
	}

	negation, word := m[1], m[2]
	if portNumeric.MatchString(word) {
		return negation + word, nil
	}

	port, err := n.services.LookupPort(ctx, proto, word)
	if err != nil {
		return "", fmt.Errorf("Unknown %s service %q: %w", proto, word, ErrLookupFailure)
	}

	return negation + strconv.Itoa(port), nil
}
