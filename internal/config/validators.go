package config

import (
	"fmt"
	"net"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/lxc/xtables/internal/facts"
)

// LogLevelValidator checks whether the provided value is a valid logging level.
func LogLevelValidator(value string) error {
	if value == "" {
		return nil
	}

	_, err := logrus.ParseLevel(value)
	if err != nil {
		return err
	}

	return nil
}

// NameserverValidator checks whether the provided value is an IP address, optionally with a port.
func NameserverValidator(value string) error {
	if value == "" {
		return nil
	}

	host, _, err := net.SplitHostPort(value)
	if err != nil {
		host = value
	}

	if net.ParseIP(host) == nil {
		return fmt.Errorf("Not an IP address")
	}

	return nil
}

// FactValidator checks whether the provided value is a known fact name.
func FactValidator(value string) error {
	if !slices.Contains(facts.Names, value) {
		return fmt.Errorf("Unknown fact")
	}

	return nil
}
