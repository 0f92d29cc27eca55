package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/lxc/xtables/internal/firewall"
)

type cmdAddress struct {
	global *cmdGlobal

	flagProtocol string
	flagMask     bool
}

// Command generates the command definition.
func (c *cmdAddress) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "address <address>"
	cmd.Short = "Convert a host, address or network to CIDR notation"
	cmd.Long = `Description:
  Convert a host, address or network to CIDR notation

  Hostnames require --family to pick the address family. Networks
  covering every address print nothing.
`
	cmd.Example = `  xtables address 10.0.0.1
  xtables address 192.168.0.0/255.255.255.0
  xtables address --mask '! gateway.lan' --family IPv4`
	cmd.RunE = c.Run
	cmd.Flags().StringVar(&c.flagProtocol, "family", "", "Address family for hostnames (IPv4|IPv6)"+"``")
	cmd.Flags().BoolVar(&c.flagMask, "mask", false, "Accept a negated value")

	return cmd
}

// Run runs the actual command logic.
func (c *cmdAddress) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, -1)
	if exit {
		return err
	}

	protocol, err := firewall.ParseProtocol(c.flagProtocol)
	if err != nil {
		return err
	}

	n, err := c.global.Normalizer()
	if err != nil {
		return err
	}

	value := strings.Join(args, " ")

	normalize := n.HostToIP
	if c.flagMask {
		normalize = n.HostToMask
	}

	result, err := normalize(cmd.Context(), value, protocol)
	if err != nil {
		return err
	}

	printValue(cmd, result)

	return nil
}
