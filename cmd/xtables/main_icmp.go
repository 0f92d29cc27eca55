package main

import (
	"github.com/spf13/cobra"

	"github.com/lxc/xtables/internal/firewall/attr"
)

type cmdICMP struct {
	global *cmdGlobal

	flagFamily string
}

// Command generates the command definition.
func (c *cmdICMP) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "icmp <type>"
	cmd.Short = "Convert an ICMP type name to its number"
	cmd.Long = `Description:
  Convert an ICMP type name to its number

  Numeric types are printed unchanged. Unknown names print nothing.
`
	cmd.Example = `  xtables icmp echo-request
  xtables icmp --family inet6 neighbour-solicitation`
	cmd.RunE = c.Run
	cmd.Flags().StringVarP(&c.flagFamily, "family", "f", attr.FamilyInet, "Protocol family (inet|inet6)"+"``")

	return cmd
}

// Run runs the actual command logic.
func (c *cmdICMP) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	value, err := attr.ICMPNameToNumber(args[0], c.flagFamily)
	if err != nil {
		return err
	}

	printValue(cmd, value)

	return nil
}
