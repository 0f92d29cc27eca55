package main

import (
	"github.com/spf13/cobra"

	"github.com/lxc/xtables/internal/firewall/attr"
)

type cmdMark struct {
	global *cmdGlobal
}

// Command generates the command definition.
func (c *cmdMark) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "mark <value>"
	cmd.Short = "Convert an integer to a 32-bit hexadecimal mark"
	cmd.Long = `Description:
  Convert an integer to a 32-bit hexadecimal mark

  Decimal, hexadecimal (0x), octal (0o or leading 0) and binary (0b)
  input is accepted. Values outside of 0 to 0xffffffff print nothing.
`
	cmd.RunE = c.Run

	return cmd
}

// Run runs the actual command logic.
func (c *cmdMark) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	printValue(cmd, attr.ToHex32(args[0]))

	return nil
}
