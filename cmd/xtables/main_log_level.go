package main

import (
	"github.com/spf13/cobra"

	"github.com/lxc/xtables/internal/firewall/attr"
)

type cmdLogLevel struct {
	global *cmdGlobal
}

// Command generates the command definition.
func (c *cmdLogLevel) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "log-level <level>"
	cmd.Short = "Convert a syslog level name to its number"
	cmd.Long = `Description:
  Convert a syslog level name to its number
`
	cmd.RunE = c.Run

	return cmd
}

// Run runs the actual command logic.
func (c *cmdLogLevel) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	printValue(cmd, attr.LogLevelNameToNumber(args[0]))

	return nil
}
