package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type cmdPort struct {
	global *cmdGlobal

	flagProto string
}

// Command generates the command definition.
func (c *cmdPort) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "port <port>"
	cmd.Short = "Convert a service name or port range to its numeric form"
	cmd.Long = `Description:
  Convert a service name or port range to its numeric form

  A leading "!" negation is kept. Service names are looked up in the
  system services database.
`
	cmd.Example = `  xtables port http
  xtables port '! domain' --proto udp
  xtables port 1000-2000`
	cmd.RunE = c.Run
	cmd.Flags().StringVarP(&c.flagProto, "proto", "p", "tcp", "Transport protocol (tcp|udp)"+"``")

	return cmd
}

// Run runs the actual command logic.
func (c *cmdPort) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, -1)
	if exit {
		return err
	}

	n, err := c.global.Normalizer()
	if err != nil {
		return err
	}

	port, err := n.StringToPort(cmd.Context(), strings.Join(args, " "), c.flagProto)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), port)

	return nil
}
