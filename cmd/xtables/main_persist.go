package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lxc/xtables/internal/firewall"
	"github.com/lxc/xtables/internal/firewall/persist"
	"github.com/lxc/xtables/shared/logger"
)

type cmdPersist struct {
	global *cmdGlobal

	flagProtocol string
	flagDryRun   bool
}

// Command generates the command definition.
func (c *cmdPersist) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "persist"
	cmd.Short = "Save the running iptables rules"
	cmd.Long = `Description:
  Save the running iptables rules

  The save mechanism is picked from the distribution facts. Failing to
  save is reported as a warning and does not make the command fail.
  Without --family both IPv4 and IPv6 rules are saved.
`
	cmd.RunE = c.Run
	cmd.Flags().StringVar(&c.flagProtocol, "family", "", "Protocol family of the rules (IPv4|IPv6)"+"``")
	cmd.Flags().BoolVar(&c.flagDryRun, "dry-run", false, "Print the command instead of running it")

	return cmd
}

// Run runs the actual command logic.
func (c *cmdPersist) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 0, 0)
	if exit {
		return err
	}

	protocols := firewall.Protocols
	if c.flagProtocol != "" {
		protocol, err := firewall.ParseProtocol(c.flagProtocol)
		if err != nil {
			return err
		}

		protocols = []firewall.Protocol{protocol}
	}

	p := persist.NewPersister(c.global.Facts(), c.global.executor, logger.Log)

	for _, protocol := range protocols {
		if c.flagDryRun || c.global.conf.DryRun {
			command, platform := p.Resolve(protocol)
			if !command.Supported() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: not supported on %s\n", protocol, platform.Key)
				continue
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", protocol, command)
			continue
		}

		p.Persist(cmd.Context(), protocol)
	}

	return nil
}
