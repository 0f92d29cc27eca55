package main

import (
	"github.com/spf13/cobra"

	cli "github.com/lxc/xtables/internal/cmd"
	"github.com/lxc/xtables/internal/facts"
)

type cmdFacts struct {
	global *cmdGlobal

	flagFormat string
}

// Command generates the command definition.
func (c *cmdFacts) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "facts"
	cmd.Short = "List the facts used to pick the persistence mechanism"
	cmd.Long = `Description:
  List the facts used to pick the persistence mechanism

  Facts set in the configuration file take precedence over the detected ones.
  Overridden os_name and os_release values also pick which Debian persistence
  package version is reported.
`
	cmd.RunE = c.Run
	cmd.Flags().StringVarP(&c.flagFormat, "format", "f", "table", "Format (csv|json|table|yaml|compact)"+"``")
	cmd.PreRunE = func(cmd *cobra.Command, _ []string) error {
		return cli.ValidateFlagFormatForListOutput(cmd.Flag("format").Value.String())
	}

	return cmd
}

// Run runs the actual command logic.
func (c *cmdFacts) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 0, 0)
	if exit {
		return err
	}

	snapshot := facts.Snapshot(c.global.Facts())

	data := [][]string{}
	for _, name := range facts.Names {
		value, ok := snapshot[name]
		if !ok {
			continue
		}

		data = append(data, []string{name, value})
	}

	header := []string{
		"FACT",
		"VALUE",
	}

	return cli.RenderTable(cmd.OutOrStdout(), c.flagFormat, header, data, snapshot)
}
