package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lxc/xtables/internal/config"
	"github.com/lxc/xtables/internal/facts"
	"github.com/lxc/xtables/internal/firewall/attr"
	"github.com/lxc/xtables/internal/firewall/persist"
	"github.com/lxc/xtables/internal/netresolve"
	"github.com/lxc/xtables/internal/version"
	"github.com/lxc/xtables/shared/logger"
)

type cmdGlobal struct {
	conf *config.Config

	flagConfig  string
	flagDebug   bool
	flagHelp    bool
	flagLogFile string
	flagVerbose bool
	flagVersion bool

	// Replaced in tests.
	factProvider func() facts.Provider
	executor     persist.Executor
}

func main() {
	app := newApp(&cmdGlobal{})

	// Run the main command and handle errors.
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newApp(globalCmd *cmdGlobal) *cobra.Command {
	app := &cobra.Command{}
	app.Use = "xtables"
	app.Short = "Normalize firewall rule values and persist iptables rules"
	app.Long = `Description:
  Normalize firewall rule values and persist iptables rules

  This tool converts human-entered rule attributes (ICMP types, log levels,
  ports, addresses and marks) to the form iptables expects, and saves the
  running rules using the mechanism of the host distribution.
`
	app.SilenceUsage = true
	app.CompletionOptions = cobra.CompletionOptions{DisableDefaultCmd: true}
	app.PersistentPreRunE = globalCmd.PreRun

	// Global flags.
	app.PersistentFlags().BoolVar(&globalCmd.flagVersion, "version", false, "Print version number")
	app.PersistentFlags().BoolVarP(&globalCmd.flagHelp, "help", "h", false, "Print help")
	app.PersistentFlags().StringVarP(&globalCmd.flagConfig, "config", "c", "", "Configuration file"+"``")
	app.PersistentFlags().BoolVarP(&globalCmd.flagVerbose, "verbose", "v", false, "Show all information messages")
	app.PersistentFlags().BoolVarP(&globalCmd.flagDebug, "debug", "d", false, "Show all debug messages")
	app.PersistentFlags().StringVar(&globalCmd.flagLogFile, "logfile", "", "Path to the log file"+"``")

	// Help handling.
	app.SetHelpCommand(&cobra.Command{
		Use:    "no-help",
		Hidden: true,
	})

	// Version handling.
	app.SetVersionTemplate("{{.Version}}\n")
	app.Version = version.Version

	// address sub-command.
	addressCmd := cmdAddress{global: globalCmd}
	app.AddCommand(addressCmd.Command())

	// facts sub-command.
	factsCmd := cmdFacts{global: globalCmd}
	app.AddCommand(factsCmd.Command())

	// icmp sub-command.
	icmpCmd := cmdICMP{global: globalCmd}
	app.AddCommand(icmpCmd.Command())

	// log-level sub-command.
	logLevelCmd := cmdLogLevel{global: globalCmd}
	app.AddCommand(logLevelCmd.Command())

	// mark sub-command.
	markCmd := cmdMark{global: globalCmd}
	app.AddCommand(markCmd.Command())

	// persist sub-command.
	persistCmd := cmdPersist{global: globalCmd}
	app.AddCommand(persistCmd.Command())

	// port sub-command.
	portCmd := cmdPort{global: globalCmd}
	app.AddCommand(portCmd.Command())

	return app
}

// PreRun loads the configuration and sets up logging.
func (c *cmdGlobal) PreRun(cmd *cobra.Command, args []string) error {
	conf, err := config.LoadConfig(c.flagConfig)
	if err != nil {
		return err
	}

	c.conf = conf

	return logger.InitLogger(c.flagLogFile, conf.LogLevel, c.flagVerbose, c.flagDebug)
}

// CheckArgs validates the number of arguments passed to the function and shows the help if incorrect.
func (c *cmdGlobal) CheckArgs(cmd *cobra.Command, args []string, minArgs int, maxArgs int) (bool, error) {
	if len(args) < minArgs || (maxArgs != -1 && len(args) > maxArgs) {
		_ = cmd.Help()

		if len(args) == 0 {
			return true, nil
		}

		return true, fmt.Errorf("Invalid number of arguments")
	}

	return false, nil
}

// Facts returns the system facts with the configured overrides applied.
func (c *cmdGlobal) Facts() facts.Provider {
	overrides := facts.Static(c.conf.Facts)

	if c.factProvider != nil {
		return facts.Layered{Overrides: overrides, Base: c.factProvider()}
	}

	system := facts.NewSystem()
	layered := facts.Layered{Overrides: overrides, Base: system}
	system.SetReleaseSource(layered)

	return layered
}

// Normalizer returns a normalizer resolving hostnames through the configured nameserver.
func (c *cmdGlobal) Normalizer() (*attr.Normalizer, error) {
	hosts, err := netresolve.NewHostResolver(c.conf.Nameserver)
	if err != nil {
		return nil, err
	}

	return attr.NewNormalizer(hosts, nil), nil
}

// printValue prints a normalized value. Values without a mapping print nothing.
func printValue(cmd *cobra.Command, value attr.Value) {
	s, ok := value.Get()
	if !ok {
		logger.Debug("No mapping for value")
		return
	}

	fmt.Fprintln(cmd.OutOrStdout(), s)
}
