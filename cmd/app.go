// Package cmd implements the CLI application to manage an inventory.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/inventory"
	"github.com/etnz/inventory/config"
	"github.com/etnz/inventory/logger"
	"github.com/google/subcommands"
)

// Commands lists the inv subcommands, with their group.
var Commands = []struct {
	Cmd   subcommands.Command
	Group string
}{
	{&addCmd{}, "inventory"},
	{&sellCmd{}, "inventory"},
	{&restockCmd{}, "inventory"},
	{&expireCmd{}, "inventory"},
	{&listCmd{}, "reports"},
	{&searchCmd{}, "reports"},
	{&valueCmd{}, "reports"},
	{&queryCmd{}, "reports"},
	{&shellCmd{}, "interactive"},
	{&topicCmd{}, "help"},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, x := range Commands {
		c.Register(x.Cmd, x.Group)
	}
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

func init() {
	def := config.Default()
	flag.String(config.KeyFile, def.File, "Path to the inventory file (JSON). Env "+config.Env(config.KeyFile))
	flag.String(config.KeyCurrency, def.Currency, "Currency used to display values. Env "+config.Env(config.KeyCurrency))
	flag.String(config.KeyLogLevel, def.LogLevel, "Log level: trace, debug, info, warn, error. Env "+config.Env(config.KeyLogLevel))
	flag.String(config.KeyLogFormat, def.LogFormat, "Log format: console or json. Env "+config.Env(config.KeyLogFormat))
}

// settings are resolved once by Setup.
var settings = config.Default()

// stdout receives the command results, stderr the errors.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// markdownStyle is the glamour style used to print markdown, "" prints raw markdown.
var markdownStyle = "auto"

// Setup resolves the settings from the parsed top level flags, the environment
// and the config file, then configures logging.
func Setup(fs *flag.FlagSet) error {
	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	if err := logger.Setup(logger.Config{Format: cfg.LogFormat, Level: cfg.LogLevel}); err != nil {
		return err
	}
	settings = cfg
	return nil
}

// OpenInventory opens the configured inventory file.
func OpenInventory() *inventory.Inventory {
	return inventory.Open(settings.File)
}

// printMarkdown renders md for the terminal.
func printMarkdown(md string) {
	if markdownStyle == "" {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := glamour.Render(md, markdownStyle)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

// fail prints an error and returns the failure status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}
