package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
)

// Command is one vgen subcommand.
//
// Run owns everything around Exec: flag parsing, argument count, help, and
// error reporting. Only the rendered result of Exec reaches stdout; help
// requested explicitly goes to stdout, help shown because of a mistake goes
// to stderr.
type Command struct {
	// Flags defines command-specific flags.
	Flags *flag.FlagSet

	// Usage is shown after "vgen" in help. Its first word is the command name.
	Usage string

	// Short is a one-line description for the global help listing.
	Short string

	// Long is the full description shown in command help.
	// If empty, Short is used instead.
	Long string

	// MaxArgs is the number of positional arguments Exec accepts.
	// Extra arguments fail with [ErrUnexpectedArgs] before Exec runs.
	MaxArgs int

	// Exec runs the command after flags and arguments are checked.
	Exec func(ctx context.Context, o *IO, args []string) error
}

// Name returns the command name (first word of Usage).
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")
	return name
}

// HelpLine returns the short help line for the main usage display.
func (c *Command) HelpLine() string {
	return fmt.Sprintf("  %-22s %s", c.Usage, c.Short)
}

// PrintHelp prints the full help output for "vgen <cmd> --help" to o's stdout.
func (c *Command) PrintHelp(o *IO) {
	o.Println("Usage: vgen", c.Usage)
	o.Println()

	if c.Long != "" {
		o.Println(c.Long)
	} else {
		o.Println(c.Short)
	}

	if c.Flags == nil || !c.Flags.HasFlags() {
		return
	}

	var buf strings.Builder
	c.Flags.SetOutput(&buf)
	c.Flags.PrintDefaults()
	c.Flags.SetOutput(&strings.Builder{})

	o.Println()
	o.Println("Flags:")
	o.Printf("%s", buf.String())
}

// Run parses flags, checks arguments and executes the command.
// Returns exit code.
func (c *Command) Run(ctx context.Context, o *IO, log *zap.Logger, args []string) int {
	log = log.With(zap.String("command", c.Name()))

	flags := c.Flags
	if flags == nil {
		flags = flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	}

	flags.SetOutput(&strings.Builder{}) // discard pflag output

	err := flags.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		c.PrintHelp(o)

		return 0
	}

	if err == nil {
		err = checkArgs(flags.Args(), c.MaxArgs)
	}

	if err != nil {
		log.Debug("invalid invocation", zap.Strings("args", args), zap.Error(err))
		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		c.PrintHelp(o.Stderr())

		return 1
	}

	log.Debug("running", zap.Strings("args", flags.Args()))

	err = c.Exec(ctx, o, flags.Args())
	if err != nil {
		log.Debug("failed", zap.Error(err))
		o.ErrPrintln("error:", err)

		return 1
	}

	return 0
}

func checkArgs(args []string, maxArgs int) error {
	if len(args) <= maxArgs {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrUnexpectedArgs, strings.Join(args[maxArgs:], " "))
}
