// Package cli implements the vgen command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/calvinalkan/vgen/internal/config"
	"github.com/calvinalkan/vgen/internal/fs"
)

// defaultCommand runs when no command is given.
const defaultCommand = "generate"

type globalFlags struct {
	set       *flag.FlagSet
	help      *bool
	cwd       *string
	config    *string
	format    *string
	output    *string
	tableName *string
	verbose   *bool
}

func newGlobalFlags() globalFlags {
	set := flag.NewFlagSet("vgen", flag.ContinueOnError)
	set.SetInterspersed(false)
	set.SetOutput(&strings.Builder{}) // discard pflag output

	return globalFlags{
		set:       set,
		help:      set.BoolP("help", "h", false, "Show help"),
		cwd:       set.StringP("cwd", "C", "", "Run as if started in `dir`"),
		config:    set.StringP("config", "c", "", "Use specified config `file`"),
		format:    set.StringP("format", "f", "", "Output format: cpp or go"),
		output:    set.StringP("output", "o", "", "Write the table to `file` instead of stdout"),
		tableName: set.String("table-name", "", "Identifier of the declared table"),
		verbose:   set.BoolP("verbose", "v", false, "Log progress to stderr"),
	}
}

// Run is the main entry point. Returns exit code.
//
// With no arguments it prints the identity table for the built-in catalogue
// to out and returns 0.
func Run(_ io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string) int {
	if len(args) > 0 {
		args = args[1:]
	}

	flags := newGlobalFlags()
	o := NewIO(out, errOut)

	err := flags.set.Parse(args)
	if err != nil {
		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		printUsage(o.Stderr(), flags, nil)

		return 1
	}

	if *flags.help {
		printUsage(o, flags, commandList(&config.Config{}, nil, nil))

		return 0
	}

	workDir := *flags.cwd
	if workDir == "" {
		workDir, err = os.Getwd()
		if err != nil {
			o.ErrPrintln("error:", fmt.Errorf("%w: %w", ErrWorkDirNotFound, err))

			return 1
		}
	} else if !filepath.IsAbs(workDir) {
		workDir, err = filepath.Abs(workDir)
		if err != nil {
			o.ErrPrintln("error:", fmt.Errorf("%w: %w", ErrWorkDirNotFound, err))

			return 1
		}
	}

	fsys := fs.NewReal()

	cfg, err := config.Load(fsys, config.LoadInput{
		WorkDir:    workDir,
		ConfigPath: *flags.config,
		Overrides: config.Overrides{
			Format:       *flags.format,
			TableName:    *flags.tableName,
			HasTableName: flags.set.Changed("table-name"),
			Output:       *flags.output,
		},
		Env: env,
	})
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	log := newLogger(errOut, *flags.verbose)
	defer func() { _ = log.Sync() }()

	log.Debug("config loaded",
		zap.String("cwd", cfg.EffectiveCwd),
		zap.String("global", cfg.Sources.Global),
		zap.String("project", cfg.Sources.Project))

	commands := commandList(&cfg, fsys, log)

	remaining := flags.set.Args()
	name := defaultCommand

	if len(remaining) > 0 {
		name, remaining = remaining[0], remaining[1:]
	}

	for _, cmd := range commands {
		if cmd.Name() == name {
			return cmd.Run(context.Background(), o, log, remaining)
		}
	}

	o.ErrPrintln("error:", fmt.Errorf("%w: %s", ErrUnknownCommand, name))
	o.ErrPrintln()
	printUsage(o.Stderr(), flags, commands)

	return 1
}

func commandList(cfg *config.Config, fsys fs.FS, log *zap.Logger) []*Command {
	return []*Command{
		GenerateCmd(cfg, fsys, log),
		CatalogueCmd(),
		PrintConfigCmd(cfg),
	}
}

func printUsage(o *IO, flags globalFlags, commands []*Command) {
	o.Println(`vgen - validator identity table generator

Usage: vgen [flags] [command]

Without a command, prints the identity table for the built-in catalogue.

Global flags:`)

	var buf strings.Builder
	flags.set.SetOutput(&buf)
	flags.set.PrintDefaults()
	flags.set.SetOutput(&strings.Builder{})
	o.Printf("%s", buf.String())

	if len(commands) == 0 {
		return
	}

	o.Println()
	o.Println("Commands:")

	for _, cmd := range commands {
		o.Println(cmd.HelpLine())
	}
}
