package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/vgen/internal/config"
	"github.com/calvinalkan/vgen/pkg/pairtable"
)

// PrintConfigCmd returns the print-config command.
func PrintConfigCmd(cfg *config.Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("print-config", flag.ContinueOnError),
		Usage: "print-config",
		Short: "Show resolved configuration",
		Long:  "Display the effective configuration and which files it was loaded from.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			return execPrintConfig(io, cfg)
		},
	}
}

func execPrintConfig(io *IO, cfg *config.Config) error {
	io.Println("effective_cwd=" + cfg.EffectiveCwd)
	io.Println("format=" + cfg.Format)

	format := pairtable.Format(cfg.Format)

	tableName := cfg.TableName
	if tableName == "" {
		tableName = pairtable.DefaultCPPTableName
		if format == pairtable.FormatGo {
			tableName = pairtable.DefaultGoTableName
		}
	}

	io.Println("table_name=" + tableName)

	if format == pairtable.FormatCPP {
		keyType := cfg.KeyType
		if keyType == "" {
			keyType = pairtable.DefaultKeyType
		}

		io.Println("key_type=" + keyType)
	}

	if format == pairtable.FormatGo && cfg.Package != "" {
		io.Println("package=" + cfg.Package)
	}

	if cfg.OutputAbs == "" {
		io.Println("output=-")
	} else {
		io.Println("output=" + cfg.OutputAbs)
	}

	io.Println("")
	io.Println("# sources")

	if cfg.Sources.Global == "" && cfg.Sources.Project == "" {
		io.Println("(defaults only)")
	} else {
		if cfg.Sources.Global != "" {
			io.Println("global_config=" + cfg.Sources.Global)
		}

		if cfg.Sources.Project != "" {
			io.Println("project_config=" + cfg.Sources.Project)
		}
	}

	return nil
}
