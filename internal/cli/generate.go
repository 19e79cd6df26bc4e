package cli

import (
	"context"
	"fmt"
	"path/filepath"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/calvinalkan/vgen/internal/catalogue"
	"github.com/calvinalkan/vgen/internal/config"
	"github.com/calvinalkan/vgen/internal/fs"
	"github.com/calvinalkan/vgen/pkg/pairtable"
)

const (
	outputPerms = 0o644
	dirPerms    = 0o755
)

// GenerateCmd returns the generate command.
func GenerateCmd(cfg *config.Config, fsys fs.FS, log *zap.Logger) *Command {
	return &Command{
		Flags: flag.NewFlagSet("generate", flag.ContinueOnError),
		Usage: "generate",
		Short: "Print the validator identity table (default)",
		Long: `Print one entry for every ordered pair of catalogued validators, marking
the pair identical when both names are the same. With --output the table is
written atomically to a file instead of stdout.`,
		Exec: func(_ context.Context, o *IO, _ []string) error {
			return execGenerate(o, cfg, fsys, log)
		},
	}
}

func execGenerate(o *IO, cfg *config.Config, fsys fs.FS, log *zap.Logger) error {
	names := catalogue.Default()
	opts := cfg.RenderOptions()

	log.Debug("generating table",
		zap.Int("validators", len(names)),
		zap.Int("entries", len(names)*len(names)),
		zap.String("format", string(opts.Format)))

	if cfg.OutputAbs == "" {
		return pairtable.Write(o, names, opts)
	}

	data, err := pairtable.Render(names, opts)
	if err != nil {
		return err
	}

	err = fsys.MkdirAll(filepath.Dir(cfg.OutputAbs), dirPerms)
	if err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	err = fsys.WriteFileAtomic(cfg.OutputAbs, data, outputPerms)
	if err != nil {
		return err
	}

	log.Info("table written", zap.String("path", cfg.OutputAbs), zap.Int("bytes", len(data)))

	return nil
}
