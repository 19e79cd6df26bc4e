// Package config loads vgen's rendering configuration.
//
// Config files are JSON with comments and trailing commas (JSONC). The
// catalogue itself is not configurable; only how the table is rendered and
// where it is written.
package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/tailscale/hujson"

	"github.com/calvinalkan/vgen/internal/fs"
	"github.com/calvinalkan/vgen/pkg/pairtable"
)

// Config holds all configuration options.
type Config struct {
	// From config files (serialized)
	Format    string `json:"format"`
	TableName string `json:"table_name,omitempty"`
	KeyType   string `json:"key_type,omitempty"`
	Package   string `json:"package,omitempty"`
	Output    string `json:"output,omitempty"`

	// Resolved paths (computed, not serialized)
	EffectiveCwd string `json:"-"` // Absolute working directory (from -C flag or os.Getwd)
	OutputAbs    string `json:"-"` // Absolute output path; empty means stdout

	// Sources tracks which config files were loaded (for diagnostics)
	Sources Sources `json:"-"`
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// FileName is the default project config file name.
const FileName = ".vgen.json"

// Default returns the default configuration.
func Default() Config {
	return Config{
		Format: string(pairtable.FormatCPP),
	}
}

// RenderOptions converts the config into generator options.
// The config must have passed validation.
func (c Config) RenderOptions() pairtable.Options {
	return pairtable.Options{
		Format:    pairtable.Format(c.Format),
		TableName: c.TableName,
		KeyType:   c.KeyType,
		Package:   c.Package,
	}
}

// Overrides holds values set on the command line. Empty strings mean unset,
// except TableName which is tracked by HasTableName.
type Overrides struct {
	Format       string
	TableName    string
	HasTableName bool
	Output       string
}

// LoadInput holds the inputs for Load.
type LoadInput struct {
	WorkDir    string            // absolute working directory
	ConfigPath string            // -c/--config flag value
	Overrides  Overrides         // CLI flag values
	Env        map[string]string // environment variables
}

// globalPath returns the path to the global config file.
// Uses $XDG_CONFIG_HOME/vgen/config.json if set, otherwise ~/.config/vgen/config.json.
// Returns empty string if home directory cannot be determined.
func globalPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "vgen", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "vgen", "config.json")
	}

	return ""
}

// Load loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config (~/.config/vgen/config.json or $XDG_CONFIG_HOME/vgen/config.json)
// 3. Project config file at default location (.vgen.json, if exists)
// 4. Explicit config file via ConfigPath (if non-empty, replaces 3)
// 5. CLI overrides.
func Load(fsys fs.FS, input LoadInput) (Config, error) {
	cfg := Default()

	globalCfg, path, err := loadGlobal(fsys, input.Env)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Global = path
	cfg = merge(cfg, globalCfg)

	projectCfg, path, err := loadProject(fsys, input.WorkDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Project = path
	cfg = merge(cfg, projectCfg)

	cfg = applyOverrides(cfg, input.Overrides)

	err = validate(cfg, input.Overrides)
	if err != nil {
		return Config{}, err
	}

	cfg.EffectiveCwd = input.WorkDir

	if cfg.Output != "" {
		if filepath.IsAbs(cfg.Output) {
			cfg.OutputAbs = cfg.Output
		} else {
			cfg.OutputAbs = filepath.Join(input.WorkDir, cfg.Output)
		}
	}

	return cfg, nil
}

func loadGlobal(fsys fs.FS, env map[string]string) (Config, string, error) {
	path := globalPath(env)
	if path == "" {
		return Config{}, "", nil
	}

	return loadFile(fsys, path, false)
}

// loadProject loads the project config file (.vgen.json) or an explicit config file.
func loadProject(fsys fs.FS, workDir, configPath string) (Config, string, error) {
	if configPath == "" {
		return loadFile(fsys, filepath.Join(workDir, FileName), false)
	}

	path := configPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}

	exists, err := fsys.Exists(path)
	if err != nil {
		return Config{}, "", fmt.Errorf("%w %s: %w", ErrConfigFileRead, path, err)
	}

	if !exists {
		return Config{}, "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
	}

	return loadFile(fsys, path, true)
}

// loadFile loads a config file. If mustExist is false, a missing file yields
// a zero config and an empty path; any other stat failure is an error.
func loadFile(fsys fs.FS, path string, mustExist bool) (Config, string, error) {
	if !mustExist {
		exists, err := fsys.Exists(path)
		if err != nil {
			return Config{}, "", fmt.Errorf("%w %s: %w", ErrConfigFileRead, path, err)
		}

		if !exists {
			return Config{}, "", nil
		}
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return Config{}, "", fmt.Errorf("%w %s: %w", ErrConfigFileRead, path, err)
	}

	cfg, err := parse(data)
	if err != nil {
		return Config{}, "", fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	return cfg, path, nil
}

func parse(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	err = json.Unmarshal(standardized, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	// An explicit "table_name": "" is a mistake, not a request for the default.
	var raw map[string]any

	_ = json.Unmarshal(standardized, &raw)

	if val, exists := raw["table_name"]; exists {
		if str, ok := val.(string); ok && str == "" {
			return Config{}, ErrTableNameEmpty
		}
	}

	return cfg, nil
}

func merge(base, overlay Config) Config {
	if overlay.Format != "" {
		base.Format = overlay.Format
	}

	if overlay.TableName != "" {
		base.TableName = overlay.TableName
	}

	if overlay.KeyType != "" {
		base.KeyType = overlay.KeyType
	}

	if overlay.Package != "" {
		base.Package = overlay.Package
	}

	if overlay.Output != "" {
		base.Output = overlay.Output
	}

	return base
}

func applyOverrides(cfg Config, o Overrides) Config {
	if o.Format != "" {
		cfg.Format = o.Format
	}

	if o.HasTableName {
		cfg.TableName = o.TableName
	}

	if o.Output != "" {
		cfg.Output = o.Output
	}

	return cfg
}

func validate(cfg Config, o Overrides) error {
	if o.HasTableName && o.TableName == "" {
		return ErrTableNameEmpty
	}

	_, err := pairtable.ParseFormat(cfg.Format)

	return err
}
