// Package config loads the tablekit demo configuration file.
//
// The file is YAML. It is named by the --config flag or, failing that,
// the TABLEKIT_CONFIG environment variable. There is no other
// discovery: without either, the demo runs on flags alone.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rootisgod/tablekit/datatable"
	"github.com/rootisgod/tablekit/theme"
)

// EnvVar names the environment variable holding the config path.
const EnvVar = "TABLEKIT_CONFIG"

// ErrUnknownTheme is returned when the config names a theme that is
// not built in.
var ErrUnknownTheme = errors.New("unknown theme")

// Config is the demo configuration.
type Config struct {
	// Title is shown above the table.
	Title string `yaml:"title"`

	// Data is the records file, relative to the config file.
	Data string `yaml:"data"`

	// Theme is the name of a built-in theme.
	Theme string `yaml:"theme"`

	Selectable bool `yaml:"selectable"`

	// Columns fixes the column set. Empty means infer from the data.
	Columns []ColumnConfig `yaml:"columns"`

	path string
}

// ColumnConfig is one column entry.
type ColumnConfig struct {
	Key      string `yaml:"key"`
	Title    string `yaml:"title"`
	Field    string `yaml:"field"` // defaults to Key
	Sortable bool   `yaml:"sortable"`
	Width    int    `yaml:"width"`
	Format   string `yaml:"format"`
}

// Path returns the config path to use: flagValue when set, else the
// value of TABLEKIT_CONFIG. Empty means no config file.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvVar)
}

// Load reads and validates the config file at path. Unknown keys are
// rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.path = path
	return cfg, nil
}

// Parse decodes and validates config data.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the theme name and the column set.
func (c *Config) Validate() error {
	if c.Theme != "" {
		if _, ok := theme.ByName(c.Theme); !ok {
			return fmt.Errorf("%w %q (available: %v)", ErrUnknownTheme, c.Theme, theme.Names())
		}
	}

	columns, err := c.TableColumns()
	if err != nil {
		return err
	}
	if err := datatable.ValidateColumns(columns); err != nil {
		return fmt.Errorf("columns: %w", err)
	}
	return nil
}

// TableColumns converts the column entries to table columns.
func (c *Config) TableColumns() ([]datatable.Column, error) {
	if len(c.Columns) == 0 {
		return nil, nil
	}

	columns := make([]datatable.Column, len(c.Columns))
	for i, entry := range c.Columns {
		format, err := datatable.ParseFormat(entry.Format)
		if err != nil {
			return nil, fmt.Errorf("column %d (%q): %w", i, entry.Key, err)
		}

		field := entry.Field
		if field == "" {
			field = entry.Key
		}
		title := entry.Title
		if title == "" {
			title = entry.Key
		}

		columns[i] = datatable.Column{
			Key:      entry.Key,
			Title:    title,
			Field:    field,
			Sortable: entry.Sortable,
			Width:    entry.Width,
			Format:   format,
		}
	}
	return columns, nil
}

// DataPath returns Data resolved against the config file's directory.
func (c *Config) DataPath() string {
	if c.Data == "" || filepath.IsAbs(c.Data) || c.path == "" {
		return c.Data
	}
	return filepath.Join(filepath.Dir(c.path), c.Data)
}

// ThemeOrDefault returns the configured theme, or the default theme.
func (c *Config) ThemeOrDefault() theme.Theme {
	if t, ok := theme.ByName(c.Theme); ok {
		return t
	}
	return theme.Default()
}
