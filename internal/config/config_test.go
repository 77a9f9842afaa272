package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rootisgod/tablekit/datatable"
)

const sampleConfig = `
title: Team
data: people.yaml
theme: nord
selectable: true
columns:
  - {key: name, title: Name, sortable: true}
  - {key: size, title: Size, field: bytes, sortable: true, format: bytes}
  - {key: notes, width: 20}
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tablekit.yaml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Title != "Team" || !cfg.Selectable {
		t.Errorf("cfg = %+v", cfg)
	}
	if got := cfg.ThemeOrDefault().Name; got != "Nord" {
		t.Errorf("theme = %q, want Nord", got)
	}
	if got, want := cfg.DataPath(), filepath.Join(dir, "people.yaml"); got != want {
		t.Errorf("DataPath() = %q, want %q", got, want)
	}

	columns, err := cfg.TableColumns()
	if err != nil {
		t.Fatalf("TableColumns() error: %v", err)
	}
	want := []datatable.Column{
		{Key: "name", Title: "Name", Field: "name", Sortable: true},
		{Key: "size", Title: "Size", Field: "bytes", Sortable: true, Format: datatable.FormatBytes},
		{Key: "notes", Title: "notes", Field: "notes", Width: 20},
	}
	if len(columns) != len(want) {
		t.Fatalf("got %d columns, want %d", len(columns), len(want))
	}
	for i := range want {
		if columns[i] != want[i] {
			t.Errorf("column %d = %+v, want %+v", i, columns[i], want[i])
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"unknown theme", "theme: Neon\n", ErrUnknownTheme},
		{"duplicate key", "columns:\n  - {key: a}\n  - {key: a}\n", datatable.ErrDuplicateColumnKey},
		{"unknown format", "columns:\n  - {key: a, format: percent}\n", datatable.ErrUnknownFormat},
		{"unknown field", "colums: []\n", nil},
		{"malformed", "title: [\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error: %v", err)
	}
	columns, err := cfg.TableColumns()
	if err != nil || columns != nil {
		t.Errorf("TableColumns() = %v, %v; want nil, nil", columns, err)
	}
	if cfg.ThemeOrDefault().Name != "Violet" {
		t.Errorf("default theme = %q", cfg.ThemeOrDefault().Name)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}

func TestDataPath(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "abs.json")
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"empty", Config{path: "/etc/tk.yaml"}, ""},
		{"relative", Config{Data: "d.json", path: filepath.Join("conf", "tk.yaml")}, filepath.Join("conf", "d.json")},
		{"absolute", Config{Data: abs, path: "/etc/tk.yaml"}, abs},
		{"parsed without a file", Config{Data: "d.json"}, "d.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.DataPath(); got != tt.want {
				t.Errorf("DataPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPath(t *testing.T) {
	t.Setenv(EnvVar, "/from/env.yaml")
	if got := Path("/from/flag.yaml"); got != "/from/flag.yaml" {
		t.Errorf("Path(flag) = %q, want the flag value", got)
	}
	if got := Path(""); got != "/from/env.yaml" {
		t.Errorf("Path(\"\") = %q, want the env value", got)
	}

	t.Setenv(EnvVar, "")
	if got := Path(""); got != "" {
		t.Errorf("Path(\"\") = %q, want empty", got)
	}
}
