// tablekit shows a records file in a sortable, selectable terminal
// table.
//
// Interactive mode (stdout is a terminal) runs a full-screen bubbletea
// program: the records file is decoded in the background while the
// table shows its loading state, headers sort on click, rows select
// with the mouse or keyboard, and the selection can be exported to a
// new records file. Static mode (--print, or stdout not a terminal)
// renders the table once.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/rootisgod/tablekit/datatable"
	"github.com/rootisgod/tablekit/internal/config"
	"github.com/rootisgod/tablekit/internal/records"
	"github.com/rootisgod/tablekit/internal/version"
	"github.com/rootisgod/tablekit/theme"
)

// staticWidth is the render width when stdout is not a terminal.
const staticWidth = 100

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// settings is the merged result of the config file and the flags.
type settings struct {
	title      string
	dataPath   string
	columns    []datatable.Column
	theme      theme.Theme
	selectable bool
	loading    bool // stay in the loading state
	empty      bool // ignore the data and show the empty state
	sort       datatable.SortState
}

func run(args []string, stdout, stderr io.Writer) error {
	var (
		configPath  string
		dataPath    string
		themeName   string
		sortFlag    string
		logOutput   string
		selectable  bool
		loading     bool
		empty       bool
		printOnce   bool
		showVersion bool
	)

	flagSet := pflag.NewFlagSet("tablekit", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&configPath, "config", "", "YAML config file (default: $"+config.EnvVar+")")
	flagSet.StringVar(&dataPath, "data", "", "records file: .json, .jsonc, .yaml, .toml or .cbor, optionally .zst or .lz4 compressed")
	flagSet.StringVar(&themeName, "theme", "", "color theme ("+strings.Join(theme.Names(), ", ")+")")
	flagSet.StringVar(&sortFlag, "sort", "", "initial sort as FIELD or FIELD:desc")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.BoolVar(&selectable, "selectable", false, "enable row selection")
	flagSet.BoolVar(&loading, "loading", false, "keep the table in its loading state")
	flagSet.BoolVar(&empty, "empty", false, "show the table without data")
	flagSet.BoolVar(&printOnce, "print", false, "render the table once to stdout and exit")
	flagSet.BoolVar(&showVersion, "version", false, "print version information")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}
	if showVersion {
		fmt.Fprintln(stdout, version.String())
		return nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	s := settings{
		title:    "tablekit",
		theme:    theme.Default(),
		dataPath: dataPath,
		loading:  loading,
		empty:    empty,
	}

	if path := config.Path(configPath); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		if cfg.Title != "" {
			s.title = cfg.Title
		}
		if s.dataPath == "" {
			s.dataPath = cfg.DataPath()
		}
		s.selectable = cfg.Selectable
		s.theme = cfg.ThemeOrDefault()
		columns, err := cfg.TableColumns()
		if err != nil {
			return err
		}
		s.columns = columns
	}
	if selectable {
		s.selectable = true
	}
	if themeName != "" {
		t, ok := theme.ByName(themeName)
		if !ok {
			return fmt.Errorf("%w %q (available: %s)", config.ErrUnknownTheme, themeName, strings.Join(theme.Names(), ", "))
		}
		s.theme = t
	}
	if sortFlag != "" {
		state, err := parseSort(sortFlag)
		if err != nil {
			return err
		}
		s.sort = state
	}

	out, isFile := stdout.(*os.File)
	interactive := !printOnce && isFile && term.IsTerminal(int(out.Fd()))

	logger, closeLog, err := newLogger(stderr, interactive, logOutput)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
	}()

	if !interactive {
		width := staticWidth
		if isFile && term.IsTerminal(int(out.Fd())) {
			if w, _, err := term.GetSize(int(out.Fd())); err == nil {
				width = w
			}
		} else {
			lipgloss.SetColorProfile(termenv.Ascii)
		}

		data, err := loadRecords(s.dataPath)
		if err != nil {
			return err
		}
		logger.Debug("rendering static table", "records", len(data), "sort", s.sort.String())

		view, err := renderStatic(data, s, width)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, view)
		return err
	}

	logger.Info("starting", "version", version.Version, "data", s.dataPath, "theme", s.theme.Name)
	program := tea.NewProgram(newModel(s, logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	return err
}

// parseSort reads "FIELD" or "FIELD:asc|desc".
func parseSort(value string) (datatable.SortState, error) {
	field, direction, _ := strings.Cut(value, ":")
	if field == "" {
		return datatable.SortState{}, fmt.Errorf("--sort %q: missing field", value)
	}

	switch strings.ToLower(direction) {
	case "", "asc", "ascending":
		return datatable.SortState{Field: field, Direction: datatable.SortAscending}, nil
	case "desc", "descending":
		return datatable.SortState{Field: field, Direction: datatable.SortDescending}, nil
	}
	return datatable.SortState{}, fmt.Errorf("--sort %q: direction must be asc or desc", value)
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `tablekit - sortable, selectable terminal table for records files.

Without --data (or a config file naming one) a built-in sample
dataset is shown.

Usage:
  tablekit [flags]

Examples:
  # Browse a YAML file with row selection
  tablekit --data people.yaml --selectable

  # Print a compressed JSON file sorted by age, oldest first
  tablekit --data people.json.zst --sort age:desc --print

  # Use a config file with fixed columns and a theme
  TABLEKIT_CONFIG=team.yaml tablekit

Keys:
  click header, s    sort (ascending, descending, unsorted)
  click row, space   select row        a   select all
  t  next theme    w  export    ?  help    q  quit

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}

// loadRecords reads path, or returns the sample dataset when path is
// empty.
func loadRecords(path string) ([]datatable.Record, error) {
	if path == "" {
		return sampleRecords(), nil
	}
	return records.Load(path)
}

// tableColumns returns the configured columns, or infers them.
func tableColumns(s settings, data []datatable.Record) []datatable.Column {
	if len(s.columns) > 0 {
		return s.columns
	}
	if s.dataPath == "" {
		return sampleColumns()
	}
	return records.InferColumns(data)
}
