package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tleving/stocktake/internal/inventory"
)

func init() {
	rootCmd.AddCommand(shellCmd)
}

const shellHelp = `Commands:
  load <dir>              Load CSV files into the dataset (replaces it)
  search <column=value>   Filter rows by exact column value
  summary [path]          Aggregate per category and export a CSV report
  show [n]                Display the first n rows (default 5)
  help                    Show this help
  exit                    Leave the session`

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive inventory session",
	Long: `Start an interactive session holding one dataset in memory.

` + shellHelp,
	Args: cobra.NoArgs,
	RunE: runShell,
}

// shell holds the interactive session state: the current dataset and the
// colored message writers.
type shell struct {
	store *inventory.Store
	in    io.Reader
	out   io.Writer

	errorf   func(io.Writer, string, ...interface{})
	successf func(io.Writer, string, ...interface{})
	infof    func(io.Writer, string, ...interface{})
}

func newShell(in io.Reader, out io.Writer) *shell {
	return &shell{
		in:       in,
		out:      out,
		errorf:   color.New(color.FgRed).FprintfFunc(),
		successf: color.New(color.FgGreen).FprintfFunc(),
		infof:    color.New(color.FgBlue).FprintfFunc(),
	}
}

func runShell(cmd *cobra.Command, args []string) error {
	sh := newShell(os.Stdin, os.Stdout)
	fmt.Fprintln(sh.out, "Welcome to stocktake. Type 'help' to see available commands.")
	sh.run()
	return nil
}

func (s *shell) run() {
	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, "(stocktake) ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		name, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch name {
		case "exit", "quit":
			s.successf(s.out, "Goodbye!\n")
			return
		case "load":
			s.load(arg)
		case "search":
			s.search(arg)
		case "summary":
			s.summary(arg)
		case "show":
			s.show(arg)
		case "help", "?":
			fmt.Fprintln(s.out, shellHelp)
		default:
			s.errorf(s.out, "Unknown command %q. Type 'help' for the list.\n", name)
		}
	}
}

// loaded guards commands that need data. The check keeps the session alive:
// an empty dataset is a message, never a failure.
func (s *shell) loaded() bool {
	if s.store == nil || s.store.RowCount() == 0 {
		s.errorf(s.out, "The inventory is empty. Load data first.\n")
		return false
	}
	return true
}

// load replaces the session dataset. If nothing usable comes back the
// previous dataset stays in place.
func (s *shell) load(dir string) {
	if dir == "" {
		s.errorf(s.out, "Usage: load <dir>\n")
		return
	}

	store, fails, err := inventory.Load(dir, inventory.WithLogger(log))
	if err != nil {
		s.errorf(s.out, "%v\n", err)
		return
	}

	for _, src := range store.Sources() {
		s.successf(s.out, "Loaded: %s (%d rows)\n", src.Name, src.Rows)
	}
	for _, fe := range fails {
		s.errorf(s.out, "Error loading file: %v\n", fe)
	}

	if len(store.Sources()) == 0 {
		if len(fails) == 0 {
			s.errorf(s.out, "No CSV files found in the folder.\n")
		} else {
			s.errorf(s.out, "No valid files were loaded.\n")
		}
		return
	}

	s.store = store
	s.successf(s.out, "All CSV files have been consolidated.\n")
}

func (s *shell) search(query string) {
	if !s.loaded() {
		return
	}

	rows, err := inventory.Search(s.store, query)
	if err != nil {
		s.errorf(s.out, "Invalid syntax. Use 'search <column=value>'.\n")
		return
	}
	if len(rows) == 0 {
		s.infof(s.out, "No results found.\n")
		return
	}

	var buf bytes.Buffer
	renderRows(&buf, s.store.Columns(), rows)
	s.infof(s.out, "%s", buf.String())
}

func (s *shell) summary(path string) {
	if !s.loaded() {
		return
	}

	report := inventory.Summarize(s.store, reportOptions())

	var buf bytes.Buffer
	renderReport(&buf, report)
	s.infof(s.out, "%s", buf.String())

	if path == "" {
		path = cfg.DefaultReportPath
	}
	if err := inventory.WriteReportFile(path, report); err != nil {
		s.errorf(s.out, "%v\n", err)
		return
	}
	s.successf(s.out, "Summary report exported to %s.\n", path)
}

func (s *shell) show(arg string) {
	if !s.loaded() {
		return
	}

	n := cfg.DefaultShowRows
	if arg != "" {
		v, err := strconv.Atoi(arg)
		if err != nil {
			s.errorf(s.out, "Please provide a valid number of rows.\n")
			return
		}
		n = v
	}

	rows := s.store.Preview(n)
	if len(rows) == 0 {
		s.infof(s.out, "No rows to show.\n")
		return
	}

	var buf bytes.Buffer
	renderRows(&buf, s.store.Columns(), rows)
	s.infof(s.out, "%s", buf.String())
}
