package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ttrampp/Family-Lifespan-Analyzer/config"
	"github.com/ttrampp/Family-Lifespan-Analyzer/engine"
	"github.com/ttrampp/Family-Lifespan-Analyzer/logger"
	"github.com/ttrampp/Family-Lifespan-Analyzer/registry"
	"github.com/ttrampp/Family-Lifespan-Analyzer/shell"
)

var errFiltersNotAllowed = errors.New("--side and --relation only apply to the custom report")

// cliState is filled by the root command's PersistentPreRunE and shared by
// every subcommand.
type cliState struct {
	in  io.Reader
	out io.Writer

	configPath string
	year       int
	noColor    bool
	logLevel   string

	cfg config.Config
	log *logger.Logger
	now func() time.Time
}

// newRootCmd builds the command tree over the given streams.
func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	st := &cliState{in: in, out: out, now: time.Now}

	root := &cobra.Command{
		Use:   "family",
		Short: "Track family members and their lifespans",
		Long: `family keeps a list of relatives (side, birth and death years,
relationship type) and reports individual lifespans and average lifespans
grouped by side, relationship type or both.

Run without a subcommand for the interactive menu.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: st.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if st.log != nil {
				st.log.Sync()
			}
		},
		RunE: st.runInteractive,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&st.configPath, "config", "family.yaml", "Path to the YAML config file (missing file = defaults)")
	pf.IntVar(&st.year, "year", 0, "Current year for lifespans of living members (0 = config or calendar year)")
	pf.BoolVar(&st.noColor, "no-color", false, "Disable colored output")
	pf.StringVar(&st.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	root.AddCommand(
		newReportCmd(st),
		newListCmd(st),
		newVersionCmd(),
	)
	return root
}

func (st *cliState) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(st.configPath)
	if err != nil {
		return err
	}
	if st.year > 0 {
		cfg.CurrentYear = st.year
	}
	if st.noColor {
		cfg.Output.Color = false
	}
	if st.logLevel != "" {
		cfg.Log.Level = st.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return err
	}
	st.cfg = cfg
	st.log = log.With("command", cmd.Name())
	st.log.Debug("configuration loaded", "path", st.configPath, "year", st.currentYear())
	return nil
}

// yearOptions fixes the configured year when set and otherwise falls back
// to the cliState clock.
func (st *cliState) yearOptions() []engine.Option {
	return []engine.Option{
		engine.WithCurrentYear(st.cfg.CurrentYear),
		engine.WithClock(st.now),
	}
}

func (st *cliState) currentYear() int {
	return engine.CurrentYear(st.yearOptions()...)
}

// color reports whether output should be styled: config allows it and the
// output is a terminal.
func (st *cliState) color() bool {
	f, ok := st.out.(*os.File)
	if !ok {
		return false
	}
	return shell.ColorEnabled(f, st.cfg.Output.Color)
}

func (st *cliState) runInteractive(cmd *cobra.Command, args []string) error {
	session := shell.NewSession(registry.NewSeeded(), st.in, st.out, shell.Options{
		Year:    st.currentYear(),
		MinYear: st.cfg.MinBirthYear,
		Color:   st.color(),
		Logger:  st.log,
	})
	return session.Run()
}

// ============================================================================
// REPORT
// ============================================================================

func newReportCmd(st *cliState) *cobra.Command {
	var side, relation, format string

	cmd := &cobra.Command{
		Use:   "report <kind>",
		Short: "Print one report over the seed family and exit",
		Long: `Print one report over the seed family and exit.

Kinds:
  individual      lifespan of every member
  side            average lifespan per family side
  relation        average lifespan per relationship type
  side_relation   side x relationship grid
  overall         average over everyone
  custom          average for --side and/or --relation`,
		Example: `  family report side
  family report side_relation --format csv
  family report custom --side mother --relation blood --year 2024`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := engine.ParseReportKind(args[0])
			if err != nil {
				return err
			}
			q := engine.Query{Kind: kind}
			if side != "" || relation != "" {
				if kind != engine.ReportCustom {
					return errFiltersNotAllowed
				}
				if q.Filters, err = parseFilters(side, relation); err != nil {
					return err
				}
			}

			res, err := engine.Execute(q, registry.Seed(), st.yearOptions()...)
			if err != nil {
				return err
			}
			st.log.Debug("report executed", "kind", kind, "rows", len(res.Rows))
			return writeResult(st.out, res, st.format(format), shell.NewStyles(st.color()))
		},
	}
	cmd.Flags().StringVar(&side, "side", "", "Filter by side: father or mother (custom report)")
	cmd.Flags().StringVar(&relation, "relation", "", "Filter by relationship: blood or other (custom report)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: text, json, csv (default from config)")
	return cmd
}

func parseFilters(side, relation string) (engine.Filters, error) {
	var f engine.Filters
	if side != "" {
		s, err := engine.ParseSide(side)
		if err != nil {
			return f, err
		}
		f.Side = s
	}
	if relation != "" {
		r, err := engine.ParseRelation(relation)
		if err != nil {
			return f, err
		}
		f.Relation = r
	}
	return f, nil
}

// format picks the flag value when given, else the configured default.
func (st *cliState) format(flag string) string {
	if flag != "" {
		return strings.ToLower(flag)
	}
	return st.cfg.Output.Format
}

// ============================================================================
// LIST
// ============================================================================

func newListCmd(st *cliState) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the seed family members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writePeople(st.out, registry.Seed(), st.format(format), shell.NewStyles(st.color()))
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "Output format: text, json, csv (default from config)")
	return cmd
}

// ============================================================================
// VERSION
// ============================================================================

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Args:  cobra.NoArgs,
		// The version command needs no config or logger.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		PersistentPostRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "family %s\n", version)
		},
	}
}
