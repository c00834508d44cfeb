// Package shell is the interactive console: a numbered menu over a
// registry, with prompts that re-ask until input is valid.
package shell

import (
	"errors"
	"fmt"
	"io"

	"github.com/ttrampp/Family-Lifespan-Analyzer/engine"
	"github.com/ttrampp/Family-Lifespan-Analyzer/logger"
	"github.com/ttrampp/Family-Lifespan-Analyzer/registry"
)

// Options configures a Session.
type Options struct {
	Year    int  // current year for lifespans and the upper input bound
	MinYear int  // lower bound for birth and death years
	Color   bool // styled output
	Logger  *logger.Logger
}

// Session runs the menu loop over one registry.
type Session struct {
	reg     *registry.Registry
	prompt  *Prompter
	out     io.Writer
	styles  *Styles
	log     *logger.Logger
	year    int
	minYear int
}

type menuItem struct {
	key    int
	label  string
	action func(*Session) error
}

var menu = []menuItem{
	{1, "List family members", (*Session).listMembers},
	{2, "Add a family member", (*Session).addMember},
	{3, "Remove a family member", (*Session).removeMember},
	{4, "Show individual lifespans", report(engine.ReportIndividual)},
	{5, "Average lifespan by side", report(engine.ReportBySide)},
	{6, "Average lifespan by relationship type", report(engine.ReportByRelation)},
	{7, "Average lifespan by side and relationship type", report(engine.ReportSideRelation)},
	{8, "Overall average lifespan", report(engine.ReportOverall)},
	{9, "Average lifespan for a custom filter", (*Session).customAverage},
}

const quitKey = 0

// NewSession wires a session to its input and output.
func NewSession(reg *registry.Registry, in io.Reader, out io.Writer, opts Options) *Session {
	styles := NewStyles(opts.Color)
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	year := opts.Year
	if year <= 0 {
		year = engine.CurrentYear()
	}
	minYear := opts.MinYear
	if minYear <= 0 || minYear > year {
		if opts.MinYear != 0 {
			log.Warn("minimum birth year out of range, using default",
				"min_year", opts.MinYear, "year", year, "default", year-150)
		}
		minYear = year - 150
	}
	return &Session{
		reg:     reg,
		prompt:  NewPrompter(in, out, styles),
		out:     out,
		styles:  styles,
		log:     log,
		year:    year,
		minYear: minYear,
	}
}

// Run shows the menu until the user quits or input ends. Running out of
// input is a normal way to leave and is not reported as an error.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, s.styles.Title("Family Lifespan Analyzer"))
	for {
		s.printMenu()
		choice, err := s.prompt.Choice("Choose an option", quitKey, len(menu))
		if err != nil {
			return s.finish(err)
		}
		if choice == quitKey {
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		}
		item := menu[choice-1]
		s.log.Debug("menu action", "choice", choice, "action", item.label)
		fmt.Fprintln(s.out)
		if err := item.action(s); err != nil {
			if !errors.Is(err, io.EOF) {
				s.log.Error("menu action failed", "action", item.label, "error", err)
			}
			return s.finish(err)
		}
		fmt.Fprintln(s.out)
	}
}

func (s *Session) finish(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out)
		return nil
	}
	return err
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.out, s.styles.Muted(fmt.Sprintf("%d members, year %d", s.reg.Len(), s.year)))
	for _, item := range menu {
		fmt.Fprintf(s.out, "  %d) %s\n", item.key, item.label)
	}
	fmt.Fprintf(s.out, "  %d) Quit\n", quitKey)
}

func (s *Session) listMembers() error {
	RenderPeople(s.out, s.reg.People(), s.styles)
	return nil
}

func (s *Session) addMember() error {
	name, err := s.prompt.Text("Name")
	if err != nil {
		return err
	}
	side, err := s.prompt.Side("Side")
	if err != nil {
		return err
	}
	birth, err := s.prompt.Int("Birth year", s.minYear, s.year)
	if err != nil {
		return err
	}
	death, err := s.prompt.OptionalInt("Death year", s.minYear, s.year)
	if err != nil {
		return err
	}
	rel, err := s.prompt.Relation("Relationship")
	if err != nil {
		return err
	}

	p, err := engine.NewPerson(name, side, birth, death, rel)
	if err != nil {
		fmt.Fprintln(s.out, s.styles.Error(err.Error()))
		return nil
	}
	s.reg.Add(p)
	s.log.Info("member added", "name", p.Name, "side", p.Side, "relation", p.Relation)

	fmt.Fprintln(s.out, s.styles.Success("Added "+engine.FormatPerson(p)+"."))
	if _, ok := engine.LifespanYears(p, s.year); !ok {
		fmt.Fprintln(s.out, s.styles.Warning("Death year is before birth year; this member is left out of averages."))
	}
	return nil
}

func (s *Session) removeMember() error {
	name, err := s.prompt.Text("Name to remove")
	if err != nil {
		return err
	}
	p, ok := s.reg.Find(name)
	if !ok {
		fmt.Fprintln(s.out, s.styles.Warning(fmt.Sprintf("No family member named %q.", name)))
		return nil
	}
	yes, err := s.prompt.Confirm(fmt.Sprintf("Remove %s?", engine.FormatPerson(p)))
	if err != nil {
		return err
	}
	if !yes {
		fmt.Fprintln(s.out, s.styles.Muted(fmt.Sprintf("Kept %s.", p.Name)))
		return nil
	}
	s.reg.Remove(p.Name)
	s.log.Info("member removed", "name", p.Name)
	fmt.Fprintln(s.out, s.styles.Success(fmt.Sprintf("Removed %s.", p.Name)))
	return nil
}

func (s *Session) customAverage() error {
	side, err := s.prompt.OptionalSide("Side")
	if err != nil {
		return err
	}
	rel, err := s.prompt.OptionalRelation("Relationship")
	if err != nil {
		return err
	}
	return s.runReport(engine.Query{
		Kind:    engine.ReportCustom,
		Filters: engine.Filters{Side: side, Relation: rel},
	})
}

func report(kind engine.ReportKind) func(*Session) error {
	return func(s *Session) error {
		return s.runReport(engine.Query{Kind: kind})
	}
}

func (s *Session) runReport(q engine.Query) error {
	res, err := engine.Execute(q, s.reg.People(), engine.WithCurrentYear(s.year))
	if err != nil {
		return err
	}
	s.log.Debug("report executed", "kind", q.Kind, "rows", len(res.Rows))
	RenderResult(s.out, res, s.styles)
	return nil
}
