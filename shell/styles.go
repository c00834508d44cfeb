package shell

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Palette: family-tree greens with amber and red for warnings and errors.
var (
	ColorLeaf    = lipgloss.Color("#7BC67B")
	ColorBark    = lipgloss.Color("#8C6A4F")
	ColorMoss    = lipgloss.Color("#4E7D4E")
	ColorMuted   = lipgloss.Color("#6B7B6B")
	ColorWarning = lipgloss.Color("#F4D03F")
	ColorError   = lipgloss.Color("#E74C3C")
)

// Styles renders shell output. With Plain set every method returns its
// input unchanged, which keeps piped output and tests free of escapes.
type Styles struct {
	Plain bool

	title   lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	border  lipgloss.Style
	header  lipgloss.Style
}

// NewStyles returns colored styles, or plain ones when color is false.
func NewStyles(color bool) *Styles {
	return &Styles{
		Plain:   !color,
		title:   lipgloss.NewStyle().Bold(true).Foreground(ColorLeaf),
		muted:   lipgloss.NewStyle().Foreground(ColorMuted),
		success: lipgloss.NewStyle().Foreground(ColorLeaf),
		warning: lipgloss.NewStyle().Foreground(ColorWarning),
		err:     lipgloss.NewStyle().Foreground(ColorError),
		border:  lipgloss.NewStyle().Foreground(ColorBark),
		header:  lipgloss.NewStyle().Bold(true).Foreground(ColorMoss),
	}
}

// ColorEnabled reports whether f is an interactive terminal and color was
// not switched off.
func ColorEnabled(f *os.File, want bool) bool {
	if !want || f == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (s *Styles) render(st lipgloss.Style, text string) string {
	if s.Plain {
		return text
	}
	return st.Render(text)
}

func (s *Styles) Title(text string) string   { return s.render(s.title, text) }
func (s *Styles) Muted(text string) string   { return s.render(s.muted, text) }
func (s *Styles) Success(text string) string { return s.render(s.success, text) }
func (s *Styles) Warning(text string) string { return s.render(s.warning, text) }
func (s *Styles) Error(text string) string   { return s.render(s.err, text) }
