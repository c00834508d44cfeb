package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ttrampp/Family-Lifespan-Analyzer/engine"
)

// Prompter reads validated answers from a line-oriented input. Every method
// re-asks until the answer is acceptable and returns io.EOF once the input
// is exhausted.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	styles *Styles
}

// NewPrompter creates a prompter reading from in and writing prompts and
// complaints to out. A nil styles means plain output.
func NewPrompter(in io.Reader, out io.Writer, styles *Styles) *Prompter {
	if styles == nil {
		styles = NewStyles(false)
	}
	return &Prompter{in: bufio.NewReader(in), out: out, styles: styles}
}

// line writes prompt and returns the next input line, trimmed.
func (p *Prompter) line(prompt string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", prompt)
	text, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && text != "" {
			return strings.TrimSpace(text), nil
		}
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (p *Prompter) complain(format string, args ...interface{}) {
	fmt.Fprintln(p.out, p.styles.Error(fmt.Sprintf(format, args...)))
}

// Text asks until a non-empty answer is given.
func (p *Prompter) Text(prompt string) (string, error) {
	for {
		text, err := p.line(prompt)
		if err != nil {
			return "", err
		}
		if text != "" {
			return text, nil
		}
		p.complain("A value is required.")
	}
}

// Int asks for a whole number in [min, max].
func (p *Prompter) Int(prompt string, min, max int) (int, error) {
	for {
		text, err := p.line(fmt.Sprintf("%s (%d-%d)", prompt, min, max))
		if err != nil {
			return 0, err
		}
		n, ok := p.parseInt(text, min, max)
		if ok {
			return n, nil
		}
	}
}

// OptionalInt is Int where a blank answer means "none" and returns nil.
func (p *Prompter) OptionalInt(prompt string, min, max int) (*int, error) {
	for {
		text, err := p.line(fmt.Sprintf("%s (%d-%d, blank for none)", prompt, min, max))
		if err != nil {
			return nil, err
		}
		if text == "" {
			return nil, nil
		}
		n, ok := p.parseInt(text, min, max)
		if ok {
			return &n, nil
		}
	}
}

func (p *Prompter) parseInt(text string, min, max int) (int, bool) {
	n, err := strconv.Atoi(text)
	if err != nil {
		p.complain("%q is not a whole number.", text)
		return 0, false
	}
	if n < min || n > max {
		p.complain("Enter a number between %d and %d.", min, max)
		return 0, false
	}
	return n, true
}

// Choice asks for one of a fixed set of menu numbers.
func (p *Prompter) Choice(prompt string, min, max int) (int, error) {
	for {
		text, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		if n, ok := p.parseInt(text, min, max); ok {
			return n, nil
		}
	}
}

// Side asks for father or mother.
func (p *Prompter) Side(prompt string) (engine.Side, error) {
	for {
		text, err := p.line(prompt + " (father/mother)")
		if err != nil {
			return "", err
		}
		s, perr := engine.ParseSide(text)
		if perr == nil {
			return s, nil
		}
		p.complain("Please answer father or mother.")
	}
}

// OptionalSide is Side where a blank answer means "any side".
func (p *Prompter) OptionalSide(prompt string) (engine.Side, error) {
	for {
		text, err := p.line(prompt + " (father/mother, blank for any)")
		if err != nil || text == "" {
			return "", err
		}
		s, perr := engine.ParseSide(text)
		if perr == nil {
			return s, nil
		}
		p.complain("Please answer father, mother or leave blank.")
	}
}

// Relation asks for blood or other.
func (p *Prompter) Relation(prompt string) (engine.Relation, error) {
	for {
		text, err := p.line(prompt + " (blood/other)")
		if err != nil {
			return "", err
		}
		r, perr := engine.ParseRelation(text)
		if perr == nil {
			return r, nil
		}
		p.complain("Please answer blood or other.")
	}
}

// OptionalRelation is Relation where a blank answer means "any relation".
func (p *Prompter) OptionalRelation(prompt string) (engine.Relation, error) {
	for {
		text, err := p.line(prompt + " (blood/other, blank for any)")
		if err != nil || text == "" {
			return "", err
		}
		r, perr := engine.ParseRelation(text)
		if perr == nil {
			return r, nil
		}
		p.complain("Please answer blood, other or leave blank.")
	}
}

// Confirm asks a yes/no question. Anything but y/yes is a no.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	text, err := p.line(prompt + " [y/N]")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(text) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
