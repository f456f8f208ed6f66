// Package prompt asks the user for structured answers on the terminal.
//
// A command describes what it needs as a list of Questions; an Asker
// collects one validated answer per question. Terminal is the interactive
// implementation backed by liner. Script feeds canned lines to a Terminal
// in tests and non-interactive runs.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peterh/liner"
)

// ErrAborted is returned when the user cancels a prompt (Ctrl+C or EOF).
var ErrAborted = errors.New("prompt aborted")

// Kind selects how a question's raw input is interpreted.
type Kind int

const (
	// Input accepts free text.
	Input Kind = iota
	// Select accepts one of Choices, by 1-based number or by name.
	Select
	// Numeral accepts a non-negative integer; empty input means 0.
	Numeral
)

// Question is one item to ask.
type Question struct {
	Kind    Kind
	Name    string
	Message string
	Choices []string
	Default string
	// Validate checks the final Input value. Ignored for other kinds.
	Validate func(string) error
}

// Answers maps question names to their values: string for Input and
// Select, int for Numeral.
type Answers map[string]any

// String returns a text answer, or "" when absent.
func (a Answers) String(name string) string {
	s, _ := a[name].(string)
	return s
}

// Int returns a numeral answer, or 0 when absent.
func (a Answers) Int(name string) int {
	n, _ := a[name].(int)
	return n
}

// Asker collects answers for a list of questions.
type Asker interface {
	Ask(questions []Question) (Answers, error)
}

// LineReader reads one line of input after showing a prompt.
// *liner.State satisfies it.
type LineReader interface {
	Prompt(prompt string) (string, error)
	PromptWithSuggestion(prompt, text string, pos int) (string, error)
}

// Terminal asks questions line by line, re-asking until the input is valid.
type Terminal struct {
	in     LineReader
	out    io.Writer
	closer io.Closer
}

// NewTerminal opens an interactive terminal prompt. Call Close when done
// to restore the terminal mode.
func NewTerminal(out io.Writer) *Terminal {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &Terminal{in: state, out: out, closer: state}
}

// New creates a Terminal reading from in. Useful with Script.
func New(in LineReader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

// Close releases the underlying terminal, if any.
func (t *Terminal) Close() error {
	if t.closer == nil {
		return nil
	}
	return t.closer.Close()
}

// Ask implements Asker.
func (t *Terminal) Ask(questions []Question) (Answers, error) {
	answers := make(Answers, len(questions))
	for _, q := range questions {
		v, err := t.askOne(q)
		if err != nil {
			return nil, err
		}
		answers[q.Name] = v
	}
	return answers, nil
}

func (t *Terminal) askOne(q Question) (any, error) {
	if q.Kind == Select {
		for i, choice := range q.Choices {
			fmt.Fprintf(t.out, "  %d) %s\n", i+1, choice)
		}
	}

	label := fmt.Sprintf("? %s: ", q.Message)
	for {
		line, err := t.readLine(label, q.Default)
		if err != nil {
			return nil, err
		}

		v, err := resolve(q, line)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(t.out, "  ✗ %v\n", err)
	}
}

func (t *Terminal) readLine(label, suggestion string) (string, error) {
	var line string
	var err error
	if suggestion != "" {
		line, err = t.in.PromptWithSuggestion(label, suggestion, -1)
	} else {
		line, err = t.in.Prompt(label)
	}
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return line, nil
}

// resolve turns one raw line into the answer value for q.
func resolve(q Question, line string) (any, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		line = q.Default
	}

	switch q.Kind {
	case Select:
		return resolveChoice(q.Choices, line)
	case Numeral:
		return ParseNumeral(line)
	default:
		if q.Validate != nil {
			if err := q.Validate(line); err != nil {
				return nil, err
			}
		}
		return line, nil
	}
}

func resolveChoice(choices []string, line string) (string, error) {
	if line == "" {
		return "", errors.New("pick one of the listed options")
	}
	if n, err := strconv.Atoi(line); err == nil {
		if n < 1 || n > len(choices) {
			return "", fmt.Errorf("choose a number between 1 and %d", len(choices))
		}
		return choices[n-1], nil
	}
	for _, choice := range choices {
		if strings.EqualFold(choice, line) {
			return choice, nil
		}
	}
	return "", fmt.Errorf("%q is not one of %s", line, strings.Join(choices, ", "))
}

// ParseNumeral parses a non-negative integer. Empty input is 0.
func ParseNumeral(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("must not be negative, got %d", n)
	}
	return n, nil
}
