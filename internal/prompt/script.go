package prompt

import "io"

// Script is a LineReader that replays fixed lines, then reports io.EOF.
// A suggested default is returned when the scripted line is empty.
type Script struct {
	Lines   []string
	Prompts []string
}

// NewScript returns a Script over lines.
func NewScript(lines ...string) *Script {
	return &Script{Lines: lines}
}

// Prompt implements LineReader.
func (s *Script) Prompt(prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if len(s.Lines) == 0 {
		return "", io.EOF
	}
	line := s.Lines[0]
	s.Lines = s.Lines[1:]
	return line, nil
}

// PromptWithSuggestion implements LineReader.
func (s *Script) PromptWithSuggestion(prompt, text string, _ int) (string, error) {
	line, err := s.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if line == "" {
		return text, nil
	}
	return line, nil
}
