package console

import "github.com/peterh/liner"

// Source answers read requests with a line of input.
type Source interface {
	Request(message, fallback string) string
}

// LinerSource prompts on the controlling terminal with the default
// value pre-filled, so accepting the suggestion returns it unchanged.
type LinerSource struct{}

func (LinerSource) Request(message, fallback string) string {
	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)

	prompt := message
	if prompt != "" {
		prompt += " "
	}
	line, err := state.PromptWithSuggestion(prompt, fallback, len(fallback))
	if err != nil {
		return fallback
	}
	return line
}

// StaticSource always yields the request's default value. Used for
// non-interactive runs and tests.
type StaticSource struct{}

func (StaticSource) Request(message, fallback string) string {
	return fallback
}

// ScriptedSource replays canned answers in order, then falls back to
// the defaults.
type ScriptedSource struct {
	Answers []string
	next    int
}

func (s *ScriptedSource) Request(message, fallback string) string {
	if s.next < len(s.Answers) {
		answer := s.Answers[s.next]
		s.next++
		return answer
	}
	return fallback
}
