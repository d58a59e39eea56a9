package dialog

import (
	"context"
	"strings"
)

// Phase is the current node of the per-call dialog state machine.
type Phase int

const (
	Welcome Phase = iota
	LanguageSelect
	MenuSelect
	TaskFlow
	Transfer
)

func (p Phase) String() string {
	switch p {
	case Welcome:
		return "welcome"
	case LanguageSelect:
		return "language-select"
	case MenuSelect:
		return "menu-select"
	case TaskFlow:
		return "task-flow"
	case Transfer:
		return "transfer"
	}
	return "unknown"
}

// Responder produces an open-ended reply for the task flow and reports
// whether the conversation should be handed to a human. Implementations must
// recover collaborator failures internally (fixed apology, no transfer) and
// always append exactly one user and one assistant turn to history.
type Responder interface {
	Respond(ctx context.Context, userText, language string, history *History) (reply string, transfer bool)
}

// Outcome is the result of advancing the state machine by one caller input.
type Outcome struct {
	Phase    Phase
	Language string
	Reply    string
	// Transfer is set when the call must be redirected to the human line
	// after the reply has been spoken.
	Transfer bool
}

// Machine maps (phase, caller input) to a transition and a reply. It holds no
// per-call state; phase, language and history belong to the session.
type Machine struct {
	responder Responder
}

// NewMachine creates a state machine delegating open-ended turns to r.
func NewMachine(r Responder) *Machine {
	return &Machine{responder: r}
}

// Greeting returns what the assistant speaks when the media stream starts,
// before the caller has said anything.
func (m *Machine) Greeting(phase Phase, language string) string {
	if phase == TaskFlow {
		return promptsFor(language).taskGreeting
	}
	return welcomePrompt
}

// Advance consumes one transcribed caller utterance and yields the next
// phase, the (possibly re-selected) language and the reply to speak.
// Matching is substring based and case-insensitive; within a phase the first
// satisfied branch wins.
func (m *Machine) Advance(ctx context.Context, phase Phase, language string, history *History, input string) Outcome {
	in := strings.ToLower(strings.TrimSpace(input))

	switch phase {
	case Welcome:
		return Outcome{Phase: LanguageSelect, Language: language, Reply: languageMenuPrompt}

	case LanguageSelect:
		for _, rule := range languageRules {
			if rule.match(in) {
				return Outcome{Phase: MenuSelect, Language: rule.locale, Reply: promptsFor(rule.locale).optionMenu}
			}
		}
		return Outcome{Phase: LanguageSelect, Language: language, Reply: languageMenuPrompt}

	case MenuSelect:
		p := promptsFor(language)
		switch {
		case strings.Contains(in, "1"):
			return Outcome{Phase: TaskFlow, Language: language, Reply: p.taskGreeting}
		case strings.Contains(in, "2"), strings.Contains(in, "3"):
			return Outcome{Phase: Transfer, Language: language, Reply: p.transfer, Transfer: true}
		default:
			return Outcome{Phase: MenuSelect, Language: language, Reply: p.optionMenu}
		}

	case TaskFlow:
		if isOffTopic(in) {
			return Outcome{Phase: TaskFlow, Language: language, Reply: promptsFor(language).redirect}
		}
		reply, transfer := m.responder.Respond(ctx, input, language, history)
		next := TaskFlow
		if transfer {
			next = Transfer
		}
		return Outcome{Phase: next, Language: language, Reply: reply, Transfer: transfer}

	case Transfer:
		// No further dialog; the session awaits call teardown.
		return Outcome{Phase: Transfer, Language: language}
	}

	return Outcome{Phase: phase, Language: language}
}
