package dialog

import (
	"context"
	"strings"
	"testing"
)

type fakeResponder struct {
	reply    string
	transfer bool
	calls    int
}

func (f *fakeResponder) Respond(ctx context.Context, userText, language string, history *History) (string, bool) {
	f.calls++
	history.Append("user", userText)
	history.Append("assistant", f.reply)
	return f.reply, f.transfer
}

func TestAdvance_WelcomeAlwaysEmitsLanguageMenu(t *testing.T) {
	m := NewMachine(&fakeResponder{})
	for _, input := range []string{"hallo", "", "qualcosa", "1"} {
		out := m.Advance(context.Background(), Welcome, "nl", &History{}, input)
		if out.Phase != LanguageSelect {
			t.Fatalf("input %q: expected LanguageSelect, got %v", input, out.Phase)
		}
		if out.Reply != languageMenuPrompt {
			t.Fatalf("input %q: expected language menu prompt", input)
		}
	}
}

func TestAdvance_LanguageSelection(t *testing.T) {
	m := NewMachine(&fakeResponder{})
	cases := []struct {
		input string
		want  string
	}{
		{"één, alstublieft... 1", "nl"},
		{"Nederlands graag", "nl"},
		{"deux", "fr"},
		{"FRANÇAIS", "fr"},
		{"italiano per favore", "it"},
		{"English please", "en"},
	}
	for _, tc := range cases {
		out := m.Advance(context.Background(), LanguageSelect, "nl", &History{}, tc.input)
		if out.Phase != MenuSelect {
			t.Fatalf("input %q: expected MenuSelect, got %v", tc.input, out.Phase)
		}
		if out.Language != tc.want {
			t.Fatalf("input %q: expected language %q, got %q", tc.input, tc.want, out.Language)
		}
		if out.Reply != prompts[tc.want].optionMenu {
			t.Fatalf("input %q: expected localized option menu", tc.input)
		}
	}
}

func TestAdvance_LanguageSelectFirstMatchWins(t *testing.T) {
	m := NewMachine(&fakeResponder{})
	// Both a Dutch and a French token appear; the earlier rule must win.
	out := m.Advance(context.Background(), LanguageSelect, "nl", &History{}, "nederlands ou français")
	if out.Language != "nl" {
		t.Fatalf("expected first rule (nl) to win, got %q", out.Language)
	}
}

func TestAdvance_LanguageSelectReprompt(t *testing.T) {
	m := NewMachine(&fakeResponder{})
	out := m.Advance(context.Background(), LanguageSelect, "nl", &History{}, "zzz")
	if out.Phase != LanguageSelect || out.Reply != languageMenuPrompt {
		t.Fatalf("expected re-prompt in LanguageSelect, got phase=%v", out.Phase)
	}
}

func TestAdvance_MenuSelectOptionOneDutch(t *testing.T) {
	m := NewMachine(&fakeResponder{})
	out := m.Advance(context.Background(), MenuSelect, "nl", &History{}, "1")
	if out.Phase != TaskFlow {
		t.Fatalf("expected TaskFlow, got %v", out.Phase)
	}
	if out.Reply != prompts["nl"].taskGreeting {
		t.Fatalf("expected fixed Dutch task greeting, got %q", out.Reply)
	}
	if out.Transfer {
		t.Fatalf("option 1 must not trigger a transfer")
	}
}

func TestAdvance_MenuSelectOptionTwoTransfers(t *testing.T) {
	m := NewMachine(&fakeResponder{})
	for _, input := range []string{"2", "optie 3 graag"} {
		out := m.Advance(context.Background(), MenuSelect, "nl", &History{}, input)
		if out.Phase != Transfer || !out.Transfer {
			t.Fatalf("input %q: expected transfer outcome, got phase=%v transfer=%v", input, out.Phase, out.Transfer)
		}
		if out.Reply != prompts["nl"].transfer {
			t.Fatalf("input %q: expected localized transfer notice", input)
		}
	}
}

func TestAdvance_MenuSelectReprompt(t *testing.T) {
	m := NewMachine(&fakeResponder{})
	out := m.Advance(context.Background(), MenuSelect, "fr", &History{}, "je ne sais pas")
	if out.Phase != MenuSelect || out.Reply != prompts["fr"].optionMenu {
		t.Fatalf("expected localized option re-prompt, got phase=%v reply=%q", out.Phase, out.Reply)
	}
}

func TestAdvance_TaskFlowOffTopicSkipsGeneration(t *testing.T) {
	r := &fakeResponder{reply: "should not be used"}
	m := NewMachine(r)
	out := m.Advance(context.Background(), TaskFlow, "nl", &History{}, "Wat wordt het weer morgen?")
	if r.calls != 0 {
		t.Fatalf("expected no responder call for off-topic input, got %d", r.calls)
	}
	if out.Phase != TaskFlow || out.Reply != prompts["nl"].redirect {
		t.Fatalf("expected fixed redirect reply, got phase=%v reply=%q", out.Phase, out.Reply)
	}
}

func TestAdvance_TaskFlowDelegates(t *testing.T) {
	r := &fakeResponder{reply: "Onze lasagne is heerlijk."}
	m := NewMachine(r)
	h := &History{}
	out := m.Advance(context.Background(), TaskFlow, "nl", h, "Hebben jullie lasagne?")
	if r.calls != 1 {
		t.Fatalf("expected one responder call, got %d", r.calls)
	}
	if out.Phase != TaskFlow || out.Reply != r.reply || out.Transfer {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	if h.Len() != 2 {
		t.Fatalf("expected history to grow by 2, got %d", h.Len())
	}
}

func TestAdvance_TaskFlowTransferSignal(t *testing.T) {
	r := &fakeResponder{reply: "Ik verbind u door.", transfer: true}
	m := NewMachine(r)
	out := m.Advance(context.Background(), TaskFlow, "nl", &History{}, "Ik wil de eigenaar spreken")
	if out.Phase != Transfer || !out.Transfer {
		t.Fatalf("expected transition to Transfer, got %+v", out)
	}
}

func TestAdvance_TransferAbsorbs(t *testing.T) {
	r := &fakeResponder{reply: "nope"}
	m := NewMachine(r)
	out := m.Advance(context.Background(), Transfer, "nl", &History{}, "hallo?")
	if out.Phase != Transfer || out.Reply != "" || out.Transfer {
		t.Fatalf("expected silent absorbing state, got %+v", out)
	}
	if r.calls != 0 {
		t.Fatalf("no generation calls may happen after transfer, got %d", r.calls)
	}
}

func TestAdvance_Deterministic(t *testing.T) {
	m := NewMachine(&fakeResponder{})
	a := m.Advance(context.Background(), MenuSelect, "it", &History{}, "1")
	b := m.Advance(context.Background(), MenuSelect, "it", &History{}, "1")
	if a != b {
		t.Fatalf("same (phase, input) produced different outcomes: %+v vs %+v", a, b)
	}
}

func TestGreeting(t *testing.T) {
	m := NewMachine(&fakeResponder{})
	if g := m.Greeting(Welcome, "nl"); g != welcomePrompt {
		t.Fatalf("expected multilingual welcome, got %q", g)
	}
	if g := m.Greeting(TaskFlow, "it"); g != prompts["it"].taskGreeting {
		t.Fatalf("expected Italian task greeting in direct task-flow mode, got %q", g)
	}
}

func TestHistory_LastN(t *testing.T) {
	h := &History{}
	for i := 0; i < 10; i++ {
		h.Append("user", "u")
		h.Append("assistant", "a")
	}
	if got := len(h.LastN(8)); got != 8 {
		t.Fatalf("expected 8 turns, got %d", got)
	}
	if got := len(h.LastN(100)); got != 20 {
		t.Fatalf("expected all 20 turns, got %d", got)
	}
}

func TestApologyFallsBackToDutch(t *testing.T) {
	if Apology("xx") != prompts["nl"].apology {
		t.Fatalf("unknown locale must fall back to the default language")
	}
	if !strings.Contains(TransferNotice("it"), "ristorante") {
		t.Fatalf("expected Italian transfer notice")
	}
}
