// Package respond turns transcribed caller utterances into assistant replies
// through the chat-completion collaborator.
package respond

import (
	"context"
	"log"
	"strings"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"

	"github.com/julienmatondotezolo/losteria-ai-receptionist-v2/internal/dialog"
	"github.com/julienmatondotezolo/losteria-ai-receptionist-v2/internal/menu"
)

// Sampling parameters are deployment constants, not per-call knobs.
const (
	temperature      = 0.7
	topP             = 0.9
	maxTokens        = 200
	frequencyPenalty = 0.1
	presencePenalty  = 0.1
	// historyWindow is how many recent turns accompany each completion
	// request; the full history stays on the session.
	historyWindow = 8
)

// Synthesizer implements dialog.Responder against the OpenAI chat API.
type Synthesizer struct {
	client   oai.Client
	model    string
	menu     *menu.Cache
	classify TransferClassifier
	enabled  bool
}

// NewSynthesizer constructs a Synthesizer. An empty apiKey disables
// generation: every turn then gets the fixed localized apology. A nil
// classifier falls back to PhraseClassifier.
func NewSynthesizer(apiKey, model string, cache *menu.Cache, classify TransferClassifier, opts ...option.RequestOption) *Synthesizer {
	if classify == nil {
		classify = PhraseClassifier
	}
	s := &Synthesizer{model: model, menu: cache, classify: classify}
	if apiKey == "" {
		log.Println("respond: no API key, reply generation disabled")
		return s
	}
	reqOpts := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	s.client = oai.NewClient(reqOpts...)
	s.enabled = true
	return s
}

// Respond implements dialog.Responder. It always appends exactly one user and
// one assistant turn to history: on collaborator failure the assistant turn
// is the fixed localized apology, so the conversation record stays
// consistent, and no transfer is signaled.
func (s *Synthesizer) Respond(ctx context.Context, userText, language string, history *dialog.History) (string, bool) {
	if !s.enabled {
		return s.apologize(userText, language, history)
	}

	snapshot := menu.Format(s.menu.GetOrRefresh(ctx, menu.DefaultMaxAge))

	messages := []oai.ChatCompletionMessageParamUnion{
		oai.SystemMessage(systemPrompt(snapshot, language)),
	}
	for _, turn := range history.LastN(historyWindow) {
		if turn.Role == "assistant" {
			messages = append(messages, oai.AssistantMessage(turn.Text))
		} else {
			messages = append(messages, oai.UserMessage(turn.Text))
		}
	}
	messages = append(messages, oai.UserMessage(userText))

	resp, err := s.client.Chat.Completions.New(ctx, oai.ChatCompletionNewParams{
		Model:            shared.ChatModel(s.model),
		Messages:         messages,
		Temperature:      param.NewOpt(temperature),
		TopP:             param.NewOpt(topP),
		MaxTokens:        param.NewOpt(int64(maxTokens)),
		FrequencyPenalty: param.NewOpt(frequencyPenalty),
		PresencePenalty:  param.NewOpt(presencePenalty),
	})
	if err != nil {
		log.Printf("respond: completion error: %v", err)
		return s.apologize(userText, language, history)
	}
	if len(resp.Choices) == 0 {
		log.Printf("respond: completion returned no choices")
		return s.apologize(userText, language, history)
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return s.apologize(userText, language, history)
	}

	history.Append("user", userText)
	history.Append("assistant", reply)
	return reply, s.classify(reply, language)
}

func (s *Synthesizer) apologize(userText, language string, history *dialog.History) (string, bool) {
	apology := dialog.Apology(language)
	history.Append("user", userText)
	history.Append("assistant", apology)
	return apology, false
}
