package respond

import "strings"

// TransferClassifier decides from a generated reply whether the call should
// be handed to the human line. The default is a phrase heuristic, not an
// intent classifier; swap it out by passing a different function to
// NewSynthesizer.
type TransferClassifier func(reply, language string) bool

// transferPhrases are the escalation phrases the system prompt instructs the
// model to use, per locale. Matching is case-insensitive substring search on
// the reply in the caller's language.
var transferPhrases = map[string][]string{
	"nl": {"verbind u door", "doorverbinden", "ik weet het niet"},
	"fr": {"je vous transfère", "je vous mets en relation", "je ne sais pas"},
	"it": {"la collego", "la metto in contatto", "non lo so"},
	"en": {"connecting you", "transfer you", "i don't know"},
}

// PhraseClassifier is the default TransferClassifier.
func PhraseClassifier(reply, language string) bool {
	lower := strings.ToLower(reply)
	if strings.Contains(lower, "transfer") {
		return true
	}
	for _, phrase := range transferPhrases[language] {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
