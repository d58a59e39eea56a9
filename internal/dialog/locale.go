package dialog

import "strings"

// DefaultLanguage is the locale a session starts in before the caller picks
// one; the restaurant's deployments default to Dutch.
const DefaultLanguage = "nl"

// languageRule maps caller input to a locale. Rules are evaluated in order;
// the first match wins, so an utterance naming several languages resolves
// deterministically.
type languageRule struct {
	match  func(string) bool
	locale string
}

var languageRules = []languageRule{
	{matchAny("1", "één", "nederlands", "dutch", "vlaams"), "nl"},
	{matchAny("2", "deux", "quatre", "français", "francais", "french", "frans"), "fr"},
	{matchAny("3", "tre", "italiano", "italian", "italiaans"), "it"},
	{matchAny("4", "four", "english", "engels", "inglese"), "en"},
}

func matchAny(tokens ...string) func(string) bool {
	return func(input string) bool {
		for _, tok := range tokens {
			if strings.Contains(input, tok) {
				return true
			}
		}
		return false
	}
}

// offTopicKeywords short-circuit generation during the task flow: the caller
// gets a fixed redirect instead of a completion call.
var offTopicKeywords = []string{
	"weer", "voetbal", "politiek", "nieuws",
	"weather", "football", "politics", "news",
	"météo", "meteo", "calcio", "politica",
}

func isOffTopic(input string) bool {
	for _, kw := range offTopicKeywords {
		if strings.Contains(input, kw) {
			return true
		}
	}
	return false
}

// welcomePrompt greets the caller; any response advances to language
// selection.
const welcomePrompt = "Welkom bij L'Osteria Deerlijk! Benvenuti! Bienvenue! Welcome!"

// languageMenuPrompt is the multilingual language menu spoken after the
// welcome and repeated when no language is recognized.
const languageMenuPrompt = "Voor Nederlands, zeg één. Pour le français, dites deux. Per l'italiano, dica tre. For English, say four."

// promptSet holds the fixed localized strings for one locale.
type promptSet struct {
	optionMenu   string
	taskGreeting string
	transfer     string
	redirect     string
	apology      string
}

var prompts = map[string]promptSet{
	"nl": {
		optionMenu:   "Zeg één om een afhaalbestelling te plaatsen, twee om te reserveren, of drie om een medewerker te spreken.",
		taskGreeting: "Prima! Wat wilt u graag bestellen? Ik help u met plezier met ons menu.",
		transfer:     "Een ogenblik alstublieft, ik verbind u door met het restaurant.",
		redirect:     "Daar kan ik u helaas niet mee helpen. Wilt u iets bestellen van ons menu?",
		apology:      "Mijn excuses, ik heb u niet goed verstaan. Kunt u dat herhalen?",
	},
	"fr": {
		optionMenu:   "Dites un pour passer une commande à emporter, deux pour réserver, ou trois pour parler à un collaborateur.",
		taskGreeting: "Très bien ! Que souhaitez-vous commander ? Je vous aide volontiers avec notre menu.",
		transfer:     "Un instant s'il vous plaît, je vous mets en relation avec le restaurant.",
		redirect:     "Je ne peux malheureusement pas vous aider avec cela. Souhaitez-vous commander un plat de notre menu ?",
		apology:      "Toutes mes excuses, je ne vous ai pas bien compris. Pouvez-vous répéter ?",
	},
	"it": {
		optionMenu:   "Dica uno per un ordine da asporto, due per prenotare, o tre per parlare con un collaboratore.",
		taskGreeting: "Perfetto! Cosa desidera ordinare? La aiuto volentieri con il nostro menu.",
		transfer:     "Un momento per favore, la collego subito con il ristorante.",
		redirect:     "Purtroppo non posso aiutarla con questo. Desidera ordinare qualcosa dal nostro menu?",
		apology:      "Mi scusi, non ho capito bene. Può ripetere per favore?",
	},
	"en": {
		optionMenu:   "Say one to place a takeaway order, two to make a reservation, or three to speak to a staff member.",
		taskGreeting: "Great! What would you like to order? I'm happy to help you with our menu.",
		transfer:     "One moment please, I'm connecting you to the restaurant.",
		redirect:     "I'm afraid I can't help you with that. Would you like to order something from our menu?",
		apology:      "My apologies, I didn't quite catch that. Could you repeat it?",
	},
}

func promptsFor(language string) promptSet {
	if p, ok := prompts[language]; ok {
		return p
	}
	return prompts[DefaultLanguage]
}

// Apology returns the fixed localized unavailable/apology message used when
// reply generation fails.
func Apology(language string) string {
	return promptsFor(language).apology
}

// TransferNotice returns the fixed localized message spoken before a call is
// handed to the human line.
func TransferNotice(language string) string {
	return promptsFor(language).transfer
}
