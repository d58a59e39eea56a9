package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	HTTPAddress string
	// PublicHost is the externally reachable host used when building the
	// wss:// media stream URL handed to Twilio.
	PublicHost string

	TwilioAccountSID string
	TwilioAuthToken  string
	// RestaurantPhone is the human-staffed line calls are transferred to.
	RestaurantPhone string

	OpenAIKey    string
	ChatModelID  string
	WhisperModel string

	TTSProvider     string // "cartesia" or "deepgram"
	CartesiaKey     string
	CartesiaVoiceID string
	DeepgramKey     string
	DeepgramModel   string

	MenuAPIURL string

	DefaultLanguage    string
	SkipLanguageSelect bool

	SupabaseURL            string
	SupabaseServiceRoleKey string
	SupabaseBucket         string
}

// Load reads environment variables and returns Config with sane defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading it: %v", err)
	}

	addr := getEnv("HTTP_ADDRESS", ":8080")

	openAIKey := os.Getenv("OPENAI_API_KEY")
	if openAIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set - transcription and reply generation will not work")
	}

	twilioSID := os.Getenv("TWILIO_ACCOUNT_SID")
	twilioToken := os.Getenv("TWILIO_AUTH_TOKEN")
	if twilioSID == "" || twilioToken == "" {
		log.Println("Warning: TWILIO_ACCOUNT_SID/TWILIO_AUTH_TOKEN not set - webhook validation and call transfer will not work")
	}

	provider := strings.ToLower(getEnv("TTS_PROVIDER", "cartesia"))
	cartesiaKey := os.Getenv("CARTESIA_API_KEY")
	deepgramKey := os.Getenv("DEEPGRAM_API_KEY")
	if provider == "cartesia" && cartesiaKey == "" {
		log.Println("Warning: CARTESIA_API_KEY not set - TTS will not work")
	}
	if provider == "deepgram" && deepgramKey == "" {
		log.Println("Warning: DEEPGRAM_API_KEY not set - TTS will not work")
	}

	cfg := Config{
		HTTPAddress:            addr,
		PublicHost:             os.Getenv("PUBLIC_HOST"),
		TwilioAccountSID:       twilioSID,
		TwilioAuthToken:        twilioToken,
		RestaurantPhone:        getEnv("RESTAURANT_PHONE", "+32562563983"),
		OpenAIKey:              openAIKey,
		ChatModelID:            getEnv("CHAT_MODEL_ID", "gpt-4o"),
		WhisperModel:           getEnv("WHISPER_MODEL_ID", "whisper-1"),
		TTSProvider:            provider,
		CartesiaKey:            cartesiaKey,
		CartesiaVoiceID:        getEnv("CARTESIA_VOICE_ID", "a0e99841-438c-4a64-b679-ae501e7d6091"),
		DeepgramKey:            deepgramKey,
		DeepgramModel:          getEnv("DEEPGRAM_MODEL_ID", "aura-2-thalia-en"),
		MenuAPIURL:             os.Getenv("MENU_API_URL"),
		DefaultLanguage:        getEnv("DEFAULT_LANGUAGE", "nl"),
		SkipLanguageSelect:     getEnv("SKIP_LANGUAGE_SELECT", "false") == "true",
		SupabaseURL:            os.Getenv("SUPABASE_URL"),
		SupabaseServiceRoleKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		SupabaseBucket:         getEnv("SUPABASE_BUCKET", "call-transcripts"),
	}

	log.Printf("config: HTTP_ADDRESS=%s TTS_PROVIDER=%s DEFAULT_LANGUAGE=%s", cfg.HTTPAddress, cfg.TTSProvider, cfg.DefaultLanguage)
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
