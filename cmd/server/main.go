package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienmatondotezolo/losteria-ai-receptionist-v2/internal/config"
	"github.com/julienmatondotezolo/losteria-ai-receptionist-v2/internal/dialog"
	"github.com/julienmatondotezolo/losteria-ai-receptionist-v2/internal/httpserver"
	"github.com/julienmatondotezolo/losteria-ai-receptionist-v2/internal/menu"
	"github.com/julienmatondotezolo/losteria-ai-receptionist-v2/internal/respond"
	"github.com/julienmatondotezolo/losteria-ai-receptionist-v2/internal/session"
	"github.com/julienmatondotezolo/losteria-ai-receptionist-v2/internal/storage"
	"github.com/julienmatondotezolo/losteria-ai-receptionist-v2/internal/telephony"
	"github.com/julienmatondotezolo/losteria-ai-receptionist-v2/internal/transcribe"
	"github.com/julienmatondotezolo/losteria-ai-receptionist-v2/internal/tts"
)

func main() {
	// Include sub-second precision in all log timestamps
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)

	cfg := config.Load()

	var menuFetcher menu.Fetcher
	if cfg.MenuAPIURL != "" {
		menuFetcher = menu.NewClient(cfg.MenuAPIURL)
	} else {
		log.Println("MENU_API_URL not set - replies will not include the current menu")
	}
	menuCache := menu.NewCache(menuFetcher)

	transcriber := transcribe.New(cfg.OpenAIKey, cfg.WhisperModel)
	responder := respond.NewSynthesizer(cfg.OpenAIKey, cfg.ChatModelID, menuCache, nil)

	var speech tts.Synthesizer
	switch cfg.TTSProvider {
	case "deepgram":
		speech = tts.NewDeepgramClient(cfg.DeepgramKey, cfg.DeepgramModel)
	default:
		speech = tts.NewCartesiaClient(cfg.CartesiaKey, cfg.CartesiaVoiceID)
	}

	twilioSvc := telephony.NewService(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.PublicHost, cfg.RestaurantPhone)

	archive := storage.New(storage.Config{
		URL:            cfg.SupabaseURL,
		ServiceRoleKey: cfg.SupabaseServiceRoleKey,
		Bucket:         cfg.SupabaseBucket,
	})

	manager := session.NewManager(
		session.NewRegistry(),
		dialog.NewMachine(responder),
		transcriber,
		speech,
		twilioSvc,
		archive,
		cfg.DefaultLanguage,
		cfg.SkipLanguageSelect,
	)

	e := httpserver.New(twilioSvc, manager)

	server := &http.Server{
		Addr:              cfg.HTTPAddress,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("server listening on %s", cfg.HTTPAddress)
		serverErrors <- server.ListenAndServe()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	case sig := <-sigChan:
		log.Printf("shutdown signal received: %v", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
		_ = server.Close()
	}
}
