// Package storage archives finished call transcripts to Supabase storage.
package storage

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/supabase-community/supabase-go"

	"github.com/julienmatondotezolo/losteria-ai-receptionist-v2/internal/dialog"
)

// Archive persists a call transcript after the call ends.
type Archive interface {
	ArchiveTranscript(callID string, turns []dialog.Turn) error
}

// Config holds the Supabase connection settings.
type Config struct {
	URL            string
	ServiceRoleKey string
	Bucket         string
}

// SupabaseArchive uploads transcripts as plain-text objects. When the
// connection settings are incomplete it stays disabled and archiving is a
// no-op, so a missing bucket never takes calls down.
type SupabaseArchive struct {
	client *supabase.Client
	bucket string
}

// New constructs the archive, or a disabled one when config is incomplete.
func New(config Config) *SupabaseArchive {
	if config.URL == "" || config.ServiceRoleKey == "" {
		log.Printf("WARNING: Supabase not configured, transcript archiving disabled")
		return &SupabaseArchive{}
	}

	client, err := supabase.NewClient(config.URL, config.ServiceRoleKey, &supabase.ClientOptions{})
	if err != nil {
		log.Printf("WARNING: Failed to create Supabase client, transcript archiving disabled: %v", err)
		return &SupabaseArchive{}
	}

	return &SupabaseArchive{
		client: client,
		bucket: config.Bucket,
	}
}

// Enabled reports whether transcripts will actually be uploaded.
func (s *SupabaseArchive) Enabled() bool { return s.client != nil }

// ArchiveTranscript uploads the conversation as one text object keyed by
// call ID and completion time.
func (s *SupabaseArchive) ArchiveTranscript(callID string, turns []dialog.Turn) error {
	if s.client == nil {
		return nil
	}
	if len(turns) == 0 {
		return nil
	}

	key := fmt.Sprintf("transcripts/%s_%d.txt", callID, time.Now().Unix())
	_, err := s.client.Storage.UploadFile(s.bucket, key, bytes.NewReader([]byte(FormatTranscript(turns))))
	if err != nil {
		return fmt.Errorf("failed to upload transcript to Supabase: %w", err)
	}
	return nil
}

// FormatTranscript renders turns as "role: text" lines.
func FormatTranscript(turns []dialog.Turn) string {
	var b strings.Builder
	for _, turn := range turns {
		b.WriteString(turn.Role)
		b.WriteString(": ")
		b.WriteString(turn.Text)
		b.WriteString("\n")
	}
	return b.String()
}
