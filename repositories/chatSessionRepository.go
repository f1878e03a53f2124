package repositories

import (
	"ChronicStable/cache"
	"ChronicStable/models"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

// ChatSessionRepository holds session transcripts in Redis. A transcript is
// keyed by session and patient, so switching patients mid-session scopes the
// visible conversation to the newly selected patient.
type ChatSessionRepository struct {
	store *cache.Store
	ttl   time.Duration
}

func NewChatSessionRepository(store *cache.Store, ttl time.Duration) *ChatSessionRepository {
	return &ChatSessionRepository{store: store, ttl: ttl}
}

// GetTranscript returns the transcript for a session/patient pair in insertion
// order. A missing key yields an empty transcript, not an error. Reading
// refreshes the sliding expiry.
func (r *ChatSessionRepository) GetTranscript(ctx context.Context, sessionID string, patientID uint) ([]models.ChatMessage, error) {
	key := r.transcriptKey(sessionID, patientID)
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get transcript: %w", err)
	}
	if raw == "" {
		return nil, nil
	}
	var messages []models.ChatMessage
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		return nil, fmt.Errorf("failed to decode transcript: %w", err)
	}
	if err := r.store.Expire(ctx, key, r.ttl); err != nil {
		log.Printf("Failed to refresh transcript expiry: %v", err)
	}
	return messages, nil
}

// SaveTranscript stores the transcript and refreshes the sliding expiry. The
// transcript is trimmed to the newest limit messages before writing.
func (r *ChatSessionRepository) SaveTranscript(ctx context.Context, sessionID string, patientID uint, messages []models.ChatMessage, limit int) error {
	if limit > 0 && len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}
	raw, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("failed to encode transcript: %w", err)
	}
	if err := r.store.Set(ctx, r.transcriptKey(sessionID, patientID), raw, r.ttl); err != nil {
		return fmt.Errorf("failed to save transcript: %w", err)
	}
	return nil
}

// ClearTranscript drops the conversation for one session/patient pair.
func (r *ChatSessionRepository) ClearTranscript(ctx context.Context, sessionID string, patientID uint) error {
	return r.store.Delete(ctx, r.transcriptKey(sessionID, patientID))
}

// ClearSession drops every transcript belonging to a session.
func (r *ChatSessionRepository) ClearSession(ctx context.Context, sessionID string) error {
	return r.store.DeleteAll(ctx, fmt.Sprintf("chat:%s:*", sessionID))
}

func (r *ChatSessionRepository) transcriptKey(sessionID string, patientID uint) string {
	return fmt.Sprintf("chat:%s:%d", sessionID, patientID)
}
