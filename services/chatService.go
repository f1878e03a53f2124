package services

import (
	"ChronicStable/llm"
	"ChronicStable/models"
	"context"
	"time"
)

// TranscriptStore holds per-session, per-patient conversation state.
// Implemented by repositories.ChatSessionRepository on top of Redis.
type TranscriptStore interface {
	GetTranscript(ctx context.Context, sessionID string, patientID uint) ([]models.ChatMessage, error)
	SaveTranscript(ctx context.Context, sessionID string, patientID uint, messages []models.ChatMessage, limit int) error
	ClearTranscript(ctx context.Context, sessionID string, patientID uint) error
	ClearSession(ctx context.Context, sessionID string) error
}

// ContextProvider renders the patient context block for prompts.
type ContextProvider interface {
	BuildForPatient(ctx context.Context, patientID uint) (string, error)
}

// ChatService orchestrates one chat turn: load the transcript, assemble the
// prompt with fresh patient context, call the LLM once, and store both turns.
type ChatService struct {
	llm          llm.Client
	store        TranscriptStore
	contexts     ContextProvider
	historyLimit int
}

func NewChatService(client llm.Client, store TranscriptStore, contexts ContextProvider, historyLimit int) *ChatService {
	return &ChatService{llm: client, store: store, contexts: contexts, historyLimit: historyLimit}
}

// Send handles a doctor message for the given session and patient. It returns
// the updated transcript; on LLM failure the doctor's message is still kept so
// the session continues, and the classified error is surfaced to the caller.
func (s *ChatService) Send(ctx context.Context, sessionID string, patientID uint, content string) ([]models.ChatMessage, error) {
	transcript, err := s.store.GetTranscript(ctx, sessionID, patientID)
	if err != nil {
		return nil, err
	}

	contextBlock, err := s.contexts.BuildForPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	messages := make([]llm.Message, 0, len(transcript)+3)
	messages = append(messages,
		llm.Message{Role: "system", Content: SystemPrompt},
		llm.Message{Role: "system", Content: "Context:\n" + contextBlock},
	)
	for _, m := range transcript {
		role := "user"
		if m.Role == models.RoleAssistant {
			role = "assistant"
		}
		messages = append(messages, llm.Message{Role: role, Content: m.Content})
	}
	messages = append(messages, llm.Message{Role: "user", Content: content})

	transcript = append(transcript, models.ChatMessage{
		Role:      models.RoleDoctor,
		Content:   content,
		Timestamp: time.Now(),
	})

	reply, llmErr := s.llm.Chat(ctx, messages)
	if llmErr != nil {
		if err := s.store.SaveTranscript(ctx, sessionID, patientID, transcript, s.historyLimit); err != nil {
			return nil, err
		}
		return transcript, llmErr
	}

	transcript = append(transcript, models.ChatMessage{
		Role:      models.RoleAssistant,
		Content:   reply,
		Timestamp: time.Now(),
	})
	if err := s.store.SaveTranscript(ctx, sessionID, patientID, transcript, s.historyLimit); err != nil {
		return nil, err
	}
	return transcript, nil
}

// Transcript returns the stored conversation for a session/patient pair.
func (s *ChatService) Transcript(ctx context.Context, sessionID string, patientID uint) ([]models.ChatMessage, error) {
	return s.store.GetTranscript(ctx, sessionID, patientID)
}

// Reset clears the conversation for a session/patient pair.
func (s *ChatService) Reset(ctx context.Context, sessionID string, patientID uint) error {
	return s.store.ClearTranscript(ctx, sessionID, patientID)
}

// EndSession drops every transcript the session accumulated across patients.
func (s *ChatService) EndSession(ctx context.Context, sessionID string) error {
	return s.store.ClearSession(ctx, sessionID)
}
