package handlers

import (
	"ChronicStable/llm"
	"ChronicStable/models"
	"ChronicStable/services"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakeStore struct {
	data map[string][]models.ChatMessage
}

func (s *fakeStore) key(sessionID string, patientID uint) string {
	return fmt.Sprintf("%s:%d", sessionID, patientID)
}

func (s *fakeStore) GetTranscript(_ context.Context, sessionID string, patientID uint) ([]models.ChatMessage, error) {
	return s.data[s.key(sessionID, patientID)], nil
}

func (s *fakeStore) SaveTranscript(_ context.Context, sessionID string, patientID uint, messages []models.ChatMessage, limit int) error {
	s.data[s.key(sessionID, patientID)] = messages
	return nil
}

func (s *fakeStore) ClearTranscript(_ context.Context, sessionID string, patientID uint) error {
	delete(s.data, s.key(sessionID, patientID))
	return nil
}

func (s *fakeStore) ClearSession(_ context.Context, sessionID string) error {
	for key := range s.data {
		if strings.HasPrefix(key, sessionID+":") {
			delete(s.data, key)
		}
	}
	return nil
}

type fakeLLM struct {
	reply string
	err   error
}

func (c fakeLLM) Chat(context.Context, []llm.Message) (string, error) {
	return c.reply, c.err
}

type fakeContexts struct{}

func (fakeContexts) BuildForPatient(context.Context, uint) (string, error) {
	return "No previous consultations found.", nil
}

func newChatRouter(client llm.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := &fakeStore{data: map[string][]models.ChatMessage{}}
	service := services.NewChatService(client, store, fakeContexts{}, 50)
	handler := NewChatHandler(service, fakeContexts{})

	router := gin.New()
	router.POST("/api/patients/:patient_id/chat", handler.SendMessage)
	router.GET("/api/patients/:patient_id/chat", handler.GetTranscript)
	router.DELETE("/api/patients/:patient_id/chat", handler.ResetTranscript)
	router.GET("/api/patients/:patient_id/context", handler.GetContext)
	return router
}

type chatResponse struct {
	SessionID string               `json:"session_id"`
	Error     string               `json:"error"`
	Messages  []models.ChatMessage `json:"messages"`
}

func postChat(t *testing.T, router *gin.Engine, body string) (*httptest.ResponseRecorder, chatResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/patients/1/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp chatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body %q: %v", w.Body.String(), err)
	}
	return w, resp
}

func TestSendMessageReturnsAssistantReply(t *testing.T) {
	router := newChatRouter(fakeLLM{reply: "The patient has no recorded medications."})

	w, resp := postChat(t, router, `{"content": "What medications is P1 on?"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}
	if resp.SessionID == "" {
		t.Error("expected a session ID to be issued")
	}
	if len(resp.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(resp.Messages))
	}
	if resp.Messages[1].Role != models.RoleAssistant {
		t.Errorf("expected an assistant reply, got role %s", resp.Messages[1].Role)
	}
}

func TestSendMessageSurfacesLLMFailure(t *testing.T) {
	router := newChatRouter(fakeLLM{err: llm.ErrBadStatus})

	w, resp := postChat(t, router, `{"content": "hello"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
	}
	if resp.Error == "" {
		t.Error("expected a user-visible error message")
	}
	// The doctor's message is kept so the session continues.
	if len(resp.Messages) != 1 || resp.Messages[0].Role != models.RoleDoctor {
		t.Errorf("expected the doctor turn to be preserved, got %+v", resp.Messages)
	}
}

func TestSendMessageTimeoutMapsTo504(t *testing.T) {
	router := newChatRouter(fakeLLM{err: llm.ErrTimeout})

	w, _ := postChat(t, router, `{"content": "hello"}`)
	if w.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected 504, got %d", w.Code)
	}
}

func TestSendMessageRejectsEmptyContent(t *testing.T) {
	router := newChatRouter(fakeLLM{reply: "ok"})

	w, _ := postChat(t, router, `{"content": ""}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestTranscriptRoundTripAndReset(t *testing.T) {
	router := newChatRouter(fakeLLM{reply: "noted"})

	_, resp := postChat(t, router, `{"content": "first question"}`)
	sessionID := resp.SessionID

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/patients/1/chat?session_id="+sessionID, nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get transcript: %d", w.Code)
	}
	var got chatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(got.Messages) != 2 {
		t.Fatalf("expected 2 stored messages, got %d", len(got.Messages))
	}

	// Another patient sees nothing for the same session.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/patients/2/chat?session_id="+sessionID, nil)
	router.ServeHTTP(w, req)
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(got.Messages) != 0 {
		t.Fatalf("patient 1 transcript leaked to patient 2: %d messages", len(got.Messages))
	}

	// Reset clears the conversation.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/patients/1/chat?session_id="+sessionID, nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("reset: %d", w.Code)
	}
}

func TestGetContextPreview(t *testing.T) {
	router := newChatRouter(fakeLLM{reply: "ok"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/patients/1/context", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get context: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No previous consultations found.") {
		t.Errorf("unexpected context body: %s", w.Body.String())
	}
}
