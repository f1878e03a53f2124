package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(baseURL string) *CompletionClient {
	return NewCompletionClient(baseURL, "test-model", 5*time.Second)
}

func TestChatReturnsReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Patient is stable."}}]
		}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL + "/v1")
	reply, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "status?"}})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if reply != "Patient is stable." {
		t.Errorf("unexpected reply: %q", reply)
	}
}

func TestChatServerErrorIsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"message": "upstream exploded", "type": "server_error"}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL + "/v1")
	reply, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "status?"}})
	if err == nil {
		t.Fatalf("expected an error, got reply %q", reply)
	}
	if !errors.Is(err, ErrBadStatus) {
		t.Errorf("expected ErrBadStatus, got %v", err)
	}
	if reply != "" {
		t.Errorf("expected no reply on failure, got %q", reply)
	}
}

func TestChatEmptyChoicesIsEmptyReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "chatcmpl-2", "object": "chat.completion", "choices": []}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL + "/v1")
	_, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "status?"}})
	if !errors.Is(err, ErrEmptyReply) {
		t.Errorf("expected ErrEmptyReply, got %v", err)
	}
}

func TestChatUnreachableEndpoint(t *testing.T) {
	// A server that is already closed guarantees a refused connection.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := newTestClient(url + "/v1")
	_, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "status?"}})
	if err == nil {
		t.Fatal("expected an error for an unreachable endpoint")
	}
	if !errors.Is(err, ErrUnreachable) && !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrUnreachable or ErrTimeout, got %v", err)
	}
}

func TestChatTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewCompletionClient(srv.URL+"/v1", "test-model", 50*time.Millisecond)
	_, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "status?"}})
	if err == nil {
		t.Fatal("expected a timeout error")
	}
	if !errors.Is(err, ErrTimeout) && !errors.Is(err, ErrUnreachable) {
		t.Errorf("expected a timeout classification, got %v", err)
	}
}
