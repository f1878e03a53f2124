package llm

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	pkgerrors "github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
)

// Message is a single chat turn handed to the model. Role must be one of
// "system", "user" or "assistant".
type Message struct {
	Role    string
	Content string
}

// Client is the interface the chat service talks to. A single synchronous
// request per call; retry policy belongs to the caller (and there is none).
type Client interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}

// Failure classes surfaced to the UI. Each maps to a distinct user-visible
// chat-area error.
var (
	// ErrTimeout: the request exceeded the configured deadline.
	ErrTimeout = errors.New("llm: request timed out")
	// ErrUnreachable: the endpoint could not be reached at all.
	ErrUnreachable = errors.New("llm: endpoint unreachable")
	// ErrBadStatus: the endpoint answered with a non-success HTTP status.
	ErrBadStatus = errors.New("llm: endpoint returned an error status")
	// ErrEmptyReply: a success response carried no usable completion.
	ErrEmptyReply = errors.New("llm: empty or malformed completion")
)

// CompletionClient calls an OpenAI-compatible chat completion endpoint. The
// base URL typically points at an Ollama deployment behind a load balancer;
// model name and endpoint come from configuration.
type CompletionClient struct {
	client *openai.Client
	model  string
}

// NewCompletionClient constructs a client against the given base URL and
// model. Timeout bounds each request end to end.
func NewCompletionClient(baseURL, model string, timeout time.Duration) *CompletionClient {
	cfg := openai.DefaultConfig(os.Getenv("LLM_API_KEY"))
	cfg.BaseURL = baseURL
	cfg.HTTPClient = &http.Client{Timeout: timeout}
	return &CompletionClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Chat sends the message history and returns the assistant's reply text.
// Exactly one attempt is made; failures come back classified, never swallowed.
func (c *CompletionClient) Chat(ctx context.Context, messages []Message) (string, error) {
	oaMsgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := m.Role
		if role != openai.ChatMessageRoleSystem && role != openai.ChatMessageRoleAssistant {
			role = openai.ChatMessageRoleUser
		}
		oaMsgs = append(oaMsgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    oaMsgs,
		Temperature: 0.7,
		TopP:        0.9,
		MaxTokens:   1024,
	})
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyReply
	}
	return resp.Choices[0].Message.Content, nil
}

// classify maps transport and API errors onto the failure classes above,
// keeping the underlying cause in the chain.
func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return pkgerrors.Wrapf(ErrBadStatus, "status %d: %s", apiErr.HTTPStatusCode, apiErr.Message)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.HTTPStatusCode > 0 {
			return pkgerrors.Wrapf(ErrBadStatus, "status %d", reqErr.HTTPStatusCode)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return pkgerrors.Wrap(ErrTimeout, err.Error())
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return pkgerrors.Wrap(ErrTimeout, err.Error())
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return pkgerrors.Wrap(ErrUnreachable, err.Error())
	}
	return pkgerrors.Wrap(ErrEmptyReply, err.Error())
}
