package config

import "time"

// AppConfig holds the application configuration
type AppConfig struct {
	DBURL        string
	RedisAddress string

	// LLM settings. LLMBaseURL points at the OpenAI-compatible endpoint
	// fronting the model (typically an Ollama instance behind a load balancer).
	LLMBaseURL string
	LLMModel   string
	LLMTimeout time.Duration

	// ContextMaxConsultations caps how many recent consultations are folded
	// into the prompt context for a patient.
	ContextMaxConsultations int

	// ChatHistoryLimit caps how many messages a session transcript retains.
	ChatHistoryLimit int

	// SessionTTL is the sliding expiry for session transcripts in Redis.
	SessionTTL time.Duration

	// SMTP settings for appointment confirmation emails. Optional; emails are
	// skipped entirely when SMTPHost is empty.
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
}

// MailEnabled reports whether SMTP is configured.
func (c *AppConfig) MailEnabled() bool {
	return c.SMTPHost != ""
}
