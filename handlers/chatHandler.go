package handlers

import (
	"ChronicStable/llm"
	"ChronicStable/services"
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ChatHandler struct {
	service  *services.ChatService
	contexts services.ContextProvider
}

func NewChatHandler(service *services.ChatService, contexts services.ContextProvider) *ChatHandler {
	return &ChatHandler{service: service, contexts: contexts}
}

// SendMessage handles one chat turn. A missing session_id starts a new
// session; the issued ID comes back in the response and the client holds it
// for the rest of the session.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	patientID, err := parseID(c.Param("patient_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid patient ID"})
		return
	}

	var body struct {
		SessionID string `json:"session_id"`
		Content   string `json:"content"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if body.Content == "" {
		c.JSON(400, gin.H{"error": "Message content is required"})
		return
	}
	if body.SessionID == "" {
		body.SessionID = uuid.New().String()
	}

	transcript, err := h.service.Send(c, body.SessionID, patientID, body.Content)
	if err != nil {
		status, msg := chatErrorResponse(err)
		log.Printf("Chat turn failed for patient %d: %v", patientID, err)
		c.JSON(status, gin.H{
			"session_id": body.SessionID,
			"error":      msg,
			"messages":   transcript,
		})
		return
	}
	c.JSON(200, gin.H{"session_id": body.SessionID, "messages": transcript})
}

// GetTranscript returns the stored conversation for session_id and patient.
func (h *ChatHandler) GetTranscript(c *gin.Context) {
	patientID, err := parseID(c.Param("patient_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid patient ID"})
		return
	}
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(400, gin.H{"error": "session_id is required"})
		return
	}

	transcript, err := h.service.Transcript(c, sessionID, patientID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"session_id": sessionID, "messages": transcript})
}

// ResetTranscript clears the conversation for session_id and patient.
func (h *ChatHandler) ResetTranscript(c *gin.Context) {
	patientID, err := parseID(c.Param("patient_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid patient ID"})
		return
	}
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(400, gin.H{"error": "session_id is required"})
		return
	}

	if err := h.service.Reset(c, sessionID, patientID); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.Status(204)
}

// EndSession discards all transcripts held for a session.
func (h *ChatHandler) EndSession(c *gin.Context) {
	sessionID := c.Param("session_id")
	if sessionID == "" {
		c.JSON(400, gin.H{"error": "session_id is required"})
		return
	}
	if err := h.service.EndSession(c, sessionID); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.Status(204)
}

// GetContext previews the prompt context the assistant sees for a patient.
func (h *ChatHandler) GetContext(c *gin.Context) {
	patientID, err := parseID(c.Param("patient_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid patient ID"})
		return
	}

	block, err := h.contexts.BuildForPatient(c, patientID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"context": block})
}

// chatErrorResponse maps LLM failure classes to a status and a message the
// UI shows inline in the chat area.
func chatErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, llm.ErrTimeout):
		return 504, "The assistant took too long to respond. Please try again."
	case errors.Is(err, llm.ErrUnreachable):
		return 502, "The assistant is unreachable right now. Please try again later."
	case errors.Is(err, llm.ErrBadStatus):
		return 502, "The assistant service returned an error. Please try again later."
	case errors.Is(err, llm.ErrEmptyReply):
		return 502, "The assistant returned an unusable response. Please try again."
	default:
		return 500, "Something went wrong handling your message."
	}
}
