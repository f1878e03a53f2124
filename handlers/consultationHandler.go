package handlers

import (
	"ChronicStable/models"
	"ChronicStable/services"
	"ChronicStable/utils"

	"github.com/gin-gonic/gin"
)

type ConsultationHandler struct {
	service *services.ConsultationService
}

func NewConsultationHandler(service *services.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{service: service}
}

func (h *ConsultationHandler) CreateConsultation(c *gin.Context) {
	patientID, err := parseID(c.Param("patient_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid patient ID"})
		return
	}

	var consultation models.Consultation
	if err := c.ShouldBindJSON(&consultation); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	consultation.PatientID = patientID

	if err := utils.ValidateConsultationData(&consultation); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &consultation); err != nil {
		respondDataError(c, err)
		return
	}
	c.JSON(201, consultation)
}

func (h *ConsultationHandler) GetAllConsultations(c *gin.Context) {
	patientID, err := parseID(c.Param("patient_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid patient ID"})
		return
	}

	consultations, err := h.service.GetByPatient(c, patientID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, consultations)
}
