package handlers

import (
	"ChronicStable/models"
	"ChronicStable/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	service  *services.DoctorService
	patients *services.PatientService
}

func NewDoctorHandler(service *services.DoctorService, patients *services.PatientService) *DoctorHandler {
	return &DoctorHandler{service: service, patients: patients}
}

func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &doctor); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, doctor)
}

func (h *DoctorHandler) GetDoctorByID(c *gin.Context) {
	id, err := parseID(c.Param("doctor_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid doctor ID"})
		return
	}

	doctor, err := h.service.GetByID(c, id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if doctor == nil {
		c.JSON(404, gin.H{"error": "Doctor not found"})
		return
	}
	c.JSON(200, doctor)
}

func (h *DoctorHandler) GetAllDoctors(c *gin.Context) {
	doctors, err := h.service.GetAll(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, doctors)
}

// GetDoctorPatients lists the patients associated with a doctor through
// consultations or appointments. ?category=chronic|acute narrows the result.
func (h *DoctorHandler) GetDoctorPatients(c *gin.Context) {
	id, err := parseID(c.Param("doctor_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid doctor ID"})
		return
	}

	patients, err := h.patients.GetForDoctor(c, id, c.Query("category"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, patients)
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	return uint(id), err
}
