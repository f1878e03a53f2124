package controllers

import (
	"ChronicStable/handlers"

	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes registers the JSON API consumed by the UI page.
func SetupAPIRoutes(router *gin.Engine, doctorHandler *handlers.DoctorHandler, patientHandler *handlers.PatientHandler, consultationHandler *handlers.ConsultationHandler, appointmentHandler *handlers.AppointmentHandler, chatHandler *handlers.ChatHandler) {
	api := router.Group("/api")

	api.POST("/doctors", doctorHandler.CreateDoctor)
	api.GET("/doctors", doctorHandler.GetAllDoctors)
	api.GET("/doctors/:doctor_id", doctorHandler.GetDoctorByID)
	api.GET("/doctors/:doctor_id/patients", doctorHandler.GetDoctorPatients)

	api.POST("/patients", patientHandler.CreatePatient)
	api.GET("/patients", patientHandler.GetAllPatients)
	api.GET("/patients/:patient_id", patientHandler.GetPatientByID)
	api.PUT("/patients/:patient_id", patientHandler.UpdatePatient)
	api.PATCH("/patients/:patient_id/category", patientHandler.UpdatePatientCategory)

	api.POST("/patients/:patient_id/consultations", consultationHandler.CreateConsultation)
	api.GET("/patients/:patient_id/consultations", consultationHandler.GetAllConsultations)

	api.POST("/patients/:patient_id/appointments", appointmentHandler.CreateAppointment)
	api.GET("/patients/:patient_id/appointments", appointmentHandler.GetAllAppointments)
	api.GET("/patients/:patient_id/appointments/:appointment_id", appointmentHandler.GetAppointmentByID)
	api.PUT("/patients/:patient_id/appointments/:appointment_id", appointmentHandler.UpdateAppointment)

	api.GET("/patients/:patient_id/context", chatHandler.GetContext)
	api.POST("/patients/:patient_id/chat", chatHandler.SendMessage)
	api.GET("/patients/:patient_id/chat", chatHandler.GetTranscript)
	api.DELETE("/patients/:patient_id/chat", chatHandler.ResetTranscript)
	api.DELETE("/sessions/:session_id", chatHandler.EndSession)
}
