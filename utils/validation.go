package utils

import (
	"ChronicStable/models"
	"log"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidatePatientData validates patient input using ozzo-validation.
func ValidatePatientData(patient *models.Patient) error {
	err := validation.ValidateStruct(patient,
		validation.Field(&patient.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&patient.DateOfBirth, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&patient.MedicalRecordNumber, validation.Required, validation.Length(3, 20)),
		validation.Field(&patient.Category, validation.Required,
			validation.In(models.CategoryChronic, models.CategoryAcute)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateAppointmentData validates appointment input.
func ValidateAppointmentData(appointment *models.Appointment) error {
	err := validation.ValidateStruct(appointment,
		validation.Field(&appointment.PatientID, validation.Required),
		validation.Field(&appointment.DoctorID, validation.Required),
		validation.Field(&appointment.DateTime, validation.Required),
		validation.Field(&appointment.Status, validation.Required,
			validation.In(models.StatusScheduled, models.StatusCompleted, models.StatusCancelled)),
		validation.Field(&appointment.Purpose, validation.Length(0, 200)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateAppointmentUpdate validates a status or reschedule update. The
// doctor and, when omitted, the scheduled time are carried over from the
// stored row, so neither is required here.
func ValidateAppointmentUpdate(appointment *models.Appointment) error {
	err := validation.ValidateStruct(appointment,
		validation.Field(&appointment.Status, validation.Required,
			validation.In(models.StatusScheduled, models.StatusCompleted, models.StatusCancelled)),
		validation.Field(&appointment.Purpose, validation.Length(0, 200)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateConsultationData validates consultation input.
func ValidateConsultationData(consultation *models.Consultation) error {
	err := validation.ValidateStruct(consultation,
		validation.Field(&consultation.PatientID, validation.Required),
		validation.Field(&consultation.DoctorID, validation.Required),
		validation.Field(&consultation.Notes, validation.Required),
		validation.Field(&consultation.Diagnosis, validation.Length(0, 100)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}
