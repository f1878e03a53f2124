package utils

import (
	"ChronicStable/models"
	"strings"
	"testing"
	"time"
)

func TestValidatePatientData(t *testing.T) {
	patient := &models.Patient{
		Name:                "John Doe",
		DateOfBirth:         "1980-05-15",
		MedicalRecordNumber: "MRN12345",
		Category:            models.CategoryChronic,
	}
	if err := ValidatePatientData(patient); err != nil {
		t.Errorf("expected valid patient, got %v", err)
	}

	patient.Category = "terminal"
	if err := ValidatePatientData(patient); err == nil {
		t.Error("expected an error for an unknown category")
	}

	patient.Category = models.CategoryAcute
	patient.DateOfBirth = "15/05/1980"
	if err := ValidatePatientData(patient); err == nil {
		t.Error("expected an error for a malformed date of birth")
	}
}

func TestValidateAppointmentData(t *testing.T) {
	appointment := &models.Appointment{
		PatientID: 1,
		DoctorID:  1,
		DateTime:  time.Now().AddDate(0, 0, 7),
		Status:    models.StatusScheduled,
		Purpose:   "Follow-up",
	}
	if err := ValidateAppointmentData(appointment); err != nil {
		t.Errorf("expected valid appointment, got %v", err)
	}

	appointment.Status = "pending"
	if err := ValidateAppointmentData(appointment); err == nil {
		t.Error("expected an error for an unknown status")
	}

	appointment.Status = models.StatusScheduled
	appointment.DoctorID = 0
	if err := ValidateAppointmentData(appointment); err == nil {
		t.Error("expected an error for a missing doctor reference")
	}
}

func TestValidateAppointmentUpdate(t *testing.T) {
	// A status-only update omits doctor_id and date_time; both come from
	// the stored row.
	update := &models.Appointment{
		ID:        1,
		PatientID: 1,
		Status:    models.StatusCancelled,
	}
	if err := ValidateAppointmentUpdate(update); err != nil {
		t.Errorf("expected valid status update, got %v", err)
	}

	update.Status = "rescheduled"
	if err := ValidateAppointmentUpdate(update); err == nil {
		t.Error("expected an error for an unknown status")
	}

	update.Status = models.StatusScheduled
	update.Purpose = strings.Repeat("x", 201)
	if err := ValidateAppointmentUpdate(update); err == nil {
		t.Error("expected an error for an overlong purpose")
	}
}

func TestValidateConsultationData(t *testing.T) {
	consultation := &models.Consultation{
		PatientID: 1,
		DoctorID:  1,
		Notes:     "Routine check, no findings.",
		Diagnosis: "Healthy",
	}
	if err := ValidateConsultationData(consultation); err != nil {
		t.Errorf("expected valid consultation, got %v", err)
	}

	consultation.Notes = ""
	if err := ValidateConsultationData(consultation); err == nil {
		t.Error("expected an error for empty notes")
	}
}

func TestContactEmailExtraction(t *testing.T) {
	cases := []struct {
		contact string
		want    string
	}{
		{"john.doe@email.com, (555) 123-4567", "john.doe@email.com"},
		{"(555) 123-4567, sarah.w@email.com", "sarah.w@email.com"},
		{"(555) 123-4567", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := contactEmail(tc.contact); got != tc.want {
			t.Errorf("contactEmail(%q) = %q, want %q", tc.contact, got, tc.want)
		}
	}
}
