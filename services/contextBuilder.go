package services

import (
	"ChronicStable/models"
	"fmt"
	"strings"
	"time"
)

// BuildPatientContext renders the text block prepended to LLM prompts for a
// patient: demographics, the maxConsultations most recent consultations
// (newest first) and upcoming scheduled appointments. A patient with no
// history gets placeholder lines, never an error. doctorName resolves a
// doctor ID to a display name; unknown IDs render as "Unknown Doctor".
func BuildPatientContext(
	patient *models.Patient,
	consultations []models.Consultation,
	appointments []models.Appointment,
	doctorName func(uint) string,
	now time.Time,
	maxConsultations int,
) string {
	if patient == nil {
		return "No patient data available."
	}
	if doctorName == nil {
		doctorName = func(uint) string { return "Unknown Doctor" }
	}

	parts := []string{
		"PATIENT INFORMATION:",
		fmt.Sprintf("Name: %s", patient.Name),
		fmt.Sprintf("Date of Birth: %s", patient.DateOfBirth),
		fmt.Sprintf("Medical Record Number: %s", patient.MedicalRecordNumber),
		fmt.Sprintf("Contact: %s", patient.ContactInformation),
		fmt.Sprintf("Category: %s", capitalize(patient.Category)),
		"",
	}

	parts = append(parts, "CONSULTATION HISTORY:")
	if len(consultations) > 0 {
		if maxConsultations > 0 && len(consultations) > maxConsultations {
			consultations = consultations[:maxConsultations]
		}
		for _, consultation := range consultations {
			parts = append(parts,
				fmt.Sprintf("Consultation on %s with %s:",
					consultation.Date.Format("2006-01-02"), doctorName(consultation.DoctorID)),
				fmt.Sprintf("Diagnosis: %s", consultation.Diagnosis),
				fmt.Sprintf("Notes: %s", consultation.Notes),
				fmt.Sprintf("Treatment: %s", consultation.TreatmentPlan),
				"",
			)
		}
	} else {
		parts = append(parts, "No previous consultations found.")
	}

	parts = append(parts, "UPCOMING APPOINTMENTS:")
	upcoming := 0
	for _, appointment := range appointments {
		if appointment.DateTime.After(now) && appointment.Status == models.StatusScheduled {
			parts = append(parts, fmt.Sprintf("%s with %s: %s",
				appointment.DateTime.Format("2006-01-02 15:04"),
				doctorName(appointment.DoctorID), appointment.Purpose))
			upcoming++
		}
	}
	if upcoming == 0 {
		parts = append(parts, "No upcoming appointments.")
	}

	return strings.Join(parts, "\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
