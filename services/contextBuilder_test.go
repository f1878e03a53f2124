package services

import (
	"ChronicStable/models"
	"fmt"
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func testPatient() *models.Patient {
	return &models.Patient{
		ID:                  1,
		Name:                "John Doe",
		DateOfBirth:         "1980-05-15",
		ContactInformation:  "john.doe@email.com, (555) 123-4567",
		MedicalRecordNumber: "MRN12345",
		Category:            models.CategoryChronic,
	}
}

func TestBuildPatientContextNoHistory(t *testing.T) {
	got := BuildPatientContext(testPatient(), nil, nil, nil, testNow, 3)

	if !strings.Contains(got, "Name: John Doe") {
		t.Errorf("context missing demographics:\n%s", got)
	}
	if !strings.Contains(got, "No previous consultations found.") {
		t.Errorf("context missing consultation placeholder:\n%s", got)
	}
	if !strings.Contains(got, "No upcoming appointments.") {
		t.Errorf("context missing appointment placeholder:\n%s", got)
	}
	if strings.Contains(got, "Consultation on") {
		t.Errorf("context should have no consultation entries:\n%s", got)
	}
}

func TestBuildPatientContextCapsConsultations(t *testing.T) {
	var consultations []models.Consultation
	// Most recent first, the order the repository returns them in.
	for i := 0; i < 5; i++ {
		consultations = append(consultations, models.Consultation{
			ID:        uint(i + 1),
			PatientID: 1,
			DoctorID:  1,
			Date:      testNow.AddDate(0, -i, 0),
			Diagnosis: fmt.Sprintf("diagnosis-%d", i),
		})
	}

	got := BuildPatientContext(testPatient(), consultations, nil, nil, testNow, 3)

	if n := strings.Count(got, "Consultation on"); n != 3 {
		t.Fatalf("expected 3 consultation entries, got %d:\n%s", n, got)
	}
	// Newest entries survive the cap, oldest two are dropped.
	for _, want := range []string{"diagnosis-0", "diagnosis-1", "diagnosis-2"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %s in context", want)
		}
	}
	for _, absent := range []string{"diagnosis-3", "diagnosis-4"} {
		if strings.Contains(got, absent) {
			t.Errorf("did not expect %s in context", absent)
		}
	}
	// Descending recency: diagnosis-0 renders before diagnosis-2.
	if strings.Index(got, "diagnosis-0") > strings.Index(got, "diagnosis-2") {
		t.Errorf("consultations not ordered most recent first:\n%s", got)
	}
}

func TestBuildPatientContextUpcomingAppointmentsOnly(t *testing.T) {
	appointments := []models.Appointment{
		{ID: 1, PatientID: 1, DoctorID: 1, DateTime: testNow.AddDate(0, 0, -7), Status: models.StatusCompleted, Purpose: "past visit"},
		{ID: 2, PatientID: 1, DoctorID: 1, DateTime: testNow.AddDate(0, 0, 7), Status: models.StatusScheduled, Purpose: "follow-up"},
		{ID: 3, PatientID: 1, DoctorID: 1, DateTime: testNow.AddDate(0, 0, 14), Status: models.StatusCancelled, Purpose: "cancelled visit"},
	}

	names := func(uint) string { return "Dr. Jane Smith" }
	got := BuildPatientContext(testPatient(), nil, appointments, names, testNow, 3)

	if !strings.Contains(got, "follow-up") {
		t.Errorf("expected scheduled future appointment in context:\n%s", got)
	}
	if !strings.Contains(got, "Dr. Jane Smith") {
		t.Errorf("expected doctor name in context:\n%s", got)
	}
	if strings.Contains(got, "past visit") || strings.Contains(got, "cancelled visit") {
		t.Errorf("past or cancelled appointments leaked into context:\n%s", got)
	}
}

func TestBuildPatientContextNilPatient(t *testing.T) {
	if got := BuildPatientContext(nil, nil, nil, nil, testNow, 3); got != "No patient data available." {
		t.Errorf("unexpected context for nil patient: %q", got)
	}
}
