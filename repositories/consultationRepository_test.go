package repositories

import (
	"ChronicStable/models"
	"context"
	"errors"
	"testing"
	"time"
)

func TestConsultationCreateMissingReferencesWritesNothing(t *testing.T) {
	db := testDB(t)
	doctor := seedDoctor(t, db)
	patient := seedPatient(t, db, "MRN-3001")
	repo := NewConsultationRepository(db)
	ctx := context.Background()

	cases := []struct {
		name      string
		patientID uint
		doctorID  uint
	}{
		{"missing patient", patient.ID + 100, doctor.ID},
		{"missing doctor", patient.ID, doctor.ID + 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			consultation := models.Consultation{
				PatientID: tc.patientID,
				DoctorID:  tc.doctorID,
				Notes:     "Follow-up on blood pressure readings",
			}
			err := repo.Create(ctx, &consultation)
			if !errors.Is(err, ErrIntegrity) {
				t.Fatalf("expected ErrIntegrity, got %v", err)
			}
		})
	}
	if n := countRows(t, db, &models.Consultation{}); n != 0 {
		t.Errorf("expected no consultation rows, found %d", n)
	}
}

func TestConsultationListNewestFirst(t *testing.T) {
	db := testDB(t)
	doctor := seedDoctor(t, db)
	patient := seedPatient(t, db, "MRN-3002")
	repo := NewConsultationRepository(db)
	ctx := context.Background()

	for i, daysAgo := range []int{30, 10, 90} {
		consultation := models.Consultation{
			PatientID: patient.ID,
			DoctorID:  doctor.ID,
			Date:      time.Now().AddDate(0, 0, -daysAgo),
			Notes:     []string{"first", "second", "third"}[i],
		}
		if err := repo.Create(ctx, &consultation); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	consultations, err := repo.GetByPatient(ctx, patient.ID)
	if err != nil {
		t.Fatalf("GetByPatient: %v", err)
	}
	if len(consultations) != 3 {
		t.Fatalf("expected 3 consultations, got %d", len(consultations))
	}
	for i := 1; i < len(consultations); i++ {
		if consultations[i].Date.After(consultations[i-1].Date) {
			t.Errorf("consultations out of order at index %d", i)
		}
	}
}
