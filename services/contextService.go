package services

import (
	"ChronicStable/repositories"
	"context"
	"fmt"
	"time"
)

// ContextService assembles the patient context block from current database
// state. It has no side effects and persists nothing.
type ContextService struct {
	patients         *repositories.PatientRepository
	consultations    *repositories.ConsultationRepository
	appointments     *repositories.AppointmentRepository
	doctors          *repositories.DoctorRepository
	maxConsultations int
}

func NewContextService(
	patients *repositories.PatientRepository,
	consultations *repositories.ConsultationRepository,
	appointments *repositories.AppointmentRepository,
	doctors *repositories.DoctorRepository,
	maxConsultations int,
) *ContextService {
	return &ContextService{
		patients:         patients,
		consultations:    consultations,
		appointments:     appointments,
		doctors:          doctors,
		maxConsultations: maxConsultations,
	}
}

// BuildForPatient fetches the patient's record and renders the prompt context.
func (s *ContextService) BuildForPatient(ctx context.Context, patientID uint) (string, error) {
	patient, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return "", err
	}
	if patient == nil {
		return "No patient data available.", nil
	}

	consultations, err := s.consultations.GetByPatient(ctx, patientID)
	if err != nil {
		return "", err
	}
	appointments, err := s.appointments.GetByPatient(ctx, patientID)
	if err != nil {
		return "", err
	}

	names := map[uint]string{}
	doctorName := func(id uint) string {
		if name, ok := names[id]; ok {
			return name
		}
		name := "Unknown Doctor"
		if doctor, err := s.doctors.GetByID(ctx, id); err == nil && doctor != nil {
			name = doctor.Name
		}
		names[id] = name
		return name
	}

	block := BuildPatientContext(patient, consultations, appointments, doctorName, time.Now(), s.maxConsultations)
	if block == "" {
		return "", fmt.Errorf("empty context for patient %d", patientID)
	}
	return block, nil
}
