package services

import (
	"ChronicStable/models"
	"ChronicStable/repositories"
	"ChronicStable/utils"
	"context"
	"log"
)

type AppointmentService struct {
	repository *repositories.AppointmentRepository
	patients   *repositories.PatientRepository
	mailer     *utils.Mailer
}

func NewAppointmentService(repository *repositories.AppointmentRepository, patients *repositories.PatientRepository, mailer *utils.Mailer) *AppointmentService {
	return &AppointmentService{repository: repository, patients: patients, mailer: mailer}
}

// Create schedules the appointment and, when SMTP is configured, emails the
// patient a confirmation. The email is best effort and never fails the call.
func (s *AppointmentService) Create(ctx context.Context, appointment *models.Appointment) error {
	if err := s.repository.Create(ctx, appointment); err != nil {
		return err
	}
	if s.mailer != nil {
		patient, err := s.patients.GetByID(ctx, appointment.PatientID)
		if err == nil && patient != nil {
			if err := s.mailer.SendAppointmentConfirmation(patient, appointment); err != nil {
				log.Printf("Appointment confirmation email failed: %v", err)
			}
		}
	}
	return nil
}

func (s *AppointmentService) GetByID(ctx context.Context, patientID, id uint) (*models.Appointment, error) {
	return s.repository.GetByID(ctx, patientID, id)
}

func (s *AppointmentService) GetByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	return s.repository.GetByPatient(ctx, patientID)
}

func (s *AppointmentService) Update(ctx context.Context, appointment *models.Appointment) error {
	return s.repository.Update(ctx, appointment)
}
