package services

import (
	"ChronicStable/models"
	"ChronicStable/repositories"
	"context"
)

type PatientService struct {
	repository *repositories.PatientRepository
}

func NewPatientService(repository *repositories.PatientRepository) *PatientService {
	return &PatientService{repository: repository}
}

func (s *PatientService) Create(ctx context.Context, patient *models.Patient) error {
	return s.repository.Create(ctx, patient)
}

func (s *PatientService) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *PatientService) Update(ctx context.Context, patient *models.Patient) error {
	return s.repository.Update(ctx, patient)
}

func (s *PatientService) UpdateCategory(ctx context.Context, id uint, category string) error {
	return s.repository.UpdateCategory(ctx, id, category)
}

func (s *PatientService) GetAll(ctx context.Context) ([]models.Patient, error) {
	return s.repository.GetAll(ctx)
}

func (s *PatientService) GetForDoctor(ctx context.Context, doctorID uint, category string) ([]models.Patient, error) {
	return s.repository.GetForDoctor(ctx, doctorID, category)
}
