package services

import (
	"ChronicStable/models"
	"ChronicStable/repositories"
	"context"
)

type ConsultationService struct {
	repository *repositories.ConsultationRepository
}

func NewConsultationService(repository *repositories.ConsultationRepository) *ConsultationService {
	return &ConsultationService{repository: repository}
}

func (s *ConsultationService) Create(ctx context.Context, consultation *models.Consultation) error {
	return s.repository.Create(ctx, consultation)
}

func (s *ConsultationService) GetByPatient(ctx context.Context, patientID uint) ([]models.Consultation, error) {
	return s.repository.GetByPatient(ctx, patientID)
}
