package repositories

import (
	"ChronicStable/models"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type ConsultationRepository struct {
	db *gorm.DB
}

func NewConsultationRepository(db *gorm.DB) *ConsultationRepository {
	return &ConsultationRepository{db: db}
}

// Create appends a consultation record. The referenced patient and doctor are
// verified inside the same transaction so a bad reference writes nothing.
func (r *ConsultationRepository) Create(ctx context.Context, consultation *models.Consultation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := referencesExist(tx, consultation.PatientID, consultation.DoctorID); err != nil {
			return err
		}
		if consultation.Date.IsZero() {
			consultation.Date = time.Now()
		}
		if err := tx.Create(consultation).Error; err != nil {
			return fmt.Errorf("failed to create consultation: %w", err)
		}
		return nil
	})
}

// GetByPatient returns a patient's consultations, most recent first.
func (r *ConsultationRepository) GetByPatient(ctx context.Context, patientID uint) ([]models.Consultation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var consultations []models.Consultation
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date DESC").
		Find(&consultations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get consultations: %w", err)
	}
	return consultations, nil
}

// referencesExist checks that the patient and doctor rows a child record
// points at are present.
func referencesExist(tx *gorm.DB, patientID, doctorID uint) error {
	var n int64
	if err := tx.Model(&models.Patient{}).Where("id = ?", patientID).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to check patient reference: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: patient %d does not exist", ErrIntegrity, patientID)
	}
	if err := tx.Model(&models.Doctor{}).Where("id = ?", doctorID).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to check doctor reference: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: doctor %d does not exist", ErrIntegrity, doctorID)
	}
	return nil
}
