package repositories

import (
	"ChronicStable/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	if patient.Category != models.CategoryChronic && patient.Category != models.CategoryAcute {
		return fmt.Errorf("%w: category must be chronic or acute", ErrIntegrity)
	}
	if err := r.db.WithContext(ctx).Create(patient).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: medical record number %q is already in use", ErrIntegrity, patient.MedicalRecordNumber)
		}
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *PatientRepository) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var patient models.Patient
	err := r.db.WithContext(ctx).First(&patient, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

func (r *PatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	if patient.Category != models.CategoryChronic && patient.Category != models.CategoryAcute {
		return fmt.Errorf("%w: category must be chronic or acute", ErrIntegrity)
	}
	// Updates with an explicit column list rather than Save: Save would
	// insert a fresh row when the ID matches nothing.
	res := r.db.WithContext(ctx).Model(&models.Patient{}).
		Where("id = ?", patient.ID).
		Select("name", "date_of_birth", "contact_information", "medical_record_number", "category").
		Updates(patient)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: medical record number %q is already in use", ErrIntegrity, patient.MedicalRecordNumber)
		}
		return fmt.Errorf("failed to update patient: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: patient %d does not exist", ErrIntegrity, patient.ID)
	}
	return nil
}

// UpdateCategory flips a patient between chronic and acute.
func (r *PatientRepository) UpdateCategory(ctx context.Context, id uint, category string) error {
	if category != models.CategoryChronic && category != models.CategoryAcute {
		return fmt.Errorf("%w: category must be chronic or acute", ErrIntegrity)
	}
	res := r.db.WithContext(ctx).Model(&models.Patient{}).Where("id = ?", id).Update("category", category)
	if res.Error != nil {
		return fmt.Errorf("failed to update patient category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: patient %d does not exist", ErrIntegrity, id)
	}
	return nil
}

func (r *PatientRepository) GetAll(ctx context.Context) ([]models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var patients []models.Patient
	err := r.db.WithContext(ctx).Order("name ASC").Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all patients: %w", err)
	}
	return patients, nil
}

// GetForDoctor returns the patients associated with a doctor: the distinct set
// of patient IDs appearing in that doctor's consultations or appointments.
// Category narrows the result when set to chronic or acute.
func (r *PatientRepository) GetForDoctor(ctx context.Context, doctorID uint, category string) ([]models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	sub := `
		SELECT patient_id FROM consultation WHERE doctor_id = ?
		UNION
		SELECT patient_id FROM appointment WHERE doctor_id = ?`

	q := r.db.WithContext(ctx).
		Where(fmt.Sprintf("id IN (%s)", sub), doctorID, doctorID)
	if category == models.CategoryChronic || category == models.CategoryAcute {
		q = q.Where("category = ?", category)
	}

	var patients []models.Patient
	if err := q.Order("name ASC").Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("failed to get patients for doctor: %w", err)
	}
	return patients, nil
}
