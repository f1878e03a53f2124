package repositories

import (
	"ChronicStable/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// Create schedules an appointment. The referenced patient and doctor are
// verified inside the same transaction so a bad reference leaves the
// appointment table unchanged.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if !validStatus(appointment.Status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, appointment.Status)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := referencesExist(tx, appointment.PatientID, appointment.DoctorID); err != nil {
			return err
		}
		if err := tx.Create(appointment).Error; err != nil {
			return fmt.Errorf("failed to create appointment: %w", err)
		}
		return nil
	})
}

func (r *AppointmentRepository) GetByID(ctx context.Context, patientID, id uint) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appointment models.Appointment
	err := r.db.WithContext(ctx).
		First(&appointment, "id = ? AND patient_id = ?", id, patientID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

// GetByPatient returns a patient's appointments ordered by scheduled time.
func (r *AppointmentRepository) GetByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get appointments: %w", err)
	}
	return appointments, nil
}

// Update rewrites an appointment's time, purpose or status. Completed and
// cancelled are terminal: an appointment already in either state stays there.
func (r *AppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	if !validStatus(appointment.Status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, appointment.Status)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Appointment
		err := tx.First(&current, "id = ? AND patient_id = ?", appointment.ID, appointment.PatientID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: appointment %d does not exist", ErrIntegrity, appointment.ID)
			}
			return fmt.Errorf("failed to load appointment: %w", err)
		}
		if current.Status != models.StatusScheduled && current.Status != appointment.Status {
			return fmt.Errorf("%w: appointment is already %s", ErrInvalidStatus, current.Status)
		}
		appointment.DoctorID = current.DoctorID
		appointment.CreatedAt = current.CreatedAt
		if appointment.DateTime.IsZero() {
			appointment.DateTime = current.DateTime
		}
		if err := tx.Save(appointment).Error; err != nil {
			return fmt.Errorf("failed to update appointment: %w", err)
		}
		return nil
	})
}

func validStatus(status string) bool {
	switch status {
	case models.StatusScheduled, models.StatusCompleted, models.StatusCancelled:
		return true
	}
	return false
}
