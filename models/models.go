package models

import (
	"time"
)

// Patient categories.
const (
	CategoryChronic = "chronic"
	CategoryAcute   = "acute"
)

// Appointment statuses.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Doctor model
type Doctor struct {
	ID             uint           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name           string         `gorm:"column:name;not null;index" json:"name"`
	Specialization string         `gorm:"column:specialization" json:"specialization"`
	Credentials    string         `gorm:"column:credentials" json:"credentials"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Consultations  []Consultation `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
	Appointments   []Appointment  `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
}

func (Doctor) TableName() string {
	return "doctor"
}

// Patient model
type Patient struct {
	ID                  uint           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name                string         `gorm:"column:name;not null;index" json:"name"`
	DateOfBirth         string         `gorm:"column:date_of_birth" json:"date_of_birth"`
	ContactInformation  string         `gorm:"column:contact_information" json:"contact_information"`
	MedicalRecordNumber string         `gorm:"column:medical_record_number;unique" json:"medical_record_number"`
	Category            string         `gorm:"column:category;check:category IN ('chronic', 'acute');not null;default:'acute'" json:"category"`
	CreatedAt           time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Consultations       []Consultation `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Appointments        []Appointment  `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Patient) TableName() string {
	return "patient"
}

// Consultation model. Append-only visit history.
type Consultation struct {
	ID            uint      `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	PatientID     uint      `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID      uint      `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	Date          time.Time `gorm:"column:date;not null;index" json:"date"`
	Notes         string    `gorm:"column:notes;type:text" json:"notes"`
	Diagnosis     string    `gorm:"column:diagnosis" json:"diagnosis"`
	TreatmentPlan string    `gorm:"column:treatment_plan;type:text" json:"treatment_plan"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patient       Patient   `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Doctor        Doctor    `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
}

func (Consultation) TableName() string {
	return "consultation"
}

// Appointment model
type Appointment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	PatientID uint      `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID  uint      `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	DateTime  time.Time `gorm:"column:date_time;not null;index" json:"date_time"`
	Status    string    `gorm:"column:status;check:status IN ('scheduled', 'completed', 'cancelled');not null" json:"status"`
	Purpose   string    `gorm:"column:purpose" json:"purpose"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patient   Patient   `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Doctor    Doctor    `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
}

func (Appointment) TableName() string {
	return "appointment"
}

// Chat message roles.
const (
	RoleDoctor    = "doctor"
	RoleAssistant = "assistant"
)

// ChatMessage is a single turn in a session transcript. Transcripts live in
// Redis for the lifetime of a UI session and are never written to Postgres.
type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
