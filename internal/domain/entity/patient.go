package entity

import "github.com/google/uuid"

// Patient represents a patient record, owned by the user that created it
type Patient struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName   string    `gorm:"type:varchar(64);not null" json:"firstname"`
	LastName    string    `gorm:"type:varchar(64);not null" json:"lastname"`
	Email       string    `gorm:"type:varchar(128);uniqueIndex;not null" json:"email"`
	Age         int       `gorm:"not null" json:"age"`
	Gender      string    `gorm:"type:char(1);not null" json:"gender"`
	CreatedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by"`

	// Relationships
	CreatedBy User                   `gorm:"foreignKey:CreatedByID" json:"-"`
	Mappings  []PatientDoctorMapping `gorm:"foreignKey:PatientID" json:"mappings,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// DisplayName returns the patient's full name as shown in mapping views
func (p *Patient) DisplayName() string {
	return p.FirstName + " " + p.LastName
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// Age bounds accepted for patient records
const (
	MinPatientAge = 0
	MaxPatientAge = 120
)
