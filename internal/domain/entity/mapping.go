package entity

import "time"

// PatientDoctorMapping links a patient to an assigned doctor.
// A given (patient, doctor) pair appears at most once.
type PatientDoctorMapping struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID  uint      `gorm:"not null;index;uniqueIndex:idx_mappings_patient_doctor" json:"patient_id"`
	DoctorID   uint      `gorm:"not null;index;uniqueIndex:idx_mappings_patient_doctor" json:"doctor_id"`
	AssignedAt time.Time `gorm:"autoCreateTime" json:"assigned_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"doctor,omitempty"`
}

func (PatientDoctorMapping) TableName() string {
	return "patient_doctor_mappings"
}
