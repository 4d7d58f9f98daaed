package entity

// Specialization is the closed set of doctor specializations
type Specialization string

const (
	SpecializationCardiologist     Specialization = "CARD"
	SpecializationDermatologist    Specialization = "DERM"
	SpecializationNeurologist      Specialization = "NEUR"
	SpecializationOrthopedic       Specialization = "ORTH"
	SpecializationPediatrician     Specialization = "PED"
	SpecializationGeneralPhysician Specialization = "GEN"
)

var specializationLabels = map[Specialization]string{
	SpecializationCardiologist:     "Cardiologist",
	SpecializationDermatologist:    "Dermatologist",
	SpecializationNeurologist:      "Neurologist",
	SpecializationOrthopedic:       "Orthopedic",
	SpecializationPediatrician:     "Pediatrician",
	SpecializationGeneralPhysician: "General Physician",
}

// Label returns the human-readable name for the specialization code
func (s Specialization) Label() string {
	return specializationLabels[s]
}

// IsValid reports whether s is one of the known specialization codes
func (s Specialization) IsValid() bool {
	_, ok := specializationLabels[s]
	return ok
}

// DefaultMaxAppointmentsPerDay is applied when a doctor is created without
// an explicit capacity
const DefaultMaxAppointmentsPerDay = 10

// Doctor represents a doctor record. Doctors are not owned by any user.
type Doctor struct {
	ID                    uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName             string         `gorm:"type:varchar(64);not null" json:"firstname"`
	LastName              string         `gorm:"type:varchar(64);not null" json:"lastname"`
	Email                 string         `gorm:"type:varchar(128);uniqueIndex;not null" json:"email"`
	Gender                string         `gorm:"type:char(1);not null" json:"gender"`
	Specialization        Specialization `gorm:"type:varchar(4);not null;index" json:"specialization"`
	MaxAppointmentsPerDay int            `gorm:"not null;default:10" json:"max_appointments_per_day"`

	// Relationships
	Mappings []PatientDoctorMapping `gorm:"foreignKey:DoctorID" json:"mappings,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// DisplayName returns the doctor's full name
func (d *Doctor) DisplayName() string {
	return d.FirstName + " " + d.LastName
}
