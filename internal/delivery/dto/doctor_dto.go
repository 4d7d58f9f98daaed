package dto

// Request DTOs

type CreateDoctorRequest struct {
	FirstName             string `json:"firstname" validate:"required,max=64"`
	LastName              string `json:"lastname" validate:"required,max=64"`
	Email                 string `json:"email" validate:"required,email,max=128"`
	Gender                string `json:"gender" validate:"required,oneof=M F"`
	Specialization        string `json:"specialization" validate:"required,oneof=CARD DERM NEUR ORTH PED GEN"`
	MaxAppointmentsPerDay *int   `json:"max_appointments_per_day" validate:"omitempty,gte=1"`
}

type UpdateDoctorRequest struct {
	FirstName             string `json:"firstname" validate:"omitempty,max=64"`
	LastName              string `json:"lastname" validate:"omitempty,max=64"`
	Email                 string `json:"email" validate:"omitempty,email,max=128"`
	Specialization        string `json:"specialization" validate:"omitempty,oneof=CARD DERM NEUR ORTH PED GEN"`
	MaxAppointmentsPerDay *int   `json:"max_appointments_per_day" validate:"omitempty,gte=1"`
}

// Response DTOs

type DoctorResponse struct {
	ID                    uint   `json:"id"`
	FirstName             string `json:"firstname"`
	LastName              string `json:"lastname"`
	Email                 string `json:"email"`
	Gender                string `json:"gender"`
	Specialization        string `json:"specialization"`
	SpecializationLabel   string `json:"specialization_label"`
	MaxAppointmentsPerDay int    `json:"max_appointments_per_day"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
