package dto

// Request DTOs

type CreatePatientRequest struct {
	FirstName string `json:"firstname" validate:"required,max=64"`
	LastName  string `json:"lastname" validate:"required,max=64"`
	Age       *int   `json:"age" validate:"required,gte=0,lte=120"`
	Gender    string `json:"gender" validate:"required,oneof=M F"`
	Email     string `json:"email" validate:"required,email,max=128"`
}

// UpdatePatientRequest carries the partially updatable fields. Gender is
// fixed at creation.
type UpdatePatientRequest struct {
	FirstName string `json:"firstname" validate:"omitempty,max=64"`
	LastName  string `json:"lastname" validate:"omitempty,max=64"`
	Age       *int   `json:"age" validate:"omitempty,gte=0,lte=120"`
	Email     string `json:"email" validate:"omitempty,email,max=128"`
}

// Response DTOs

// PatientResponse is the full projection returned to the creating caller
type PatientResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Email     string `json:"email"`
}

// PatientPublicResponse is the public projection, email withheld
type PatientPublicResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
}

type PatientListResponse struct {
	Patients []PatientPublicResponse `json:"patients"`
	Total    int                     `json:"total"`
}
