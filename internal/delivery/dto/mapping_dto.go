package dto

import "time"

// Request DTOs

type CreateMappingRequest struct {
	PatientID uint `json:"patient_id" validate:"required"`
	DoctorID  uint `json:"doctor_id" validate:"required"`
}

// Response DTOs

type MappingResponse struct {
	ID         uint                  `json:"id"`
	Patient    PatientPublicResponse `json:"patient"`
	Doctor     DoctorResponse        `json:"doctor"`
	AssignedAt time.Time             `json:"assigned_at"`
}

type MappingListResponse struct {
	Mappings []MappingResponse `json:"mappings"`
	Total    int               `json:"total"`
}

// PatientDoctorsResponse lists the doctors assigned to one patient
type PatientDoctorsResponse struct {
	Patient string           `json:"patient"`
	Doctors []DoctorResponse `json:"doctors"`
}
