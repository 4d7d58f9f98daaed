package converter

import (
	"hospital-records-api/internal/delivery/dto"
	"hospital-records-api/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:                    doctor.ID,
		FirstName:             doctor.FirstName,
		LastName:              doctor.LastName,
		Email:                 doctor.Email,
		Gender:                doctor.Gender,
		Specialization:        string(doctor.Specialization),
		SpecializationLabel:   doctor.Specialization.Label(),
		MaxAppointmentsPerDay: doctor.MaxAppointmentsPerDay,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
