package converter

import (
	"hospital-records-api/internal/delivery/dto"
	"hospital-records-api/internal/domain/entity"
)

// MappingToResponse converts a PatientDoctorMapping entity, with its
// preloaded patient and doctor, to MappingResponse DTO
func MappingToResponse(mapping *entity.PatientDoctorMapping) *dto.MappingResponse {
	if mapping == nil {
		return nil
	}

	return &dto.MappingResponse{
		ID:         mapping.ID,
		Patient:    *PatientToPublicResponse(&mapping.Patient),
		Doctor:     *DoctorToResponse(&mapping.Doctor),
		AssignedAt: mapping.AssignedAt,
	}
}

// MappingsToResponses converts a slice of mappings to MappingResponse DTOs
func MappingsToResponses(mappings []entity.PatientDoctorMapping) []dto.MappingResponse {
	responses := make([]dto.MappingResponse, len(mappings))
	for i := range mappings {
		responses[i] = *MappingToResponse(&mappings[i])
	}
	return responses
}

// MappingsToDoctorResponses extracts the doctor projections from a
// patient's mappings
func MappingsToDoctorResponses(mappings []entity.PatientDoctorMapping) []dto.DoctorResponse {
	doctors := make([]dto.DoctorResponse, len(mappings))
	for i := range mappings {
		doctors[i] = *DoctorToResponse(&mappings[i].Doctor)
	}
	return doctors
}
