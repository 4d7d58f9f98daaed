package converter

import (
	"hospital-records-api/internal/delivery/dto"
	"hospital-records-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to the full PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:        patient.ID,
		FirstName: patient.FirstName,
		LastName:  patient.LastName,
		Age:       patient.Age,
		Gender:    patient.Gender,
		Email:     patient.Email,
	}
}

// PatientToPublicResponse converts a Patient entity to the public projection
func PatientToPublicResponse(patient *entity.Patient) *dto.PatientPublicResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientPublicResponse{
		ID:        patient.ID,
		FirstName: patient.FirstName,
		LastName:  patient.LastName,
		Age:       patient.Age,
		Gender:    patient.Gender,
	}
}

// PatientsToPublicResponses converts a slice of Patient entities to public projections
func PatientsToPublicResponses(patients []entity.Patient) []dto.PatientPublicResponse {
	responses := make([]dto.PatientPublicResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToPublicResponse(&patients[i])
	}
	return responses
}
