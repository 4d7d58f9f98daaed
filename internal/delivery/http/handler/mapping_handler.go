package handler

import (
	"encoding/json"
	"net/http"

	"hospital-records-api/internal/delivery/dto"
	"hospital-records-api/internal/usecase"
	"hospital-records-api/pkg/response"
	"hospital-records-api/pkg/validator"
)

type MappingHandler struct {
	mappingUsecase usecase.MappingUsecase
	validator      *validator.CustomValidator
}

func NewMappingHandler(mappingUsecase usecase.MappingUsecase, validator *validator.CustomValidator) *MappingHandler {
	return &MappingHandler{
		mappingUsecase: mappingUsecase,
		validator:      validator,
	}
}

func (h *MappingHandler) ListMappings(w http.ResponseWriter, r *http.Request) {
	mappings, err := h.mappingUsecase.ListMappings(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get mappings")
		return
	}

	response.Success(w, http.StatusOK, "Mappings retrieved successfully", mappings)
}

func (h *MappingHandler) CreateMapping(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMappingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	mapping, err := h.mappingUsecase.CreateMapping(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrMappingAlreadyExists:
			response.ValidationError(w, map[string]string{"doctor_id": "patient is already assigned to this doctor"})
		case usecase.ErrMappingPatientNotFound:
			response.ValidationError(w, map[string]string{"patient_id": "patient not found"})
		case usecase.ErrMappingDoctorNotFound:
			response.ValidationError(w, map[string]string{"doctor_id": "doctor not found"})
		case usecase.ErrDoctorAtCapacity:
			response.ValidationError(w, map[string]string{"doctor_id": "doctor has reached the maximum appointments for today"})
		default:
			response.InternalServerError(w, "Failed to create mapping")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Mapping created successfully", mapping)
}

// GetPatientDoctors returns the doctors assigned to one patient
func (h *MappingHandler) GetPatientDoctors(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseUintVar(r, "patient_id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	result, err := h.mappingUsecase.GetPatientDoctors(r.Context(), patientID)
	if err != nil {
		if err == usecase.ErrMappingPatientNotFound {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get patient doctors")
		return
	}

	response.Success(w, http.StatusOK, "Patient doctors retrieved successfully", result)
}

func (h *MappingHandler) DeleteMapping(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid mapping ID", nil)
		return
	}

	if err := h.mappingUsecase.DeleteMapping(r.Context(), id); err != nil {
		if err == usecase.ErrMappingNotFound {
			response.NotFound(w, "Mapping not found")
			return
		}
		response.InternalServerError(w, "Failed to delete mapping")
		return
	}

	response.NoContent(w)
}
