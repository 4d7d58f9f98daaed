package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"hospital-records-api/internal/delivery/dto"
	"hospital-records-api/internal/domain/entity"
	"hospital-records-api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMappings(t *testing.T) {
	env := newTestEnv()

	env.mappingUC.ListMappingsFunc = func(ctx context.Context) (*dto.MappingListResponse, error) {
		return &dto.MappingListResponse{
			Mappings: []dto.MappingResponse{
				{
					ID:         1,
					Patient:    dto.PatientPublicResponse{ID: 7, FirstName: "Erling", LastName: "Haaland"},
					Doctor:     dto.DoctorResponse{ID: 3, FirstName: "Gregory", LastName: "House"},
					AssignedAt: time.Now(),
				},
			},
			Total: 1,
		}, nil
	}

	rec, resp := env.doRequest(t, http.MethodGet, "/api/mappings/", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var list dto.MappingListResponse
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	require.Len(t, list.Mappings, 1)
	assert.Equal(t, uint(7), list.Mappings[0].Patient.ID)
	assert.Equal(t, uint(3), list.Mappings[0].Doctor.ID)
}

func TestCreateMapping(t *testing.T) {
	env := newTestEnv()

	env.mappingUC.CreateMappingFunc = func(ctx context.Context, req *dto.CreateMappingRequest) (*dto.MappingResponse, error) {
		switch {
		case req.PatientID != 7:
			return nil, usecase.ErrMappingPatientNotFound
		case req.DoctorID != 3:
			return nil, usecase.ErrMappingDoctorNotFound
		default:
			return &dto.MappingResponse{
				ID:         1,
				Patient:    dto.PatientPublicResponse{ID: 7, FirstName: "Erling", LastName: "Haaland"},
				Doctor:     dto.DoctorResponse{ID: 3, FirstName: "Gregory", LastName: "House"},
				AssignedAt: time.Now(),
			}, nil
		}
	}

	t.Run("assignment created", func(t *testing.T) {
		rec, resp := env.doRequest(t, http.MethodPost, "/api/mappings/", "", dto.CreateMappingRequest{
			PatientID: 7,
			DoctorID:  3,
		})

		require.Equal(t, http.StatusCreated, rec.Code)

		var mapping dto.MappingResponse
		require.NoError(t, json.Unmarshal(resp.Data, &mapping))
		assert.Equal(t, uint(1), mapping.ID)
		assert.False(t, mapping.AssignedAt.IsZero())
	})

	t.Run("unknown patient", func(t *testing.T) {
		rec, resp := env.doRequest(t, http.MethodPost, "/api/mappings/", "", dto.CreateMappingRequest{
			PatientID: 99,
			DoctorID:  3,
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var fields map[string]string
		require.NoError(t, json.Unmarshal(resp.Error, &fields))
		assert.Contains(t, fields, "patient_id")
	})

	t.Run("unknown doctor", func(t *testing.T) {
		rec, resp := env.doRequest(t, http.MethodPost, "/api/mappings/", "", dto.CreateMappingRequest{
			PatientID: 7,
			DoctorID:  99,
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var fields map[string]string
		require.NoError(t, json.Unmarshal(resp.Error, &fields))
		assert.Contains(t, fields, "doctor_id")
	})

	t.Run("missing ids rejected", func(t *testing.T) {
		rec, resp := env.doRequest(t, http.MethodPost, "/api/mappings/", "", map[string]interface{}{})

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var fields map[string]string
		require.NoError(t, json.Unmarshal(resp.Error, &fields))
		assert.Contains(t, fields, "patient_id")
		assert.Contains(t, fields, "doctor_id")
	})
}

func TestCreateMappingDuplicatePair(t *testing.T) {
	env := newTestEnv()

	env.mappingUC.CreateMappingFunc = func(ctx context.Context, req *dto.CreateMappingRequest) (*dto.MappingResponse, error) {
		return nil, usecase.ErrMappingAlreadyExists
	}

	rec, resp := env.doRequest(t, http.MethodPost, "/api/mappings/", "", dto.CreateMappingRequest{
		PatientID: 7,
		DoctorID:  3,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(resp.Error, &fields))
	assert.Contains(t, fields["doctor_id"], "already assigned")
}

func TestCreateMappingDoctorAtCapacity(t *testing.T) {
	env := newTestEnv()

	env.mappingUC.CreateMappingFunc = func(ctx context.Context, req *dto.CreateMappingRequest) (*dto.MappingResponse, error) {
		return nil, usecase.ErrDoctorAtCapacity
	}

	rec, resp := env.doRequest(t, http.MethodPost, "/api/mappings/", "", dto.CreateMappingRequest{
		PatientID: 7,
		DoctorID:  3,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(resp.Error, &fields))
	assert.Contains(t, fields["doctor_id"], "maximum appointments")
}

func TestGetPatientDoctors(t *testing.T) {
	env := newTestEnv()

	env.mappingUC.GetPatientDoctorsFunc = func(ctx context.Context, patientID uint) (*dto.PatientDoctorsResponse, error) {
		if patientID != 7 {
			return nil, usecase.ErrMappingPatientNotFound
		}
		return &dto.PatientDoctorsResponse{
			Patient: "Erling Haaland",
			Doctors: []dto.DoctorResponse{
				{ID: 3, FirstName: "Gregory", LastName: "House", Specialization: string(entity.SpecializationNeurologist)},
			},
		}, nil
	}

	t.Run("doctors for patient", func(t *testing.T) {
		rec, resp := env.doRequest(t, http.MethodGet, "/api/mappings/7/", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)

		var result dto.PatientDoctorsResponse
		require.NoError(t, json.Unmarshal(resp.Data, &result))
		assert.Equal(t, "Erling Haaland", result.Patient)
		require.Len(t, result.Doctors, 1)
		assert.Equal(t, uint(3), result.Doctors[0].ID)
	})

	t.Run("unknown patient", func(t *testing.T) {
		rec, _ := env.doRequest(t, http.MethodGet, "/api/mappings/99/", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteMapping(t *testing.T) {
	env := newTestEnv()

	env.mappingUC.DeleteMappingFunc = func(ctx context.Context, id uint) error {
		if id == 1 {
			return nil
		}
		return usecase.ErrMappingNotFound
	}

	rec, _ := env.doRequest(t, http.MethodDelete, "/api/mappings/1/delete/", "", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = env.doRequest(t, http.MethodDelete, "/api/mappings/42/delete/", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
