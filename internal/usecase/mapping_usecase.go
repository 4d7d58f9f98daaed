package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"hospital-records-api/internal/converter"
	"hospital-records-api/internal/delivery/dto"
	"hospital-records-api/internal/domain/entity"
	"hospital-records-api/internal/domain/repository"
	"hospital-records-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMappingNotFound        = errors.New("mapping not found")
	ErrMappingAlreadyExists   = errors.New("patient is already assigned to this doctor")
	ErrMappingPatientNotFound = errors.New("referenced patient not found")
	ErrMappingDoctorNotFound  = errors.New("referenced doctor not found")
	ErrDoctorAtCapacity       = errors.New("doctor has reached the maximum appointments for today")
)

type MappingUsecase interface {
	ListMappings(ctx context.Context) (*dto.MappingListResponse, error)
	CreateMapping(ctx context.Context, req *dto.CreateMappingRequest) (*dto.MappingResponse, error)
	GetPatientDoctors(ctx context.Context, patientID uint) (*dto.PatientDoctorsResponse, error)
	DeleteMapping(ctx context.Context, id uint) error
}

type mappingUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	mappingRepo  repository.MappingRepository
	patientRepo  repository.PatientRepository
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewMappingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	mappingRepo repository.MappingRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) MappingUsecase {
	return &mappingUsecase{
		db:           db,
		log:          log,
		mappingRepo:  mappingRepo,
		patientRepo:  patientRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *mappingUsecase) ListMappings(ctx context.Context) (*dto.MappingListResponse, error) {
	mappings, err := u.mappingRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all mappings: %+v", err)
		return nil, err
	}

	return &dto.MappingListResponse{
		Mappings: converter.MappingsToResponses(mappings),
		Total:    len(mappings),
	}, nil
}

// CreateMapping assigns a doctor to a patient. The pair must not exist yet
// and the doctor must still have capacity left for the current day.
func (u *mappingUsecase) CreateMapping(ctx context.Context, req *dto.CreateMappingRequest) (*dto.MappingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrMappingPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrMappingDoctorNotFound
	}

	existing, err := u.mappingRepo.FindByPair(tx, req.PatientID, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to check existing mapping: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrMappingAlreadyExists
	}

	assigned, err := u.mappingRepo.CountByDoctorOnDay(tx, req.DoctorID, time.Now().UTC())
	if err != nil {
		u.log.Warnf("Failed to count doctor assignments: %+v", err)
		return nil, err
	}
	if assigned >= int64(doctor.MaxAppointmentsPerDay) {
		return nil, ErrDoctorAtCapacity
	}

	mapping := &entity.PatientDoctorMapping{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
	}

	if err := u.mappingRepo.Create(tx, mapping); err != nil {
		// Concurrent insert of the same pair lands on the unique index
		if isDuplicateKeyError(err, "patient_doctor") {
			return nil, ErrMappingAlreadyExists
		}
		if isForeignKeyError(err, "patient") {
			return nil, ErrMappingPatientNotFound
		}
		if isForeignKeyError(err, "doctor") {
			return nil, ErrMappingDoctorNotFound
		}
		u.log.Warnf("Failed to create mapping: %+v", err)
		return nil, err
	}

	ctxUserID := userIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, ctxUserID, entity.AuditActionMappingCreate, "mapping", strconv.FormatUint(uint64(mapping.ID), 10), entity.JSON{
		"patient_id": mapping.PatientID,
		"doctor_id":  mapping.DoctorID,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	mapping.Patient = *patient
	mapping.Doctor = *doctor

	return converter.MappingToResponse(mapping), nil
}

func (u *mappingUsecase) GetPatientDoctors(ctx context.Context, patientID uint) (*dto.PatientDoctorsResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrMappingPatientNotFound
	}

	mappings, err := u.mappingRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find mappings for patient %d: %+v", patientID, err)
		return nil, err
	}

	return &dto.PatientDoctorsResponse{
		Patient: patient.DisplayName(),
		Doctors: converter.MappingsToDoctorResponses(mappings),
	}, nil
}

func (u *mappingUsecase) DeleteMapping(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	mapping, err := u.mappingRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find mapping: %+v", err)
		return err
	}
	if mapping == nil {
		return ErrMappingNotFound
	}

	affectedRows, err := u.mappingRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete mapping: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrMappingNotFound
	}

	ctxUserID := userIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, ctxUserID, entity.AuditActionMappingDelete, "mapping", strconv.FormatUint(uint64(id), 10), entity.JSON{
		"patient_id": mapping.PatientID,
		"doctor_id":  mapping.DoctorID,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
