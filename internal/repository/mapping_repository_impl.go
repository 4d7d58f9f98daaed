package repository

import (
	"errors"
	"time"

	"hospital-records-api/internal/domain/entity"
	domainRepo "hospital-records-api/internal/domain/repository"

	"gorm.io/gorm"
)

type mappingRepository struct{}

func NewMappingRepository() domainRepo.MappingRepository {
	return &mappingRepository{}
}

func (r *mappingRepository) Create(db *gorm.DB, mapping *entity.PatientDoctorMapping) error {
	return db.Create(mapping).Error
}

func (r *mappingRepository) FindByID(db *gorm.DB, id uint) (*entity.PatientDoctorMapping, error) {
	var mapping entity.PatientDoctorMapping
	err := db.Preload("Patient").Preload("Doctor").Where("id = ?", id).First(&mapping).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mapping, nil
}

func (r *mappingRepository) FindAll(db *gorm.DB) ([]entity.PatientDoctorMapping, error) {
	var mappings []entity.PatientDoctorMapping
	err := db.Preload("Patient").Preload("Doctor").Find(&mappings).Error
	if err != nil {
		return nil, err
	}
	return mappings, nil
}

func (r *mappingRepository) FindByPatientID(db *gorm.DB, patientID uint) ([]entity.PatientDoctorMapping, error) {
	var mappings []entity.PatientDoctorMapping
	err := db.Preload("Doctor").Where("patient_id = ?", patientID).Find(&mappings).Error
	if err != nil {
		return nil, err
	}
	return mappings, nil
}

func (r *mappingRepository) FindByPair(db *gorm.DB, patientID, doctorID uint) (*entity.PatientDoctorMapping, error) {
	var mapping entity.PatientDoctorMapping
	err := db.Where("patient_id = ? AND doctor_id = ?", patientID, doctorID).First(&mapping).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mapping, nil
}

// CountByDoctorOnDay counts assignments stamped within the given day, used
// for the per-day capacity check.
func (r *mappingRepository) CountByDoctorOnDay(db *gorm.DB, doctorID uint, day time.Time) (int64, error) {
	start := day.UTC().Truncate(24 * time.Hour)
	end := start.Add(24 * time.Hour)

	var count int64
	err := db.Model(&entity.PatientDoctorMapping{}).
		Where("doctor_id = ? AND assigned_at >= ? AND assigned_at < ?", doctorID, start, end).
		Count(&count).Error
	return count, err
}

func (r *mappingRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.PatientDoctorMapping{})
	return result.RowsAffected, result.Error
}
