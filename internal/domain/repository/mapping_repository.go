package repository

import (
	"time"

	"hospital-records-api/internal/domain/entity"

	"gorm.io/gorm"
)

type MappingRepository interface {
	Create(db *gorm.DB, mapping *entity.PatientDoctorMapping) error
	FindByID(db *gorm.DB, id uint) (*entity.PatientDoctorMapping, error)
	FindAll(db *gorm.DB) ([]entity.PatientDoctorMapping, error)
	FindByPatientID(db *gorm.DB, patientID uint) ([]entity.PatientDoctorMapping, error)
	FindByPair(db *gorm.DB, patientID, doctorID uint) (*entity.PatientDoctorMapping, error)
	CountByDoctorOnDay(db *gorm.DB, doctorID uint, day time.Time) (int64, error)
	Delete(db *gorm.DB, id uint) (int64, error)
}
