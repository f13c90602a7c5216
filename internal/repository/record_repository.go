package repository

import (
	"github.com/agritrack/agritrack-server/internal/models"
	"gorm.io/gorm"
)

type RecordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) Create(record *models.WeightRecord) error {
	return r.db.Create(record).Error
}

func (r *RecordRepository) CreateInTx(tx *gorm.DB, record *models.WeightRecord) error {
	return tx.Create(record).Error
}

// FindByHarvest returns all records for one harvest, most recent date first,
// newest record first within a date.
func (r *RecordRepository) FindByHarvest(harvestID uint) ([]models.WeightRecord, error) {
	var records []models.WeightRecord
	err := r.db.Where("harvest_id = ?", harvestID).
		Order("date DESC").
		Order("id DESC").
		Find(&records).Error
	return records, err
}

// DeleteByID removes one record. Deleting an id that does not exist is a
// no-op, not an error.
func (r *RecordRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.WeightRecord{}, id).Error
}

func (r *RecordRepository) DeleteByHarvestInTx(tx *gorm.DB, harvestID uint) error {
	return tx.Where("harvest_id = ?", harvestID).Delete(&models.WeightRecord{}).Error
}
