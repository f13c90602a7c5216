package repository

import (
	"errors"

	"github.com/agritrack/agritrack-server/internal/models"
	"gorm.io/gorm"
)

type HarvestRepository struct {
	db *gorm.DB
}

func NewHarvestRepository(db *gorm.DB) *HarvestRepository {
	return &HarvestRepository{db: db}
}

func (r *HarvestRepository) Create(harvest *models.Harvest) error {
	return r.db.Create(harvest).Error
}

func (r *HarvestRepository) Save(harvest *models.Harvest) error {
	return r.db.Save(harvest).Error
}

func (r *HarvestRepository) SaveInTx(tx *gorm.DB, harvest *models.Harvest) error {
	return tx.Save(harvest).Error
}

func (r *HarvestRepository) FindByID(id uint) (*models.Harvest, error) {
	var harvest models.Harvest
	err := r.db.First(&harvest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &harvest, nil
}

// FindAll returns every harvest newest first.
func (r *HarvestRepository) FindAll() ([]models.Harvest, error) {
	var harvests []models.Harvest
	err := r.db.Order("id DESC").Find(&harvests).Error
	return harvests, err
}

func (r *HarvestRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.Harvest{}, id).Error
}

func (r *HarvestRepository) DeleteByIDInTx(tx *gorm.DB, id uint) error {
	return tx.Delete(&models.Harvest{}, id).Error
}
