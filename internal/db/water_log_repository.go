package db

import (
	"github.com/ottocompiler/plantmon/internal/models"
	"gorm.io/gorm"
)

type WaterLogRepository struct {
	database *gorm.DB
}

func NewWaterLogRepository(database *gorm.DB) *WaterLogRepository {
	return &WaterLogRepository{database: database}
}

// LastWateredAt returns the raw stored timestamp of the most recent watering
// event for the plant, or ok=false when the plant has never been watered.
func (repo *WaterLogRepository) LastWateredAt(plantID uint) (string, bool, error) {
	entry := models.WaterLog{}
	result := repo.database.
		Select("watered_at").
		Where("plant_id = ?", plantID).
		Order("watered_at DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return "", false, result.Error
	}
	if result.RowsAffected == 0 {
		return "", false, nil
	}
	return entry.WateredAt, true, nil
}

func (repo *WaterLogRepository) ListByPlant(plantID uint) ([]models.WaterLog, error) {
	logs := make([]models.WaterLog, 0)
	if err := repo.database.
		Where("plant_id = ?", plantID).
		Order("watered_at DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *WaterLogRepository) Create(entry *models.WaterLog) error {
	return repo.database.Create(entry).Error
}

func (repo *WaterLogRepository) CountByPlant(plantID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.WaterLog{}).Where("plant_id = ?", plantID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *WaterLogRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.WaterLog{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
