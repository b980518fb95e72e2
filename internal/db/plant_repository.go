package db

import (
	"github.com/ottocompiler/plantmon/internal/models"
	"gorm.io/gorm"
)

type PlantRepository struct {
	database *gorm.DB
}

func NewPlantRepository(database *gorm.DB) *PlantRepository {
	return &PlantRepository{database: database}
}

func (repo *PlantRepository) ListByName() ([]models.Plant, error) {
	plants := make([]models.Plant, 0)
	if err := repo.database.Order("name COLLATE NOCASE ASC, id ASC").Find(&plants).Error; err != nil {
		return nil, err
	}
	return plants, nil
}

func (repo *PlantRepository) FindByID(id uint) (models.Plant, bool, error) {
	plant := models.Plant{}
	result := repo.database.Where("id = ?", id).Limit(1).Find(&plant)
	if result.Error != nil {
		return models.Plant{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Plant{}, false, nil
	}
	return plant, true, nil
}

func (repo *PlantRepository) Create(plant *models.Plant) error {
	return repo.database.Create(plant).Error
}

func (repo *PlantRepository) Save(plant *models.Plant) error {
	return repo.database.Save(plant).Error
}

// DeleteWithLogs removes the plant and every watering event referencing it.
// The schema also declares ON DELETE CASCADE, but this explicit delete is the
// source of truth and does not depend on the driver honoring the pragma.
// Deleting an id that does not exist is not an error.
func (repo *PlantRepository) DeleteWithLogs(id uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plant_id = ?", id).Delete(&models.WaterLog{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Plant{}).Error
	})
}

func (repo *PlantRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Plant{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
