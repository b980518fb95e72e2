package db

import (
	"github.com/ottocompiler/plantmon/internal/models"
	"gorm.io/gorm"
)

type Repositories struct {
	database  *gorm.DB
	Plants    *PlantRepository
	WaterLogs *WaterLogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		database:  database,
		Plants:    NewPlantRepository(database),
		WaterLogs: NewWaterLogRepository(database),
	}
}

// ClearAll wipes every watering event and every plant in one transaction and
// reports how many rows each table lost.
func (repos *Repositories) ClearAll() (deletedPlants int64, deletedLogs int64, err error) {
	err = repos.database.Transaction(func(tx *gorm.DB) error {
		logsResult := tx.Where("1 = 1").Delete(&models.WaterLog{})
		if logsResult.Error != nil {
			return logsResult.Error
		}
		deletedLogs = logsResult.RowsAffected

		plantsResult := tx.Where("1 = 1").Delete(&models.Plant{})
		if plantsResult.Error != nil {
			return plantsResult.Error
		}
		deletedPlants = plantsResult.RowsAffected
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return deletedPlants, deletedLogs, nil
}
