package api

import (
	"time"

	"github.com/ottocompiler/plantmon/internal/models"
	"github.com/ottocompiler/plantmon/internal/services"
)

const (
	displayDateTimeLayout = "Jan 02, 2006 15:04"
	displayDateLayout     = "2006-01-02"
)

// PlantCard is a plant decorated with the derived watering fields the
// dashboard, API and export all share. Raw values keep the stored/derived
// UTC strings; display values are localized for rendering only.
type PlantCard struct {
	models.Plant
	LastWatered        string
	HasLastWatered     bool
	LastWateredDisplay string
	CreatedDisplay     string
	NextWatering       string
	NextWateringAt     time.Time
	HasNextWatering    bool
	Due                bool
	NextDueHuman       string
}

type WaterLogRow struct {
	models.WaterLog
	WateredAtDisplay string
}

func (handler *Handler) buildPlantCard(plant models.Plant, now time.Time) (PlantCard, error) {
	lastRaw, hasLast, err := handler.repos.WaterLogs.LastWateredAt(plant.ID)
	if err != nil {
		return PlantCard{}, err
	}

	card := PlantCard{
		Plant:          plant,
		LastWatered:    lastRaw,
		HasLastWatered: hasLast,
	}
	if lastParsed, ok := services.ParseTimestamp(lastRaw); hasLast && ok {
		card.LastWateredDisplay = lastParsed.In(handler.location).Format(displayDateTimeLayout)
	}
	if created, ok := services.ParseTimestamp(plant.CreatedAt); ok {
		card.CreatedDisplay = created.In(handler.location).Format(displayDateTimeLayout)
	}
	if next, ok := services.NextWatering(plant.CreatedAt, lastRaw, plant.WaterIntervalDays); ok {
		card.NextWatering = services.FormatTimestamp(next)
		card.NextWateringAt = next
		card.HasNextWatering = true
		card.Due = services.IsDue(next, now)
		card.NextDueHuman = services.HumanDelta(next, now)
	}
	return card, nil
}

func (handler *Handler) buildPlantCards(now time.Time) ([]PlantCard, error) {
	plants, err := handler.repos.Plants.ListByName()
	if err != nil {
		return nil, err
	}

	cards := make([]PlantCard, 0, len(plants))
	for _, plant := range plants {
		card, err := handler.buildPlantCard(plant, now)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// filterPlantCards applies the search and status filters in combination.
// "due" keeps only plants with a computable next watering at or before now.
func filterPlantCards(cards []PlantCard, query string, show string) []PlantCard {
	filtered := make([]PlantCard, 0, len(cards))
	for _, card := range cards {
		if !services.MatchesSearch(card.Name, card.Species, card.Location, query) {
			continue
		}
		if show == services.ShowDue && !(card.HasNextWatering && card.Due) {
			continue
		}
		filtered = append(filtered, card)
	}
	return filtered
}

func (handler *Handler) buildWaterLogRows(plantID uint) ([]WaterLogRow, error) {
	logs, err := handler.repos.WaterLogs.ListByPlant(plantID)
	if err != nil {
		return nil, err
	}

	rows := make([]WaterLogRow, 0, len(logs))
	for _, entry := range logs {
		row := WaterLogRow{WaterLog: entry, WateredAtDisplay: entry.WateredAt}
		if parsed, ok := services.ParseTimestamp(entry.WateredAt); ok {
			row.WateredAtDisplay = parsed.In(handler.location).Format(displayDateTimeLayout)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
