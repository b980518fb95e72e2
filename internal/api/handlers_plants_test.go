package api

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/ottocompiler/plantmon/internal/models"
)

func TestCreatePlantFormEmptyNameIsNoOp(t *testing.T) {
	app, database := newTestApp(t)

	response := postForm(t, app, "/plants/create", url.Values{
		"name":    {"   "},
		"species": {"Monstera deliciosa"},
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected silent redirect, got status %d", response.StatusCode)
	}

	var count int64
	if err := database.Model(&models.Plant{}).Count(&count).Error; err != nil {
		t.Fatalf("count plants: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no plant rows, got %d", count)
	}
}

func TestCreatePlantFormAppliesDefaults(t *testing.T) {
	tests := []struct {
		name         string
		interval     string
		wantInterval int
	}{
		{name: "missing interval", interval: "", wantInterval: 7},
		{name: "unparsable interval", interval: "often", wantInterval: 7},
		{name: "non-positive interval clamps", interval: "-3", wantInterval: 1},
		{name: "valid interval", interval: "12", wantInterval: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, database := newTestApp(t)

			form := url.Values{"name": {"Fern"}}
			if tt.interval != "" {
				form.Set("water_interval_days", tt.interval)
			}
			response := postForm(t, app, "/plants/create", form)
			defer response.Body.Close()

			if response.StatusCode != http.StatusSeeOther {
				t.Fatalf("expected redirect, got status %d", response.StatusCode)
			}

			plant := models.Plant{}
			if err := database.First(&plant).Error; err != nil {
				t.Fatalf("load created plant: %v", err)
			}
			if plant.Name != "Fern" {
				t.Fatalf("name = %q, want Fern", plant.Name)
			}
			if plant.WaterIntervalDays != tt.wantInterval {
				t.Fatalf("interval = %d, want %d", plant.WaterIntervalDays, tt.wantInterval)
			}
			if plant.CreatedAt == "" || plant.CreatedAt != plant.UpdatedAt {
				t.Fatalf("creation timestamps not set consistently: %q vs %q", plant.CreatedAt, plant.UpdatedAt)
			}
		})
	}
}

func TestShowPlantRedirectsIntoDashboardDetail(t *testing.T) {
	app, database := newTestApp(t)
	createTestPlant(t, database, models.Plant{Name: "Fern"})

	response := getPath(t, app, "/plants/1")
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected redirect, got status %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/?detail=1" {
		t.Fatalf("redirect location = %q, want /?detail=1", location)
	}

	missing := getPath(t, app, "/plants/999")
	defer missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for missing plant, got %d", missing.StatusCode)
	}
}

func TestUpdatePlantFormKeepsNameWhenEmpty(t *testing.T) {
	app, database := newTestApp(t)
	plant := createTestPlant(t, database, models.Plant{
		Name:              "Fern",
		Species:           "Nephrolepis",
		WaterIntervalDays: 3,
		CreatedAt:         "2026-03-01T09:00:00Z",
	})

	response := postForm(t, app, "/plants/1/update", url.Values{
		"name":                {""},
		"species":             {"Nephrolepis exaltata"},
		"water_interval_days": {"5"},
		"notes":               {"repotted"},
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected redirect, got status %d", response.StatusCode)
	}

	updated := models.Plant{}
	if err := database.First(&updated, plant.ID).Error; err != nil {
		t.Fatalf("load updated plant: %v", err)
	}
	if updated.Name != "Fern" {
		t.Fatalf("empty submitted name must keep stored name, got %q", updated.Name)
	}
	if updated.Species != "Nephrolepis exaltata" || updated.WaterIntervalDays != 5 || updated.Notes != "repotted" {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.UpdatedAt == plant.UpdatedAt {
		t.Fatal("updated_at was not refreshed")
	}
}

func TestUpdatePlantFormMissingPlant(t *testing.T) {
	app, _ := newTestApp(t)

	response := postForm(t, app, "/plants/42/update", url.Values{"name": {"Ghost"}})
	defer response.Body.Close()

	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", response.StatusCode)
	}
}

func TestDeletePlantFormCascadesAndStaysIdempotent(t *testing.T) {
	app, database := newTestApp(t)
	plant := createTestPlant(t, database, models.Plant{Name: "Fern"})
	createTestWaterLog(t, database, plant.ID, "2026-03-01T09:00:00Z", "")
	createTestWaterLog(t, database, plant.ID, "2026-03-04T09:00:00Z", "")

	response := postForm(t, app, "/plants/1/delete", nil)
	defer response.Body.Close()
	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected redirect, got status %d", response.StatusCode)
	}

	var remaining int64
	if err := database.Model(&models.WaterLog{}).Where("plant_id = ?", plant.ID).Count(&remaining).Error; err != nil {
		t.Fatalf("count water logs: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("expected cascade to remove all events, %d left", remaining)
	}

	again := postForm(t, app, "/plants/1/delete", nil)
	defer again.Body.Close()
	if again.StatusCode != http.StatusSeeOther {
		t.Fatalf("deleting a missing plant must stay silent, got status %d", again.StatusCode)
	}
}

func TestShowEditPlantPage(t *testing.T) {
	app, database := newTestApp(t)
	createTestPlant(t, database, models.Plant{Name: "Fern", Notes: "east window"})

	response := getPath(t, app, "/plants/1/edit")
	body := readBody(t, response)

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
	for _, fragment := range []string{"Edit Fern", "east window", "/plants/1/update"} {
		if !containsFragment(body, fragment) {
			t.Fatalf("edit page is missing %q", fragment)
		}
	}
}
