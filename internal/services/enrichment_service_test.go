package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourwise/internal/models/db_models"
)

func enrichablePlan() db_models.ItineraryPlan {
	return db_models.ItineraryPlan{
		Title:        "Lisbon",
		Summary:      "Three days of tiles and trams.",
		DurationDays: 2,
		Days: []db_models.Day{
			{DayNumber: 1, Stops: []db_models.Stop{
				{Name: "Alfama", Location: &db_models.Location{City: "Lisbon"}},
				{Name: "Belem Tower", Location: &db_models.Location{Geo: &db_models.Geo{Lat: 1, Lng: 2}}},
				{Name: "Unknown Cafe"},
			}},
			{DayNumber: 2, Stops: []db_models.Stop{
				{Name: "LX Factory"},
			}},
		},
	}
}

func lisbonPlaces() *stubPlaces {
	return &stubPlaces{
		enabled: true,
		places: map[string]*Place{
			"Alfama":     {PlaceID: "p-alfama", Name: "Alfama District", Address: "Alfama, Lisbon", Lat: 38.71, Lng: -9.13, Rating: 4.7},
			"LX Factory": {PlaceID: "p-lx", Name: "LX Factory", Address: "R. Rodrigues de Faria 103", Lat: 38.70, Lng: -9.18},
		},
	}
}

func TestEnrich_MergesMatchesAndKeepsOrder(t *testing.T) {
	places := lisbonPlaces()
	plan := enrichablePlan()

	out, report := NewPlanEnricher(places, 0).Enrich(context.Background(), plan)

	assert.Equal(t, EnrichmentReport{Enriched: 2, Skipped: 1, Missed: 1}, report)
	require.Len(t, out.Days, 2)
	require.Len(t, out.Days[0].Stops, 3)

	alfama := out.Days[0].Stops[0]
	assert.Equal(t, "Alfama District", alfama.Name)
	assert.Equal(t, "p-alfama", alfama.ExternalID)
	assert.Equal(t, "Lisbon", alfama.Location.City)
	assert.Equal(t, "Alfama, Lisbon", alfama.Location.Address)
	require.NotNil(t, alfama.Location.Geo)
	assert.InDelta(t, 38.71, alfama.Location.Geo.Lat, 1e-9)
	require.NotNil(t, alfama.Rating)

	assert.Equal(t, "Belem Tower", out.Days[0].Stops[1].Name)
	assert.Equal(t, "Unknown Cafe", out.Days[0].Stops[2].Name)
	assert.Nil(t, out.Days[0].Stops[2].Location)
	assert.Nil(t, out.Days[1].Stops[0].Rating)

	// input is not modified
	assert.Equal(t, "Alfama", plan.Days[0].Stops[0].Name)
	assert.Nil(t, plan.Days[0].Stops[0].Location.Geo)
}

func TestEnrich_IsIdempotent(t *testing.T) {
	places := lisbonPlaces()
	enricher := NewPlanEnricher(places, 0)

	once, _ := enricher.Enrich(context.Background(), enrichablePlan())
	twice, report := enricher.Enrich(context.Background(), once)

	assert.Equal(t, once, twice)
	assert.Equal(t, 0, report.Enriched)
	assert.Equal(t, 3, report.Skipped)
}

func TestEnrich_DisabledOrFailingSearcher(t *testing.T) {
	plan := enrichablePlan()

	out, report := NewPlanEnricher(&stubPlaces{enabled: false}, 0).Enrich(context.Background(), plan)
	assert.Equal(t, EnrichmentReport{Skipped: 1, Missed: 3}, report)
	assert.Equal(t, plan, out)

	out, report = NewPlanEnricher(nil, 0).Enrich(context.Background(), plan)
	assert.Equal(t, 3, report.Missed)
	assert.Equal(t, plan, out)

	failing := &stubPlaces{enabled: true, err: errors.New("quota exceeded")}
	out, report = NewPlanEnricher(failing, 0).Enrich(context.Background(), plan)
	assert.Equal(t, 3, report.Missed)
	assert.Equal(t, plan, out)
	assert.Len(t, failing.queries, 3)
}
