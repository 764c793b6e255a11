package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tourwise/internal/models/db_models"
	"tourwise/pkg/utils"
)

func validPlan() db_models.ItineraryPlan {
	return db_models.ItineraryPlan{
		Title:        "Lisbon in 3 days",
		Summary:      "Tiles, trams and pasteis de nata.",
		DurationDays: 1,
		Budget:       &db_models.Budget{Currency: "EUR", Amount: 400},
		Days:         []db_models.Day{{DayNumber: 1, Stops: []db_models.Stop{{Name: "Alfama"}}}},
	}
}

func TestValidatePlan(t *testing.T) {
	assert.NoError(t, ValidatePlan(validPlan()))

	tests := []struct {
		name   string
		mutate func(p *db_models.ItineraryPlan)
		want   string
	}{
		{"short title", func(p *db_models.ItineraryPlan) { p.Title = "ab" }, "title must be at least 3 characters"},
		{"missing summary", func(p *db_models.ItineraryPlan) { p.Summary = "" }, "summary is required"},
		{"no days", func(p *db_models.ItineraryPlan) { p.Days = nil }, "days is required"},
		{"unnamed stop", func(p *db_models.ItineraryPlan) { p.Days[0].Stops[0].Name = "" }, "name is required"},
		{"bad currency", func(p *db_models.ItineraryPlan) { p.Budget.Currency = "EURO" }, "currency must be exactly 3 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPlan()
			tt.mutate(&p)

			err := ValidatePlan(p)
			assert.ErrorIs(t, err, utils.ErrValidation)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateDays(t *testing.T) {
	assert.ErrorIs(t, ValidateDays(nil), utils.ErrValidation)
	assert.ErrorIs(t, ValidateDays([]db_models.Day{{DayNumber: 0}}), utils.ErrValidation)
	assert.NoError(t, ValidateDays([]db_models.Day{{DayNumber: 1, Stops: []db_models.Stop{}}}))
}

func TestValidateBudget(t *testing.T) {
	assert.NoError(t, ValidateBudget(nil))
	assert.ErrorIs(t, ValidateBudget(&db_models.Budget{Currency: "USD", Amount: -1}), utils.ErrValidation)
}
