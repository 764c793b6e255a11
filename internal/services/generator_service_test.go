package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourwise/internal/models/db_models"
	"tourwise/internal/models/request_models"
)

const lisbonPlanJSON = "```json\n" + `{
  "title": "Three days in Lisbon",
  "summary": "Miradouros, tiles and seafood.",
  "durationDays": 3,
  "budget": {"currency": "EUR", "amount": 600},
  "tags": ["food", "culture"],
  "days": [
    {"dayNumber": 1, "stops": [{"name": "Alfama"}, {"name": "Sao Jorge Castle"}]},
    {"dayNumber": 2, "stops": [{"name": "Belem Tower"}, {"name": "Jeronimos Monastery"}]},
    {"dayNumber": 3, "stops": [{"name": "LX Factory"}, {"name": "Time Out Market"}]}
  ]
}` + "\n```"

func TestGenerate_NoClientFallsBack(t *testing.T) {
	g := NewItineraryGenerator(nil, 0)

	result := g.Generate(context.Background(), "Weekend trip to Rome", db_models.Preferences{DurationDays: intPtr(2)})

	assert.True(t, result.Degraded())
	assert.Equal(t, OutcomeFallback, result.Outcome)
	plan := result.Plan
	assert.Equal(t, fallbackTitle, plan.Title)
	assert.Equal(t, 2, plan.DurationDays)
	require.Len(t, plan.Days, 2)
	for i, day := range plan.Days {
		assert.Equal(t, i+1, day.DayNumber)
		require.Len(t, day.Stops, 2)
	}
	assert.Equal(t, "poi-2-1", plan.Days[1].Stops[0].ExternalID)
	assert.Equal(t, "poi-2-2", plan.Days[1].Stops[1].ExternalID)
	assert.Equal(t, []string{"general"}, plan.Tags)
	require.NotNil(t, plan.Budget)
	assert.Equal(t, "USD", plan.Budget.Currency)
	assert.Equal(t, 300.0, plan.Budget.Amount)
	assert.NoError(t, ValidatePlan(plan))
}

func TestGenerate_FallbackUsesPromptDuration(t *testing.T) {
	g := NewItineraryGenerator(nil, 0)

	result := g.Generate(context.Background(), "Plan 4 days around the Algarve coast", db_models.Preferences{
		TravelStyles: []string{"beach", " beach", "relaxed"},
	})

	assert.Len(t, result.Plan.Days, 4)
	assert.Equal(t, []string{"beach", "relaxed"}, result.Plan.Tags)
}

func TestGenerate_FallbackExcerptIsBounded(t *testing.T) {
	long := "A very long travel brief that keeps going and going well past sixty characters of text"
	plan := buildFallbackPlan(long, db_models.Preferences{})

	assert.Contains(t, plan.Days[0].Stops[0].Description, long[:60]+"...")
	assert.NotContains(t, plan.Days[0].Stops[0].Description, long[:61])
}

func TestGenerate_UsesModelOutput(t *testing.T) {
	client := &stubTextGenerator{reply: lisbonPlanJSON}
	g := NewItineraryGenerator(client, 0)

	result := g.Generate(context.Background(), "3 days in Lisbon", db_models.Preferences{})

	assert.False(t, result.Degraded())
	assert.Equal(t, OutcomeGenerated, result.Outcome)
	assert.Equal(t, "Three days in Lisbon", result.Plan.Title)
	assert.Equal(t, 6, result.Plan.TotalStops())
	assert.Equal(t, 1, client.calls)
}

func TestGenerate_ClientErrorFallsBack(t *testing.T) {
	g := NewItineraryGenerator(&stubTextGenerator{err: errors.New("upstream 503")}, 0)

	result := g.Generate(context.Background(), "3 days in Lisbon", db_models.Preferences{})

	assert.True(t, result.Degraded())
	assert.Equal(t, "upstream 503", result.Reason)
	assert.Len(t, result.Plan.Days, 3)
}

func TestGenerate_UnparseableOutputFallsBack(t *testing.T) {
	g := NewItineraryGenerator(&stubTextGenerator{reply: "I would love to help you plan!"}, 0)

	result := g.Generate(context.Background(), "a week in Japan", db_models.Preferences{})

	assert.True(t, result.Degraded())
	assert.Len(t, result.Plan.Days, 7)
}

func TestExtractDayCount(t *testing.T) {
	tests := []struct {
		prompt string
		want   int
	}{
		{"3 days in Lisbon", 3},
		{"a 5-day road trip", 5},
		{"Chuyến đi 2 ngày ở Đà Lạt", 2},
		{"Three days of hiking", 3},
		{"weekend in Paris", 2},
		{"one week in Bali", 7},
		{"45 days across Asia", 0},
		{"somewhere sunny", 0},
	}

	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDayCount(tt.prompt))
		})
	}
}

func TestBuildItineraryPrompt(t *testing.T) {
	fixed := buildItineraryPrompt("Rome food tour", db_models.Preferences{DurationDays: intPtr(3)})
	assert.Contains(t, fixed, "EXACTLY 3 DAYS")
	assert.Contains(t, fixed, `"accommodation"`)
	assert.Contains(t, fixed, "Brief: Rome food tour")

	open := buildItineraryPrompt("Rome food tour", db_models.Preferences{})
	assert.Contains(t, open, "DURATION INSTRUCTION")
	assert.NotContains(t, open, `"accommodation"`)
}

func TestAnswer(t *testing.T) {
	poi := &request_models.ChatbotContext{Name: "Belem Tower"}

	noClient := NewItineraryGenerator(nil, 0).Answer(context.Background(), "Is it open on Mondays?", poi)
	assert.True(t, noClient.Fallback)
	assert.Contains(t, noClient.Answer, "Is it open on Mondays?")

	failing := NewItineraryGenerator(&stubTextGenerator{err: errors.New("timeout")}, 0).
		Answer(context.Background(), "Is it open on Mondays?", poi)
	assert.True(t, failing.Fallback)
	assert.Equal(t, chatbotErrorAnswer, failing.Answer)

	ok := NewItineraryGenerator(&stubTextGenerator{reply: `{"answer":"Closed on Mondays.","sources":["visitlisboa.com"]}`}, 0).
		Answer(context.Background(), "Is it open on Mondays?", poi)
	assert.False(t, ok.Fallback)
	assert.Equal(t, "Closed on Mondays.", ok.Answer)
	assert.Equal(t, []string{"visitlisboa.com"}, ok.Sources)
}
