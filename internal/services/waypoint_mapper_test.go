package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourwise/internal/models/db_models"
	"tourwise/pkg/utils"
)

func sampleDays() []db_models.Day {
	return []db_models.Day{
		{
			DayNumber: 1,
			Title:     "Old town",
			Stops: []db_models.Stop{
				{Name: "Belem Tower", Location: &db_models.Location{City: "Lisbon", Address: "Av. Brasilia", Geo: &db_models.Geo{Lat: 38.69, Lng: -9.21}}},
				{Name: "Jeronimos Monastery", Address: "Praca do Imperio", StartTime: "10:00", EndTime: "11:30"},
				{Name: ""},
			},
		},
		{
			DayNumber: 2,
			Stops: []db_models.Stop{
				{Name: "LX Factory", Resources: []string{"https://lxfactory.com"}},
			},
		},
	}
}

func TestMapDaysToWaypointList(t *testing.T) {
	waypoints := MapDaysToWaypointList(sampleDays())

	require.Len(t, waypoints, 4)

	first := waypoints[0]
	assert.Equal(t, "Belem Tower", first.Title)
	assert.Equal(t, 1, first.Day)
	assert.Equal(t, 0, first.Order)
	assert.Equal(t, "Av. Brasilia", first.Location)
	require.NotNil(t, first.Latitude)
	assert.InDelta(t, 38.69, *first.Latitude, 1e-9)

	second := waypoints[1]
	assert.Equal(t, "Praca do Imperio", second.Location)
	assert.Nil(t, second.Latitude)
	assert.Equal(t, "10:00", second.StartTime)

	assert.Equal(t, "Stop 3", waypoints[2].Title)
	assert.Equal(t, 2, waypoints[2].Order)

	assert.Equal(t, 2, waypoints[3].Day)
	assert.Equal(t, 0, waypoints[3].Order)
	assert.Equal(t, []string{"https://lxfactory.com"}, waypoints[3].Resources)
}

func TestMapDaysToWaypointList_Deterministic(t *testing.T) {
	days := sampleDays()
	assert.Equal(t, MapDaysToWaypointList(days), MapDaysToWaypointList(days))
	assert.Empty(t, MapDaysToWaypointList(nil))
	assert.NotNil(t, MapDaysToWaypointList(nil))
}

func TestMapDaysToWaypointList_DayNumberFallback(t *testing.T) {
	waypoints := MapDaysToWaypointList([]db_models.Day{{Stops: []db_models.Stop{{Name: "A"}}}})
	require.Len(t, waypoints, 1)
	assert.Equal(t, 1, waypoints[0].Day)
}

func stopNames(day db_models.Day) []string {
	names := make([]string, 0, len(day.Stops))
	for _, s := range day.Stops {
		names = append(names, s.Name)
	}
	return names
}

func TestReorderStops(t *testing.T) {
	days := sampleDays()

	out, err := ReorderStops(days, 1, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jeronimos Monastery", "", "Belem Tower"}, stopNames(out[0]))
	// input untouched
	assert.Equal(t, "Belem Tower", days[0].Stops[0].Name)
}

func TestReorderStops_Errors(t *testing.T) {
	days := sampleDays()

	_, err := ReorderStops(days, 1, 0, 3)
	assert.ErrorIs(t, err, utils.ErrIndexOutOfBounds)

	_, err = ReorderStops(days, 1, -1, 0)
	assert.ErrorIs(t, err, utils.ErrIndexOutOfBounds)

	_, err = ReorderStops(days, 9, 0, 0)
	assert.ErrorIs(t, err, utils.ErrDayNotFound)
}

func TestMoveStop(t *testing.T) {
	days := sampleDays()

	out, err := MoveStop(days, 1, 2, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jeronimos Monastery", ""}, stopNames(out[0]))
	assert.Equal(t, []string{"Belem Tower", "LX Factory"}, stopNames(out[1]))

	waypoints := MapDaysToWaypointList(out)
	for i, wp := range waypoints[2:] {
		assert.Equal(t, 2, wp.Day)
		assert.Equal(t, i, wp.Order)
	}
}

func TestMoveStop_ClampsDestination(t *testing.T) {
	out, err := MoveStop(sampleDays(), 2, 1, 0, 99)
	require.NoError(t, err)
	assert.Equal(t, "LX Factory", out[0].Stops[3].Name)
	assert.Empty(t, out[1].Stops)
}

func TestMoveStop_WithinSameDay(t *testing.T) {
	out, err := MoveStop(sampleDays(), 1, 1, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "Belem Tower", "Jeronimos Monastery"}, stopNames(out[0]))
}

func TestMoveStop_Errors(t *testing.T) {
	_, err := MoveStop(sampleDays(), 1, 2, 5, 0)
	assert.ErrorIs(t, err, utils.ErrIndexOutOfBounds)

	_, err = MoveStop(sampleDays(), 1, 7, 0, 0)
	assert.ErrorIs(t, err, utils.ErrDayNotFound)
}

func TestBuildNarrativeFromDays(t *testing.T) {
	narrative := BuildNarrativeFromDays(sampleDays())

	assert.Contains(t, narrative, "Day 1 - Old town")
	assert.Contains(t, narrative, "  1. Belem Tower (Lisbon)")
	assert.Contains(t, narrative, "  2. Jeronimos Monastery [10:00 - 11:30]")
	assert.Contains(t, narrative, "  3. Stop 3")
	assert.Contains(t, narrative, "\n\nDay 2")
}
