package services

import (
	"fmt"
	"strings"

	"tourwise/internal/models/db_models"
	"tourwise/pkg/utils"
)

// MapDaysToWaypointList flattens days and stops into waypoints, preserving source order.
func MapDaysToWaypointList(days []db_models.Day) []db_models.Waypoint {
	waypoints := make([]db_models.Waypoint, 0)
	for dayIdx, day := range days {
		dayNumber := day.DayNumber
		if dayNumber <= 0 {
			dayNumber = dayIdx + 1
		}
		for stopIdx, stop := range day.Stops {
			waypoints = append(waypoints, stopToWaypoint(stop, dayNumber, stopIdx))
		}
	}
	return waypoints
}

func stopToWaypoint(stop db_models.Stop, day, order int) db_models.Waypoint {
	title := strings.TrimSpace(stop.Name)
	if title == "" {
		title = fmt.Sprintf("Stop %d", order+1)
	}

	location := stop.Address
	var lat, lng *float64
	if stop.Location != nil {
		if stop.Location.Address != "" {
			location = stop.Location.Address
		}
		if g := stop.Location.Geo; g != nil {
			la, ln := g.Lat, g.Lng
			lat, lng = &la, &ln
		}
	}

	resources := make([]string, len(stop.Resources))
	copy(resources, stop.Resources)

	return db_models.Waypoint{
		Title:     title,
		Summary:   stop.Description,
		Day:       day,
		Order:     order,
		Location:  location,
		Latitude:  lat,
		Longitude: lng,
		StartTime: stop.StartTime,
		EndTime:   stop.EndTime,
		Notes:     stop.Notes,
		Resources: resources,
	}
}

// cloneDays copies the day and stop slices so callers can rearrange without aliasing.
func cloneDays(days []db_models.Day) []db_models.Day {
	out := make([]db_models.Day, len(days))
	for i, d := range days {
		out[i] = d
		out[i].Stops = append([]db_models.Stop(nil), d.Stops...)
	}
	return out
}

func findDay(days []db_models.Day, dayNumber int) int {
	for i, d := range days {
		if d.DayNumber == dayNumber {
			return i
		}
	}
	return -1
}

// ReorderStops moves one stop within a day. Both indexes must be in range.
func ReorderStops(days []db_models.Day, dayNumber, oldIndex, newIndex int) ([]db_models.Day, error) {
	idx := findDay(days, dayNumber)
	if idx == -1 {
		return nil, fmt.Errorf("%w: day %d", utils.ErrDayNotFound, dayNumber)
	}
	n := len(days[idx].Stops)
	if oldIndex < 0 || oldIndex >= n || newIndex < 0 || newIndex >= n {
		return nil, fmt.Errorf("%w: day %d has %d stops", utils.ErrIndexOutOfBounds, dayNumber, n)
	}

	out := cloneDays(days)
	stops := out[idx].Stops
	moved := stops[oldIndex]
	stops = append(stops[:oldIndex], stops[oldIndex+1:]...)
	out[idx].Stops = insertStop(stops, newIndex, moved)
	return out, nil
}

// MoveStop relocates a stop between days. The source index must be valid; the
// destination index is clamped so drops past the end append.
func MoveStop(days []db_models.Day, fromDay, toDay, fromIndex, toIndex int) ([]db_models.Day, error) {
	src := findDay(days, fromDay)
	if src == -1 {
		return nil, fmt.Errorf("%w: day %d", utils.ErrDayNotFound, fromDay)
	}
	dst := findDay(days, toDay)
	if dst == -1 {
		return nil, fmt.Errorf("%w: day %d", utils.ErrDayNotFound, toDay)
	}
	if fromIndex < 0 || fromIndex >= len(days[src].Stops) {
		return nil, fmt.Errorf("%w: day %d has %d stops", utils.ErrIndexOutOfBounds, fromDay, len(days[src].Stops))
	}

	out := cloneDays(days)
	moved := out[src].Stops[fromIndex]
	out[src].Stops = append(out[src].Stops[:fromIndex], out[src].Stops[fromIndex+1:]...)

	dest := out[dst].Stops
	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex > len(dest) {
		toIndex = len(dest)
	}
	out[dst].Stops = insertStop(dest, toIndex, moved)
	return out, nil
}

func insertStop(stops []db_models.Stop, at int, stop db_models.Stop) []db_models.Stop {
	out := make([]db_models.Stop, 0, len(stops)+1)
	out = append(out, stops[:at]...)
	out = append(out, stop)
	return append(out, stops[at:]...)
}

// BuildNarrativeFromDays renders the day-by-day text stored on a published route.
func BuildNarrativeFromDays(days []db_models.Day) string {
	blocks := make([]string, 0, len(days))
	for i, day := range days {
		dayNumber := day.DayNumber
		if dayNumber <= 0 {
			dayNumber = i + 1
		}
		header := fmt.Sprintf("Day %d", dayNumber)
		if day.Title != "" {
			header += " - " + day.Title
		}
		lines := []string{header}
		if day.Summary != "" {
			lines = append(lines, day.Summary)
		}
		for j, stop := range day.Stops {
			line := fmt.Sprintf("  %d. %s", j+1, orDefault(stop.Name, fmt.Sprintf("Stop %d", j+1)))
			if city := stop.City(); city != "" {
				line += " (" + city + ")"
			}
			if stop.StartTime != "" || stop.EndTime != "" {
				window := stop.StartTime
				if stop.EndTime != "" {
					window += " - " + stop.EndTime
				}
				line += " [" + window + "]"
			}
			lines = append(lines, line)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
