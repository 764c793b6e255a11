package services

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"tourwise/internal/models/db_models"
)

type stopOutcome int

const (
	stopSkipped stopOutcome = iota
	stopEnriched
	stopMissed
)

// EnrichmentReport summarises one enrichment pass.
type EnrichmentReport struct {
	Enriched int `json:"enriched"`
	Skipped  int `json:"skipped"`
	Missed   int `json:"missed"`
}

type PlanEnricher interface {
	Enrich(ctx context.Context, plan db_models.ItineraryPlan) (db_models.ItineraryPlan, EnrichmentReport)
}

type planEnricher struct {
	places        PlaceSearcher
	lookupTimeout time.Duration
}

func NewPlanEnricher(places PlaceSearcher, lookupTimeout time.Duration) PlanEnricher {
	if lookupTimeout <= 0 {
		lookupTimeout = 8 * time.Second
	}
	return &planEnricher{places: places, lookupTimeout: lookupTimeout}
}

// Enrich geocodes every stop that lacks coordinates. Days and their stops are
// looked up concurrently; each task writes only its own slot so order is kept.
// Failed lookups leave the stop untouched. The input plan is not modified.
func (e *planEnricher) Enrich(ctx context.Context, plan db_models.ItineraryPlan) (db_models.ItineraryPlan, EnrichmentReport) {
	out := plan
	out.Days = make([]db_models.Day, len(plan.Days))
	outcomes := make([][]stopOutcome, len(plan.Days))

	var days errgroup.Group
	for i, day := range plan.Days {
		i, day := i, day
		days.Go(func() error {
			stops := make([]db_models.Stop, len(day.Stops))
			results := make([]stopOutcome, len(day.Stops))

			var g errgroup.Group
			for j, stop := range day.Stops {
				j, stop := j, stop
				g.Go(func() error {
					stops[j], results[j] = e.enrichStop(ctx, stop)
					return nil
				})
			}
			_ = g.Wait()

			enriched := day
			enriched.Stops = stops
			out.Days[i] = enriched
			outcomes[i] = results
			return nil
		})
	}
	_ = days.Wait()

	var report EnrichmentReport
	for _, results := range outcomes {
		for _, r := range results {
			switch r {
			case stopEnriched:
				report.Enriched++
			case stopMissed:
				report.Missed++
			default:
				report.Skipped++
			}
		}
	}
	return out, report
}

func (e *planEnricher) enrichStop(ctx context.Context, stop db_models.Stop) (db_models.Stop, stopOutcome) {
	if stop.HasGeo() {
		return stop, stopSkipped
	}
	if e.places == nil || !e.places.Enabled() || strings.TrimSpace(stop.Name) == "" {
		return stop, stopMissed
	}

	lookupCtx, cancel := context.WithTimeout(ctx, e.lookupTimeout)
	defer cancel()

	place, err := e.places.SearchPlace(lookupCtx, stop.Name, stop.City())
	if err != nil {
		log.WithError(err).WithField("stop", stop.Name).Warn("place lookup failed")
		return stop, stopMissed
	}
	if place == nil {
		return stop, stopMissed
	}
	return mergePlace(stop, place), stopEnriched
}

func mergePlace(stop db_models.Stop, place *Place) db_models.Stop {
	merged := stop
	if place.Name != "" {
		merged.Name = place.Name
	}
	if place.Address != "" {
		merged.Address = place.Address
	}
	merged.ExternalID = place.PlaceID
	if place.Rating > 0 {
		rating := place.Rating
		merged.Rating = &rating
	}

	loc := db_models.Location{}
	if stop.Location != nil {
		loc = *stop.Location
	}
	if place.Address != "" {
		loc.Address = place.Address
	}
	loc.Geo = &db_models.Geo{Lat: place.Lat, Lng: place.Lng}
	merged.Location = &loc
	return merged
}
