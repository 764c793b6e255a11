package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"tourwise/internal/models/db_models"
	resp "tourwise/internal/models/response_models"
	"tourwise/internal/repositories"
	"tourwise/pkg/utils"
)

type DashboardService interface {
	BuildDashboard(ctx context.Context, viewer Viewer, start, end time.Time) (*resp.DashboardReport, error)
}

type dashboardService struct {
	accounts    repositories.AccountRepository
	itineraries repositories.ItineraryRepository
	routes      repositories.RouteRepository
}

func NewDashboardService(store *repositories.Store) DashboardService {
	return &dashboardService{
		accounts:    store.Accounts,
		itineraries: store.Itineraries,
		routes:      store.Routes,
	}
}

// BuildDashboard counts totals plus records created within [start, end].
func (s *dashboardService) BuildDashboard(ctx context.Context, viewer Viewer, start, end time.Time) (*resp.DashboardReport, error) {
	if !viewer.Authenticated() {
		return nil, utils.ErrUnauthenticated
	}
	if !viewer.IsAdmin {
		return nil, utils.ErrForbidden
	}
	start, end = utils.NormalizeRange(start, end)

	var kpi resp.KPIBlock
	g, gctx := errgroup.WithContext(ctx)

	// ---------- Accounts ----------
	g.Go(func() (err error) {
		kpi.TotalAccounts, err = s.accounts.Count(gctx, nil, nil)
		return
	})
	g.Go(func() (err error) {
		kpi.NewAccounts, err = s.accounts.Count(gctx, &start, &end)
		return
	})

	// ---------- Itineraries ----------
	g.Go(func() (err error) {
		kpi.TotalItineraries, err = s.itineraries.Count(gctx, repositories.ItineraryFilter{})
		return
	})
	g.Go(func() (err error) {
		kpi.AIItineraries, err = s.itineraries.Count(gctx, repositories.ItineraryFilter{Source: db_models.SourceAI})
		return
	})
	g.Go(func() (err error) {
		kpi.NewItineraries, err = s.itineraries.Count(gctx, repositories.ItineraryFilter{CreatedSince: &start, CreatedUntil: &end})
		return
	})
	g.Go(func() (err error) {
		kpi.PublishedItineraries, err = s.itineraries.Count(gctx, repositories.ItineraryFilter{Status: db_models.StatusPublished})
		return
	})

	// ---------- Routes ----------
	g.Go(func() (err error) {
		kpi.TotalRoutes, err = s.routes.Count(gctx, repositories.RouteFilter{IncludeArchived: true})
		return
	})
	g.Go(func() (err error) {
		kpi.PublicRoutes, err = s.routes.Count(gctx, repositories.RouteFilter{Visibility: db_models.RouteVisibilityPublic})
		return
	})
	g.Go(func() (err error) {
		kpi.NewRoutes, err = s.routes.Count(gctx, repositories.RouteFilter{IncludeArchived: true, CreatedSince: &start, CreatedUntil: &end})
		return
	})

	if err := g.Wait(); err != nil {
		return nil, dbError(err)
	}

	return &resp.DashboardReport{
		Range: resp.TimeRange{Start: start, End: end},
		KPIs:  kpi,
	}, nil
}
