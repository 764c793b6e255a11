package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"tourwise/internal/models/db_models"
	"tourwise/internal/models/request_models"
	"tourwise/internal/models/response_models"
	"tourwise/internal/repositories"
	"tourwise/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateAIItinerary(ctx context.Context, viewer Viewer, req request_models.GenerateItineraryRequest) (*db_models.Itinerary, error)
	ListAIItineraries(ctx context.Context, viewer Viewer) ([]db_models.Itinerary, error)
	ListAIItinerarySummaries(ctx context.Context, viewer Viewer) ([]response_models.ItinerarySummary, error)
	GetAIItinerary(ctx context.Context, viewer Viewer, id string) (*db_models.Itinerary, error)
	GetItinerary(ctx context.Context, viewer Viewer, id string) (*db_models.Itinerary, error)
	UpdateItinerary(ctx context.Context, viewer Viewer, id string, req request_models.UpdateItineraryRequest) (*db_models.Itinerary, error)
	DeleteItinerary(ctx context.Context, viewer Viewer, id string) error
	ReorderStops(ctx context.Context, viewer Viewer, id string, req request_models.ReorderStopsRequest) (*db_models.Itinerary, error)
	MoveStop(ctx context.Context, viewer Viewer, id string, req request_models.MoveStopRequest) (*db_models.Itinerary, error)
	CopyItinerary(ctx context.Context, viewer Viewer, id string) (*db_models.Itinerary, error)
	ShareItinerary(ctx context.Context, viewer Viewer, id string) (*response_models.ShareItineraryResponse, error)
	CreateFromRoute(ctx context.Context, viewer Viewer, req request_models.CreateItineraryFromRouteRequest) (*db_models.Itinerary, error)
	ListItineraries(ctx context.Context, viewer Viewer, q request_models.ItineraryListQuery) (*response_models.ItineraryListResponse, error)
	ListByUser(ctx context.Context, viewer Viewer, userID string, q request_models.ItineraryListQuery) ([]db_models.Itinerary, error)
	ToggleVisibility(ctx context.Context, viewer Viewer, id string) (*db_models.Itinerary, error)
	AskChatbot(ctx context.Context, viewer Viewer, req request_models.ChatbotRequest) (*response_models.ChatbotAnswer, error)
	ExportPDF(ctx context.Context, viewer Viewer, id string) ([]byte, string, error)
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	routeRepo     repositories.RouteRepository
	routeService  RouteServiceInterface
	generator     ItineraryGenerator
	enricher      PlanEnricher
	exporter      ItineraryExporter
}

func NewItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	routeRepo repositories.RouteRepository,
	routeService RouteServiceInterface,
	generator ItineraryGenerator,
	enricher PlanEnricher,
	exporter ItineraryExporter,
) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		routeRepo:     routeRepo,
		routeService:  routeService,
		generator:     generator,
		enricher:      enricher,
		exporter:      exporter,
	}
}

// GenerateAIItinerary runs generate, enrich and validate, then stores a private draft.
func (s *ItineraryService) GenerateAIItinerary(ctx context.Context, viewer Viewer, req request_models.GenerateItineraryRequest) (*db_models.Itinerary, error) {
	if !viewer.Authenticated() {
		return nil, utils.ErrUnauthenticated
	}

	var prefs db_models.Preferences
	if req.Preferences != nil {
		prefs = *req.Preferences
	}

	result := s.generator.Generate(ctx, req.Prompt, prefs)
	plan := result.Plan
	fields := log.Fields{"user_id": viewer.ID, "outcome": result.Outcome}
	if result.Degraded() {
		fields["reason"] = result.Reason
	} else {
		var report EnrichmentReport
		plan, report = s.enricher.Enrich(ctx, plan)
		fields["enriched"], fields["skipped"], fields["missed"] = report.Enriched, report.Skipped, report.Missed
	}
	log.WithFields(fields).Info("itinerary plan ready")

	if err := ValidatePlan(plan); err != nil {
		return nil, err
	}

	it := &db_models.Itinerary{
		ID:           uuid.NewString(),
		UserID:       viewer.ID,
		Source:       db_models.SourceAI,
		Prompt:       req.Prompt,
		Preferences:  req.Preferences,
		Title:        plan.Title,
		Summary:      plan.Summary,
		DurationDays: plan.DurationDays,
		Budget:       plan.Budget,
		Visibility:   db_models.VisibilityPrivate,
		Status:       db_models.StatusDraft,
		Tags:         utils.SanitizeList(plan.Tags),
		Days:         plan.Days,
		WaypointList: MapDaysToWaypointList(plan.Days),
	}
	if err := s.itineraryRepo.Create(ctx, it); err != nil {
		return nil, dbError(err)
	}
	return it, nil
}

func (s *ItineraryService) ListAIItineraries(ctx context.Context, viewer Viewer) ([]db_models.Itinerary, error) {
	if !viewer.Authenticated() {
		return nil, utils.ErrUnauthenticated
	}
	items, err := s.itineraryRepo.Find(ctx,
		repositories.ItineraryFilter{UserID: viewer.ID, Source: db_models.SourceAI},
		repositories.FindOptions{SortBy: "updatedAt"},
	)
	if err != nil {
		return nil, dbError(err)
	}
	if items == nil {
		items = []db_models.Itinerary{}
	}
	return items, nil
}

func (s *ItineraryService) ListAIItinerarySummaries(ctx context.Context, viewer Viewer) ([]response_models.ItinerarySummary, error) {
	items, err := s.ListAIItineraries(ctx, viewer)
	if err != nil {
		return nil, err
	}
	out := make([]response_models.ItinerarySummary, 0, len(items))
	for _, it := range items {
		out = append(out, response_models.NewItinerarySummary(it))
	}
	return out, nil
}

func (s *ItineraryService) find(ctx context.Context, id string) (*db_models.Itinerary, error) {
	it, err := s.itineraryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, dbError(err)
	}
	if it == nil {
		return nil, utils.ErrItineraryNotFound
	}
	return it, nil
}

// findOwned reports absence before ownership so missing ids never read as forbidden.
func (s *ItineraryService) findOwned(ctx context.Context, viewer Viewer, id string) (*db_models.Itinerary, error) {
	if !viewer.Authenticated() {
		return nil, utils.ErrUnauthenticated
	}
	it, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Authorize(it.UserID, viewer); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *ItineraryService) findVisible(ctx context.Context, viewer Viewer, id string) (*db_models.Itinerary, error) {
	it, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canViewItinerary(it, viewer) {
		return nil, Authorize(it.UserID, viewer)
	}
	return it, nil
}

func (s *ItineraryService) GetAIItinerary(ctx context.Context, viewer Viewer, id string) (*db_models.Itinerary, error) {
	return s.findOwned(ctx, viewer, id)
}

func (s *ItineraryService) GetItinerary(ctx context.Context, viewer Viewer, id string) (*db_models.Itinerary, error) {
	return s.findVisible(ctx, viewer, id)
}

func (s *ItineraryService) UpdateItinerary(ctx context.Context, viewer Viewer, id string, req request_models.UpdateItineraryRequest) (*db_models.Itinerary, error) {
	it, err := s.findOwned(ctx, viewer, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		it.Title = strings.TrimSpace(*req.Title)
	}
	if req.Summary != nil {
		it.Summary = strings.TrimSpace(*req.Summary)
	}
	if req.Notes != nil {
		it.Notes = *req.Notes
	}
	if req.Prompt != nil {
		it.Prompt = *req.Prompt
	}
	if req.DurationDays != nil {
		it.DurationDays = *req.DurationDays
	}
	if req.Budget != nil {
		if err := ValidateBudget(req.Budget); err != nil {
			return nil, err
		}
		it.Budget = req.Budget
	}
	if req.Tags != nil {
		it.Tags = utils.SanitizeList(*req.Tags)
	}
	if req.WaypointList != nil {
		it.WaypointList = append([]db_models.Waypoint{}, (*req.WaypointList)...)
	}
	if req.Days != nil {
		if err := ValidateDays(*req.Days); err != nil {
			return nil, err
		}
		it.Days = cloneDays(*req.Days)
		it.WaypointList = MapDaysToWaypointList(it.Days)
	}
	if req.Visibility != nil {
		it.Visibility = *req.Visibility
	}
	if req.Status != nil {
		it.Status = *req.Status
	}
	if req.CoverImage != nil {
		it.CoverImage = *req.CoverImage
	}

	if err := s.itineraryRepo.Replace(ctx, it); err != nil {
		return nil, replaceError(err, utils.ErrItineraryNotFound)
	}
	return it, nil
}

func (s *ItineraryService) DeleteItinerary(ctx context.Context, viewer Viewer, id string) error {
	if _, err := s.findOwned(ctx, viewer, id); err != nil {
		return err
	}
	if err := s.itineraryRepo.Delete(ctx, id); err != nil {
		return dbError(err)
	}
	return nil
}

// saveDays writes back a whole replacement day list and its derived waypoints.
func (s *ItineraryService) saveDays(ctx context.Context, it *db_models.Itinerary, days []db_models.Day) (*db_models.Itinerary, error) {
	it.Days = days
	it.WaypointList = MapDaysToWaypointList(days)
	if err := s.itineraryRepo.Replace(ctx, it); err != nil {
		return nil, replaceError(err, utils.ErrItineraryNotFound)
	}
	return it, nil
}

func (s *ItineraryService) ReorderStops(ctx context.Context, viewer Viewer, id string, req request_models.ReorderStopsRequest) (*db_models.Itinerary, error) {
	it, err := s.findOwned(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	days, err := ReorderStops(it.Days, req.DayNumber, *req.OldIndex, *req.NewIndex)
	if err != nil {
		return nil, err
	}
	return s.saveDays(ctx, it, days)
}

func (s *ItineraryService) MoveStop(ctx context.Context, viewer Viewer, id string, req request_models.MoveStopRequest) (*db_models.Itinerary, error) {
	it, err := s.findOwned(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	days, err := MoveStop(it.Days, req.FromDay, req.ToDay, *req.FromIndex, *req.ToIndex)
	if err != nil {
		return nil, err
	}
	return s.saveDays(ctx, it, days)
}

// CopyItinerary duplicates an itinerary into a new private draft owned by the viewer.
func (s *ItineraryService) CopyItinerary(ctx context.Context, viewer Viewer, id string) (*db_models.Itinerary, error) {
	src, err := s.findOwned(ctx, viewer, id)
	if err != nil {
		return nil, err
	}

	cp := *src
	cp.ID = uuid.NewString()
	cp.UserID = viewer.ID
	cp.Title = src.Title + " (Copy)"
	cp.Visibility = db_models.VisibilityPrivate
	cp.Status = db_models.StatusDraft
	cp.PublishedRouteID = nil
	sourceID := src.ID
	cp.ForkedFromItineraryID = &sourceID
	cp.Tags = utils.SanitizeList([]string(src.Tags))
	cp.Days = cloneDays(src.Days)
	if len(cp.Days) > 0 {
		cp.WaypointList = MapDaysToWaypointList(cp.Days)
	} else {
		cp.WaypointList = append([]db_models.Waypoint{}, src.WaypointList...)
	}
	if src.Budget != nil {
		b := *src.Budget
		cp.Budget = &b
	}
	cp.CreatedAt, cp.UpdatedAt = timeNow(), timeNow()

	if err := s.itineraryRepo.Create(ctx, &cp); err != nil {
		return nil, dbError(err)
	}
	return &cp, nil
}

// ShareItinerary makes the itinerary shared and, for AI drafts not yet published, publishes a public route.
func (s *ItineraryService) ShareItinerary(ctx context.Context, viewer Viewer, id string) (*response_models.ShareItineraryResponse, error) {
	it, err := s.findOwned(ctx, viewer, id)
	if err != nil {
		return nil, err
	}

	resp := &response_models.ShareItineraryResponse{Itinerary: it}
	if it.Source == db_models.SourceAI && it.PublishedRouteID == nil {
		route, err := s.routeService.PublishItinerary(ctx, it, db_models.RouteVisibilityPublic)
		if err != nil {
			return nil, err
		}
		it.PublishedRouteID = &route.ID
		it.Status = db_models.StatusPublished
		resp.Route = route
	}
	it.Visibility = db_models.VisibilityShared

	if err := s.itineraryRepo.Replace(ctx, it); err != nil {
		if resp.Route != nil {
			s.discardRoute(ctx, resp.Route.ID, err)
		}
		return nil, replaceError(err, utils.ErrItineraryNotFound)
	}
	return resp, nil
}

// discardRoute removes a route published for an itinerary whose write-back failed.
func (s *ItineraryService) discardRoute(ctx context.Context, routeID string, cause error) {
	entry := log.WithFields(log.Fields{"route_id": routeID, "cause": cause})
	if err := s.routeRepo.Delete(ctx, routeID); err != nil {
		entry.WithError(err).Error("failed to remove orphaned route")
		return
	}
	entry.Warn("removed route after itinerary update failed")
}

// CreateFromRoute starts a route-sourced itinerary that the viewer owns.
func (s *ItineraryService) CreateFromRoute(ctx context.Context, viewer Viewer, req request_models.CreateItineraryFromRouteRequest) (*db_models.Itinerary, error) {
	if !viewer.Authenticated() {
		return nil, utils.ErrUnauthenticated
	}
	route, err := s.routeRepo.FindByID(ctx, req.RouteID)
	if err != nil {
		return nil, dbError(err)
	}
	if route == nil || !canViewRoute(route, viewer) {
		return nil, utils.ErrRouteNotFound
	}

	tags := utils.SanitizeList(req.Tags)
	if len(tags) == 0 {
		tags = utils.SanitizeList([]string(route.Tags))
	}
	waypoints := req.WaypointList
	if len(waypoints) == 0 {
		waypoints = route.WaypointList
	}
	duration := route.DurationDays
	if duration == 0 {
		duration = len(waypoints)
	}

	routeID := route.ID
	forkedFrom := route.ID
	it := &db_models.Itinerary{
		ID:                uuid.NewString(),
		UserID:            viewer.ID,
		RouteID:           &routeID,
		Source:            db_models.SourceRoute,
		Title:             orDefault(req.Title, route.Title),
		Summary:           orDefault(req.Summary, route.Summary),
		Notes:             req.Notes,
		DurationDays:      duration,
		Visibility:        orDefault(req.Visibility, db_models.VisibilityPrivate),
		Status:            db_models.StatusDraft,
		CoverImage:        orDefault(req.CoverImage, route.CoverImage),
		Tags:              tags,
		Days:              []db_models.Day{},
		WaypointList:      append([]db_models.Waypoint{}, waypoints...),
		ForkedFromRouteID: &forkedFrom,
	}
	if err := s.itineraryRepo.Create(ctx, it); err != nil {
		return nil, dbError(err)
	}
	return it, nil
}

// ListItineraries is the admin listing with paging and totals.
func (s *ItineraryService) ListItineraries(ctx context.Context, viewer Viewer, q request_models.ItineraryListQuery) (*response_models.ItineraryListResponse, error) {
	if !viewer.Authenticated() {
		return nil, utils.ErrUnauthenticated
	}
	if !viewer.IsAdmin {
		return nil, utils.ErrForbidden
	}

	filter := BuildItineraryFilter(q, viewer)
	items, err := s.itineraryRepo.Find(ctx, filter, listOptions(q.SortBy, q.Order, q.StartIndex, q.Limit, "createdAt"))
	if err != nil {
		return nil, dbError(err)
	}
	total, err := s.itineraryRepo.Count(ctx, filter)
	if err != nil {
		return nil, dbError(err)
	}
	since := utils.OneMonthAgo(timeNow())
	filter.CreatedSince = &since
	lastMonth, err := s.itineraryRepo.Count(ctx, filter)
	if err != nil {
		return nil, dbError(err)
	}
	if items == nil {
		items = []db_models.Itinerary{}
	}
	return &response_models.ItineraryListResponse{
		Itineraries:          items,
		TotalItineraries:     total,
		LastMonthItineraries: lastMonth,
	}, nil
}

func (s *ItineraryService) ListByUser(ctx context.Context, viewer Viewer, userID string, q request_models.ItineraryListQuery) ([]db_models.Itinerary, error) {
	if err := Authorize(userID, viewer); err != nil {
		return nil, err
	}
	q.UserID = userID
	items, err := s.itineraryRepo.Find(ctx, BuildItineraryFilter(q, viewer), repositories.FindOptions{SortBy: "createdAt"})
	if err != nil {
		return nil, dbError(err)
	}
	if items == nil {
		items = []db_models.Itinerary{}
	}
	return items, nil
}

func (s *ItineraryService) ToggleVisibility(ctx context.Context, viewer Viewer, id string) (*db_models.Itinerary, error) {
	it, err := s.findOwned(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	if it.Visibility == db_models.VisibilityPrivate {
		it.Visibility = db_models.VisibilityShared
	} else {
		it.Visibility = db_models.VisibilityPrivate
	}
	if err := s.itineraryRepo.Replace(ctx, it); err != nil {
		return nil, replaceError(err, utils.ErrItineraryNotFound)
	}
	return it, nil
}

func (s *ItineraryService) AskChatbot(ctx context.Context, viewer Viewer, req request_models.ChatbotRequest) (*response_models.ChatbotAnswer, error) {
	if !viewer.Authenticated() {
		return nil, utils.ErrUnauthenticated
	}
	var poi *request_models.ChatbotContext
	if req.Context != nil || req.PoiID != "" {
		c := request_models.ChatbotContext{}
		if req.Context != nil {
			c = *req.Context
		}
		if req.PoiID != "" {
			c.PoiID = req.PoiID
		}
		poi = &c
	}
	answer := s.generator.Answer(ctx, req.Question, poi)
	return &answer, nil
}

// ExportPDF returns the rendered document and a download file name.
func (s *ItineraryService) ExportPDF(ctx context.Context, viewer Viewer, id string) ([]byte, string, error) {
	it, err := s.findVisible(ctx, viewer, id)
	if err != nil {
		return nil, "", err
	}
	doc, err := s.exporter.RenderPDF(it)
	if err != nil {
		return nil, "", err
	}
	return doc, utils.SlugBase(it.Title) + ".pdf", nil
}
