package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"

	"tourwise/internal/models/db_models"
	"tourwise/internal/models/request_models"
	"tourwise/internal/models/response_models"
	"tourwise/internal/repositories"
	"tourwise/pkg/utils"
)

const (
	maxSlugProbes   = 50
	maxSlugAttempts = 3

	defaultQRSize = 256
	maxQRSize     = 1024
)

type RouteServiceInterface interface {
	CreateRoute(ctx context.Context, viewer Viewer, req request_models.CreateRouteRequest) (*db_models.Route, error)
	CreateRouteFromItinerary(ctx context.Context, viewer Viewer, req request_models.CreateRouteFromItineraryRequest) (*response_models.RouteFromItineraryResponse, error)
	PublishItinerary(ctx context.Context, it *db_models.Itinerary, visibility string) (*db_models.Route, error)
	ListRoutes(ctx context.Context, viewer Viewer, q request_models.RouteListQuery) (*response_models.RouteListResponse, error)
	GetRoute(ctx context.Context, viewer Viewer, id string) (*response_models.RouteView, error)
	UpdateRoute(ctx context.Context, viewer Viewer, id string, req request_models.UpdateRouteRequest) (*db_models.Route, error)
	DeleteRoute(ctx context.Context, viewer Viewer, id string) error
	ToggleLike(ctx context.Context, viewer Viewer, id string) (*response_models.LikeResponse, error)
	ForkRoute(ctx context.Context, viewer Viewer, id string) (*db_models.Route, error)
	ShareQRCode(ctx context.Context, viewer Viewer, id string, size int) ([]byte, error)
}

// ShareConfig controls the links embedded in share artifacts.
type ShareConfig struct {
	PublicBaseURL string
}

type RouteService struct {
	routeRepo     repositories.RouteRepository
	itineraryRepo repositories.ItineraryRepository
	accountRepo   repositories.AccountRepository
	share         ShareConfig
}

func NewRouteService(
	routeRepo repositories.RouteRepository,
	itineraryRepo repositories.ItineraryRepository,
	accountRepo repositories.AccountRepository,
	share ShareConfig,
) RouteServiceInterface {
	return &RouteService{
		routeRepo:     routeRepo,
		itineraryRepo: itineraryRepo,
		accountRepo:   accountRepo,
		share:         share,
	}
}

func (s *RouteService) CreateRoute(ctx context.Context, viewer Viewer, req request_models.CreateRouteRequest) (*db_models.Route, error) {
	if !viewer.Authenticated() {
		return nil, utils.ErrUnauthenticated
	}

	route := newRoute(viewer.ID, req.Title, req.Summary)
	route.Visibility = orDefault(req.Visibility, db_models.RouteVisibilityPrivate)
	route.CoverImage = orDefault(req.CoverImage, db_models.DefaultRouteCoverImage)
	route.Gallery = utils.SanitizeList(req.Gallery)
	route.Tags = utils.SanitizeList(req.Tags)
	route.TerrainTypes = utils.SanitizeList(req.TerrainTypes)
	route.Season = orDefault(req.Season, db_models.DefaultSeason)
	route.StartLocation = req.StartLocation
	route.EndLocation = req.EndLocation
	route.DistanceKm = req.DistanceKm
	if req.DurationDays != nil {
		route.DurationDays = *req.DurationDays
	}
	route.Overview = req.Overview
	route.Itinerary = req.Itinerary
	route.Highlights = utils.SanitizeList(req.Highlights)
	route.Tips = utils.SanitizeList(req.Tips)
	route.AllowForks = boolOrDefault(req.AllowForks, true)
	route.AllowComments = boolOrDefault(req.AllowComments, true)
	if req.WaypointList != nil {
		route.WaypointList = req.WaypointList
	}

	if err := s.insertWithSlug(ctx, route); err != nil {
		return nil, err
	}
	return route, nil
}

func (s *RouteService) CreateRouteFromItinerary(ctx context.Context, viewer Viewer, req request_models.CreateRouteFromItineraryRequest) (*response_models.RouteFromItineraryResponse, error) {
	if !viewer.Authenticated() {
		return nil, utils.ErrUnauthenticated
	}

	it, err := s.itineraryRepo.FindByID(ctx, req.ItineraryID)
	if err != nil {
		return nil, dbError(err)
	}
	if it == nil {
		return nil, utils.ErrItineraryNotFound
	}
	if it.Source != db_models.SourceAI {
		return nil, utils.ErrNotAIItinerary
	}
	if err := Authorize(it.UserID, viewer); err != nil {
		return nil, err
	}

	title := orDefault(req.Title, it.Title)
	summary := orDefault(req.Summary, it.Summary)
	if strings.TrimSpace(title) == "" || strings.TrimSpace(summary) == "" {
		return nil, fmt.Errorf("%w: title and summary are required to publish a route", utils.ErrValidation)
	}

	route := routeFromItinerary(viewer.ID, it)
	route.Title = title
	route.Summary = truncateSummary(summary)
	route.Visibility = orDefault(req.Visibility, db_models.RouteVisibilityPrivate)
	if req.CoverImage != "" {
		route.CoverImage = req.CoverImage
	}
	if len(req.Gallery) > 0 {
		route.Gallery = utils.SanitizeList(req.Gallery)
	}
	if len(req.Tags) > 0 {
		route.Tags = utils.SanitizeList(req.Tags)
	}
	route.TerrainTypes = utils.SanitizeList(req.TerrainTypes)
	route.Season = orDefault(req.Season, db_models.DefaultSeason)
	if loc := strings.TrimSpace(req.StartLocation); loc != "" {
		route.StartLocation = loc
	}
	if loc := strings.TrimSpace(req.EndLocation); loc != "" {
		route.EndLocation = loc
	}
	if req.DurationDays != nil && *req.DurationDays > 0 {
		route.DurationDays = *req.DurationDays
	}
	if req.DistanceKm != nil {
		route.DistanceKm = req.DistanceKm
	}
	if req.Overview != "" {
		route.Overview = req.Overview
	}
	if req.Itinerary != "" {
		route.Itinerary = req.Itinerary
	}
	route.Highlights = utils.SanitizeList(req.Highlights)
	route.Tips = utils.SanitizeList(req.Tips)
	route.AllowForks = boolOrDefault(req.AllowForks, true)
	route.AllowComments = boolOrDefault(req.AllowComments, true)

	if err := s.insertWithSlug(ctx, route); err != nil {
		return nil, err
	}

	it.Status = db_models.StatusPublished
	it.PublishedRouteID = &route.ID
	if req.SharePublicly {
		it.Visibility = db_models.VisibilityShared
	}
	if err := s.itineraryRepo.Replace(ctx, it); err != nil {
		if delErr := s.routeRepo.Delete(ctx, route.ID); delErr != nil {
			log.WithError(delErr).WithField("route_id", route.ID).Error("failed to remove orphaned route")
		}
		return nil, replaceError(err, utils.ErrItineraryNotFound)
	}

	return &response_models.RouteFromItineraryResponse{Route: route, Itinerary: it}, nil
}

// PublishItinerary creates a route owned by the itinerary owner. The caller persists the
// itinerary's publish pointer.
func (s *RouteService) PublishItinerary(ctx context.Context, it *db_models.Itinerary, visibility string) (*db_models.Route, error) {
	route := routeFromItinerary(it.UserID, it)
	route.Visibility = orDefault(visibility, db_models.RouteVisibilityPublic)
	if err := s.insertWithSlug(ctx, route); err != nil {
		return nil, err
	}
	return route, nil
}

func newRoute(userID, title, summary string) *db_models.Route {
	return &db_models.Route{
		ID:            uuid.NewString(),
		UserID:        userID,
		Title:         strings.TrimSpace(title),
		Summary:       truncateSummary(summary),
		CoverImage:    db_models.DefaultRouteCoverImage,
		Season:        db_models.DefaultSeason,
		Visibility:    db_models.RouteVisibilityPrivate,
		AllowForks:    true,
		AllowComments: true,
		Gallery:       []string{},
		Tags:          []string{},
		TerrainTypes:  []string{},
		Highlights:    []string{},
		Tips:          []string{},
		Likes:         []string{},
		WaypointList:  []db_models.Waypoint{},
	}
}

// routeFromItinerary derives every route field the itinerary can supply.
func routeFromItinerary(userID string, it *db_models.Itinerary) *db_models.Route {
	route := newRoute(userID, it.Title, it.Summary)

	waypoints := it.WaypointList
	if len(waypoints) == 0 {
		waypoints = MapDaysToWaypointList(it.Days)
	}
	route.WaypointList = append([]db_models.Waypoint{}, waypoints...)
	if n := len(waypoints); n > 0 {
		route.StartLocation = waypoints[0].Location
		route.EndLocation = waypoints[n-1].Location
	}

	route.CoverImage = orDefault(it.CoverImage, db_models.DefaultRouteCoverImage)
	route.Tags = utils.SanitizeList([]string(it.Tags))
	route.DurationDays = it.DurationDays
	if route.DurationDays == 0 {
		route.DurationDays = len(it.Days)
	}
	zero := 0.0
	route.DistanceKm = &zero
	route.Overview = it.Summary
	route.Itinerary = BuildNarrativeFromDays(it.Days)
	itineraryID := it.ID
	route.SourceItineraryID = &itineraryID
	return route
}

func truncateSummary(summary string) string {
	summary = strings.TrimSpace(summary)
	if r := []rune(summary); len(r) > db_models.MaxRouteSummaryLength {
		return string(r[:db_models.MaxRouteSummaryLength])
	}
	return summary
}

func boolOrDefault(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

// resolveSlug probes sequentially for a free slug derived from title.
func (s *RouteService) resolveSlug(ctx context.Context, title, excludeID string) (string, error) {
	candidate := utils.BuildSlug(title)
	slug := candidate
	for n := 1; ; n++ {
		exists, err := s.routeRepo.SlugExists(ctx, slug, excludeID)
		if err != nil {
			return "", dbError(err)
		}
		if !exists {
			return slug, nil
		}
		if n > maxSlugProbes {
			return "", utils.ErrSlugConflict
		}
		slug = fmt.Sprintf("%s-%d", candidate, n)
	}
}

// insertWithSlug retries with a fresh candidate when a concurrent writer takes the slug first.
func (s *RouteService) insertWithSlug(ctx context.Context, route *db_models.Route) error {
	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		slug, err := s.resolveSlug(ctx, route.Title, "")
		if err != nil {
			return err
		}
		route.Slug = slug

		err = s.routeRepo.Create(ctx, route)
		if err == nil {
			return nil
		}
		if !errors.Is(err, utils.ErrDuplicateSlug) {
			return dbError(err)
		}
		log.WithFields(log.Fields{"slug": slug, "attempt": attempt}).Warn("slug taken concurrently, retrying")
	}
	return utils.ErrSlugConflict
}

func (s *RouteService) replaceWithSlug(ctx context.Context, route *db_models.Route, reslug bool) error {
	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		if reslug {
			slug, err := s.resolveSlug(ctx, route.Title, route.ID)
			if err != nil {
				return err
			}
			route.Slug = slug
		}

		err := s.routeRepo.Replace(ctx, route)
		if err == nil {
			return nil
		}
		if !reslug || !errors.Is(err, utils.ErrDuplicateSlug) {
			return replaceError(err, utils.ErrRouteNotFound)
		}
		log.WithFields(log.Fields{"slug": route.Slug, "attempt": attempt}).Warn("slug taken concurrently, retrying")
	}
	return utils.ErrSlugConflict
}

func (s *RouteService) ListRoutes(ctx context.Context, viewer Viewer, q request_models.RouteListQuery) (*response_models.RouteListResponse, error) {
	if q.Slug != "" {
		return s.routeBySlug(ctx, viewer, q.Slug)
	}

	filter := BuildRouteFilter(q, viewer)
	routes, err := s.routeRepo.Find(ctx, filter, listOptions(q.SortBy, q.Order, q.StartIndex, q.Limit, "createdAt"))
	if err != nil {
		return nil, dbError(err)
	}
	total, err := s.routeRepo.Count(ctx, filter)
	if err != nil {
		return nil, dbError(err)
	}
	since := utils.OneMonthAgo(timeNow())
	filter.CreatedSince = &since
	lastMonth, err := s.routeRepo.Count(ctx, filter)
	if err != nil {
		return nil, dbError(err)
	}

	views, err := s.withMeta(ctx, routes)
	if err != nil {
		return nil, err
	}
	return &response_models.RouteListResponse{Routes: views, TotalRoutes: total, LastMonthRoutes: lastMonth}, nil
}

// Slug lookups are direct links, so unlisted routes resolve too.
func (s *RouteService) routeBySlug(ctx context.Context, viewer Viewer, slug string) (*response_models.RouteListResponse, error) {
	route, err := s.routeRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, dbError(err)
	}
	routes := []db_models.Route{}
	if route != nil && !route.IsArchived && canViewRoute(route, viewer) {
		routes = append(routes, *route)
	}
	views, err := s.withMeta(ctx, routes)
	if err != nil {
		return nil, err
	}
	return &response_models.RouteListResponse{Routes: views, TotalRoutes: int64(len(views))}, nil
}

func (s *RouteService) withMeta(ctx context.Context, routes []db_models.Route) ([]response_models.RouteView, error) {
	views := make([]response_models.RouteView, 0, len(routes))
	if len(routes) == 0 {
		return views, nil
	}

	seen := map[string]struct{}{}
	ids := make([]string, 0, len(routes))
	for _, r := range routes {
		if _, ok := seen[r.UserID]; ok || r.UserID == "" {
			continue
		}
		seen[r.UserID] = struct{}{}
		ids = append(ids, r.UserID)
	}

	accounts, err := s.accountRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, dbError(err)
	}
	owners := make(map[string]*response_models.OwnerSummary, len(accounts))
	for _, a := range accounts {
		owners[a.ID] = &response_models.OwnerSummary{ID: a.ID, Username: a.Username}
	}

	for _, r := range routes {
		views = append(views, response_models.RouteView{
			Route:      r,
			LikesCount: len(r.Likes),
			Owner:      owners[r.UserID],
		})
	}
	return views, nil
}

func (s *RouteService) findRoute(ctx context.Context, id string) (*db_models.Route, error) {
	route, err := s.routeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, dbError(err)
	}
	if route == nil {
		return nil, utils.ErrRouteNotFound
	}
	return route, nil
}

func (s *RouteService) GetRoute(ctx context.Context, viewer Viewer, id string) (*response_models.RouteView, error) {
	route, err := s.findRoute(ctx, id)
	if err != nil {
		return nil, err
	}
	// hidden routes read as missing so their existence does not leak
	if !canViewRoute(route, viewer) {
		return nil, utils.ErrRouteNotFound
	}
	views, err := s.withMeta(ctx, []db_models.Route{*route})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *RouteService) UpdateRoute(ctx context.Context, viewer Viewer, id string, req request_models.UpdateRouteRequest) (*db_models.Route, error) {
	route, err := s.findRoute(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Authorize(route.UserID, viewer); err != nil {
		return nil, err
	}

	reslug := false
	if req.Title != nil && strings.TrimSpace(*req.Title) != route.Title {
		route.Title = strings.TrimSpace(*req.Title)
		reslug = true
	}
	if req.Summary != nil {
		route.Summary = truncateSummary(*req.Summary)
	}
	if req.Visibility != nil {
		route.Visibility = *req.Visibility
	}
	if req.CoverImage != nil {
		route.CoverImage = orDefault(*req.CoverImage, db_models.DefaultRouteCoverImage)
	}
	if req.Gallery != nil {
		route.Gallery = utils.SanitizeList(*req.Gallery)
	}
	if req.Tags != nil {
		route.Tags = utils.SanitizeList(*req.Tags)
	}
	if req.TerrainTypes != nil {
		route.TerrainTypes = utils.SanitizeList(*req.TerrainTypes)
	}
	if req.Season != nil {
		route.Season = orDefault(*req.Season, db_models.DefaultSeason)
	}
	if req.StartLocation != nil {
		route.StartLocation = *req.StartLocation
	}
	if req.EndLocation != nil {
		route.EndLocation = *req.EndLocation
	}
	if req.DistanceKm != nil {
		route.DistanceKm = req.DistanceKm
	}
	if req.DurationDays != nil {
		route.DurationDays = *req.DurationDays
	}
	if req.Overview != nil {
		route.Overview = *req.Overview
	}
	if req.Itinerary != nil {
		route.Itinerary = *req.Itinerary
	}
	if req.Highlights != nil {
		route.Highlights = utils.SanitizeList(*req.Highlights)
	}
	if req.Tips != nil {
		route.Tips = utils.SanitizeList(*req.Tips)
	}
	if req.AllowForks != nil {
		route.AllowForks = *req.AllowForks
	}
	if req.AllowComments != nil {
		route.AllowComments = *req.AllowComments
	}
	if req.IsArchived != nil {
		route.IsArchived = *req.IsArchived
	}
	if req.WaypointList != nil {
		route.WaypointList = append([]db_models.Waypoint{}, (*req.WaypointList)...)
	}

	if err := s.replaceWithSlug(ctx, route, reslug); err != nil {
		return nil, err
	}
	return route, nil
}

func (s *RouteService) DeleteRoute(ctx context.Context, viewer Viewer, id string) error {
	route, err := s.findRoute(ctx, id)
	if err != nil {
		return err
	}
	if err := Authorize(route.UserID, viewer); err != nil {
		return err
	}
	if err := s.routeRepo.Delete(ctx, id); err != nil {
		return dbError(err)
	}
	return nil
}

func (s *RouteService) ToggleLike(ctx context.Context, viewer Viewer, id string) (*response_models.LikeResponse, error) {
	if !viewer.Authenticated() {
		return nil, utils.ErrUnauthenticated
	}
	route, err := s.findRoute(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canViewRoute(route, viewer) {
		return nil, utils.ErrRouteNotFound
	}

	liked := !route.LikedBy(viewer.ID)
	likes := make([]string, 0, len(route.Likes)+1)
	for _, uid := range route.Likes {
		if uid != viewer.ID {
			likes = append(likes, uid)
		}
	}
	if liked {
		likes = append(likes, viewer.ID)
	}
	route.Likes = likes

	if err := s.routeRepo.Replace(ctx, route); err != nil {
		return nil, replaceError(err, utils.ErrRouteNotFound)
	}
	return &response_models.LikeResponse{
		RouteID:    route.ID,
		Liked:      liked,
		LikesCount: len(likes),
		Likes:      likes,
	}, nil
}

// ForkRoute copies a route into a new private route owned by the viewer.
func (s *RouteService) ForkRoute(ctx context.Context, viewer Viewer, id string) (*db_models.Route, error) {
	if !viewer.Authenticated() {
		return nil, utils.ErrUnauthenticated
	}
	template, err := s.findRoute(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canViewRoute(template, viewer) {
		return nil, utils.ErrRouteNotFound
	}
	if !template.AllowForks && !viewer.IsAdmin {
		return nil, utils.ErrForkNotAllowed
	}

	fork := newRoute(viewer.ID, template.Title+" (Copy)", template.Summary)
	fork.CoverImage = template.CoverImage
	fork.Gallery = utils.SanitizeList([]string(template.Gallery))
	fork.Tags = utils.SanitizeList([]string(template.Tags))
	fork.TerrainTypes = utils.SanitizeList([]string(template.TerrainTypes))
	fork.Season = template.Season
	fork.StartLocation = template.StartLocation
	fork.EndLocation = template.EndLocation
	if template.DistanceKm != nil {
		d := *template.DistanceKm
		fork.DistanceKm = &d
	}
	fork.DurationDays = template.DurationDays
	fork.Overview = template.Overview
	fork.Itinerary = template.Itinerary
	fork.Highlights = utils.SanitizeList([]string(template.Highlights))
	fork.Tips = utils.SanitizeList([]string(template.Tips))
	fork.WaypointList = append([]db_models.Waypoint{}, template.WaypointList...)
	fork.AllowForks = template.AllowForks
	fork.AllowComments = template.AllowComments
	sourceID := template.ID
	fork.SourceRouteID = &sourceID

	if err := s.insertWithSlug(ctx, fork); err != nil {
		return nil, err
	}
	if err := s.routeRepo.IncrementForks(ctx, template.ID); err != nil {
		log.WithError(err).WithField("route_id", template.ID).Error("failed to increment forks count")
	}
	return fork, nil
}

// ShareQRCode renders a PNG that points at the route's public page.
func (s *RouteService) ShareQRCode(ctx context.Context, viewer Viewer, id string, size int) ([]byte, error) {
	route, err := s.findRoute(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canViewRoute(route, viewer) {
		return nil, utils.ErrRouteNotFound
	}
	if size <= 0 {
		size = defaultQRSize
	}
	if size > maxQRSize {
		size = maxQRSize
	}

	png, err := qrcode.Encode(s.routeURL(route), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

func (s *RouteService) routeURL(route *db_models.Route) string {
	base := strings.TrimRight(s.share.PublicBaseURL, "/")
	return base + "/routes/" + route.Slug
}
