package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"tourwise/internal/models/db_models"
	"tourwise/internal/repositories"
	"tourwise/pkg/utils"
)

type memItineraryRepo struct {
	mu    sync.Mutex
	items map[string]db_models.Itinerary
	// replaceErr, when set, fails every Replace.
	replaceErr error
}

func newMemItineraryRepo(seed ...db_models.Itinerary) *memItineraryRepo {
	r := &memItineraryRepo{items: map[string]db_models.Itinerary{}}
	for _, it := range seed {
		r.items[it.ID] = it
	}
	return r
}

func (r *memItineraryRepo) Create(_ context.Context, it *db_models.Itinerary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if it.CreatedAt.IsZero() {
		it.CreatedAt = now
	}
	it.UpdatedAt = now
	r.items[it.ID] = *it
	return nil
}

func (r *memItineraryRepo) FindByID(_ context.Context, id string) (*db_models.Itinerary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *memItineraryRepo) matches(it db_models.Itinerary, f repositories.ItineraryFilter) bool {
	if f.UserID != "" && it.UserID != f.UserID {
		return false
	}
	if f.Visibility != "" && it.Visibility != f.Visibility {
		return false
	}
	if f.Status != "" && it.Status != f.Status {
		return false
	}
	if f.Source != "" && it.Source != f.Source {
		return false
	}
	if f.CreatedSince != nil && it.CreatedAt.Before(*f.CreatedSince) {
		return false
	}
	if f.CreatedUntil != nil && it.CreatedAt.After(*f.CreatedUntil) {
		return false
	}
	return true
}

func (r *memItineraryRepo) Find(_ context.Context, f repositories.ItineraryFilter, opts repositories.FindOptions) ([]db_models.Itinerary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []db_models.Itinerary
	for _, it := range r.items {
		if r.matches(it, f) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	if opts.Skip > 0 && int(opts.Skip) < len(out) {
		out = out[opts.Skip:]
	}
	if opts.Limit > 0 && int(opts.Limit) < len(out) {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (r *memItineraryRepo) Count(ctx context.Context, f repositories.ItineraryFilter) (int64, error) {
	items, _ := r.Find(ctx, f, repositories.FindOptions{})
	return int64(len(items)), nil
}

func (r *memItineraryRepo) Replace(_ context.Context, it *db_models.Itinerary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.replaceErr != nil {
		return r.replaceErr
	}
	if _, ok := r.items[it.ID]; !ok {
		return repositories.ErrNoMatch
	}
	it.UpdatedAt = time.Now().UTC()
	r.items[it.ID] = *it
	return nil
}

func (r *memItineraryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

type memRouteRepo struct {
	mu     sync.Mutex
	routes map[string]db_models.Route
	// raceOnCreate makes the next N creates fail as if another writer took the slug.
	raceOnCreate int
	// occupied makes the first N slug probes report the slug as taken.
	occupied   int
	slugProbes int
}

func newMemRouteRepo(seed ...db_models.Route) *memRouteRepo {
	r := &memRouteRepo{routes: map[string]db_models.Route{}}
	for _, rt := range seed {
		r.routes[rt.ID] = rt
	}
	return r
}

func (r *memRouteRepo) slugTaken(slug, excludeID string) bool {
	for _, rt := range r.routes {
		if rt.Slug == slug && rt.ID != excludeID {
			return true
		}
	}
	return false
}

func (r *memRouteRepo) Create(_ context.Context, route *db_models.Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.raceOnCreate > 0 {
		r.raceOnCreate--
		return utils.ErrDuplicateSlug
	}
	if r.slugTaken(route.Slug, "") {
		return utils.ErrDuplicateSlug
	}
	now := time.Now().UTC()
	route.CreatedAt, route.UpdatedAt = now, now
	r.routes[route.ID] = *route
	return nil
}

func (r *memRouteRepo) FindByID(_ context.Context, id string) (*db_models.Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rt, ok := r.routes[id]
	if !ok {
		return nil, nil
	}
	return &rt, nil
}

func (r *memRouteRepo) FindBySlug(_ context.Context, slug string) (*db_models.Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rt := range r.routes {
		if rt.Slug == slug {
			return &rt, nil
		}
	}
	return nil, nil
}

func (r *memRouteRepo) SlugExists(_ context.Context, slug, excludeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slugProbes++
	if r.slugProbes <= r.occupied {
		return true, nil
	}
	return r.slugTaken(slug, excludeID), nil
}

func (r *memRouteRepo) Find(_ context.Context, f repositories.RouteFilter, opts repositories.FindOptions) ([]db_models.Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []db_models.Route
	for _, rt := range r.routes {
		if f.Visibility != "" && rt.Visibility != f.Visibility {
			continue
		}
		if f.UserID != "" && rt.UserID != f.UserID {
			continue
		}
		if !f.IncludeArchived && rt.IsArchived {
			continue
		}
		if f.SearchTerm != "" && !strings.Contains(strings.ToLower(rt.Title), strings.ToLower(f.SearchTerm)) {
			continue
		}
		if f.CreatedSince != nil && rt.CreatedAt.Before(*f.CreatedSince) {
			continue
		}
		if f.CreatedUntil != nil && rt.CreatedAt.After(*f.CreatedUntil) {
			continue
		}
		out = append(out, rt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if opts.Limit > 0 && int(opts.Limit) < len(out) {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (r *memRouteRepo) Count(ctx context.Context, f repositories.RouteFilter) (int64, error) {
	routes, _ := r.Find(ctx, f, repositories.FindOptions{})
	return int64(len(routes)), nil
}

func (r *memRouteRepo) Replace(_ context.Context, route *db_models.Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.routes[route.ID]; !ok {
		return repositories.ErrNoMatch
	}
	if r.slugTaken(route.Slug, route.ID) {
		return utils.ErrDuplicateSlug
	}
	route.UpdatedAt = time.Now().UTC()
	r.routes[route.ID] = *route
	return nil
}

func (r *memRouteRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.routes, id)
	return nil
}

func (r *memRouteRepo) IncrementForks(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rt, ok := r.routes[id]
	if !ok {
		return repositories.ErrNoMatch
	}
	rt.ForksCount++
	r.routes[id] = rt
	return nil
}

type memAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]db_models.Account
}

func newMemAccountRepo(seed ...db_models.Account) *memAccountRepo {
	r := &memAccountRepo{accounts: map[string]db_models.Account{}}
	for _, a := range seed {
		r.accounts[a.ID] = a
	}
	return r
}

func (r *memAccountRepo) Insert(_ context.Context, a *db_models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.accounts {
		if existing.Email == a.Email {
			return utils.ErrEmailAlreadyExists
		}
	}
	a.CreatedAt = time.Now().UTC()
	r.accounts[a.ID] = *a
	return nil
}

func (r *memAccountRepo) FindByID(_ context.Context, id string) (*db_models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *memAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *memAccountRepo) FindByIDs(_ context.Context, ids []string) ([]db_models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []db_models.Account
	for _, id := range ids {
		if a, ok := r.accounts[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAccountRepo) Count(_ context.Context, since, until *time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, a := range r.accounts {
		if since != nil && a.CreatedAt.Before(*since) {
			continue
		}
		if until != nil && a.CreatedAt.After(*until) {
			continue
		}
		n++
	}
	return n, nil
}

// stubTextGenerator returns a canned completion or error.
type stubTextGenerator struct {
	reply string
	err   error
	calls int
}

func (s *stubTextGenerator) Complete(_ context.Context, _, _ string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func (s *stubTextGenerator) Provider() string { return "stub" }
func (s *stubTextGenerator) Close() error     { return nil }

// stubPlaces answers by stop name; unknown names are not found.
type stubPlaces struct {
	mu      sync.Mutex
	enabled bool
	places  map[string]*Place
	err     error
	queries []string
}

func (s *stubPlaces) Enabled() bool { return s.enabled }

func (s *stubPlaces) SearchPlace(_ context.Context, query, _ string) (*Place, error) {
	s.mu.Lock()
	s.queries = append(s.queries, query)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.places[query], nil
}

type stubExporter struct{}

func (stubExporter) RenderPDF(it *db_models.Itinerary) ([]byte, error) {
	return []byte("%PDF-" + it.Title), nil
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }
