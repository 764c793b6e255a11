package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const DefaultPlacesBaseURL = "https://maps.googleapis.com/maps/api/place"

type Place struct {
	PlaceID        string
	Name           string
	Address        string
	Lat            float64
	Lng            float64
	Rating         float64
	PhotoReference string
	Types          []string
}

// PlaceSearcher looks up a single best match. (nil, nil) means no match.
type PlaceSearcher interface {
	SearchPlace(ctx context.Context, query, locationContext string) (*Place, error)
	Enabled() bool
}

type GooglePlacesClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
}

func NewGooglePlacesClient(apiKey, baseURL string) *GooglePlacesClient {
	if baseURL == "" {
		baseURL = DefaultPlacesBaseURL
	}
	if apiKey == "" {
		log.Warn("GOOGLE_MAPS_API_KEY is empty, place enrichment disabled")
	}
	return &GooglePlacesClient{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *GooglePlacesClient) Enabled() bool { return c.APIKey != "" }

type textSearchResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Name             string  `json:"name"`
		FormattedAddress string  `json:"formatted_address"`
		PlaceID          string  `json:"place_id"`
		Rating           float64 `json:"rating"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		Photos []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
		Types []string `json:"types"`
	} `json:"results"`
}

func (c *GooglePlacesClient) SearchPlace(ctx context.Context, query, locationContext string) (*Place, error) {
	if !c.Enabled() {
		return nil, nil
	}
	searchQuery := strings.TrimSpace(query + " " + locationContext)
	if searchQuery == "" {
		return nil, nil
	}

	u, err := url.Parse(c.BaseURL + "/textsearch/json")
	if err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("query", searchQuery)
	q.Set("key", c.APIKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("places http %d", resp.StatusCode)
	}

	var body textSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Status != "OK" || len(body.Results) == 0 {
		log.WithFields(log.Fields{"query": searchQuery, "status": body.Status}).Debug("place not found")
		return nil, nil
	}

	r := body.Results[0]
	place := &Place{
		PlaceID: r.PlaceID,
		Name:    r.Name,
		Address: r.FormattedAddress,
		Lat:     r.Geometry.Location.Lat,
		Lng:     r.Geometry.Location.Lng,
		Rating:  r.Rating,
		Types:   r.Types,
	}
	if len(r.Photos) > 0 {
		place.PhotoReference = r.Photos[0].PhotoReference
	}
	return place, nil
}
