package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGooglePlacesClient_SearchPlace(t *testing.T) {
	var gotQuery, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/textsearch/json", r.URL.Path)
		gotQuery = r.URL.Query().Get("query")
		gotKey = r.URL.Query().Get("key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"name": "Belem Tower",
				"formatted_address": "Av. Brasilia, 1400-038 Lisboa",
				"place_id": "ChIJ123",
				"rating": 4.6,
				"geometry": {"location": {"lat": 38.6916, "lng": -9.2160}},
				"photos": [{"photo_reference": "ref-1"}],
				"types": ["tourist_attraction"]
			}]
		}`))
	}))
	defer srv.Close()

	client := NewGooglePlacesClient("test-key", srv.URL+"/")
	place, err := client.SearchPlace(context.Background(), "Belem Tower", "Lisbon")

	require.NoError(t, err)
	require.NotNil(t, place)
	assert.Equal(t, "Belem Tower Lisbon", gotQuery)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "ChIJ123", place.PlaceID)
	assert.Equal(t, "Av. Brasilia, 1400-038 Lisboa", place.Address)
	assert.InDelta(t, 38.6916, place.Lat, 1e-9)
	assert.Equal(t, "ref-1", place.PhotoReference)
}

func TestGooglePlacesClient_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer srv.Close()

	place, err := NewGooglePlacesClient("k", srv.URL).SearchPlace(context.Background(), "Nowhere", "")
	assert.NoError(t, err)
	assert.Nil(t, place)
}

func TestGooglePlacesClient_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := NewGooglePlacesClient("k", srv.URL).SearchPlace(context.Background(), "Belem Tower", "")
	assert.Error(t, err)
}

func TestGooglePlacesClient_DisabledWithoutKey(t *testing.T) {
	client := NewGooglePlacesClient("", "")
	assert.False(t, client.Enabled())
	assert.Equal(t, DefaultPlacesBaseURL, client.BaseURL)

	place, err := client.SearchPlace(context.Background(), "Belem Tower", "")
	assert.NoError(t, err)
	assert.Nil(t, place)
}
