package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourwise/internal/models/db_models"
)

func TestRenderPDF(t *testing.T) {
	it := &db_models.Itinerary{
		Title:        "Três dias em Lisboa",
		Summary:      "Tiles, trams and seafood.",
		DurationDays: 2,
		Budget:       &db_models.Budget{Currency: "EUR", Amount: 450},
		Tags:         []string{"food"},
		Days:         sampleDays(),
		Notes:        "Bring comfortable shoes.",
	}

	doc, err := NewPDFExporter().RenderPDF(it)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))
	assert.Greater(t, len(doc), 500)
}

func TestRenderPDF_EmptyItinerary(t *testing.T) {
	doc, err := NewPDFExporter().RenderPDF(&db_models.Itinerary{Title: "Empty"})
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}
