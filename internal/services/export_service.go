package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"tourwise/internal/models/db_models"
)

type ItineraryExporter interface {
	RenderPDF(it *db_models.Itinerary) ([]byte, error)
}

type pdfExporter struct{}

func NewPDFExporter() ItineraryExporter {
	return &pdfExporter{}
}

// RenderPDF lays out one section per day with the stops in order.
func (e *pdfExporter) RenderPDF(it *db_models.Itinerary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(it.Title, true)
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 20)
	pdf.MultiCell(0, 9, tr(it.Title), "", "L", false)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(90, 90, 90)
	meta := []string{fmt.Sprintf("%d day(s)", it.DurationDays)}
	if it.Budget != nil {
		meta = append(meta, fmt.Sprintf("Budget %s %.0f", it.Budget.Currency, it.Budget.Amount))
	}
	if len(it.Tags) > 0 {
		meta = append(meta, strings.Join(it.Tags, ", "))
	}
	pdf.MultiCell(0, 6, tr(strings.Join(meta, "  |  ")), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)

	if it.Summary != "" {
		pdf.MultiCell(0, 6, tr(it.Summary), "", "L", false)
		pdf.Ln(4)
	}

	for i, day := range it.Days {
		dayNumber := day.DayNumber
		if dayNumber <= 0 {
			dayNumber = i + 1
		}
		header := fmt.Sprintf("Day %d", dayNumber)
		if day.Title != "" {
			header += " - " + day.Title
		}
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetFillColor(235, 242, 250)
		pdf.CellFormat(0, 9, tr(header), "", 1, "L", true, 0, "")

		pdf.SetFont("Helvetica", "", 11)
		if day.Summary != "" {
			pdf.MultiCell(0, 6, tr(day.Summary), "", "L", false)
		}
		for j, stop := range day.Stops {
			writeStop(pdf, tr, j, stop)
		}
		if day.Accommodation != nil && day.Accommodation.Name != "" {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.MultiCell(0, 5, tr("Stay: "+day.Accommodation.Name), "", "L", false)
		}
		pdf.Ln(4)
	}

	if it.Notes != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Notes", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(it.Notes), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeStop(pdf *gofpdf.Fpdf, tr func(string) string, idx int, stop db_models.Stop) {
	line := fmt.Sprintf("%d. %s", idx+1, orDefault(stop.Name, fmt.Sprintf("Stop %d", idx+1)))
	if stop.StartTime != "" || stop.EndTime != "" {
		window := stop.StartTime
		if stop.EndTime != "" {
			window += " - " + stop.EndTime
		}
		line += "  [" + window + "]"
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.MultiCell(0, 6, tr(line), "", "L", false)

	pdf.SetFont("Helvetica", "", 10)
	address := stop.Address
	if stop.Location != nil && stop.Location.Address != "" {
		address = stop.Location.Address
	}
	if address != "" {
		pdf.MultiCell(0, 5, tr("   "+address), "", "L", false)
	}
	if stop.Description != "" {
		pdf.MultiCell(0, 5, tr("   "+stop.Description), "", "L", false)
	}
	if stop.Notes != "" {
		pdf.MultiCell(0, 5, tr("   Note: "+stop.Notes), "", "L", false)
	}
}
