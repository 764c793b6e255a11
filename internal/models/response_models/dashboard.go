package response_models

import "time"

type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type KPIBlock struct {
	TotalAccounts        int64 `json:"totalAccounts"`
	NewAccounts          int64 `json:"newAccounts"`
	TotalItineraries     int64 `json:"totalItineraries"`
	AIItineraries        int64 `json:"aiItineraries"`
	NewItineraries       int64 `json:"newItineraries"`
	PublishedItineraries int64 `json:"publishedItineraries"`
	TotalRoutes          int64 `json:"totalRoutes"`
	PublicRoutes         int64 `json:"publicRoutes"`
	NewRoutes            int64 `json:"newRoutes"`
}

type DashboardReport struct {
	Range TimeRange `json:"range"`
	KPIs  KPIBlock  `json:"kpis"`
}
