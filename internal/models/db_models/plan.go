package db_models

// ItineraryPlan is the transient shape produced by generation, before persistence.
type ItineraryPlan struct {
	Title        string   `json:"title" validate:"required,min=3"`
	Summary      string   `json:"summary" validate:"required,min=10"`
	DurationDays int      `json:"durationDays" validate:"min=1"`
	Budget       *Budget  `json:"budget,omitempty"`
	Tags         []string `json:"tags"`
	Days         []Day    `json:"days" validate:"required,min=1,dive"`
}

// TotalStops counts stops across every day.
func (p ItineraryPlan) TotalStops() int {
	n := 0
	for _, d := range p.Days {
		n += len(d.Stops)
	}
	return n
}
