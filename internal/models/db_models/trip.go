package db_models

type Geo struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

type Location struct {
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	Country string `json:"country,omitempty" bson:"country,omitempty"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`
	Geo     *Geo   `json:"geo,omitempty" bson:"geo,omitempty"`
}

type Stop struct {
	ExternalID  string    `json:"externalId,omitempty" bson:"externalId,omitempty"`
	Name        string    `json:"name" bson:"name" validate:"required"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Address     string    `json:"address,omitempty" bson:"address,omitempty"`
	Location    *Location `json:"location,omitempty" bson:"location,omitempty"`
	Rating      *float64  `json:"rating,omitempty" bson:"rating,omitempty"`
	StartTime   string    `json:"startTime,omitempty" bson:"startTime,omitempty"`
	EndTime     string    `json:"endTime,omitempty" bson:"endTime,omitempty"`
	Notes       string    `json:"notes,omitempty" bson:"notes,omitempty"`
	Resources   []string  `json:"resources,omitempty" bson:"resources,omitempty"`
}

// HasGeo reports whether the stop already carries verified coordinates.
func (s Stop) HasGeo() bool {
	return s.Location != nil && s.Location.Geo != nil
}

func (s Stop) City() string {
	if s.Location == nil {
		return ""
	}
	return s.Location.City
}

type Accommodation struct {
	Name    string `json:"name,omitempty" bson:"name,omitempty"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`
	Notes   string `json:"notes,omitempty" bson:"notes,omitempty"`
}

type Day struct {
	DayNumber     int            `json:"dayNumber" bson:"dayNumber" validate:"min=1"`
	Title         string         `json:"title,omitempty" bson:"title,omitempty"`
	Summary       string         `json:"summary,omitempty" bson:"summary,omitempty"`
	Accommodation *Accommodation `json:"accommodation,omitempty" bson:"accommodation,omitempty"`
	Stops         []Stop         `json:"stops" bson:"stops" validate:"dive"`
}

type Budget struct {
	Currency  string   `json:"currency" bson:"currency" validate:"len=3"`
	Amount    float64  `json:"amount" bson:"amount" validate:"min=0"`
	PerPerson *float64 `json:"perPerson,omitempty" bson:"perPerson,omitempty" validate:"omitempty,min=0"`
	Notes     string   `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Waypoint is the flat, map-ready projection of a stop.
type Waypoint struct {
	Title     string   `json:"title" bson:"title"`
	Summary   string   `json:"summary" bson:"summary"`
	Day       int      `json:"day" bson:"day"`
	Order     int      `json:"order" bson:"order"`
	Location  string   `json:"location" bson:"location"`
	Latitude  *float64 `json:"latitude" bson:"latitude"`
	Longitude *float64 `json:"longitude" bson:"longitude"`
	StartTime string   `json:"startTime,omitempty" bson:"startTime,omitempty"`
	EndTime   string   `json:"endTime,omitempty" bson:"endTime,omitempty"`
	Notes     string   `json:"notes,omitempty" bson:"notes,omitempty"`
	Resources []string `json:"resources" bson:"resources"`
}

type Preferences struct {
	DurationDays *int     `json:"durationDays,omitempty" bson:"durationDays,omitempty" binding:"omitempty,min=1,max=30"`
	BudgetRange  string   `json:"budgetRange,omitempty" bson:"budgetRange,omitempty"`
	TravelStyles []string `json:"travelStyles,omitempty" bson:"travelStyles,omitempty"`
	Travelers    *int     `json:"travelers,omitempty" bson:"travelers,omitempty" binding:"omitempty,min=1,max=12"`
	MustInclude  []string `json:"mustInclude,omitempty" bson:"mustInclude,omitempty"`
	Exclude      []string `json:"exclude,omitempty" bson:"exclude,omitempty"`
	StartingCity string   `json:"startingCity,omitempty" bson:"startingCity,omitempty"`
}
