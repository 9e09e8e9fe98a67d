package model

// Doctor is one entry in a nearby-doctor listing. RealData distinguishes
// OpenStreetMap results from synthetic fallback entries; callers must be
// able to tell them apart.
type Doctor struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Specialty     string            `json:"specialty"`
	Rating        float64           `json:"rating"`
	Reviews       int               `json:"reviews"`
	Location      string            `json:"location"`
	Image         string            `json:"image"`
	NextAvailable string            `json:"nextAvailable"`
	Price         string            `json:"price"`
	Distance      string            `json:"distance"`
	PlaceID       string            `json:"placeId,omitempty"`
	Phone         string            `json:"phone"`
	Website       string            `json:"website,omitempty"`
	OpenNow       bool              `json:"openNow"`
	Types         []string          `json:"types"`
	Vicinity      string            `json:"vicinity"`
	RealData      bool              `json:"realData"`
	OSMTags       map[string]string `json:"osmTags,omitempty"`
}

// DoctorSearchResult is the full response for a nearby search, including
// the real-vs-fallback accounting.
type DoctorSearchResult struct {
	Doctors       []Doctor `json:"doctors"`
	Message       string   `json:"message"`
	RealDataCount int      `json:"realDataCount"`
	FallbackCount int      `json:"fallbackCount,omitempty"`
	Fallback      bool     `json:"fallback,omitempty"`
}
