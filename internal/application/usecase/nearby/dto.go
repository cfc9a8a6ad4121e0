package nearby

// DefaultRadiusMeters is applied at the API boundary when the caller does
// not supply a radius.
const DefaultRadiusMeters = 500.0

// Input

type SearchInput struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
}

// Output

type SiteResult struct {
	ID             string  `json:"id"`
	ExternalID     string  `json:"external_id"`
	Address        string  `json:"address"`
	Zipcode        string  `json:"zipcode"`
	City           string  `json:"city"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Status         string  `json:"status"`
	DistanceMeters float64 `json:"distance_meters"`
}

type SearchOutput struct {
	Sites []SiteResult `json:"sites"`
}
