package entity

// Site is a candidate location eligible for proximity search. Rows without
// coordinates never reach this type; the repository filters them out at the
// query level.
type Site struct {
	ID         string  `json:"id"`
	ExternalID string  `json:"external_id"`
	Address    string  `json:"address"`
	Zipcode    string  `json:"zipcode"`
	City       string  `json:"city"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Status     string  `json:"status"`
}

func NewSite(id, externalID string, lat, lng float64) (*Site, error) {
	if id == "" {
		return nil, ErrIDIsRequired
	}
	return &Site{
		ID:         id,
		ExternalID: externalID,
		Latitude:   lat,
		Longitude:  lng,
	}, nil
}

// RankedSite is a Site annotated with its computed distance from the
// caller's position, in meters.
type RankedSite struct {
	Site
	DistanceMeters float64
}
