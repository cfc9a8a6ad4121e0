package event

import "time"

// SitePositionUpdated is published by the importer whenever a site row is
// created or its coordinates change.
type SitePositionUpdated struct {
	Name     string
	DateTime time.Time
	Payload  interface{}
}

func NewSitePositionUpdated(routingKey string) *SitePositionUpdated {
	return &SitePositionUpdated{
		Name:     routingKey,
		DateTime: time.Now(),
	}
}

func (e *SitePositionUpdated) GetName() string                { return e.Name }
func (e *SitePositionUpdated) GetDateTime() time.Time         { return e.DateTime }
func (e *SitePositionUpdated) GetPayload() interface{}        { return e.Payload }
func (e *SitePositionUpdated) SetPayload(payload interface{}) { e.Payload = payload }
