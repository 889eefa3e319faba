package model

type Zone struct {
	ZoneID      int64   `json:"zone_id"`
	Name        string  `json:"name"`
	DeliveryDay string  `json:"delivery_day"`
	Fee         float64 `json:"fee"`
}

// CoverageResult is returned by GET /coverage.
type CoverageResult struct {
	Covered bool  `json:"covered"`
	Zone    *Zone `json:"zone,omitempty"`
}
