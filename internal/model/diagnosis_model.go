package model

import "time"

// PetProfile is the input to the feeding-plan diagnosis flow.
type PetProfile struct {
	Species   string  `json:"species"`  // dog | cat
	WeightKg  float64 `json:"weight_kg"`
	AgeMonths int     `json:"age_months"`
	Activity  string  `json:"activity"` // low | normal | high
}

// FeedingPlan is the computed recommendation.
type FeedingPlan struct {
	DailyGrams     int      `json:"daily_grams"`
	Product        *Product `json:"product,omitempty"`
	DaysPerPack    int      `json:"days_per_pack,omitempty"`
	SuggestedPacks int      `json:"suggested_packs,omitempty"` // packs for a 2-week cycle
}

// DiagnosisSession persists one run of the flow.
type DiagnosisSession struct {
	SessionID  int64      `json:"session_id"`
	CustomerID *int64     `json:"customer_id,omitempty"`
	Profile    PetProfile `json:"profile"`
	DailyGrams int        `json:"daily_grams"`
	ProductID  *int64     `json:"product_id,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}
