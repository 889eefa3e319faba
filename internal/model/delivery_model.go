package model

import "time"

// DeliveryPhoto is the proof-of-delivery record a driver uploads.
type DeliveryPhoto struct {
	PhotoID         int64     `json:"photo_id"`
	OrderID         int64     `json:"order_id"`
	ObjectKey       string    `json:"object_key"`
	PublicURL       string    `json:"public_url"`
	DriverAccountID int64     `json:"driver_account_id"`
	TakenAt         time.Time `json:"taken_at"`
}
