package model

import "time"

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionReminded SubscriptionStatus = "reminded"
	SubscriptionWarned   SubscriptionStatus = "warned"
	SubscriptionExpired  SubscriptionStatus = "expired"
)

// Subscription links a customer to a product. Amount is a copy of the
// product price at creation time, not a live reference; EndDate is always
// StartDate plus the product's validity in whole days.
type Subscription struct {
	ID         string             `json:"sub_id"`
	CustomerID string             `json:"customer_id"`
	ProductID  int64              `json:"product_id"`
	Amount     float64            `json:"amount"`
	StartDate  time.Time          `json:"start_date"`
	EndDate    time.Time          `json:"end_date"`
	Status     SubscriptionStatus `json:"status"`
}
