package model

import "time"

// PaymentTerm is a lookup row; exactly one term carries IsDefault at any time.
type PaymentTerm struct {
	ID        int64     `json:"term_id"`
	Name      string    `json:"term_name"`
	Days      int       `json:"days"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}
