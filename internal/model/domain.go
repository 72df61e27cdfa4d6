package model

import "time"

type Domain struct {
	ID               int64     `json:"domain_id"`
	CustomerID       string    `json:"customer_id"`
	CustomerName     string    `json:"customer_name"`
	DomainName       string    `json:"domain_name"`
	RegistrationDate time.Time `json:"registration_date"`
	ExpiryDate       time.Time `json:"expiry_date"`
	RegisteredWith   string    `json:"registered_with"`
	OtherProvider    string    `json:"other_provider"`
	MailService      string    `json:"mail_service"`
	Description      string    `json:"description"`
	NameServers      []string  `json:"name_servers"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
