package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/subsync/subsync/internal/model"
	"github.com/subsync/subsync/internal/platform"
)

type SubscriptionService struct {
	db DB
}

func NewSubscriptionService(db DB) *SubscriptionService {
	return &SubscriptionService{db: db}
}

var subscriptionListSpec = ListSpec{
	Table:  "subscriptions",
	Select: "id, customer_id, product_id, amount, start_date, end_date, status",
	Columns: map[string]string{
		"sub_id":      "id",
		"customer_id": "customer_id",
		"product_id":  "product_id",
		"amount":      "amount",
		"start_date":  "start_date",
		"end_date":    "end_date",
		"status":      "status",
	},
	DefaultSort: "start_date",
}

// Create looks up the referenced product, copies its price, and inserts an
// active subscription running from now until now plus the product's
// validity in whole days. The computed identifier and end date are
// returned to the caller rather than requiring a re-fetch.
func (s *SubscriptionService) Create(ctx context.Context, customerID string, productID int64) (*model.Subscription, error) {
	if customerID == "" || productID == 0 {
		return nil, Invalid("customer and product references are required")
	}

	var validityDays int
	var price float64
	err := s.db.QueryRow(ctx,
		`SELECT validity_days, price FROM products WHERE id = $1`, productID,
	).Scan(&validityDays, &price)
	if err != nil {
		return nil, mapStoreError(err, "invalid product reference", "")
	}

	startStr := platform.Now()
	endStr, err := platform.AddDays(startStr, validityDays)
	if err != nil {
		return nil, fmt.Errorf("compute end date: %w", err)
	}
	start, err := platform.ParseTimestamp(startStr)
	if err != nil {
		return nil, fmt.Errorf("parse start date: %w", err)
	}
	end, err := platform.ParseTimestamp(endStr)
	if err != nil {
		return nil, fmt.Errorf("parse end date: %w", err)
	}

	sub := &model.Subscription{
		ID:         platform.RecordID(platform.SubscriptionPrefix),
		CustomerID: customerID,
		ProductID:  productID,
		Amount:     price,
		StartDate:  start,
		EndDate:    end,
		Status:     model.SubscriptionActive,
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO subscriptions (id, customer_id, product_id, amount, start_date, end_date, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		sub.ID, sub.CustomerID, sub.ProductID, sub.Amount, sub.StartDate, sub.EndDate, sub.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("create subscription: %w",
			mapStoreError(err, "invalid customer reference",
				"a subscription for this customer and product already exists"))
	}
	return sub, nil
}

func scanSubscription(row interface{ Scan(dest ...any) error }) (model.Subscription, error) {
	var sub model.Subscription
	err := row.Scan(&sub.ID, &sub.CustomerID, &sub.ProductID, &sub.Amount,
		&sub.StartDate, &sub.EndDate, &sub.Status)
	return sub, err
}

func (s *SubscriptionService) GetByID(ctx context.Context, id string) (*model.Subscription, error) {
	sub, err := scanSubscription(s.db.QueryRow(ctx,
		`SELECT id, customer_id, product_id, amount, start_date, end_date, status
		 FROM subscriptions WHERE id = $1`, id))
	if err != nil {
		return nil, mapStoreError(err, fmt.Sprintf("subscription %s not found", id), "")
	}
	return &sub, nil
}

func (s *SubscriptionService) List(ctx context.Context, p ListParams) (Page[model.Subscription], error) {
	return listPage(ctx, s.db, subscriptionListSpec, p, func(rows pgx.Rows) (model.Subscription, error) {
		return scanSubscription(rows)
	})
}

// ListByCustomer returns every subscription for one customer, newest first.
func (s *SubscriptionService) ListByCustomer(ctx context.Context, customerID string) ([]model.Subscription, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, customer_id, product_id, amount, start_date, end_date, status
		 FROM subscriptions WHERE customer_id = $1 ORDER BY start_date DESC`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	subs := []model.Subscription{}
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
