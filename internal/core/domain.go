package core

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/subsync/subsync/internal/model"
)

type DomainService struct {
	db DB
}

func NewDomainService(db DB) *DomainService {
	return &DomainService{db: db}
}

var domainListSpec = ListSpec{
	Table:  "domains",
	Select: "id, customer_id, customer_name, name, registration_date, expiry_date, registered_with, other_provider, mail_service, description, created_at, updated_at",
	Columns: map[string]string{
		"domain_id":         "id",
		"customer_id":       "customer_id",
		"customer_name":     "customer_name",
		"domain_name":       "name",
		"registration_date": "registration_date",
		"expiry_date":       "expiry_date",
		"registered_with":   "registered_with",
		"mail_service":      "mail_service",
		"description":       "description",
	},
	DefaultSort: "domain_name",
}

func (s *DomainService) Create(ctx context.Context, d *model.Domain) error {
	if d.CustomerID == "" || d.DomainName == "" || d.RegisteredWith == "" ||
		d.RegistrationDate.IsZero() || d.ExpiryDate.IsZero() {
		return Invalid("customer, domain name, registrar, registration date, and expiry date are required")
	}

	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now

	err := s.db.QueryRow(ctx,
		`INSERT INTO domains (customer_id, customer_name, name, registration_date, expiry_date,
			registered_with, other_provider, mail_service, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		d.CustomerID, d.CustomerName, d.DomainName, d.RegistrationDate, d.ExpiryDate,
		d.RegisteredWith, d.OtherProvider, d.MailService, d.Description, d.CreatedAt, d.UpdatedAt,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("create domain: %w",
			mapStoreError(err, "invalid customer reference", "this domain is already registered"))
	}

	if err := s.replaceNameServers(ctx, d.ID, d.NameServers); err != nil {
		return err
	}
	return nil
}

// replaceNameServers rewrites the child rows for a domain.
func (s *DomainService) replaceNameServers(ctx context.Context, domainID int64, servers []string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM domain_name_servers WHERE domain_id = $1`, domainID); err != nil {
		return fmt.Errorf("clear name servers for domain %d: %w", domainID, err)
	}
	for i, ns := range servers {
		if ns == "" {
			continue
		}
		if _, err := s.db.Exec(ctx,
			`INSERT INTO domain_name_servers (domain_id, position, host) VALUES ($1, $2, $3)`,
			domainID, i, ns); err != nil {
			return fmt.Errorf("add name server %s: %w", ns, err)
		}
	}
	return nil
}

func (s *DomainService) loadNameServers(ctx context.Context, domainID int64) ([]string, error) {
	rows, err := s.db.Query(ctx,
		`SELECT host FROM domain_name_servers WHERE domain_id = $1 ORDER BY position`, domainID)
	if err != nil {
		return nil, fmt.Errorf("list name servers for domain %d: %w", domainID, err)
	}
	defer rows.Close()

	servers := []string{}
	for rows.Next() {
		var host string
		if err := rows.Scan(&host); err != nil {
			return nil, fmt.Errorf("scan name server: %w", err)
		}
		servers = append(servers, host)
	}
	return servers, rows.Err()
}

func scanDomain(row interface{ Scan(dest ...any) error }) (model.Domain, error) {
	var d model.Domain
	err := row.Scan(&d.ID, &d.CustomerID, &d.CustomerName, &d.DomainName,
		&d.RegistrationDate, &d.ExpiryDate, &d.RegisteredWith, &d.OtherProvider,
		&d.MailService, &d.Description, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

func (s *DomainService) GetByID(ctx context.Context, id int64) (*model.Domain, error) {
	d, err := scanDomain(s.db.QueryRow(ctx,
		`SELECT id, customer_id, customer_name, name, registration_date, expiry_date,
			registered_with, other_provider, mail_service, description, created_at, updated_at
		 FROM domains WHERE id = $1`, id))
	if err != nil {
		return nil, mapStoreError(err, fmt.Sprintf("domain %d not found", id), "")
	}

	servers, err := s.loadNameServers(ctx, id)
	if err != nil {
		return nil, err
	}
	d.NameServers = servers
	return &d, nil
}

func (s *DomainService) List(ctx context.Context, p ListParams) (Page[model.Domain], error) {
	return listPage(ctx, s.db, domainListSpec, p, func(rows pgx.Rows) (model.Domain, error) {
		return scanDomain(rows)
	})
}

func (s *DomainService) Update(ctx context.Context, d *model.Domain) error {
	if d.DomainName == "" || d.RegisteredWith == "" || d.RegistrationDate.IsZero() || d.ExpiryDate.IsZero() {
		return Invalid("domain name, registrar, registration date, and expiry date are required")
	}

	tag, err := s.db.Exec(ctx,
		`UPDATE domains SET name = $1, registration_date = $2, expiry_date = $3,
			registered_with = $4, other_provider = $5, mail_service = $6, description = $7,
			updated_at = now()
		 WHERE id = $8`,
		d.DomainName, d.RegistrationDate, d.ExpiryDate,
		d.RegisteredWith, d.OtherProvider, d.MailService, d.Description, d.ID,
	)
	if err != nil {
		return fmt.Errorf("update domain %d: %w", d.ID, mapStoreError(err, "", ""))
	}
	if tag.RowsAffected() == 0 {
		return NotFound(fmt.Sprintf("domain %d not found", d.ID))
	}

	return s.replaceNameServers(ctx, d.ID, d.NameServers)
}

func (s *DomainService) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM domains WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete domain %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return NotFound(fmt.Sprintf("domain %d not found", id))
	}
	return nil
}
