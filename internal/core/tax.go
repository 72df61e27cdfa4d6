package core

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/subsync/subsync/internal/model"
	"github.com/subsync/subsync/internal/platform"
)

// TaxService manages the single org-wide tax settings row: a jsonb array
// of tax rates plus the default tax preference and GST settings blobs.
type TaxService struct {
	db DB
}

func NewTaxService(db DB) *TaxService {
	return &TaxService{db: db}
}

// ensureRow guarantees the singleton settings row exists.
func (s *TaxService) ensureRow(ctx context.Context) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO tax_settings (id, tax_rates, default_tax_preference, gst_settings)
		 VALUES (1, '[]', '{}', '{}')
		 ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("ensure tax settings row: %w", err)
	}
	return nil
}

func (s *TaxService) loadRates(ctx context.Context) ([]model.TaxRate, error) {
	var raw []byte
	err := s.db.QueryRow(ctx, `SELECT tax_rates FROM tax_settings WHERE id = 1`).Scan(&raw)
	if err != nil {
		return nil, mapStoreError(err, "tax settings not configured", "")
	}

	rates := []model.TaxRate{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &rates); err != nil {
			return nil, fmt.Errorf("decode tax rates: %w", err)
		}
	}
	return rates, nil
}

func (s *TaxService) storeRates(ctx context.Context, rates []model.TaxRate) error {
	raw, err := json.Marshal(rates)
	if err != nil {
		return fmt.Errorf("encode tax rates: %w", err)
	}
	if _, err := s.db.Exec(ctx,
		`UPDATE tax_settings SET tax_rates = $1 WHERE id = 1`, raw); err != nil {
		return fmt.Errorf("store tax rates: %w", err)
	}
	return nil
}

func (s *TaxService) ListRates(ctx context.Context) ([]model.TaxRate, error) {
	if err := s.ensureRow(ctx); err != nil {
		return nil, err
	}
	return s.loadRates(ctx)
}

func (s *TaxService) AddRate(ctx context.Context, name, taxType string, rate float64) (*model.TaxRate, error) {
	if name == "" || taxType == "" {
		return nil, Invalid("tax name, tax type, and tax rate are required")
	}

	if err := s.ensureRow(ctx); err != nil {
		return nil, err
	}
	rates, err := s.loadRates(ctx)
	if err != nil {
		return nil, err
	}

	now := platform.Now()
	entry := model.TaxRate{
		ID:        platform.RecordID(platform.TaxPrefix),
		Name:      name,
		Type:      taxType,
		Rate:      rate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	rates = append(rates, entry)

	if err := s.storeRates(ctx, rates); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *TaxService) UpdateRate(ctx context.Context, id, name, taxType string, rate float64) error {
	if name == "" || taxType == "" {
		return Invalid("tax name, tax type, and tax rate are required")
	}

	rates, err := s.loadRates(ctx)
	if err != nil {
		return err
	}

	for i := range rates {
		if rates[i].ID == id {
			rates[i].Name = name
			rates[i].Type = taxType
			rates[i].Rate = rate
			rates[i].UpdatedAt = platform.Now()
			return s.storeRates(ctx, rates)
		}
	}
	return NotFound(fmt.Sprintf("tax %s not found", id))
}

func (s *TaxService) RemoveRate(ctx context.Context, id string) error {
	rates, err := s.loadRates(ctx)
	if err != nil {
		return err
	}

	for i := range rates {
		if rates[i].ID == id {
			return s.storeRates(ctx, append(rates[:i], rates[i+1:]...))
		}
	}
	return NotFound(fmt.Sprintf("tax %s not found", id))
}

func (s *TaxService) GetDefaultPreference(ctx context.Context) (json.RawMessage, error) {
	if err := s.ensureRow(ctx); err != nil {
		return nil, err
	}
	var raw []byte
	err := s.db.QueryRow(ctx, `SELECT default_tax_preference FROM tax_settings WHERE id = 1`).Scan(&raw)
	if err != nil {
		return nil, mapStoreError(err, "tax settings not configured", "")
	}
	return raw, nil
}

func (s *TaxService) SetDefaultPreference(ctx context.Context, pref json.RawMessage) error {
	if err := s.ensureRow(ctx); err != nil {
		return err
	}
	if _, err := s.db.Exec(ctx,
		`UPDATE tax_settings SET default_tax_preference = $1 WHERE id = 1`, []byte(pref)); err != nil {
		return fmt.Errorf("set default tax preference: %w", err)
	}
	return nil
}

func (s *TaxService) GetGSTSettings(ctx context.Context) (*model.GSTSettings, error) {
	if err := s.ensureRow(ctx); err != nil {
		return nil, err
	}
	var raw []byte
	err := s.db.QueryRow(ctx, `SELECT gst_settings FROM tax_settings WHERE id = 1`).Scan(&raw)
	if err != nil {
		return nil, mapStoreError(err, "tax settings not configured", "")
	}

	var settings model.GSTSettings
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &settings); err != nil {
			return nil, fmt.Errorf("decode gst settings: %w", err)
		}
	}
	return &settings, nil
}

func (s *TaxService) SetGSTSettings(ctx context.Context, settings *model.GSTSettings) error {
	if err := s.ensureRow(ctx); err != nil {
		return err
	}
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode gst settings: %w", err)
	}
	if _, err := s.db.Exec(ctx,
		`UPDATE tax_settings SET gst_settings = $1 WHERE id = 1`, raw); err != nil {
		return fmt.Errorf("set gst settings: %w", err)
	}
	return nil
}
