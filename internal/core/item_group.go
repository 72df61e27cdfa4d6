package core

import (
	"context"
	"fmt"

	"github.com/subsync/subsync/internal/model"
)

type ItemGroupService struct {
	db DB
}

func NewItemGroupService(db DB) *ItemGroupService {
	return &ItemGroupService{db: db}
}

func (s *ItemGroupService) List(ctx context.Context) ([]model.ItemGroup, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, created_at FROM item_groups ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list item groups: %w", err)
	}
	defer rows.Close()

	groups := []model.ItemGroup{}
	for rows.Next() {
		var g model.ItemGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item group: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (s *ItemGroupService) GetByID(ctx context.Context, id int64) (*model.ItemGroup, error) {
	var g model.ItemGroup
	err := s.db.QueryRow(ctx,
		`SELECT id, name, created_at FROM item_groups WHERE id = $1`, id,
	).Scan(&g.ID, &g.Name, &g.CreatedAt)
	if err != nil {
		return nil, mapStoreError(err, fmt.Sprintf("item group %d not found", id), "")
	}
	return &g, nil
}

func (s *ItemGroupService) Create(ctx context.Context, name string) (*model.ItemGroup, error) {
	if name == "" {
		return nil, Invalid("item group name is required")
	}

	g := &model.ItemGroup{Name: name}
	err := s.db.QueryRow(ctx,
		`INSERT INTO item_groups (name) VALUES ($1) RETURNING id, created_at`, name,
	).Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create item group: %w",
			mapStoreError(err, "", "item group name already exists"))
	}
	return g, nil
}

func (s *ItemGroupService) Update(ctx context.Context, id int64, name string) error {
	if name == "" {
		return Invalid("item group name is required")
	}

	tag, err := s.db.Exec(ctx, `UPDATE item_groups SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return fmt.Errorf("update item group %d: %w", id,
			mapStoreError(err, "", "item group name already exists"))
	}
	if tag.RowsAffected() == 0 {
		return NotFound(fmt.Sprintf("item group %d not found", id))
	}
	return nil
}

func (s *ItemGroupService) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM item_groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item group %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return NotFound(fmt.Sprintf("item group %d not found", id))
	}
	return nil
}
