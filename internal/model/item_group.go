package model

import "time"

// ItemGroup is a named category label attached to services.
type ItemGroup struct {
	ID        int64     `json:"item_group_id"`
	Name      string    `json:"item_group_name"`
	CreatedAt time.Time `json:"created_at"`
}
