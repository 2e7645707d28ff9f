package models

import "encoding/json"

// Location is a named slot inside a warehouse where stock physically sits.
type Location struct {
	Meta
	WarehouseID string `json:"warehouse_id" validate:"required"`
	Code        string `json:"code" validate:"required"`
	Name        string `json:"name"`
}

type locationPatch struct {
	WarehouseID *string `json:"warehouse_id"`
	Code        *string `json:"code"`
	Name        *string `json:"name"`
}

// MergePatch applies the recognized location fields from a partial payload.
func (l *Location) MergePatch(data []byte) error {
	var p locationPatch
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.WarehouseID != nil {
		l.WarehouseID = *p.WarehouseID
	}
	if p.Code != nil {
		l.Code = *p.Code
	}
	if p.Name != nil {
		l.Name = *p.Name
	}
	return nil
}
