package models

import "encoding/json"

// Inventory is the per-item stock record: the locations holding the stock
// and its quantity counters. TotalExpected and TotalAvailable are derived
// from the other counters and recomputed on every write; values supplied by
// clients are ignored.
type Inventory struct {
	Meta
	ItemID         string   `json:"item_id" validate:"required"`
	Description    string   `json:"description"`
	ItemReference  string   `json:"item_reference"`
	Locations      []string `json:"locations"`
	TotalOnHand    int      `json:"total_on_hand"`
	TotalExpected  int      `json:"total_expected"`
	TotalOrdered   int      `json:"total_ordered"`
	TotalAllocated int      `json:"total_allocated"`
	TotalAvailable int      `json:"total_available"`
}

// HoldsLocation reports whether the record's stock sits at the location.
func (i *Inventory) HoldsLocation(locationID string) bool {
	for _, loc := range i.Locations {
		if loc == locationID {
			return true
		}
	}
	return false
}

type inventoryPatch struct {
	ItemID         *string   `json:"item_id"`
	Description    *string   `json:"description"`
	ItemReference  *string   `json:"item_reference"`
	Locations      *[]string `json:"locations"`
	TotalOnHand    *int      `json:"total_on_hand"`
	TotalOrdered   *int      `json:"total_ordered"`
	TotalAllocated *int      `json:"total_allocated"`
}

// MergePatch applies the recognized inventory fields from a partial payload.
// The derived counters are not patchable.
func (i *Inventory) MergePatch(data []byte) error {
	var p inventoryPatch
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.ItemID != nil {
		i.ItemID = *p.ItemID
	}
	if p.Description != nil {
		i.Description = *p.Description
	}
	if p.ItemReference != nil {
		i.ItemReference = *p.ItemReference
	}
	if p.Locations != nil {
		i.Locations = *p.Locations
	}
	if p.TotalOnHand != nil {
		i.TotalOnHand = *p.TotalOnHand
	}
	if p.TotalOrdered != nil {
		i.TotalOrdered = *p.TotalOrdered
	}
	if p.TotalAllocated != nil {
		i.TotalAllocated = *p.TotalAllocated
	}
	return nil
}
