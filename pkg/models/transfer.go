package models

import (
	"encoding/json"

	"github.com/warehublabs/warehub-backend/pkg/enums"
)

// Transfer is a scheduled movement of item quantities from one location to
// another. Creation forces the status to Scheduled; committing flips it to
// Processed and applies the movement to the inventory ledger.
type Transfer struct {
	Meta
	Reference      string               `json:"reference"`
	TransferFrom   string               `json:"transfer_from" validate:"required"`
	TransferTo     string               `json:"transfer_to" validate:"required"`
	TransferStatus enums.TransferStatus `json:"transfer_status"`
	Items          []ItemQuantity       `json:"items" validate:"required,min=1,dive"`
}

type transferPatch struct {
	Reference    *string         `json:"reference"`
	TransferFrom *string         `json:"transfer_from"`
	TransferTo   *string         `json:"transfer_to"`
	Items        *[]ItemQuantity `json:"items"`
}

// MergePatch applies the recognized transfer fields from a partial payload.
// The status is not patchable; it only moves through create and commit.
func (t *Transfer) MergePatch(data []byte) error {
	var p transferPatch
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Reference != nil {
		t.Reference = *p.Reference
	}
	if p.TransferFrom != nil {
		t.TransferFrom = *p.TransferFrom
	}
	if p.TransferTo != nil {
		t.TransferTo = *p.TransferTo
	}
	if p.Items != nil {
		t.Items = *p.Items
	}
	return nil
}
