package models

import "time"

// Meta is the metadata block shared by every stored record: identity,
// server-managed timestamps and the soft-delete flag. The store owns these
// fields; values supplied by clients are overwritten on write.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Archived  bool      `json:"is_archived,omitempty"`
}

// Metadata exposes the embedded block to the generic store.
func (m *Meta) Metadata() *Meta {
	return m
}

// Entity constrains the generic store to pointer types carrying the shared
// metadata block and an allow-listed patch merge.
type Entity[T any] interface {
	*T
	Metadata() *Meta
	MergePatch(data []byte) error
}

// ItemQuantity is one {item_id, amount} line on orders, shipments and
// transfers.
type ItemQuantity struct {
	ItemID string `json:"item_id" validate:"required"`
	Amount int    `json:"amount" validate:"required,gt=0"`
}
