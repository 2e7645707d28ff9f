package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warehublabs/warehub-backend/pkg/enums"
)

// Order is an outbound customer order with its money totals and item lines.
type Order struct {
	Meta
	SourceID       string            `json:"source_id"`
	OrderDate      time.Time         `json:"order_date"`
	RequestDate    time.Time         `json:"request_date"`
	Reference      string            `json:"reference" validate:"required"`
	ReferenceExtra string            `json:"reference_extra"`
	OrderStatus    enums.OrderStatus `json:"order_status"`
	Notes          string            `json:"notes"`
	ShippingNotes  string            `json:"shipping_notes"`
	PickingNotes   string            `json:"picking_notes"`
	WarehouseID    string            `json:"warehouse_id"`
	ShipTo         string            `json:"ship_to"`
	BillTo         string            `json:"bill_to"`
	ShipmentID     string            `json:"shipment_id"`
	TotalAmount    decimal.Decimal   `json:"total_amount"`
	TotalDiscount  decimal.Decimal   `json:"total_discount"`
	TotalTax       decimal.Decimal   `json:"total_tax"`
	TotalSurcharge decimal.Decimal   `json:"total_surcharge"`
	Items          []ItemQuantity    `json:"items" validate:"omitempty,dive"`
}

type orderPatch struct {
	SourceID       *string            `json:"source_id"`
	OrderDate      *time.Time         `json:"order_date"`
	RequestDate    *time.Time         `json:"request_date"`
	Reference      *string            `json:"reference"`
	ReferenceExtra *string            `json:"reference_extra"`
	OrderStatus    *enums.OrderStatus `json:"order_status"`
	Notes          *string            `json:"notes"`
	ShippingNotes  *string            `json:"shipping_notes"`
	PickingNotes   *string            `json:"picking_notes"`
	WarehouseID    *string            `json:"warehouse_id"`
	ShipTo         *string            `json:"ship_to"`
	BillTo         *string            `json:"bill_to"`
	ShipmentID     *string            `json:"shipment_id"`
	TotalAmount    *decimal.Decimal   `json:"total_amount"`
	TotalDiscount  *decimal.Decimal   `json:"total_discount"`
	TotalTax       *decimal.Decimal   `json:"total_tax"`
	TotalSurcharge *decimal.Decimal   `json:"total_surcharge"`
	Items          *[]ItemQuantity    `json:"items"`
}

// MergePatch applies the recognized order fields from a partial payload.
func (o *Order) MergePatch(data []byte) error {
	var p orderPatch
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.SourceID != nil {
		o.SourceID = *p.SourceID
	}
	if p.OrderDate != nil {
		o.OrderDate = *p.OrderDate
	}
	if p.RequestDate != nil {
		o.RequestDate = *p.RequestDate
	}
	if p.Reference != nil {
		o.Reference = *p.Reference
	}
	if p.ReferenceExtra != nil {
		o.ReferenceExtra = *p.ReferenceExtra
	}
	if p.OrderStatus != nil {
		o.OrderStatus = *p.OrderStatus
	}
	if p.Notes != nil {
		o.Notes = *p.Notes
	}
	if p.ShippingNotes != nil {
		o.ShippingNotes = *p.ShippingNotes
	}
	if p.PickingNotes != nil {
		o.PickingNotes = *p.PickingNotes
	}
	if p.WarehouseID != nil {
		o.WarehouseID = *p.WarehouseID
	}
	if p.ShipTo != nil {
		o.ShipTo = *p.ShipTo
	}
	if p.BillTo != nil {
		o.BillTo = *p.BillTo
	}
	if p.ShipmentID != nil {
		o.ShipmentID = *p.ShipmentID
	}
	if p.TotalAmount != nil {
		o.TotalAmount = *p.TotalAmount
	}
	if p.TotalDiscount != nil {
		o.TotalDiscount = *p.TotalDiscount
	}
	if p.TotalTax != nil {
		o.TotalTax = *p.TotalTax
	}
	if p.TotalSurcharge != nil {
		o.TotalSurcharge = *p.TotalSurcharge
	}
	if p.Items != nil {
		o.Items = *p.Items
	}
	return nil
}
