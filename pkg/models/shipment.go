package models

import (
	"encoding/json"
	"time"

	"github.com/warehublabs/warehub-backend/pkg/enums"
)

// Shipment is a carrier booking for one or more orders. Shipments are the
// one resource without a soft-delete flag; removal is a hard delete.
type Shipment struct {
	Meta
	OrderID            string               `json:"order_id"`
	SourceID           string               `json:"source_id"`
	OrderDate          time.Time            `json:"order_date"`
	RequestDate        time.Time            `json:"request_date"`
	ShipmentDate       time.Time            `json:"shipment_date"`
	ShipmentType       enums.ShipmentType   `json:"shipment_type"`
	ShipmentStatus     enums.ShipmentStatus `json:"shipment_status"`
	Notes              string               `json:"notes"`
	CarrierCode        string               `json:"carrier_code"`
	CarrierDescription string               `json:"carrier_description"`
	ServiceCode        string               `json:"service_code"`
	PaymentType        string               `json:"payment_type"`
	TransferMode       string               `json:"transfer_mode"`
	TotalPackageCount  int                  `json:"total_package_count"`
	TotalPackageWeight float64              `json:"total_package_weight"`
	Items              []ItemQuantity       `json:"items" validate:"omitempty,dive"`
}

type shipmentPatch struct {
	OrderID            *string               `json:"order_id"`
	SourceID           *string               `json:"source_id"`
	OrderDate          *time.Time            `json:"order_date"`
	RequestDate        *time.Time            `json:"request_date"`
	ShipmentDate       *time.Time            `json:"shipment_date"`
	ShipmentType       *enums.ShipmentType   `json:"shipment_type"`
	ShipmentStatus     *enums.ShipmentStatus `json:"shipment_status"`
	Notes              *string               `json:"notes"`
	CarrierCode        *string               `json:"carrier_code"`
	CarrierDescription *string               `json:"carrier_description"`
	ServiceCode        *string               `json:"service_code"`
	PaymentType        *string               `json:"payment_type"`
	TransferMode       *string               `json:"transfer_mode"`
	TotalPackageCount  *int                  `json:"total_package_count"`
	TotalPackageWeight *float64              `json:"total_package_weight"`
	Items              *[]ItemQuantity       `json:"items"`
}

// MergePatch applies the recognized shipment fields from a partial payload.
func (s *Shipment) MergePatch(data []byte) error {
	var p shipmentPatch
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.OrderID != nil {
		s.OrderID = *p.OrderID
	}
	if p.SourceID != nil {
		s.SourceID = *p.SourceID
	}
	if p.OrderDate != nil {
		s.OrderDate = *p.OrderDate
	}
	if p.RequestDate != nil {
		s.RequestDate = *p.RequestDate
	}
	if p.ShipmentDate != nil {
		s.ShipmentDate = *p.ShipmentDate
	}
	if p.ShipmentType != nil {
		s.ShipmentType = *p.ShipmentType
	}
	if p.ShipmentStatus != nil {
		s.ShipmentStatus = *p.ShipmentStatus
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
	if p.CarrierCode != nil {
		s.CarrierCode = *p.CarrierCode
	}
	if p.CarrierDescription != nil {
		s.CarrierDescription = *p.CarrierDescription
	}
	if p.ServiceCode != nil {
		s.ServiceCode = *p.ServiceCode
	}
	if p.PaymentType != nil {
		s.PaymentType = *p.PaymentType
	}
	if p.TransferMode != nil {
		s.TransferMode = *p.TransferMode
	}
	if p.TotalPackageCount != nil {
		s.TotalPackageCount = *p.TotalPackageCount
	}
	if p.TotalPackageWeight != nil {
		s.TotalPackageWeight = *p.TotalPackageWeight
	}
	if p.Items != nil {
		s.Items = *p.Items
	}
	return nil
}
