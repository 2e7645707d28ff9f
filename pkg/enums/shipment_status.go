package enums

// ShipmentStatus tracks a shipment from booking to delivery.
type ShipmentStatus string

const (
	ShipmentStatusPending   ShipmentStatus = "Pending"
	ShipmentStatusTransit   ShipmentStatus = "Transit"
	ShipmentStatusDelivered ShipmentStatus = "Delivered"
)

// ShipmentType distinguishes inbound (I) from outbound (O) movements.
type ShipmentType string

const (
	ShipmentTypeInbound  ShipmentType = "I"
	ShipmentTypeOutbound ShipmentType = "O"
)

var validShipmentStatuses = []ShipmentStatus{
	ShipmentStatusPending,
	ShipmentStatusTransit,
	ShipmentStatusDelivered,
}

// IsValid reports whether the value matches a known shipment status.
func (s ShipmentStatus) IsValid() bool {
	for _, candidate := range validShipmentStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}
