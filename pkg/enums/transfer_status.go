package enums

import "fmt"

// TransferStatus tracks a stock transfer through its lifecycle.
type TransferStatus string

const (
	TransferStatusScheduled TransferStatus = "Scheduled"
	TransferStatusProcessed TransferStatus = "Processed"
)

var validTransferStatuses = []TransferStatus{
	TransferStatusScheduled,
	TransferStatusProcessed,
}

// IsValid reports whether the value matches a known transfer status.
func (s TransferStatus) IsValid() bool {
	for _, candidate := range validTransferStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseTransferStatus converts raw input into TransferStatus.
func ParseTransferStatus(value string) (TransferStatus, error) {
	for _, candidate := range validTransferStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid transfer status %q", value)
}
