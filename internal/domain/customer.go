package domain

import "time"

// CustomerStatus is the lifecycle label on a lead. The status machine is
// deliberately open: any status may move to any other status, including
// itself, and StatusOld is not terminal.
type CustomerStatus string

const (
	StatusNew       CustomerStatus = "New"
	StatusContacted CustomerStatus = "Contacted"
	StatusQualified CustomerStatus = "Qualified"
	StatusOld       CustomerStatus = "Old"
)

// ValidStatuses lists every recognized customer status.
var ValidStatuses = []CustomerStatus{StatusNew, StatusContacted, StatusQualified, StatusOld}

// IsValid reports whether s is one of the recognized statuses.
func (s CustomerStatus) IsValid() bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// Customer is the domain model for a lead captured from an inbound form.
type Customer struct {
	ID        int64
	Name      string
	Phone     string
	Email     *string
	Address   *string
	Notes     *string
	Status    CustomerStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CustomerStats is a per-status breakdown computed from a single snapshot,
// so the sub-totals always sum to Total.
type CustomerStats struct {
	Total     int64
	New       int64
	Contacted int64
	Qualified int64
	Old       int64
}
