package domain

import "time"

// DriveStatus tracks where a company sits in the recruitment cycle.
type DriveStatus string

const (
	DriveStatusUpcoming  DriveStatus = "UPCOMING"
	DriveStatusOngoing   DriveStatus = "ONGOING"
	DriveStatusCompleted DriveStatus = "COMPLETED"
)

// Valid reports whether the status is one of the known values.
func (s DriveStatus) Valid() bool {
	switch s {
	case DriveStatusUpcoming, DriveStatusOngoing, DriveStatusCompleted:
		return true
	}
	return false
}

// Company is a placement-drive record maintained by coordinators and admins.
type Company struct {
	ID          string
	Name        string
	JobRole     string
	PackageLPA  float64
	Eligibility string
	Status      DriveStatus
	VisitDate   *time.Time
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
