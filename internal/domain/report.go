package domain

import "time"

// Account connectivity status, decided by the reconciler.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// DeviceAggregate is one row per distinct Truelab ID seen among cleaned run
// records. Immutable once produced.
type DeviceAggregate struct {
	TruelabID string
	// Number of cleaned run records for this device.
	TotalRuns int
	// Latest Test_date_time in the group; nil when every member failed to parse.
	LastRunDate *time.Time
	// Lab_name of the group's last row in input order. Input order, not
	// chronological order: the dashboard export quirk is part of the contract.
	LabNameDashboard string
}

// ConnectivityRow is one line of the "Detailed Connectivity" sheet: the
// roster account joined against its device aggregate.
type ConnectivityRow struct {
	// 0-based ordinal in join output order, written as a visible column.
	Index             int
	Zone              string
	LabNameMasterlist string
	State             string
	AccountOwner      string
	CustomerType      string
	TruelabID         string
	LabNameDashboard  string
	LastRunDate       *time.Time
	TotalRuns         int
	Status            string
}

// SummaryRow is one line of the "State wise connectivity" sheet: Active and
// Inactive account counts for a (State, Customer Type) pair.
type SummaryRow struct {
	State         string
	CustomerType  string
	ActiveCount   int
	InactiveCount int
	TotalCount    int
}

// ConnectivityReport is the full pipeline result before serialization.
type ConnectivityReport struct {
	Detail  []ConnectivityRow
	Summary []SummaryRow
}
