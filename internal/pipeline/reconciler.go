package pipeline

import (
	"truelab-connectivity/internal/domain"
)

// Reconcile left-joins the roster against the device aggregates on Truelab
// ID. Every account appears exactly once, in roster order, with a 0-based
// ordinal index. An account whose device produced no cleaned run records is
// Inactive with Total_Runs forced to 0; matched accounts are Active.
// An empty derived key never joins: a blank roster serial cannot collide
// with garbage run-log keys.
func Reconcile(accounts []domain.AccountRecord, aggregates []domain.DeviceAggregate) []domain.ConnectivityRow {
	byID := make(map[string]domain.DeviceAggregate, len(aggregates))
	for _, agg := range aggregates {
		byID[agg.TruelabID] = agg
	}

	rows := make([]domain.ConnectivityRow, 0, len(accounts))
	for i, acc := range accounts {
		row := domain.ConnectivityRow{
			Index:             i,
			Zone:              acc.Zone,
			LabNameMasterlist: acc.LabNameMasterlist,
			State:             acc.State,
			AccountOwner:      acc.AccountOwner,
			CustomerType:      acc.CustomerType,
			TruelabID:         acc.TruelabID,
			Status:            domain.StatusInactive,
		}
		if acc.TruelabID != "" {
			if agg, ok := byID[acc.TruelabID]; ok {
				row.LabNameDashboard = agg.LabNameDashboard
				row.LastRunDate = agg.LastRunDate
				row.TotalRuns = agg.TotalRuns
				row.Status = domain.StatusActive
			}
		}
		rows = append(rows, row)
	}
	return rows
}
