package pipeline

import (
	"truelab-connectivity/internal/domain"
)

// Aggregate collapses cleaned run records to one row per Truelab ID, in
// first-seen order. For each device: total run count, latest parsed test
// timestamp (nil only when every member is nil), and the Lab_name of the
// group's sequentially last row. The "last row" rule follows input order on
// purpose; it is not a max-by-timestamp and must not be turned into one.
func Aggregate(records []domain.RunRecord) []domain.DeviceAggregate {
	groups := make(map[string]*domain.DeviceAggregate)
	var order []string

	for i := range records {
		rec := &records[i]
		agg, ok := groups[rec.TruelabID]
		if !ok {
			agg = &domain.DeviceAggregate{TruelabID: rec.TruelabID}
			groups[rec.TruelabID] = agg
			order = append(order, rec.TruelabID)
		}
		agg.TotalRuns++
		if rec.TestDateTime != nil && (agg.LastRunDate == nil || rec.TestDateTime.After(*agg.LastRunDate)) {
			t := *rec.TestDateTime
			agg.LastRunDate = &t
		}
		agg.LabNameDashboard = rec.LabName
	}

	aggregates := make([]domain.DeviceAggregate, 0, len(order))
	for _, id := range order {
		aggregates = append(aggregates, *groups[id])
	}
	return aggregates
}
