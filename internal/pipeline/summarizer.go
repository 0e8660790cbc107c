package pipeline

import (
	"truelab-connectivity/internal/domain"
)

// Summarize cross-tabulates Active/Inactive account counts by
// (State, Customer Type). Pairs present in only one status partition get 0
// for the other count. Blank State or Customer Type values group as their
// own pair rather than being dropped; losing those accounts from the rollup
// would understate the totals. Rows come out in first-appearance order,
// Active partition first.
func Summarize(rows []domain.ConnectivityRow) []domain.SummaryRow {
	type pair struct {
		state        string
		customerType string
	}
	counts := make(map[pair]*domain.SummaryRow)
	var order []pair

	tally := func(status string) {
		for _, row := range rows {
			if row.Status != status {
				continue
			}
			key := pair{row.State, row.CustomerType}
			sr, ok := counts[key]
			if !ok {
				sr = &domain.SummaryRow{State: row.State, CustomerType: row.CustomerType}
				counts[key] = sr
				order = append(order, key)
			}
			if status == domain.StatusActive {
				sr.ActiveCount++
			} else {
				sr.InactiveCount++
			}
		}
	}
	tally(domain.StatusActive)
	tally(domain.StatusInactive)

	summary := make([]domain.SummaryRow, 0, len(order))
	for _, key := range order {
		sr := counts[key]
		sr.TotalCount = sr.ActiveCount + sr.InactiveCount
		summary = append(summary, *sr)
	}
	return summary
}
