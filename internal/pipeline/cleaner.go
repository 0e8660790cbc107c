package pipeline

import (
	"strconv"
	"strings"
	"time"

	"truelab-connectivity/internal/config"
	"truelab-connectivity/internal/domain"
)

// Timestamp layouts accepted for Test_date_time / Result_recieved_date.
// Tried in order; a value matching none of them cleans to nil.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02-01-2006 15:04:05",
	"02-01-2006 15:04",
	"02-01-2006",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"02-Jan-2006 15:04:05",
	"02-Jan-2006",
}

// CleanRunRecords normalizes the combined run-record table in place and
// returns the filtered slice:
//   - rows whose operator username equals the service filter value are
//     dropped (engineer runs, not patient tests)
//   - Lab_name is upper-cased and trimmed; Lot is upper-cased with every
//     space removed, not just trimmed (lot codes embed stray spaces)
//   - timestamps and Ct readings parse best-effort, nil on failure
//   - Truelab_id becomes the normalized device key
func CleanRunRecords(cfg config.PipelineConfig, records []domain.RunRecord) []domain.RunRecord {
	cleaned := records[:0]
	for i := range records {
		rec := records[i]
		if rec.UserName == cfg.ServiceUserName {
			continue
		}

		rec.LabName = strings.TrimSpace(strings.ToUpper(rec.LabName))
		rec.Lot = strings.ReplaceAll(strings.ToUpper(rec.Lot), " ", "")
		rec.TruelabID = domain.DeriveTruelabID(rec.TruelabID)

		rec.TestDateTime = parseTimestamp(rec.RawTestDateTime)
		rec.ResultReceivedDate = parseTimestamp(rec.RawResultReceivedDate)
		rec.Ct1 = parseFloat(rec.RawCt1)
		rec.Ct2 = parseFloat(rec.RawCt2)
		rec.Ct3 = parseFloat(rec.RawCt3)

		cleaned = append(cleaned, rec)
	}
	return cleaned
}

// CleanRoster derives the device key for every account and normalizes the
// account display name. No roster row is ever dropped.
func CleanRoster(accounts []domain.AccountRecord) []domain.AccountRecord {
	for i := range accounts {
		accounts[i].TruelabID = domain.DeriveTruelabID(accounts[i].SerialBatchID)
		accounts[i].LabNameMasterlist = strings.TrimSpace(strings.ToUpper(accounts[i].LabNameMasterlist))
	}
	return accounts
}

func parseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func parseFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
