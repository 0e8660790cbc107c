package domain

import (
	"strings"
	"time"
)

// RunRecord is one instrument test event from the dashboard CSV export.
//
// The loader fills the raw string fields exactly as exported; the cleaner
// normalizes the text fields in place and fills the parsed fields. Parsed
// fields are pointers: a nil value means the export carried something that
// could not be parsed (messy upstream data is expected and absorbed, never
// escalated to an error).
type RunRecord struct {
	ProfileID    string
	PatientID    string
	TestResult   string
	TestStatus   string
	LabName      string
	UserName     string
	SampleType   string
	TruelabID    string
	Lot          string
	ChipSerialNo string
	Load1        string
	Load2        string
	Load3        string
	BayNo        string
	ChipBatchNo  string

	TestDateTime       *time.Time
	ResultReceivedDate *time.Time
	Ct1                *float64
	Ct2                *float64
	Ct3                *float64

	// Raw export values, kept until the cleaner parses them.
	RawTestDateTime       string
	RawResultReceivedDate string
	RawCt1                string
	RawCt2                string
	RawCt3                string
}

// DeriveTruelabID normalizes a raw serial/batch string into the join key
// shared by run records and roster accounts: the substring before the first
// hyphen, upper-cased and trimmed. Already-derived values pass through
// unchanged, so the derivation is idempotent.
func DeriveTruelabID(raw string) string {
	head, _, _ := strings.Cut(raw, "-")
	return strings.TrimSpace(strings.ToUpper(head))
}
