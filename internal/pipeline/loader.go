package pipeline

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"truelab-connectivity/internal/config"
	"truelab-connectivity/internal/domain"
)

// Input is one caller-supplied byte stream, named for error reporting.
type Input struct {
	Name   string
	Reader io.Reader
}

// LoadRunLogs parses the run-log CSV exports and concatenates their rows into
// one table, preserving order: file 1's rows, then file 2's rows.
func LoadRunLogs(cfg config.PipelineConfig, inputs []Input) ([]domain.RunRecord, error) {
	var records []domain.RunRecord
	for _, in := range inputs {
		recs, err := loadRunLog(cfg, in)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	return records, nil
}

func loadRunLog(cfg config.PipelineConfig, in Input) ([]domain.RunRecord, error) {
	reader := csv.NewReader(in.Reader)
	header, err := reader.Read()
	if err != nil {
		return nil, &FormatError{Input: in.Name, Err: err}
	}
	idx := headerIndex(header)
	if missing := missingColumns(idx, cfg.RunLogColumns); len(missing) > 0 {
		return nil, &SchemaError{Input: in.Name, Missing: missing}
	}

	var records []domain.RunRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &FormatError{Input: in.Name, Err: err}
		}
		cell := func(col string) string {
			i := idx[col]
			if i >= len(row) {
				return ""
			}
			return row[i]
		}
		records = append(records, domain.RunRecord{
			RawTestDateTime:       cell("Test_date_time"),
			ProfileID:             cell("Profile_id"),
			PatientID:             cell("Patient_id"),
			TestResult:            cell("Test_result"),
			TestStatus:            cell("Test_status"),
			LabName:               cell("Lab_name"),
			UserName:              cell("User_name"),
			SampleType:            cell("Sample_type"),
			TruelabID:             cell("Truelab_id"),
			Lot:                   cell("Lot"),
			ChipSerialNo:          cell("Chip_serial_no"),
			RawCt1:                cell("Ct1"),
			RawCt2:                cell("Ct2"),
			RawCt3:                cell("Ct3"),
			Load1:                 cell("Load1"),
			Load2:                 cell("Load2"),
			Load3:                 cell("Load3"),
			BayNo:                 cell("Bayno"),
			ChipBatchNo:           cell("Chip_batchno"),
			RawResultReceivedDate: cell("Result_recieved_date"),
		})
	}
	return records, nil
}

// LoadRoster parses the master roster workbook (first sheet) into account
// records, applying the roster rename map. Header names are matched after
// whitespace trim.
func LoadRoster(cfg config.PipelineConfig, in Input) ([]domain.AccountRecord, error) {
	f, err := excelize.OpenReader(in.Reader)
	if err != nil {
		return nil, &FormatError{Input: in.Name, Err: err}
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, &FormatError{Input: in.Name, Err: errors.New("workbook has no sheets")}
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, &FormatError{Input: in.Name, Err: err}
	}
	if len(rows) == 0 {
		return nil, &SchemaError{Input: in.Name, Missing: cfg.RosterColumns}
	}

	idx := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		name := strings.TrimSpace(h)
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}
	if missing := missingColumns(idx, cfg.RosterColumns); len(missing) > 0 {
		return nil, &SchemaError{Input: in.Name, Missing: missing}
	}

	accounts := make([]domain.AccountRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if rowEmpty(row) {
			continue
		}
		cell := func(col string) string {
			i := idx[col]
			if i >= len(row) {
				return ""
			}
			return row[i]
		}
		accounts = append(accounts, domain.AccountRecord{
			Zone:              cell(config.RosterColZone),
			LabNameMasterlist: cell(config.RosterColAccountName),
			State:             cell(config.RosterColBillingState),
			AccountOwner:      cell(config.RosterColAccountOwner),
			CustomerType:      cell(config.RosterColType),
			SerialBatchID:     cell(config.RosterColSerial),
		})
	}
	return accounts, nil
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		if _, ok := idx[h]; !ok {
			idx[h] = i
		}
	}
	return idx
}

func missingColumns(idx map[string]int, required []string) []string {
	var missing []string
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

func rowEmpty(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}
