package pipeline

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"truelab-connectivity/internal/config"
)

var testCfg = config.DefaultPipeline()

// csvInput builds a run-log CSV stream with the full required header.
// Each row map only needs the columns the test cares about.
func csvInput(t *testing.T, name string, rows ...map[string]string) Input {
	t.Helper()
	var b strings.Builder
	w := csv.NewWriter(&b)
	require.NoError(t, w.Write(testCfg.RunLogColumns))
	for _, over := range rows {
		rec := make([]string, len(testCfg.RunLogColumns))
		for i, col := range testCfg.RunLogColumns {
			rec[i] = over[col]
		}
		require.NoError(t, w.Write(rec))
	}
	w.Flush()
	require.NoError(t, w.Error())
	return Input{Name: name, Reader: strings.NewReader(b.String())}
}

// rosterInput builds a roster .xlsx stream with the required header row.
func rosterInput(t *testing.T, name string, rows ...map[string]string) Input {
	t.Helper()
	return rosterInputWithHeader(t, name, testCfg.RosterColumns, rows...)
}

func rosterInputWithHeader(t *testing.T, name string, header []string, rows ...map[string]string) Input {
	t.Helper()
	f := excelize.NewFile()
	const sheet = "Sheet1"
	for i, h := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, h))
	}
	for r, over := range rows {
		for i, col := range testCfg.RosterColumns {
			if i >= len(header) {
				break
			}
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, over[col]))
		}
	}
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return Input{Name: name, Reader: bytes.NewReader(buf.Bytes())}
}

func runRow(truelabID, userName, labName, testDate string) map[string]string {
	return map[string]string{
		"Truelab_id":     truelabID,
		"User_name":      userName,
		"Lab_name":       labName,
		"Test_date_time": testDate,
		"Patient_id":     "P001",
		"Test_result":    "Negative",
	}
}

func rosterRow(serial, zone, accountName, state, customerType string) map[string]string {
	return map[string]string{
		config.RosterColSerial:       serial,
		config.RosterColZone:         zone,
		config.RosterColAccountName:  accountName,
		config.RosterColBillingState: state,
		config.RosterColAccountOwner: "A Owner",
		config.RosterColType:         customerType,
	}
}
