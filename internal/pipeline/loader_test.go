package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truelab-connectivity/internal/config"
)

func TestLoadRunLogs_ConcatenatesInFileOrder(t *testing.T) {
	file1 := csvInput(t, "export1.csv",
		runRow("TL001-1", "admin", "Lab A", ""),
		runRow("TL002-1", "admin", "Lab B", ""),
	)
	file2 := csvInput(t, "export2.csv",
		runRow("TL003-1", "admin", "Lab C", ""),
		runRow("TL004-1", "admin", "Lab D", ""),
		runRow("TL005-1", "admin", "Lab E", ""),
	)

	records, err := LoadRunLogs(testCfg, []Input{file1, file2})
	require.NoError(t, err)
	require.Len(t, records, 5)

	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.TruelabID)
	}
	assert.Equal(t, []string{"TL001-1", "TL002-1", "TL003-1", "TL004-1", "TL005-1"}, ids)
}

func TestLoadRunLogs_MissingColumnIsSchemaError(t *testing.T) {
	header := make([]string, 0, len(testCfg.RunLogColumns)-1)
	for _, col := range testCfg.RunLogColumns {
		if col != "Lot" {
			header = append(header, col)
		}
	}
	in := Input{Name: "export1.csv", Reader: strings.NewReader(strings.Join(header, ",") + "\n")}

	_, err := LoadRunLogs(testCfg, []Input{in})
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "export1.csv", schemaErr.Input)
	assert.Equal(t, []string{"Lot"}, schemaErr.Missing)
}

func TestLoadRunLogs_UnparseableCSVIsFormatError(t *testing.T) {
	// Header is fine, second line has a wrong field count.
	raw := strings.Join(testCfg.RunLogColumns, ",") + "\nonly,two\n"
	in := Input{Name: "export1.csv", Reader: strings.NewReader(raw)}

	_, err := LoadRunLogs(testCfg, []Input{in})
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "export1.csv", formatErr.Input)
}

func TestLoadRunLogs_EmptyStreamIsFormatError(t *testing.T) {
	in := Input{Name: "empty.csv", Reader: strings.NewReader("")}

	_, err := LoadRunLogs(testCfg, []Input{in})
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestLoadRoster_AppliesRenameMap(t *testing.T) {
	in := rosterInput(t, "master.xlsx",
		rosterRow("TL001-A", "West", "Apex Labs", "TX", "Clinic"),
	)

	accounts, err := LoadRoster(testCfg, in)
	require.NoError(t, err)
	require.Len(t, accounts, 1)

	acc := accounts[0]
	assert.Equal(t, "West", acc.Zone)
	assert.Equal(t, "Apex Labs", acc.LabNameMasterlist)
	assert.Equal(t, "TX", acc.State)
	assert.Equal(t, "A Owner", acc.AccountOwner)
	assert.Equal(t, "Clinic", acc.CustomerType)
	assert.Equal(t, "TL001-A", acc.SerialBatchID)
}

func TestLoadRoster_TrimsHeaderWhitespace(t *testing.T) {
	header := make([]string, len(testCfg.RosterColumns))
	for i, h := range testCfg.RosterColumns {
		header[i] = "  " + h + " "
	}
	in := rosterInputWithHeader(t, "master.xlsx", header,
		rosterRow("TL001-A", "West", "Apex Labs", "TX", "Clinic"),
	)

	accounts, err := LoadRoster(testCfg, in)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "West", accounts[0].Zone)
}

func TestLoadRoster_MissingColumnIsSchemaError(t *testing.T) {
	header := []string{config.RosterColSerial, config.RosterColAccountName}
	in := rosterInputWithHeader(t, "master.xlsx", header)

	_, err := LoadRoster(testCfg, in)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Missing, config.RosterColZone)
	assert.Contains(t, schemaErr.Missing, config.RosterColType)
}

func TestLoadRoster_GarbageBytesIsFormatError(t *testing.T) {
	in := Input{Name: "master.xlsx", Reader: strings.NewReader("this is not a workbook")}

	_, err := LoadRoster(testCfg, in)
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "master.xlsx", formatErr.Input)
}
