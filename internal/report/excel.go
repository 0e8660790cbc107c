// Package report serializes a connectivity report into the final two-sheet
// Excel workbook.
package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"truelab-connectivity/internal/domain"
)

// DetailHeader is the fixed column order of the "Detailed Connectivity" sheet.
var DetailHeader = []string{
	"index",
	"Zone",
	"Lab_name_Masterlist",
	"State",
	"Account Owner",
	"Customer Type",
	"Truelab_id",
	"Lab_name_Dashboard",
	"Last_Run_Date",
	"Total_Runs",
	"Status",
}

// SummaryHeader is the column order of the "State wise connectivity" sheet.
var SummaryHeader = []string{
	"State",
	"Customer Type",
	"Active_Count",
	"Inactive_Count",
	"Total_Count",
}

const timestampFormat = "2006-01-02 15:04:05"

var detailColumnWidths = []float64{
	8,  // index
	12, // Zone
	35, // Lab_name_Masterlist
	18, // State
	25, // Account Owner
	16, // Customer Type
	14, // Truelab_id
	35, // Lab_name_Dashboard
	20, // Last_Run_Date
	12, // Total_Runs
	10, // Status
}

var summaryColumnWidths = []float64{
	18, // State
	16, // Customer Type
	14, // Active_Count
	14, // Inactive_Count
	14, // Total_Count
}

// Generate builds the output workbook: sheet names are fixed, detail rows in
// join order, summary rows as produced. A nil Last_Run_Date renders as an
// empty cell.
func Generate(detailSheet, summarySheet string, rep *domain.ConnectivityReport) ([]byte, error) {
	f := excelize.NewFile()
	// No deferred Close here: WriteTo needs the file open, Close comes last.

	detailRows := make([][]any, 0, len(rep.Detail))
	for _, row := range rep.Detail {
		var lastRun any
		if row.LastRunDate != nil {
			lastRun = row.LastRunDate.Format(timestampFormat)
		}
		detailRows = append(detailRows, []any{
			row.Index,
			row.Zone,
			row.LabNameMasterlist,
			row.State,
			row.AccountOwner,
			row.CustomerType,
			row.TruelabID,
			row.LabNameDashboard,
			lastRun,
			row.TotalRuns,
			row.Status,
		})
	}
	summaryRows := make([][]any, 0, len(rep.Summary))
	for _, row := range rep.Summary {
		summaryRows = append(summaryRows, []any{
			row.State,
			row.CustomerType,
			row.ActiveCount,
			row.InactiveCount,
			row.TotalCount,
		})
	}

	if err := writeSheet(f, detailSheet, DetailHeader, detailColumnWidths, detailRows); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSheet(f, summarySheet, SummaryHeader, summaryColumnWidths, summaryRows); err != nil {
		f.Close()
		return nil, err
	}

	// Drop the default sheet and land the reader on the detail sheet.
	f.DeleteSheet("Sheet1")
	index, err := f.GetSheetIndex(detailSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to look up sheet %q: %w", detailSheet, err)
	}
	f.SetActiveSheet(index)

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheetName string, headers []string, widths []float64, rows [][]any) error {
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheetName, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for i := range headers {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to convert column number: %w", err)
		}
		if i < len(widths) && widths[i] > 0 {
			if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
				return fmt.Errorf("failed to set column width: %w", err)
			}
		}
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			if value == nil || value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	// Freeze the header row.
	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze panes: %w", err)
	}
	return nil
}
