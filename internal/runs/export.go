package runs

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Runs"

// runsToXlsx builds a spreadsheet with one row per run, the same columns
// the dashboard table shows
func runsToXlsx(runs []Run) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", exportSheetName)

	headers := []string{
		"Date", "Name", "Distance (km)", "Moving time (min)", "Elevation gain (m)", "Pace",
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell name: %w", err)
		}
		if err := f.SetCellValue(exportSheetName, cell, header); err != nil {
			return nil, fmt.Errorf("set header cell: %w", err)
		}
	}

	for i, run := range runs {
		rowValues := []interface{}{
			run.StartedAt.Format(dateParamLayout),
			run.Name,
			run.DistanceKm,
			run.MovingTimeMinutes(),
			run.ElevationGainMeters,
			run.PaceDisplay(),
		}
		for col, value := range rowValues {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(exportSheetName, cell, value); err != nil {
				return nil, fmt.Errorf("set cell: %w", err)
			}
		}
	}

	return f, nil
}
