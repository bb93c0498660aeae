package export

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/mghazyfawazh/smart-attendance/internal/models"
	"github.com/mghazyfawazh/smart-attendance/internal/schedule"
)

const SheetName = "Timetable"

var header = []string{"No", "Day", "Slot", "Start", "End", "Subject", "Room", "Branch", "Semester"}

// SortWeekly orders periods Monday..Sunday, then by slot, then by start time.
// Unknown day names go last.
func SortWeekly(periods []models.ClassPeriod) {
	sort.SliceStable(periods, func(i, j int) bool {
		a, b := periods[i], periods[j]
		if da, db := schedule.DayIndex(a.Day), schedule.DayIndex(b.Day); da != db {
			return da < db
		}
		if a.Slot != b.Slot {
			return a.Slot < b.Slot
		}
		return a.StartTime < b.StartTime
	})
}

// Timetable renders periods as a single-sheet xlsx workbook.
func Timetable(periods []models.ClassPeriod) ([]byte, error) {
	rows := make([]models.ClassPeriod, len(periods))
	copy(rows, periods)
	SortWeekly(rows)

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}

	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(SheetName, cell, h)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#FFFF00"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	f.SetCellStyle(SheetName, "A1", lastCol+"1", headerStyle)

	for i, p := range rows {
		row := i + 2
		values := []interface{}{i + 1, p.Day, p.Slot, p.StartTime, p.EndTime, p.SubjectName, nil, nil, nil}
		if p.RoomNumber != nil {
			values[6] = *p.RoomNumber
		}
		if p.Branch != nil {
			values[7] = *p.Branch
		}
		if p.Semester != nil {
			values[8] = *p.Semester
		}
		for col, v := range values {
			if v == nil || v == "" {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(SheetName, cell, v)
		}
	}

	for col := 1; col <= len(header); col++ {
		colName, _ := excelize.ColumnNumberToName(col)
		f.SetColWidth(SheetName, colName, colName, 16)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
