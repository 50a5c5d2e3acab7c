package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const reportSheet = "Aday Havuzu"

// PositionReportRow is one pool candidate line in the employer report.
type PositionReportRow struct {
	Reference    string
	FullName     string
	Phone        string
	Email        string
	City         string
	ResultStatus string
	Note         string
}

// PositionReportData is everything the spreadsheet needs, already
// resolved; the builder does no lookups of its own.
type PositionReportData struct {
	PositionTitle string
	CompanyName   string
	GeneratedAt   time.Time
	Rows          []PositionReportRow
}

var reportHeaders = []string{"Referans", "Ad Soyad", "Telefon", "E-posta", "Şehir", "Durum", "Not"}

// BuildPositionReportXLSX renders the pool of one position as a styled
// workbook: title block, bold filtered header row, frozen panes, and a
// dash for every empty cell so printouts stay readable.
func BuildPositionReportXLSX(data PositionReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", reportSheet)

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	cellStyle, err := f.NewStyle(&excelize.Style{
		Border: []excelize.Border{
			{Type: "left", Color: "D9D9D9", Style: 1},
			{Type: "right", Color: "D9D9D9", Style: 1},
			{Type: "top", Color: "D9D9D9", Style: 1},
			{Type: "bottom", Color: "D9D9D9", Style: 1},
		},
	})
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("%s - %s", data.CompanyName, data.PositionTitle)
	if err := f.SetCellValue(reportSheet, "A1", title); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(reportSheet, "A1", "A1", titleStyle); err != nil {
		return nil, err
	}
	stamp := fmt.Sprintf("Oluşturulma: %s", data.GeneratedAt.Format("02.01.2006 15:04"))
	if err := f.SetCellValue(reportSheet, "A2", stamp); err != nil {
		return nil, err
	}

	const headerRow = 4
	for i, h := range reportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(reportSheet, cell, h); err != nil {
			return nil, err
		}
	}
	lastCol, err := excelize.CoordinatesToCellName(len(reportHeaders), headerRow)
	if err != nil {
		return nil, err
	}
	firstCol, _ := excelize.CoordinatesToCellName(1, headerRow)
	if err := f.SetCellStyle(reportSheet, firstCol, lastCol, headerStyle); err != nil {
		return nil, err
	}

	for r, row := range data.Rows {
		values := []string{
			row.Reference, row.FullName, row.Phone, row.Email,
			row.City, row.ResultStatus, row.Note,
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, headerRow+1+r)
			if err != nil {
				return nil, err
			}
			if v == "" {
				v = "-"
			}
			if err := f.SetCellValue(reportSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}
	if len(data.Rows) > 0 {
		lastCell, _ := excelize.CoordinatesToCellName(len(reportHeaders), headerRow+len(data.Rows))
		firstCell, _ := excelize.CoordinatesToCellName(1, headerRow+1)
		if err := f.SetCellStyle(reportSheet, firstCell, lastCell, cellStyle); err != nil {
			return nil, err
		}
	}

	widths := []float64{14, 26, 16, 30, 14, 14, 40}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(reportSheet, col, col, w); err != nil {
			return nil, err
		}
	}

	filterRange := fmt.Sprintf("%s:%s", firstCol, lastCol)
	if err := f.AutoFilter(reportSheet, filterRange, nil); err != nil {
		return nil, err
	}
	if err := f.SetPanes(reportSheet, &excelize.Panes{
		Freeze: true, YSplit: headerRow,
		TopLeftCell: fmt.Sprintf("A%d", headerRow+1),
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
