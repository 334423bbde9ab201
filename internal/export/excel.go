package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"darshan/internal/config"
	"darshan/internal/models"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// Exporter writes a user's booking history to an Excel workbook for
// offline sharing with travel companions.
type Exporter struct {
	config config.ExportConfig
	logger *zerolog.Logger
}

func NewExporter(cfg config.ExportConfig, logger *zerolog.Logger) *Exporter {
	return &Exporter{
		config: cfg,
		logger: logger,
	}
}

// ExportBookings creates an xlsx file with one row per booking plus a
// summary block, and returns the file path.
func (e *Exporter) ExportBookings(username string, bookings []models.Booking, stats models.DashboardStats) (string, error) {
	if err := os.MkdirAll(e.config.Path, 0o755); err != nil {
		return "", fmt.Errorf("error creating export directory: %v", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Bookings"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	_ = f.SetCellValue(sheetName, "A1", fmt.Sprintf("Bookings for %s", username))
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	_ = f.MergeCell(sheetName, "A1", "H1")
	_ = f.SetCellStyle(sheetName, "A1", "A1", titleStyle)

	headers := []string{
		"ID", "Type", "Name", "Check-in", "Check-out", "Guests", "Tour Date", "Group Size",
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		_ = f.SetCellValue(sheetName, cell, header)
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, booking := range bookings {
		row := i + 3
		_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), booking.ID)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), string(booking.SubjectType))
		_ = f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), booking.SubjectName)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), booking.Fields.CheckIn)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), booking.Fields.CheckOut)
		if booking.SubjectType == models.SubjectHotel {
			_ = f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), booking.Fields.GuestCount)
		}
		_ = f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), booking.Fields.TourDate)
		if booking.SubjectType == models.SubjectGuide {
			_ = f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), booking.Fields.GroupSize)
		}
	}

	summaryRow := len(bookings) + 4
	_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "Total bookings")
	_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", summaryRow), stats.TotalBookings)
	_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow+1), "Estimated spend (INR)")
	_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", summaryRow+1), stats.EstimatedSpend)
	_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow+2), "Hours explored")
	_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", summaryRow+2), stats.EstimatedHours)

	_ = f.SetColWidth(sheetName, "A", "A", 38)
	_ = f.SetColWidth(sheetName, "B", "C", 22)
	_ = f.SetColWidth(sheetName, "D", "H", 14)

	_ = f.DeleteSheet("Sheet1")

	fileName := fmt.Sprintf("bookings_%s_%s.xlsx", username, time.Now().Format("2006-01-02_15-04-05"))
	filePath := filepath.Join(e.config.Path, fileName)

	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("error saving file: %v", err)
	}

	e.logger.Info().Str("file_path", filePath).Msg("Excel file created")
	return filePath, nil
}
