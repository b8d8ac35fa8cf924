// Package report renders the admin reservation report as a PDF.
package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/Alexander2227/tennis-pro-system/internal/service"
)

func ReservationsPDF(rows []service.ReportRow, from, to string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 20, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Reservation Report", "", 1, "C", false, 0, "")
	if from != "" || to != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, fmt.Sprintf("%s to %s", orDefault(from, "beginning"), orDefault(to, "today")), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		line := fmt.Sprintf("%s %s - %s %s [%s]", r.Date, r.TimeSlot, r.FirstName, r.LastName, r.Status)
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	if len(rows) == 0 {
		pdf.CellFormat(0, 6, "No reservations in range.", "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
