package mailer

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// buildSlipPDF генерирует одностраничный PDF талон бронирования,
// который поставщик предъявляет на воротах склада.
func buildSlipPDF(res *domain.Reservation) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, "Delivery Booking Slip")
	pdf.Ln(16)

	pdf.SetFont("Helvetica", "", 12)
	rows := [][2]string{
		{"Booking code", res.Code},
		{"Supplier", res.SupplierName},
		{"Date", dateOnly(res.Date)},
		{"Time slot", res.OccupiedTime},
		{"Pallets", fmt.Sprintf("%d", res.Units)},
		{"Orders", res.OrderRefs},
	}

	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(45, 8, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.MultiCell(0, 8, row[1], "", "L", false)
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please arrive within your time slot. Late arrivals may need to rebook.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildAttachment, err)
	}
	return buf.Bytes(), nil
}
